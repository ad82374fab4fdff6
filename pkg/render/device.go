package render

// Framebuffer is a driver framebuffer name. Zero is the default framebuffer.
type Framebuffer uint32

// DefaultFramebuffer is the window-system provided target
const DefaultFramebuffer Framebuffer = 0

// Texture is a driver texture name. Zero means "no texture".
type Texture uint32

// Renderbuffer is a driver renderbuffer name
type Renderbuffer uint32

// ColorFormat selects the internal storage of a colour attachment
type ColorFormat int

const (
	ColorRGBA ColorFormat = iota
	ColorRGBA8
)

// Status is the completeness status reported for the bound framebuffer
type Status uint32

const (
	StatusComplete Status = iota
	StatusUndefined
	StatusIncompleteAttachment
	StatusMissingAttachment
	StatusIncompleteDrawBuffer
	StatusIncompleteReadBuffer
	StatusUnsupported
	StatusIncompleteMultisample
	StatusUnknown
)

var statusNames = map[Status]string{
	StatusComplete:              "complete",
	StatusUndefined:             "undefined",
	StatusIncompleteAttachment:  "incomplete attachment",
	StatusMissingAttachment:     "missing attachment",
	StatusIncompleteDrawBuffer:  "incomplete draw buffer",
	StatusIncompleteReadBuffer:  "incomplete read buffer",
	StatusUnsupported:           "unsupported",
	StatusIncompleteMultisample: "incomplete multisample",
	StatusUnknown:               "unknown",
}

func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return statusNames[StatusUnknown]
}

// Device is the slice of the graphics API used by render targets and the
// compositing pipeline. Every call must happen on the thread owning the
// context. GLDevice is the OpenGL implementation.
type Device interface {
	CreateFramebuffer() Framebuffer
	DeleteFramebuffer(fb Framebuffer)
	// BindFramebuffer binds fb for both reading and drawing
	BindFramebuffer(fb Framebuffer)
	// CheckStatus reports completeness of the bound framebuffer
	CheckStatus() Status

	// CreateColorTexture allocates colour storage. samples > 1 yields a
	// multisample texture.
	CreateColorTexture(format ColorFormat, samples, width, height int) Texture
	DeleteTexture(tex Texture)
	// AttachColorTexture attaches tex to colour slot of the bound framebuffer
	AttachColorTexture(slot int, tex Texture, multisample bool)

	CreateDepthStencil(samples, width, height int) Renderbuffer
	DeleteRenderbuffer(rb Renderbuffer)
	AttachDepthStencil(rb Renderbuffer)

	// Blit copies the colour buffer of src into dst
	Blit(src, dst Framebuffer, width, height int)

	Viewport(width, height int)
	Clear(color, depth bool)
	SetDepthTest(enabled bool)
	BindTexture(unit int, tex Texture)
}
