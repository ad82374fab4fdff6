package render

import (
	"github.com/go-gl/gl/v4.1-core/gl"
)

// GLDevice implements Device on the current OpenGL 4.1 core context
type GLDevice struct {
	clearColor [4]float32
}

// NewGLDevice returns a device for the context current on this thread.
// gl.Init must already have been called.
func NewGLDevice(clearColor [4]float32) *GLDevice {
	return &GLDevice{clearColor: clearColor}
}

func (d *GLDevice) CreateFramebuffer() Framebuffer {
	var id uint32
	gl.GenFramebuffers(1, &id)
	return Framebuffer(id)
}

func (d *GLDevice) DeleteFramebuffer(fb Framebuffer) {
	id := uint32(fb)
	gl.DeleteFramebuffers(1, &id)
}

func (d *GLDevice) BindFramebuffer(fb Framebuffer) {
	gl.BindFramebuffer(gl.FRAMEBUFFER, uint32(fb))
}

func (d *GLDevice) CheckStatus() Status {
	switch gl.CheckFramebufferStatus(gl.FRAMEBUFFER) {
	case gl.FRAMEBUFFER_COMPLETE:
		return StatusComplete
	case gl.FRAMEBUFFER_UNDEFINED:
		return StatusUndefined
	case gl.FRAMEBUFFER_INCOMPLETE_ATTACHMENT:
		return StatusIncompleteAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT:
		return StatusMissingAttachment
	case gl.FRAMEBUFFER_INCOMPLETE_DRAW_BUFFER:
		return StatusIncompleteDrawBuffer
	case gl.FRAMEBUFFER_INCOMPLETE_READ_BUFFER:
		return StatusIncompleteReadBuffer
	case gl.FRAMEBUFFER_UNSUPPORTED:
		return StatusUnsupported
	case gl.FRAMEBUFFER_INCOMPLETE_MULTISAMPLE:
		return StatusIncompleteMultisample
	default:
		return StatusUnknown
	}
}

func internalFormat(format ColorFormat) int32 {
	if format == ColorRGBA8 {
		return gl.RGBA8
	}
	return gl.RGBA
}

func (d *GLDevice) CreateColorTexture(format ColorFormat, samples, width, height int) Texture {
	var id uint32
	gl.GenTextures(1, &id)

	if samples > 1 {
		gl.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, id)
		gl.TexImage2DMultisample(gl.TEXTURE_2D_MULTISAMPLE, int32(samples), uint32(internalFormat(format)), int32(width), int32(height), true)
		gl.BindTexture(gl.TEXTURE_2D_MULTISAMPLE, 0)
		return Texture(id)
	}

	gl.BindTexture(gl.TEXTURE_2D, id)
	gl.TexImage2D(gl.TEXTURE_2D, 0, internalFormat(format), int32(width), int32(height), 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.BindTexture(gl.TEXTURE_2D, 0)
	return Texture(id)
}

func (d *GLDevice) DeleteTexture(tex Texture) {
	id := uint32(tex)
	gl.DeleteTextures(1, &id)
}

func (d *GLDevice) AttachColorTexture(slot int, tex Texture, multisample bool) {
	target := uint32(gl.TEXTURE_2D)
	if multisample {
		target = gl.TEXTURE_2D_MULTISAMPLE
	}
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0+uint32(slot), target, uint32(tex), 0)
}

func (d *GLDevice) CreateDepthStencil(samples, width, height int) Renderbuffer {
	var id uint32
	gl.GenRenderbuffers(1, &id)
	gl.BindRenderbuffer(gl.RENDERBUFFER, id)
	if samples > 1 {
		gl.RenderbufferStorageMultisample(gl.RENDERBUFFER, int32(samples), gl.DEPTH24_STENCIL8, int32(width), int32(height))
	} else {
		gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, int32(width), int32(height))
	}
	gl.BindRenderbuffer(gl.RENDERBUFFER, 0)
	return Renderbuffer(id)
}

func (d *GLDevice) DeleteRenderbuffer(rb Renderbuffer) {
	id := uint32(rb)
	gl.DeleteRenderbuffers(1, &id)
}

func (d *GLDevice) AttachDepthStencil(rb Renderbuffer) {
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, uint32(rb))
}

func (d *GLDevice) Blit(src, dst Framebuffer, width, height int) {
	gl.BindFramebuffer(gl.READ_FRAMEBUFFER, uint32(src))
	gl.BindFramebuffer(gl.DRAW_FRAMEBUFFER, uint32(dst))
	w, h := int32(width), int32(height)
	gl.BlitFramebuffer(0, 0, w, h, 0, 0, w, h, gl.COLOR_BUFFER_BIT, gl.NEAREST)
}

func (d *GLDevice) Viewport(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (d *GLDevice) Clear(color, depth bool) {
	var mask uint32
	if color {
		c := d.clearColor
		gl.ClearColor(c[0], c[1], c[2], c[3])
		mask |= gl.COLOR_BUFFER_BIT
	}
	if depth {
		mask |= gl.DEPTH_BUFFER_BIT
	}
	if mask != 0 {
		gl.Clear(mask)
	}
}

func (d *GLDevice) SetDepthTest(enabled bool) {
	if enabled {
		gl.Enable(gl.DEPTH_TEST)
	} else {
		gl.Disable(gl.DEPTH_TEST)
	}
}

func (d *GLDevice) BindTexture(unit int, tex Texture) {
	gl.ActiveTexture(gl.TEXTURE0 + uint32(unit))
	gl.BindTexture(gl.TEXTURE_2D, uint32(tex))
}
