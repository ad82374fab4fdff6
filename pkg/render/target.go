package render

import (
	"errors"
	"fmt"
)

// ErrIncomplete is returned when a render target is not render-complete
var ErrIncomplete = errors.New("render target incomplete")

// TargetSpec describes the attachments of a render target
type TargetSpec struct {
	Samples          int
	ColorAttachments int
	ColorFormat      ColorFormat
	DepthStencil     bool
}

// MultisampleSpec is a multisampled colour target with depth/stencil storage
func MultisampleSpec(samples int) TargetSpec {
	if samples < 2 {
		samples = 2
	}
	return TargetSpec{
		Samples:          samples,
		ColorAttachments: 1,
		ColorFormat:      ColorRGBA,
		DepthStencil:     true,
	}
}

// ResolveSpec is a single-sampled RGBA8 colour target
func ResolveSpec() TargetSpec {
	return TargetSpec{
		Samples:          1,
		ColorAttachments: 1,
		ColorFormat:      ColorRGBA8,
	}
}

// Multisampled reports whether the spec has more than one sample per pixel
func (s TargetSpec) Multisampled() bool {
	return s.Samples > 1
}

// RenderTarget is an off-screen framebuffer with its attachments
type RenderTarget struct {
	name   string
	dev    Device
	spec   TargetSpec
	fb     Framebuffer
	colors []Texture
	depth  Renderbuffer
	width  int
	height int
}

// NewRenderTarget allocates a framebuffer and its attachments and checks it
// for completeness. The binder's current target is restored on return.
func NewRenderTarget(b *Binder, name string, spec TargetSpec, width, height int) (*RenderTarget, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render target %q: invalid size %dx%d", name, width, height)
	}
	if spec.ColorAttachments < 1 {
		spec.ColorAttachments = 1
	}
	if spec.Samples < 1 {
		spec.Samples = 1
	}

	t := &RenderTarget{
		name: name,
		dev:  b.Device(),
		spec: spec,
	}
	t.fb = t.dev.CreateFramebuffer()

	restore := b.Bind(t.fb)
	defer restore()

	t.allocate(width, height)
	if err := t.CheckComplete(); err != nil {
		t.Destroy()
		return nil, err
	}
	return t, nil
}

// allocate creates and attaches storage. The target must be bound.
func (t *RenderTarget) allocate(width, height int) {
	t.width = width
	t.height = height

	t.colors = make([]Texture, t.spec.ColorAttachments)
	for i := range t.colors {
		t.colors[i] = t.dev.CreateColorTexture(t.spec.ColorFormat, t.spec.Samples, width, height)
		t.dev.AttachColorTexture(i, t.colors[i], t.spec.Multisampled())
	}

	if t.spec.DepthStencil {
		t.depth = t.dev.CreateDepthStencil(t.spec.Samples, width, height)
		t.dev.AttachDepthStencil(t.depth)
	}
}

func (t *RenderTarget) release() {
	for _, tex := range t.colors {
		t.dev.DeleteTexture(tex)
	}
	t.colors = nil

	if t.depth != 0 {
		t.dev.DeleteRenderbuffer(t.depth)
		t.depth = 0
	}
}

// Bind scopes subsequent draw calls to this target
func (t *RenderTarget) Bind(b *Binder) (restore func()) {
	return b.Bind(t.fb)
}

// Resize reallocates every attachment at the new size. A zero or negative
// area leaves the target untouched and reports false.
func (t *RenderTarget) Resize(b *Binder, width, height int) (bool, error) {
	if width <= 0 || height <= 0 {
		return false, nil
	}

	restore := b.Bind(t.fb)
	defer restore()

	t.release()
	t.allocate(width, height)
	if err := t.CheckComplete(); err != nil {
		return true, err
	}
	return true, nil
}

// CheckComplete queries the driver for the completeness of this target.
// The target must be bound.
func (t *RenderTarget) CheckComplete() error {
	if status := t.dev.CheckStatus(); status != StatusComplete {
		return fmt.Errorf("%w: %s (%dx%d, %d samples): %s",
			ErrIncomplete, t.name, t.width, t.height, t.spec.Samples, status)
	}
	return nil
}

// Destroy releases the attachments and the framebuffer
func (t *RenderTarget) Destroy() {
	t.release()
	if t.fb != 0 {
		t.dev.DeleteFramebuffer(t.fb)
		t.fb = 0
	}
}

// Name returns the label used in diagnostics
func (t *RenderTarget) Name() string { return t.name }

// Framebuffer returns the driver framebuffer name
func (t *RenderTarget) Framebuffer() Framebuffer { return t.fb }

// ColorTexture returns colour attachment i, or zero when out of range
func (t *RenderTarget) ColorTexture(i int) Texture {
	if i < 0 || i >= len(t.colors) {
		return 0
	}
	return t.colors[i]
}

// DepthStencil returns the depth/stencil attachment, zero when absent
func (t *RenderTarget) DepthStencil() Renderbuffer { return t.depth }

func (t *RenderTarget) Width() int   { return t.width }
func (t *RenderTarget) Height() int  { return t.height }
func (t *RenderTarget) Samples() int { return t.spec.Samples }

// Multisampled reports whether the colour storage is multisampled
func (t *RenderTarget) Multisampled() bool { return t.spec.Multisampled() }
