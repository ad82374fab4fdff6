package render

import (
	"fmt"
	"io"

	"glsandbox/internal/logger"
)

type fakeTexture struct {
	samples, width, height int
}

type fakeFramebuffer struct {
	colors map[int]Texture
	depth  Renderbuffer
}

// fakeDevice records every call and models enough driver state to answer
// completeness queries.
type fakeDevice struct {
	next          uint32
	bound         Framebuffer
	framebuffers  map[Framebuffer]*fakeFramebuffer
	textures      map[Texture]fakeTexture
	renderbuffers map[Renderbuffer]fakeTexture
	calls         []string
	draws         int
	forceStatus   Status
}

func newFakeDevice() *fakeDevice {
	return &fakeDevice{
		framebuffers:  make(map[Framebuffer]*fakeFramebuffer),
		textures:      make(map[Texture]fakeTexture),
		renderbuffers: make(map[Renderbuffer]fakeTexture),
	}
}

func (d *fakeDevice) record(format string, args ...interface{}) {
	d.calls = append(d.calls, fmt.Sprintf(format, args...))
}

func (d *fakeDevice) id() uint32 {
	d.next++
	return d.next
}

func (d *fakeDevice) reset() {
	d.calls = nil
	d.draws = 0
}

func (d *fakeDevice) CreateFramebuffer() Framebuffer {
	fb := Framebuffer(d.id())
	d.framebuffers[fb] = &fakeFramebuffer{colors: make(map[int]Texture)}
	d.record("create fb %d", fb)
	return fb
}

func (d *fakeDevice) DeleteFramebuffer(fb Framebuffer) {
	delete(d.framebuffers, fb)
	d.record("delete fb %d", fb)
}

func (d *fakeDevice) BindFramebuffer(fb Framebuffer) {
	d.bound = fb
	d.record("bind %d", fb)
}

func (d *fakeDevice) CheckStatus() Status {
	d.record("status %d", d.bound)
	if d.forceStatus != StatusComplete {
		return d.forceStatus
	}
	fb, ok := d.framebuffers[d.bound]
	if !ok {
		return StatusUndefined
	}
	if len(fb.colors) == 0 {
		return StatusMissingAttachment
	}

	var w, h, samples int
	first := true
	check := func(t fakeTexture, ok bool) Status {
		if !ok {
			return StatusIncompleteAttachment
		}
		if first {
			w, h, samples, first = t.width, t.height, t.samples, false
			return StatusComplete
		}
		if t.samples != samples {
			return StatusIncompleteMultisample
		}
		if t.width != w || t.height != h {
			return StatusIncompleteAttachment
		}
		return StatusComplete
	}
	for _, tex := range fb.colors {
		t, ok := d.textures[tex]
		if s := check(t, ok); s != StatusComplete {
			return s
		}
	}
	if fb.depth != 0 {
		rb, ok := d.renderbuffers[fb.depth]
		if s := check(rb, ok); s != StatusComplete {
			return s
		}
	}
	return StatusComplete
}

func (d *fakeDevice) CreateColorTexture(format ColorFormat, samples, width, height int) Texture {
	tex := Texture(d.id())
	d.textures[tex] = fakeTexture{samples: samples, width: width, height: height}
	d.record("create tex %d %dx%d s%d", tex, width, height, samples)
	return tex
}

func (d *fakeDevice) DeleteTexture(tex Texture) {
	delete(d.textures, tex)
	d.record("delete tex %d", tex)
}

func (d *fakeDevice) AttachColorTexture(slot int, tex Texture, multisample bool) {
	d.framebuffers[d.bound].colors[slot] = tex
	d.record("attach color %d -> fb %d", tex, d.bound)
}

func (d *fakeDevice) CreateDepthStencil(samples, width, height int) Renderbuffer {
	rb := Renderbuffer(d.id())
	d.renderbuffers[rb] = fakeTexture{samples: samples, width: width, height: height}
	d.record("create rb %d %dx%d s%d", rb, width, height, samples)
	return rb
}

func (d *fakeDevice) DeleteRenderbuffer(rb Renderbuffer) {
	delete(d.renderbuffers, rb)
	d.record("delete rb %d", rb)
}

func (d *fakeDevice) AttachDepthStencil(rb Renderbuffer) {
	d.framebuffers[d.bound].depth = rb
	d.record("attach depth %d -> fb %d", rb, d.bound)
}

func (d *fakeDevice) Blit(src, dst Framebuffer, width, height int) {
	d.bound = dst
	d.record("blit %d -> %d %dx%d", src, dst, width, height)
}

func (d *fakeDevice) Viewport(width, height int) {
	d.record("viewport %dx%d", width, height)
}

func (d *fakeDevice) Clear(color, depth bool) {
	d.record("clear %d", d.bound)
}

func (d *fakeDevice) SetDepthTest(enabled bool) {
	d.record("depth %t", enabled)
}

func (d *fakeDevice) BindTexture(unit int, tex Texture) {
	d.record("texture %d=%d", unit, tex)
}

// fakeProgram records uniforms pushed by the post-process pass
type fakeProgram struct {
	dev      *fakeDevice
	uniforms map[string]int32
	uses     int
}

func newFakeProgram(dev *fakeDevice) *fakeProgram {
	return &fakeProgram{dev: dev, uniforms: make(map[string]int32)}
}

func (p *fakeProgram) Use() {
	p.uses++
	p.dev.record("use program")
}

func (p *fakeProgram) SetInteger(name string, value int32) {
	p.uniforms[name] = value
}

// fakeQuad counts draws into the device's bound framebuffer
type fakeQuad struct {
	dev *fakeDevice
}

func (q *fakeQuad) Draw() {
	q.dev.draws++
	q.dev.record("draw quad %d", q.dev.bound)
}

func quietLogger() *logger.Logger {
	return logger.NewWriterLogger("fatal", io.Discard)
}
