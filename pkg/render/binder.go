package render

// Binder tracks which framebuffer is bound on a Device. Binds are scoped:
// every Bind returns a restore function that puts back the previous target.
type Binder struct {
	dev     Device
	current Framebuffer
}

// NewBinder creates a binder for dev, starting at the default framebuffer
func NewBinder(dev Device) *Binder {
	return &Binder{dev: dev, current: DefaultFramebuffer}
}

// Device returns the device the binder drives
func (b *Binder) Device() Device {
	return b.dev
}

// Current returns the framebuffer that draw calls currently land in
func (b *Binder) Current() Framebuffer {
	return b.current
}

// Bind makes fb current and returns a function restoring the previous target.
//
//	restore := b.Bind(fb)
//	defer restore()
func (b *Binder) Bind(fb Framebuffer) (restore func()) {
	prev := b.current
	b.current = fb
	b.dev.BindFramebuffer(fb)

	restored := false
	return func() {
		if restored {
			return
		}
		restored = true
		b.current = prev
		b.dev.BindFramebuffer(prev)
	}
}

// rebind reapplies the tracked binding after a call that changed driver state
// behind the binder's back, such as a blit.
func (b *Binder) rebind() {
	b.dev.BindFramebuffer(b.current)
}
