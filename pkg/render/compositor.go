package render

import (
	"fmt"

	"glsandbox/internal/logger"
)

// CompositorConfig sizes the off-screen targets
type CompositorConfig struct {
	Width   int
	Height  int
	Samples int
}

// Compositor renders a scene into a multisampled target, resolves it, runs
// the post-process pass and keeps the result in a texture for the GUI.
type Compositor struct {
	binder       *Binder
	multisample  *RenderTarget
	intermediate *RenderTarget
	display      *RenderTarget
	post         *PostProcessPass
	resize       *ResizeCoordinator
	log          *logger.Logger
}

// NewCompositor allocates the three render targets. Any incomplete target
// is a fatal configuration error and is returned.
func NewCompositor(dev Device, cfg CompositorConfig, post *PostProcessPass, log *logger.Logger) (*Compositor, error) {
	b := NewBinder(dev)
	c := &Compositor{binder: b, post: post, log: log}

	var err error
	if c.multisample, err = NewRenderTarget(b, "multisample", MultisampleSpec(cfg.Samples), cfg.Width, cfg.Height); err != nil {
		return nil, err
	}
	if c.intermediate, err = NewRenderTarget(b, "intermediate", ResolveSpec(), cfg.Width, cfg.Height); err != nil {
		c.multisample.Destroy()
		return nil, err
	}
	if c.display, err = NewRenderTarget(b, "display", ResolveSpec(), cfg.Width, cfg.Height); err != nil {
		c.multisample.Destroy()
		c.intermediate.Destroy()
		return nil, err
	}

	size := DisplaySize{Width: cfg.Width, Height: cfg.Height}
	c.resize = NewResizeCoordinator(b, size, log, c.multisample, c.intermediate, c.display)
	dev.Viewport(cfg.Width, cfg.Height)

	log.Debugf("compositor ready at %s with %d samples", size, c.multisample.Samples())
	return c, nil
}

// Render draws one frame. drawScene issues the scene's draw calls into the
// multisampled target.
func (c *Compositor) Render(sel EffectSelection, drawScene func()) error {
	dev := c.binder.Device()
	size := c.resize.Size()

	restore := c.multisample.Bind(c.binder)
	dev.Viewport(size.Width, size.Height)
	dev.SetDepthTest(true)
	dev.Clear(true, true)

	drawScene()

	err := Resolve(c.binder, c.multisample, c.intermediate, size.Width, size.Height)
	restore()
	if err != nil {
		return fmt.Errorf("composite frame: %w", err)
	}

	dev.Clear(true, true)
	dev.SetDepthTest(false)

	c.post.Apply(c.binder, sel, c.intermediate.ColorTexture(0), c.display)
	return nil
}

// Resize forwards a display area change to the resize coordinator
func (c *Compositor) Resize(width, height int) (ResizeOutcome, error) {
	return c.resize.Request(DisplaySize{Width: width, Height: height})
}

// Size returns the current size of every target
func (c *Compositor) Size() DisplaySize { return c.resize.Size() }

// Texture returns the post-processed image for display
func (c *Compositor) Texture() Texture { return c.display.ColorTexture(0) }

// Targets returns the multisample, intermediate and display targets in order
func (c *Compositor) Targets() []*RenderTarget {
	return c.resize.Targets()
}

// Destroy releases every render target
func (c *Compositor) Destroy() {
	for _, t := range c.resize.Targets() {
		t.Destroy()
	}
}
