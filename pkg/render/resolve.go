package render

import "fmt"

// Resolve copies the multisampled colour of src into the single-sampled dst.
// Call it once every draw into src for the frame has been issued.
func Resolve(b *Binder, src, dst *RenderTarget, width, height int) error {
	switch {
	case !src.Multisampled():
		return fmt.Errorf("resolve: source %q is not multisampled", src.Name())
	case dst.Multisampled():
		return fmt.Errorf("resolve: destination %q is multisampled", dst.Name())
	case src.Width() != width || src.Height() != height:
		return fmt.Errorf("resolve: source %q is %dx%d, want %dx%d", src.Name(), src.Width(), src.Height(), width, height)
	case dst.Width() != width || dst.Height() != height:
		return fmt.Errorf("resolve: destination %q is %dx%d, want %dx%d", dst.Name(), dst.Width(), dst.Height(), width, height)
	}

	b.Device().Blit(src.Framebuffer(), dst.Framebuffer(), width, height)
	b.rebind()
	return nil
}
