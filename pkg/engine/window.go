package engine

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"glsandbox/internal/logger"
	"glsandbox/pkg/config"
)

// Window owns the GLFW window and its OpenGL context
type Window struct {
	handle *glfw.Window
	logger *logger.Logger
}

// NewWindow initialises GLFW, opens a window and loads the OpenGL functions.
// Must be called from the main thread.
func NewWindow(cfg config.WindowConfig, log *logger.Logger) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, cfg.GLMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.GLMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	handle, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create GLFW window: %w", err)
	}

	handle.MakeContextCurrent()
	if cfg.VSync {
		glfw.SwapInterval(1)
	} else {
		glfw.SwapInterval(0)
	}

	if err := gl.Init(); err != nil {
		handle.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}

	log.Infof("OpenGL %s on %s", gl.GoStr(gl.GetString(gl.VERSION)), gl.GoStr(gl.GetString(gl.RENDERER)))

	return &Window{handle: handle, logger: log}, nil
}

// Handle returns the underlying GLFW window
func (w *Window) Handle() *glfw.Window {
	return w.handle
}

// Size returns the window size in screen coordinates
func (w *Window) Size() (int, int) {
	return w.handle.GetSize()
}

// FramebufferSize returns the size of the default framebuffer in pixels
func (w *Window) FramebufferSize() (int, int) {
	return w.handle.GetFramebufferSize()
}

// ShouldClose reports whether the user asked to close the window
func (w *Window) ShouldClose() bool {
	return w.handle.ShouldClose()
}

// SetShouldClose requests the main loop to stop
func (w *Window) SetShouldClose(close bool) {
	w.handle.SetShouldClose(close)
}

// SwapBuffers presents the frame
func (w *Window) SwapBuffers() {
	w.handle.SwapBuffers()
}

// Destroy closes the window and terminates GLFW
func (w *Window) Destroy() {
	w.logger.Debug("Destroying window")
	w.handle.Destroy()
	glfw.Terminate()
}
