// Package gui hosts the imgui context for a GLFW window and draws it with OpenGL.
package gui

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"

	"glsandbox/internal/logger"
)

// Host owns the imgui context. It implements engine.GuiBackend.
type Host struct {
	context  *imgui.Context
	io       imgui.IO
	platform *platform
	renderer *renderer
	logger   *logger.Logger
}

// NewHost creates the imgui context and installs its window callbacks.
// Create it before anything else that chains onto those callbacks.
func NewHost(window *glfw.Window, log *logger.Logger) (*Host, error) {
	context := imgui.CreateContext(nil)
	io := imgui.CurrentIO()
	io.SetIniFilename("imgui.ini")

	r, err := newRenderer(io)
	if err != nil {
		context.Destroy()
		return nil, err
	}

	log.Debugf("imgui %s ready", imgui.Version())
	return &Host{
		context:  context,
		io:       io,
		platform: newPlatform(window, io),
		renderer: r,
		logger:   log,
	}, nil
}

// NewFrame starts a GUI frame
func (h *Host) NewFrame(dt float64) {
	h.platform.newFrame(dt)
	imgui.NewFrame()
}

// Render draws the GUI over the default framebuffer
func (h *Host) Render() {
	imgui.Render()

	fb := h.platform.framebufferSize()
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	gl.Viewport(0, 0, int32(fb[0]), int32(fb[1]))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	h.renderer.render(h.platform.displaySize(), fb, imgui.RenderedDrawData())
}

// Destroy releases the GL objects and the imgui context
func (h *Host) Destroy() {
	h.logger.Debug("Destroying GUI")
	h.renderer.destroy()
	h.context.Destroy()
}
