package engine

import (
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"

	"glsandbox/internal/logger"
	"glsandbox/internal/util"
)

// GuiBackend drives the immediate-mode GUI around the layers' widget calls
type GuiBackend interface {
	// NewFrame starts a GUI frame
	NewFrame(dt float64)
	// Render draws the GUI into the default framebuffer
	Render()
	Destroy()
}

// Application runs the main loop over a stack of layers
type Application struct {
	window    *Window
	input     *InputHandler
	gui       GuiBackend
	layers    LayerStack
	logger    *logger.Logger
	frameRate int
	isRunning bool
}

// NewApplication creates the application. The GUI backend must already be
// installed on the window so the input handler can chain its callbacks.
func NewApplication(window *Window, gui GuiBackend, frameRate int, log *logger.Logger) *Application {
	return &Application{
		window:    window,
		input:     NewInputHandler(window.Handle()),
		gui:       gui,
		logger:    log,
		frameRate: frameRate,
	}
}

// Window returns the application window
func (a *Application) Window() *Window {
	return a.window
}

// Input returns the per-frame input state
func (a *Application) Input() *InputHandler {
	return a.input
}

// PushLayer attaches a layer
func (a *Application) PushLayer(layer Layer) error {
	if err := a.layers.Push(layer); err != nil {
		return err
	}
	a.logger.Infof("Attached layer %s", layer.Name())
	return nil
}

// Stop ends the main loop after the current frame
func (a *Application) Stop() {
	a.isRunning = false
}

// Run starts the main loop and returns when the window closes or a layer fails
func (a *Application) Run() error {
	a.isRunning = true
	clock := util.NewFrameClock()

	defer a.cleanup()

	for a.isRunning && !a.window.ShouldClose() {
		frameStart := time.Now()
		dt := clock.Tick()

		glfw.PollEvents()
		a.input.Update()

		if a.input.IsKeyPressed(glfw.KeyEscape) {
			a.isRunning = false
		}

		if err := a.frame(dt); err != nil {
			return err
		}

		a.window.SwapBuffers()

		// Cap the frame rate
		if a.frameRate > 0 {
			frameTime := time.Since(frameStart)
			targetFrameTime := time.Second / time.Duration(a.frameRate)
			if frameTime < targetFrameTime {
				time.Sleep(targetFrameTime - frameTime)
			}
		}
	}

	return nil
}

// frame runs one update and GUI pass over every layer
func (a *Application) frame(dt float64) error {
	if err := a.layers.Update(dt); err != nil {
		return err
	}

	a.gui.NewFrame(dt)
	if err := a.layers.GuiRender(dt); err != nil {
		return err
	}
	a.gui.Render()
	return nil
}

// cleanup detaches layers and releases the GUI and window
func (a *Application) cleanup() {
	a.logger.Info("Shutting down...")
	a.layers.Clear()
	a.gui.Destroy()
	a.window.Destroy()
}
