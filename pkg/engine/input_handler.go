package engine

import (
	"github.com/go-gl/glfw/v3.3/glfw"
)

// InputSource is the input the camera reads each frame
type InputSource interface {
	IsKeyDown(key glfw.Key) bool
	IsMouseButtonDown(button glfw.MouseButton) bool
	GetMousePosition() [2]float64
	SetCursorPosition(x, y float64)
	SetCursorVisible(visible bool)
}

// InputHandler snapshots keyboard and mouse state once per frame
type InputHandler struct {
	window            *glfw.Window
	currentKeys       map[glfw.Key]bool
	previousKeys      map[glfw.Key]bool
	currentMousePos   [2]float64
	previousMousePos  [2]float64
	currentMouseBtns  map[glfw.MouseButton]bool
	previousMouseBtns map[glfw.MouseButton]bool
	mouseDelta        [2]float64
	mouseWheelDelta   float64
}

// NewInputHandler creates an input handler. A scroll callback already
// installed on the window keeps receiving events.
func NewInputHandler(window *glfw.Window) *InputHandler {
	handler := &InputHandler{
		window:            window,
		currentKeys:       make(map[glfw.Key]bool),
		previousKeys:      make(map[glfw.Key]bool),
		currentMouseBtns:  make(map[glfw.MouseButton]bool),
		previousMouseBtns: make(map[glfw.MouseButton]bool),
	}

	var previous glfw.ScrollCallback
	previous = window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		handler.onScroll(yoff)
		if previous != nil {
			previous(w, xoff, yoff)
		}
	})

	return handler
}

func (ih *InputHandler) onScroll(yoffset float64) {
	ih.mouseWheelDelta += yoffset
}

// Update polls the window and rotates current state into previous
func (ih *InputHandler) Update() {
	ih.previousKeys, ih.currentKeys = ih.currentKeys, ih.previousKeys
	ih.previousMouseBtns, ih.currentMouseBtns = ih.currentMouseBtns, ih.previousMouseBtns

	ih.previousMousePos = ih.currentMousePos
	x, y := ih.window.GetCursorPos()
	ih.currentMousePos = [2]float64{x, y}

	ih.mouseDelta[0] = ih.currentMousePos[0] - ih.previousMousePos[0]
	ih.mouseDelta[1] = ih.currentMousePos[1] - ih.previousMousePos[1]

	for key := glfw.KeySpace; key <= glfw.KeyLast; key++ {
		ih.currentKeys[key] = ih.window.GetKey(key) == glfw.Press
	}

	for btn := glfw.MouseButton1; btn <= glfw.MouseButtonLast; btn++ {
		ih.currentMouseBtns[btn] = ih.window.GetMouseButton(btn) == glfw.Press
	}
}

// IsKeyDown reports whether a key is held this frame
func (ih *InputHandler) IsKeyDown(key glfw.Key) bool {
	return ih.currentKeys[key]
}

// IsKeyPressed reports whether a key went down this frame
func (ih *InputHandler) IsKeyPressed(key glfw.Key) bool {
	return ih.currentKeys[key] && !ih.previousKeys[key]
}

// IsKeyReleased reports whether a key went up this frame
func (ih *InputHandler) IsKeyReleased(key glfw.Key) bool {
	return !ih.currentKeys[key] && ih.previousKeys[key]
}

// IsMouseButtonDown reports whether a mouse button is held this frame
func (ih *InputHandler) IsMouseButtonDown(button glfw.MouseButton) bool {
	return ih.currentMouseBtns[button]
}

// IsMouseButtonPressed reports whether a mouse button went down this frame
func (ih *InputHandler) IsMouseButtonPressed(button glfw.MouseButton) bool {
	return ih.currentMouseBtns[button] && !ih.previousMouseBtns[button]
}

// IsMouseButtonReleased reports whether a mouse button went up this frame
func (ih *InputHandler) IsMouseButtonReleased(button glfw.MouseButton) bool {
	return !ih.currentMouseBtns[button] && ih.previousMouseBtns[button]
}

// GetMousePosition returns the cursor position sampled this frame
func (ih *InputHandler) GetMousePosition() [2]float64 {
	return ih.currentMousePos
}

// GetMouseDelta returns the cursor movement since the previous frame
func (ih *InputHandler) GetMouseDelta() [2]float64 {
	return ih.mouseDelta
}

// GetMouseWheelDelta returns and resets the accumulated vertical scroll
func (ih *InputHandler) GetMouseWheelDelta() float64 {
	delta := ih.mouseWheelDelta
	ih.mouseWheelDelta = 0
	return delta
}

// SetCursorPosition warps the cursor and updates the sampled position
func (ih *InputHandler) SetCursorPosition(x, y float64) {
	ih.window.SetCursorPos(x, y)
	ih.currentMousePos = [2]float64{x, y}
}

// SetCursorVisible shows or hides the cursor over the window
func (ih *InputHandler) SetCursorVisible(visible bool) {
	if visible {
		ih.window.SetInputMode(glfw.CursorMode, glfw.CursorNormal)
	} else {
		ih.window.SetInputMode(glfw.CursorMode, glfw.CursorHidden)
	}
}
