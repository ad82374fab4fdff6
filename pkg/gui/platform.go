package gui

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/inkyblackness/imgui-go/v4"
)

var mouseButtons = [...]glfw.MouseButton{glfw.MouseButtonLeft, glfw.MouseButtonRight, glfw.MouseButtonMiddle}

// platform feeds GLFW window events into the imgui IO
type platform struct {
	window *glfw.Window
	io     imgui.IO

	// Clicks shorter than a frame still register as a press
	mouseJustPressed [len(mouseButtons)]bool
}

func newPlatform(window *glfw.Window, io imgui.IO) *platform {
	p := &platform{window: window, io: io}
	p.setKeyMapping()
	p.installCallbacks()
	return p
}

func (p *platform) setKeyMapping() {
	keys := map[int]glfw.Key{
		imgui.KeyTab:        glfw.KeyTab,
		imgui.KeyLeftArrow:  glfw.KeyLeft,
		imgui.KeyRightArrow: glfw.KeyRight,
		imgui.KeyUpArrow:    glfw.KeyUp,
		imgui.KeyDownArrow:  glfw.KeyDown,
		imgui.KeyPageUp:     glfw.KeyPageUp,
		imgui.KeyPageDown:   glfw.KeyPageDown,
		imgui.KeyHome:       glfw.KeyHome,
		imgui.KeyEnd:        glfw.KeyEnd,
		imgui.KeyInsert:     glfw.KeyInsert,
		imgui.KeyDelete:     glfw.KeyDelete,
		imgui.KeyBackspace:  glfw.KeyBackspace,
		imgui.KeySpace:      glfw.KeySpace,
		imgui.KeyEnter:      glfw.KeyEnter,
		imgui.KeyEscape:     glfw.KeyEscape,
		imgui.KeyA:          glfw.KeyA,
		imgui.KeyC:          glfw.KeyC,
		imgui.KeyV:          glfw.KeyV,
		imgui.KeyX:          glfw.KeyX,
		imgui.KeyY:          glfw.KeyY,
		imgui.KeyZ:          glfw.KeyZ,
	}
	for imguiKey, glfwKey := range keys {
		p.io.KeyMap(imguiKey, int(glfwKey))
	}
}

func (p *platform) installCallbacks() {
	p.window.SetMouseButtonCallback(func(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
		for i, b := range mouseButtons {
			if b == button && action == glfw.Press {
				p.mouseJustPressed[i] = true
			}
		}
	})

	p.window.SetScrollCallback(func(_ *glfw.Window, xoff, yoff float64) {
		p.io.AddMouseWheelDelta(float32(xoff), float32(yoff))
	})

	p.window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		switch action {
		case glfw.Press:
			p.io.KeyPress(int(key))
		case glfw.Release:
			p.io.KeyRelease(int(key))
		}
		p.io.KeyCtrl(int(glfw.KeyLeftControl), int(glfw.KeyRightControl))
		p.io.KeyShift(int(glfw.KeyLeftShift), int(glfw.KeyRightShift))
		p.io.KeyAlt(int(glfw.KeyLeftAlt), int(glfw.KeyRightAlt))
		p.io.KeySuper(int(glfw.KeyLeftSuper), int(glfw.KeyRightSuper))
	})

	p.window.SetCharCallback(func(_ *glfw.Window, char rune) {
		p.io.AddInputCharacters(string(char))
	})
}

func (p *platform) displaySize() [2]float32 {
	w, h := p.window.GetSize()
	return [2]float32{float32(w), float32(h)}
}

func (p *platform) framebufferSize() [2]float32 {
	w, h := p.window.GetFramebufferSize()
	return [2]float32{float32(w), float32(h)}
}

func (p *platform) newFrame(dt float64) {
	size := p.displaySize()
	p.io.SetDisplaySize(imgui.Vec2{X: size[0], Y: size[1]})
	// imgui asserts on a zero delta
	p.io.SetDeltaTime(float32(math.Max(dt, 1e-5)))

	if p.window.GetAttrib(glfw.Focused) != 0 {
		x, y := p.window.GetCursorPos()
		p.io.SetMousePosition(imgui.Vec2{X: float32(x), Y: float32(y)})
	} else {
		p.io.SetMousePosition(imgui.Vec2{X: -math.MaxFloat32, Y: -math.MaxFloat32})
	}

	for i, button := range mouseButtons {
		down := p.mouseJustPressed[i] || p.window.GetMouseButton(button) == glfw.Press
		p.io.SetMouseButtonDown(i, down)
		p.mouseJustPressed[i] = false
	}
}
