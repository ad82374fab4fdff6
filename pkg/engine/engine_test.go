package engine

import (
	"errors"
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glsandbox/internal/logger"
	"glsandbox/pkg/config"
)

type recordingLayer struct {
	name      string
	events    *[]string
	attachErr error
	updateErr error
}

func (l *recordingLayer) Name() string { return l.name }

func (l *recordingLayer) OnAttach() error {
	*l.events = append(*l.events, l.name+" attach")
	return l.attachErr
}

func (l *recordingLayer) OnUpdate(float64) error {
	*l.events = append(*l.events, l.name+" update")
	return l.updateErr
}

func (l *recordingLayer) OnGuiRender(float64) error {
	*l.events = append(*l.events, l.name+" gui")
	return nil
}

func (l *recordingLayer) OnDetach() {
	*l.events = append(*l.events, l.name+" detach")
}

type fakeGui struct {
	events *[]string
}

func (g *fakeGui) NewFrame(float64) { *g.events = append(*g.events, "gui begin") }
func (g *fakeGui) Render()          { *g.events = append(*g.events, "gui end") }
func (g *fakeGui) Destroy()         { *g.events = append(*g.events, "gui destroy") }

func TestLayerStackLifecycle(t *testing.T) {
	var events []string
	var stack LayerStack

	require.NoError(t, stack.Push(&recordingLayer{name: "a", events: &events}))
	require.NoError(t, stack.Push(&recordingLayer{name: "b", events: &events}))
	assert.Error(t, stack.Push(&recordingLayer{name: "a", events: &events}))
	assert.Len(t, stack.Layers(), 2)

	require.NoError(t, stack.Update(0.016))
	stack.Clear()

	assert.Equal(t, []string{
		"a attach", "b attach",
		"a update", "b update",
		"b detach", "a detach",
	}, events)
	assert.Empty(t, stack.Layers())
}

func TestLayerStackAttachFailure(t *testing.T) {
	var events []string
	var stack LayerStack
	boom := errors.New("shader missing")

	err := stack.Push(&recordingLayer{name: "sandbox", events: &events, attachErr: boom})
	require.ErrorIs(t, err, boom)
	assert.Empty(t, stack.Layers())
}

func TestLayerStackPop(t *testing.T) {
	var events []string
	var stack LayerStack
	require.NoError(t, stack.Push(&recordingLayer{name: "a", events: &events}))

	assert.False(t, stack.Pop("missing"))
	assert.True(t, stack.Pop("a"))
	assert.Empty(t, stack.Layers())
	assert.Equal(t, "a detach", events[len(events)-1])
}

func TestApplicationFrameOrder(t *testing.T) {
	var events []string
	app := &Application{
		gui:    &fakeGui{events: &events},
		logger: logger.NewWriterLogger("error", nopWriter{}),
	}
	require.NoError(t, app.PushLayer(&recordingLayer{name: "sandbox", events: &events}))

	require.NoError(t, app.frame(0.016))
	assert.Equal(t, []string{"sandbox attach", "sandbox update", "gui begin", "sandbox gui", "gui end"}, events)
}

func TestApplicationFrameStopsOnUpdateError(t *testing.T) {
	var events []string
	boom := errors.New("framebuffer incomplete")
	app := &Application{
		gui:    &fakeGui{events: &events},
		logger: logger.NewWriterLogger("error", nopWriter{}),
	}
	require.NoError(t, app.PushLayer(&recordingLayer{name: "sandbox", events: &events, updateErr: boom}))

	err := app.frame(0.016)
	require.ErrorIs(t, err, boom)
	assert.NotContains(t, events, "gui begin")
}

type nopWriter struct{}

func (nopWriter) Write(p []byte) (int, error) { return len(p), nil }

type fakeInput struct {
	keys       map[glfw.Key]bool
	buttons    map[glfw.MouseButton]bool
	mouse      [2]float64
	visible    bool
	recentered int
}

func newFakeInput() *fakeInput {
	return &fakeInput{keys: map[glfw.Key]bool{}, buttons: map[glfw.MouseButton]bool{}, visible: true}
}

func (f *fakeInput) IsKeyDown(key glfw.Key) bool                    { return f.keys[key] }
func (f *fakeInput) IsMouseButtonDown(button glfw.MouseButton) bool { return f.buttons[button] }
func (f *fakeInput) GetMousePosition() [2]float64                   { return f.mouse }
func (f *fakeInput) SetCursorVisible(visible bool)                  { f.visible = visible }

func (f *fakeInput) SetCursorPosition(x, y float64) {
	f.mouse = [2]float64{x, y}
	f.recentered++
}

func testCamera() *Camera {
	cfg := config.DefaultConfig().Camera
	cfg.Position = [3]float32{0, 0, 0}
	return NewCamera(cfg, 800, 600)
}

func TestCameraMovement(t *testing.T) {
	cam := testCamera()
	in := newFakeInput()

	in.keys[glfw.KeyW] = true
	cam.Inputs(in, 1)
	assert.InDelta(t, -cam.Speed, cam.Position.Z(), 1e-5)

	in.keys[glfw.KeyW] = false
	in.keys[glfw.KeySpace] = true
	in.keys[glfw.KeyLeftShift] = true
	cam.Inputs(in, 0.5)
	assert.InDelta(t, cam.FastSpeed*0.5, cam.Position.Y(), 1e-5)

	in.keys = map[glfw.Key]bool{glfw.KeyD: true}
	before := cam.Position.X()
	cam.Inputs(in, 1)
	assert.Greater(t, cam.Position.X(), before)
}

func TestCameraFirstClickRecentres(t *testing.T) {
	cam := testCamera()
	in := newFakeInput()
	in.mouse = [2]float64{10, 10}
	in.buttons[glfw.MouseButtonLeft] = true

	cam.Inputs(in, 0.016)
	assert.False(t, cam.FirstClick)
	assert.False(t, in.visible)
	// The first click warps to the centre before sampling, so the view holds
	assert.InDeltaSlice(t, []float32{0, 0, -1}, cam.Orientation[:], 1e-5)
	assert.Equal(t, [2]float64{400, 300}, in.mouse)

	in.buttons[glfw.MouseButtonLeft] = false
	cam.Inputs(in, 0.016)
	assert.True(t, cam.FirstClick)
	assert.True(t, in.visible)
}

func TestCameraLookYaw(t *testing.T) {
	cam := testCamera()
	cam.Look(0, 90)
	assert.InDeltaSlice(t, []float32{1, 0, 0}, cam.Orientation[:], 1e-4)
}

func TestCameraPitchLimit(t *testing.T) {
	cam := testCamera()
	for i := 0; i < 20; i++ {
		cam.Look(-10, 0)
	}
	up := mgl32.Vec3{0, 1, 0}
	angle := mgl32.RadToDeg(float32(angleBetween(cam.Orientation, up)))
	assert.GreaterOrEqual(t, angle, float32(90-maxPitch-0.01))
}

func TestCameraScrollClampsFov(t *testing.T) {
	cam := testCamera()
	cam.ProcessMouseScroll(100)
	assert.Equal(t, float32(config.MinFov), cam.Fov)
	cam.ProcessMouseScroll(-100)
	assert.Equal(t, float32(config.MaxFov), cam.Fov)
	cam.ProcessMouseScroll(4)
	assert.Equal(t, float32(config.MaxFov-4), cam.Fov)
}

func TestCameraAspect(t *testing.T) {
	cam := testCamera()
	assert.InDelta(t, 800.0/600.0, cam.Aspect(), 1e-6)
	cam.SetViewport(100, 0)
	assert.Equal(t, float32(1), cam.Aspect())
}
