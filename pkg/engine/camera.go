package engine

import (
	"math"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"glsandbox/internal/util"
	"glsandbox/pkg/config"
)

// maxPitch keeps the camera from flipping over the up vector
const maxPitch = 85.0

// Camera is a free-flying perspective camera
type Camera struct {
	Position    mgl32.Vec3
	Orientation mgl32.Vec3
	Up          mgl32.Vec3

	Fov       float32
	NearPlane float32
	FarPlane  float32

	Speed       float32
	FastSpeed   float32
	Sensitivity float32

	// FirstClick is true until the cursor has been recentred for a drag
	FirstClick bool

	width  int
	height int
}

// NewCamera creates a camera looking down -Z from the configured position
func NewCamera(cfg config.CameraConfig, width, height int) *Camera {
	return &Camera{
		Position:    mgl32.Vec3{cfg.Position[0], cfg.Position[1], cfg.Position[2]},
		Orientation: mgl32.Vec3{0, 0, -1},
		Up:          mgl32.Vec3{0, 1, 0},
		Fov:         cfg.Fov,
		NearPlane:   cfg.NearPlane,
		FarPlane:    cfg.FarPlane,
		Speed:       cfg.Speed,
		FastSpeed:   cfg.FastSpeed,
		Sensitivity: cfg.Sensitivity,
		FirstClick:  true,
		width:       width,
		height:      height,
	}
}

// SetViewport updates the area mouse look is measured against
func (c *Camera) SetViewport(width, height int) {
	c.width = width
	c.height = height
}

// Aspect returns the viewport aspect ratio
func (c *Camera) Aspect() float32 {
	if c.height == 0 {
		return 1
	}
	return float32(c.width) / float32(c.height)
}

// View returns the view matrix
func (c *Camera) View() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Orientation), c.Up)
}

// Matrix returns projection * view for the given lens
func (c *Camera) Matrix(fov, aspect, near, far float32) mgl32.Mat4 {
	projection := mgl32.Perspective(mgl32.DegToRad(fov), aspect, near, far)
	return projection.Mul4(c.View())
}

// ViewProjection returns Matrix with the camera's own lens and viewport aspect
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.Matrix(c.Fov, c.Aspect(), c.NearPlane, c.FarPlane)
}

func (c *Camera) right() mgl32.Vec3 {
	return c.Orientation.Cross(c.Up).Normalize()
}

// Inputs moves and rotates the camera from keyboard and mouse state
func (c *Camera) Inputs(in InputSource, dt float64) {
	speed := c.Speed
	if in.IsKeyDown(glfw.KeyLeftShift) {
		speed = c.FastSpeed
	}
	step := speed * float32(dt)

	if in.IsKeyDown(glfw.KeyW) {
		c.Position = c.Position.Add(c.Orientation.Mul(step))
	}
	if in.IsKeyDown(glfw.KeyS) {
		c.Position = c.Position.Sub(c.Orientation.Mul(step))
	}
	if in.IsKeyDown(glfw.KeyA) {
		c.Position = c.Position.Sub(c.right().Mul(step))
	}
	if in.IsKeyDown(glfw.KeyD) {
		c.Position = c.Position.Add(c.right().Mul(step))
	}
	if in.IsKeyDown(glfw.KeySpace) {
		c.Position = c.Position.Add(c.Up.Mul(step))
	}
	if in.IsKeyDown(glfw.KeyLeftControl) {
		c.Position = c.Position.Sub(c.Up.Mul(step))
	}

	if !in.IsMouseButtonDown(glfw.MouseButtonLeft) {
		in.SetCursorVisible(true)
		c.FirstClick = true
		return
	}

	in.SetCursorVisible(false)
	centerX, centerY := float64(c.width)/2, float64(c.height)/2
	if c.FirstClick {
		in.SetCursorPosition(centerX, centerY)
		c.FirstClick = false
	}

	pos := in.GetMousePosition()
	rotX := c.Sensitivity * float32(pos[1]-centerY) / float32(c.height)
	rotY := c.Sensitivity * float32(pos[0]-centerX) / float32(c.width)
	c.Look(rotX, rotY)

	in.SetCursorPosition(centerX, centerY)
}

// Look pitches by rotX and yaws by rotY degrees. Pitch that would bring the
// view within 5 degrees of straight up or down is dropped.
func (c *Camera) Look(rotX, rotY float32) {
	pitched := mgl32.QuatRotate(mgl32.DegToRad(-rotX), c.right()).Rotate(c.Orientation)
	angle := angleBetween(pitched, c.Up) - math.Pi/2
	if math.Abs(angle) <= float64(mgl32.DegToRad(maxPitch)) {
		c.Orientation = pitched
	}

	c.Orientation = mgl32.QuatRotate(mgl32.DegToRad(-rotY), c.Up).Rotate(c.Orientation).Normalize()
}

// ProcessMouseScroll zooms by narrowing or widening the field of view
func (c *Camera) ProcessMouseScroll(yoffset float32) {
	c.Fov = util.Clamp(c.Fov-yoffset, config.MinFov, config.MaxFov)
}

func angleBetween(a, b mgl32.Vec3) float64 {
	cos := float64(a.Dot(b) / (a.Len() * b.Len()))
	return math.Acos(util.Clamp(cos, -1, 1))
}
