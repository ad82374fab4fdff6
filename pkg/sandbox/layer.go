// Package sandbox is the demo scene: a floor and a model rendered off-screen,
// post-processed and shown in a GUI panel with effect toggles.
package sandbox

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/inkyblackness/imgui-go/v4"
	"github.com/pkg/errors"

	"glsandbox/internal/logger"
	"glsandbox/pkg/assets"
	"glsandbox/pkg/config"
	"glsandbox/pkg/engine"
	"glsandbox/pkg/render"
)

// LayerName identifies the sandbox in the layer stack
const LayerName = "SandboxLayer"

// planeVertices is the floor: position, normal, uv (uv repeats 25 times)
var planeVertices = []float32{
	25.0, -0.5, 25.0, 0.0, 1.0, 0.0, 25.0, 0.0,
	-25.0, -0.5, 25.0, 0.0, 1.0, 0.0, 0.0, 0.0,
	-25.0, -0.5, -25.0, 0.0, 1.0, 0.0, 0.0, 25.0,

	25.0, -0.5, 25.0, 0.0, 1.0, 0.0, 25.0, 0.0,
	-25.0, -0.5, -25.0, 0.0, 1.0, 0.0, 0.0, 25.0,
	25.0, -0.5, -25.0, 0.0, 1.0, 0.0, 25.0, 25.0,
}

// modelOffset lifts the model above the floor
var modelOffset = mgl32.Vec3{0, 3, 0}

// Layer renders the scene and its GUI panels
type Layer struct {
	app    *engine.Application
	cfg    *config.Config
	logger *logger.Logger

	resources  *assets.ResourceManager
	watcher    *assets.Watcher
	compositor *render.Compositor
	plane      *render.VertexBuffer
	quad       *render.VertexBuffer
	camera     *engine.Camera

	lighting *assets.Shader
	floor    *assets.Texture2D
	model    *assets.Model

	effects render.EffectSelection
	gate    frameGate
}

// NewLayer creates the sandbox. Resources are loaded on attach.
func NewLayer(app *engine.Application, cfg *config.Config, log *logger.Logger) *Layer {
	return &Layer{
		app:       app,
		cfg:       cfg,
		logger:    log,
		resources: assets.NewResourceManager(log.Named("assets")),
	}
}

func (l *Layer) Name() string { return LayerName }

// OnAttach loads the scene's assets and allocates the render targets
func (l *Layer) OnAttach() error {
	l.plane = render.NewVertexBuffer(planeVertices,
		render.Attrib{Location: assets.AttribPosition, Components: 3},
		render.Attrib{Location: assets.AttribNormal, Components: 3},
		render.Attrib{Location: assets.AttribUV, Components: 2})
	l.quad = render.NewScreenQuad()

	if err := l.resources.LoadManifest(l.cfg.Assets.Manifest); err != nil {
		return err
	}

	var post *assets.Shader
	var ok bool
	if l.lighting, ok = l.resources.Shader(config.ShaderLighting); !ok {
		return errors.Errorf("shader %q not in manifest", config.ShaderLighting)
	}
	if post, ok = l.resources.Shader(config.ShaderPostProc); !ok {
		return errors.Errorf("shader %q not in manifest", config.ShaderPostProc)
	}
	if l.floor, ok = l.resources.Texture(config.TextureFloor); !ok {
		return errors.Errorf("texture %q not in manifest", config.TextureFloor)
	}
	if l.model, ok = l.resources.Model(config.ModelBackpack); !ok {
		return errors.Errorf("model %q not in manifest", config.ModelBackpack)
	}

	width, height := l.app.Window().Size()
	compositor, err := render.NewCompositor(
		render.NewGLDevice(l.cfg.Render.ClearColor),
		render.CompositorConfig{Width: width, Height: height, Samples: l.cfg.Render.Samples},
		render.NewPostProcessPass(post, l.quad),
		l.logger.Named("render"),
	)
	if err != nil {
		return err
	}
	l.compositor = compositor

	l.camera = engine.NewCamera(l.cfg.Camera, width, height)
	l.effects = l.cfg.PostProcessing.Initial
	l.logger.Infof("Post processing: %s", l.effects)

	if l.cfg.Assets.HotReload {
		l.watcher, err = assets.NewWatcher(l.logger.Named("watch"), l.resources.ShaderFiles()...)
		if err != nil {
			return err
		}
		l.logger.Info("Shader hot reload enabled")
	}
	return nil
}

// OnUpdate renders the scene into the display texture
func (l *Layer) OnUpdate(dt float64) error {
	if l.watcher != nil {
		if changed := l.watcher.Drain(); len(changed) > 0 {
			l.resources.ReloadShaders(changed)
		}
	}

	if l.gate.skipped {
		return nil
	}

	size := l.compositor.Size()
	aspect := float32(size.Width) / float32(size.Height)
	projView := l.camera.Matrix(l.camera.Fov, aspect, l.camera.NearPlane, l.camera.FarPlane)

	l.lighting.Use()
	l.lighting.SetMatrix4("projView", projView)

	return l.compositor.Render(l.effects, l.drawScene)
}

func (l *Layer) drawScene() {
	if l.cfg.Render.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
		defer gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	l.lighting.Use()
	l.lighting.SetInteger("texture_diffuse1", 0)
	l.floor.Bind(0)
	l.lighting.SetMatrix4("model", mgl32.Ident4())
	l.plane.Draw()
	assets.UnbindTexture()

	l.lighting.SetMatrix4("model", mgl32.Translate3D(modelOffset.X(), modelOffset.Y(), modelOffset.Z()))
	l.model.Draw(l.lighting)
}

// OnGuiRender submits the image and options panels
func (l *Layer) OnGuiRender(dt float64) error {
	input := l.app.Input()

	imgui.PushStyleVarVec2(imgui.StyleVarWindowPadding, imgui.Vec2{})
	imgui.Begin("Generated Image")

	avail := imgui.ContentRegionAvail()
	outcome, err := l.compositor.Resize(int(avail.X), int(avail.Y))
	if err != nil {
		imgui.End()
		imgui.PopStyleVar()
		return err
	}
	if !l.gate.observe(outcome) {
		imgui.End()
		imgui.PopStyleVar()
		return nil
	}

	size := l.compositor.Size()
	if outcome == render.ResizeApplied {
		l.camera.SetViewport(size.Width, size.Height)
	}

	imgui.ImageV(imgui.TextureID(l.compositor.Texture()),
		imgui.Vec2{X: float32(size.Width), Y: float32(size.Height)},
		imgui.Vec2{X: 0, Y: 1}, imgui.Vec2{X: 1, Y: 0},
		imgui.Vec4{X: 1, Y: 1, Z: 1, W: 1}, imgui.Vec4{})
	imgui.PopStyleVar()

	if imgui.IsWindowFocused() {
		l.camera.Inputs(input, dt)
		if wheel := input.GetMouseWheelDelta(); wheel != 0 {
			l.camera.ProcessMouseScroll(float32(wheel))
			l.logger.Tracef("FoV is %g degrees", l.camera.Fov)
		}
	} else {
		input.SetCursorVisible(true)
		input.GetMouseWheelDelta()
		l.camera.FirstClick = true
	}

	imgui.End()

	l.optionsPanel(dt)
	return nil
}

func (l *Layer) optionsPanel(dt float64) {
	imgui.Begin("Options")
	defer imgui.End()

	imgui.Text(fmt.Sprintf("%s  %.2f ms", l.compositor.Size(), dt*1000))

	if !imgui.CollapsingHeader("Post Processing") {
		return
	}

	if imgui.TreeNode("Kernel Effects") {
		for _, k := range render.KernelEffects {
			on := l.effects.Kernel == k
			if imgui.Checkbox(k.Label(), &on) {
				l.effects.SetKernel(k, on)
				l.logger.Debugf("Post processing: %s", l.effects)
			}
		}
		imgui.TreePop()
	}

	if imgui.TreeNode("General Post Processing Effects") {
		for _, c := range render.ColorEffects {
			on := l.effects.Color == c
			if imgui.Checkbox(c.Label(), &on) {
				l.effects.SetColor(c, on)
				l.logger.Debugf("Post processing: %s", l.effects)
			}
		}
		imgui.TreePop()
	}
}

// OnDetach releases every GPU resource the layer owns
func (l *Layer) OnDetach() {
	if l.watcher != nil {
		if err := l.watcher.Close(); err != nil {
			l.logger.Warnf("Closing watcher: %v", err)
		}
	}
	l.resources.Clear()
	if l.plane != nil {
		l.plane.Destroy()
	}
	if l.quad != nil {
		l.quad.Destroy()
	}
	if l.compositor != nil {
		l.compositor.Destroy()
	}
}
