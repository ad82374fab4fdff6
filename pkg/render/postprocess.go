package render

// Program is a linked shader program able to receive integer uniforms
type Program interface {
	Use()
	SetInteger(name string, value int32)
}

// Drawable issues the draw calls for a piece of geometry
type Drawable interface {
	Draw()
}

// PostProcessPass samples a resolved colour texture through the effect
// shader and draws a full-screen quad into an output target.
type PostProcessPass struct {
	program Program
	quad    Drawable
}

// NewPostProcessPass creates a pass drawing quad with program
func NewPostProcessPass(program Program, quad Drawable) *PostProcessPass {
	return &PostProcessPass{program: program, quad: quad}
}

// Apply runs the pass. The output's previous binding is restored on return.
func (p *PostProcessPass) Apply(b *Binder, sel EffectSelection, input Texture, output *RenderTarget) {
	restore := output.Bind(b)
	defer restore()

	dev := b.Device()
	dev.BindTexture(0, input)

	p.program.Use()
	p.program.SetInteger("screenTexture", 0)
	for _, flag := range sel.Flags() {
		var v int32
		if flag.On {
			v = 1
		}
		p.program.SetInteger(flag.Uniform, v)
	}

	p.quad.Draw()
	dev.BindTexture(0, 0)
}
