package sandbox

import "glsandbox/pkg/render"

// frameGate remembers whether the last resize request left the display
// texture unusable, in which case the frame's drawing is skipped.
type frameGate struct {
	skipped bool
}

// observe records a resize outcome and reports whether the frame may draw
func (g *frameGate) observe(outcome render.ResizeOutcome) bool {
	g.skipped = outcome == render.ResizeSkipped
	return !g.skipped
}
