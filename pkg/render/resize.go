package render

import (
	"fmt"

	"glsandbox/internal/logger"
)

// DisplaySize is the pixel area the final image is shown in
type DisplaySize struct {
	Width  int
	Height int
}

// Empty reports whether the size has no area
func (s DisplaySize) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

func (s DisplaySize) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// ResizeState is the coordinator state
type ResizeState int

const (
	Stable ResizeState = iota
	Resizing
)

func (s ResizeState) String() string {
	if s == Resizing {
		return "resizing"
	}
	return "stable"
}

// ResizeOutcome is the result of a size change request
type ResizeOutcome int

const (
	// ResizeUnchanged means the size matched and nothing happened
	ResizeUnchanged ResizeOutcome = iota
	// ResizeApplied means every target was reallocated at the new size
	ResizeApplied
	// ResizeSkipped means the new area was empty and the frame must be skipped
	ResizeSkipped
)

func (o ResizeOutcome) String() string {
	switch o {
	case ResizeApplied:
		return "applied"
	case ResizeSkipped:
		return "skipped"
	default:
		return "unchanged"
	}
}

// ResizeCoordinator keeps a set of render targets sized to the display area
type ResizeCoordinator struct {
	binder  *Binder
	targets []*RenderTarget
	size    DisplaySize
	state   ResizeState
	log     *logger.Logger
}

// NewResizeCoordinator manages targets, which must all be allocated at size
func NewResizeCoordinator(b *Binder, size DisplaySize, log *logger.Logger, targets ...*RenderTarget) *ResizeCoordinator {
	return &ResizeCoordinator{
		binder:  b,
		targets: targets,
		size:    size,
		state:   Stable,
		log:     log,
	}
}

// Size returns the last applied display size
func (c *ResizeCoordinator) Size() DisplaySize { return c.size }

// State returns the coordinator state
func (c *ResizeCoordinator) State() ResizeState { return c.state }

// Targets returns the managed render targets
func (c *ResizeCoordinator) Targets() []*RenderTarget { return c.targets }

// Request handles a display size notification
func (c *ResizeCoordinator) Request(size DisplaySize) (ResizeOutcome, error) {
	if size == c.size {
		return ResizeUnchanged, nil
	}
	if size.Empty() {
		return ResizeSkipped, nil
	}

	c.state = Resizing
	c.log.Tracef("Resizing window to %s", size)

	c.binder.Device().Viewport(size.Width, size.Height)
	for _, t := range c.targets {
		if _, err := t.Resize(c.binder, size.Width, size.Height); err != nil {
			return ResizeApplied, fmt.Errorf("resize to %s: %w", size, err)
		}
	}

	c.size = size
	c.state = Stable
	return ResizeApplied, nil
}
