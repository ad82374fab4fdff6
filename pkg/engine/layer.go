package engine

import "fmt"

// Layer is a unit of per-frame behaviour attached to the application.
// All methods run on the thread owning the graphics context.
type Layer interface {
	Name() string
	// OnAttach loads resources. An error aborts startup.
	OnAttach() error
	// OnUpdate renders the layer's content for the frame
	OnUpdate(dt float64) error
	// OnGuiRender submits GUI widgets; called between GUI frame begin and end
	OnGuiRender(dt float64) error
	// OnDetach releases resources
	OnDetach()
}

// LayerStack keeps layers in attach order
type LayerStack struct {
	layers []Layer
}

// Push attaches a layer and appends it to the stack
func (s *LayerStack) Push(layer Layer) error {
	for _, l := range s.layers {
		if l.Name() == layer.Name() {
			return fmt.Errorf("layer %q already attached", layer.Name())
		}
	}
	if err := layer.OnAttach(); err != nil {
		return fmt.Errorf("attach layer %q: %w", layer.Name(), err)
	}
	s.layers = append(s.layers, layer)
	return nil
}

// Pop detaches the named layer. It reports whether the layer was found.
func (s *LayerStack) Pop(name string) bool {
	for i, l := range s.layers {
		if l.Name() == name {
			l.OnDetach()
			s.layers = append(s.layers[:i], s.layers[i+1:]...)
			return true
		}
	}
	return false
}

// Layers returns the attached layers in order
func (s *LayerStack) Layers() []Layer {
	return s.layers
}

// Update calls OnUpdate on every layer, stopping at the first error
func (s *LayerStack) Update(dt float64) error {
	for _, l := range s.layers {
		if err := l.OnUpdate(dt); err != nil {
			return fmt.Errorf("layer %q update: %w", l.Name(), err)
		}
	}
	return nil
}

// GuiRender calls OnGuiRender on every layer, stopping at the first error
func (s *LayerStack) GuiRender(dt float64) error {
	for _, l := range s.layers {
		if err := l.OnGuiRender(dt); err != nil {
			return fmt.Errorf("layer %q gui: %w", l.Name(), err)
		}
	}
	return nil
}

// Clear detaches every layer, most recent first
func (s *LayerStack) Clear() {
	for i := len(s.layers) - 1; i >= 0; i-- {
		s.layers[i].OnDetach()
	}
	s.layers = nil
}
