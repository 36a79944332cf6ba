package render

import "github.com/lixenwraith/orrery/canvas"

// Layer is one stage of the frame pipeline
type Layer interface {
	Draw(ctx Context, s *canvas.Surface)
}

// VisibilityToggle is optionally implemented for runtime enable/disable
type VisibilityToggle interface {
	IsVisible() bool
}

// LayerFunc adapts a function to Layer
type LayerFunc func(ctx Context, s *canvas.Surface)

// Draw calls f
func (f LayerFunc) Draw(ctx Context, s *canvas.Surface) {
	f(ctx, s)
}
