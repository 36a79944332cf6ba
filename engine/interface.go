package engine

import (
	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/canvas"
)

// Container is the host region the surface is shown in
type Container interface {
	// Bounds returns the top-left corner and logical size; ok is false while detached
	Bounds() (x, y, width, height float64, ok bool)

	// ScaleFactor returns device pixels per logical pixel
	ScaleFactor() float64
}

// Source supplies the state the engine draws and animates
type Source interface {
	Bodies() []body.Body
	Simulating() bool
	Speed() float64
}

// Sink receives the engine's outputs
type Sink interface {
	BodySelected(b body.Body)
	RequestUpdate(id string, p body.Patch)
}

// Presenter pushes a finished surface to the display
type Presenter interface {
	Present(s *canvas.Surface) error
}
