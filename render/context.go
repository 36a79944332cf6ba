package render

import (
	"time"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/vmath"
)

// Context provides frame state for layers, passed by value
type Context struct {
	// Frame timestamp from the frame loop
	Now time.Time

	// Logical viewport size
	Width  float64
	Height float64

	// System origin in logical coordinates
	CenterX float64
	CenterY float64

	// Snapshot of the bodies for this frame; layers must not mutate it
	Bodies []body.Body

	Simulating bool
}

// Center returns the system origin
func (c Context) Center() (x, y float64) {
	return c.CenterX, c.CenterY
}

// InView reports whether the logical point lies in the viewport grown by margin
func (c Context) InView(x, y, margin float64) bool {
	return vmath.InBounds(vmath.Vec2{X: x, Y: y}, -margin, -margin, c.Width+margin, c.Height+margin)
}
