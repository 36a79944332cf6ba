package engine

import (
	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/vmath"
)

// HitTest returns the first body in list order whose disc contains p
// Points exactly on the rim hit
func HitTest(bodies []body.Body, p vmath.Vec2) (body.Body, bool) {
	for i := range bodies {
		r := bodies[i].Radius
		if vmath.DistSq(bodies[i].Pos, p) <= r*r {
			return bodies[i], true
		}
	}
	return body.Body{}, false
}

// toSystem converts a pointer position to system coordinates
// (pointer - container top-left - container size/2)
func (e *Engine) toSystem(px, py float64) (vmath.Vec2, bool) {
	x, y, w, h, ok := e.container.Bounds()
	if !ok {
		return vmath.Vec2{}, false
	}
	return vmath.Vec2{X: px, Y: py}.Sub(vmath.Vec2{X: x + w/2, Y: y + h/2}), true
}

// PointerDown selects and starts dragging the body under the pointer
// Returns false when nothing was hit
func (e *Engine) PointerDown(px, py float64) bool {
	p, ok := e.toSystem(px, py)
	if !ok {
		return false
	}
	b, hit := HitTest(e.source.Bodies(), p)
	if !hit {
		return false
	}
	e.sink.BodySelected(b)
	e.dragging = b.ID
	return true
}

// PointerMove re-places the dragged body at the pointer; no-op when not dragging
func (e *Engine) PointerMove(px, py float64) {
	if e.dragging == "" {
		return
	}
	p, ok := e.toSystem(px, py)
	if !ok {
		return
	}
	e.sink.RequestUpdate(e.dragging, body.Patch{Placement: body.AtPosition(p)})
}

// PointerUp ends any drag
func (e *Engine) PointerUp() {
	e.dragging = ""
}

// PointerLeave ends any drag
func (e *Engine) PointerLeave() {
	e.dragging = ""
}

// Dragging returns the id of the body being dragged
func (e *Engine) Dragging() (string, bool) {
	return e.dragging, e.dragging != ""
}
