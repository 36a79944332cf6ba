// Package render runs the layered frame pipeline over a canvas surface
package render

import "github.com/lixenwraith/orrery/canvas"

type layerEntry struct {
	layer    Layer
	priority Priority
	index    int // registration order for stable sort
}

// Orchestrator coordinates the render pipeline
type Orchestrator struct {
	layers   []layerEntry
	regCount int
}

// NewOrchestrator creates an empty pipeline
func NewOrchestrator() *Orchestrator {
	return &Orchestrator{
		layers: make([]layerEntry, 0, 8),
	}
}

// Register adds a layer at the specified priority. Maintains sorted order via insertion sort
func (o *Orchestrator) Register(l Layer, priority Priority) {
	entry := layerEntry{
		layer:    l,
		priority: priority,
		index:    o.regCount,
	}
	o.regCount++

	// Insertion sort: find position and insert
	pos := len(o.layers)
	for i, e := range o.layers {
		if priority < e.priority || (priority == e.priority && entry.index < e.index) {
			pos = i
			break
		}
	}

	o.layers = append(o.layers, layerEntry{})
	copy(o.layers[pos+1:], o.layers[pos:])
	o.layers[pos] = entry
}

// Len returns the number of registered layers
func (o *Orchestrator) Len() int {
	return len(o.layers)
}

// Frame executes the pipeline: clear the full logical surface, then draw every visible layer
func (o *Orchestrator) Frame(ctx Context, s *canvas.Surface) {
	s.ClearRect(0, 0, ctx.Width, ctx.Height)

	for _, entry := range o.layers {
		// Skip if layer implements VisibilityToggle and is not visible
		if vt, ok := entry.layer.(VisibilityToggle); ok && !vt.IsVisible() {
			continue
		}
		entry.layer.Draw(ctx, s)
	}
}
