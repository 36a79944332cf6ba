package render

import (
	"testing"

	"github.com/lixenwraith/orrery/canvas"
)

type recordingLayer struct {
	name    string
	log     *[]string
	visible bool
}

func (r *recordingLayer) Draw(Context, *canvas.Surface) { *r.log = append(*r.log, r.name) }
func (r *recordingLayer) IsVisible() bool               { return r.visible }

func TestOrchestratorPriorityOrder(t *testing.T) {
	var log []string
	o := NewOrchestrator()
	o.Register(&recordingLayer{"bodies", &log, true}, PriorityBodies)
	o.Register(&recordingLayer{"background", &log, true}, PriorityBackground)
	o.Register(&recordingLayer{"orbits-a", &log, true}, PriorityOrbits)
	o.Register(&recordingLayer{"orbits-b", &log, true}, PriorityOrbits)
	o.Register(&recordingLayer{"star", &log, true}, PriorityStar)

	s := canvas.New()
	s.Resize(10, 10)
	o.Frame(Context{Width: 10, Height: 10}, s)

	want := []string{"background", "star", "orbits-a", "orbits-b", "bodies"}
	if len(log) != len(want) {
		t.Fatalf("draw order = %v, want %v", log, want)
	}
	for i := range want {
		if log[i] != want[i] {
			t.Fatalf("draw order = %v, want %v", log, want)
		}
	}
}

func TestOrchestratorSkipsHiddenLayers(t *testing.T) {
	var log []string
	o := NewOrchestrator()
	o.Register(&recordingLayer{"shown", &log, true}, PriorityBodies)
	o.Register(&recordingLayer{"hidden", &log, false}, PriorityLabels)

	s := canvas.New()
	s.Resize(4, 4)
	o.Frame(Context{Width: 4, Height: 4}, s)

	if len(log) != 1 || log[0] != "shown" {
		t.Errorf("drawn = %v", log)
	}
}

func TestOrchestratorClearsBeforeDrawing(t *testing.T) {
	o := NewOrchestrator()
	s := canvas.New()
	s.Resize(4, 4)
	s.FillRect(0, 0, 4, 4, canvas.White)
	s.FillText("stale", 1, 1, canvas.White, canvas.AlignLeft)

	o.Register(LayerFunc(func(ctx Context, s *canvas.Surface) {
		s.FillRect(0, 0, 1, 1, canvas.White)
	}), PriorityBackground)
	o.Frame(Context{Width: 4, Height: 4}, s)

	if s.At(3, 3).A != 0 {
		t.Error("previous frame content survived")
	}
	if s.At(0, 0).A != 1 {
		t.Error("layer output missing")
	}
	if len(s.Labels()) != 0 {
		t.Error("previous frame labels survived")
	}
}

func TestContextInView(t *testing.T) {
	ctx := Context{Width: 100, Height: 50}
	tests := []struct {
		x, y float64
		want bool
	}{
		{50, 25, true},
		{-49, 25, true},
		{-51, 25, false},
		{150, 100, true},
		{151, 0, false},
	}
	for _, tt := range tests {
		if got := ctx.InView(tt.x, tt.y, 50); got != tt.want {
			t.Errorf("InView(%v, %v) = %v, want %v", tt.x, tt.y, got, tt.want)
		}
	}
}
