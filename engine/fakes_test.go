package engine

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/canvas"
	"github.com/lixenwraith/orrery/frame"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type fakeContainer struct {
	x, y, w, h float64
	scale      float64
	detached   bool
}

func (c *fakeContainer) Bounds() (float64, float64, float64, float64, bool) {
	return c.x, c.y, c.w, c.h, !c.detached
}

func (c *fakeContainer) ScaleFactor() float64 { return c.scale }

// world is the Source and Sink, backed by a real registry
type world struct {
	reg        *body.Registry
	simulating bool
	speed      float64
	selected   []string
	updates    int
}

func newWorld() *world {
	n := 0
	return &world{
		reg: body.NewRegistry(body.WithIDFunc(func() string {
			n++
			return fmt.Sprintf("b%d", n)
		})),
		speed: 1,
	}
}

func (w *world) Bodies() []body.Body { return w.reg.Snapshot() }
func (w *world) Simulating() bool    { return w.simulating }
func (w *world) Speed() float64      { return w.speed }

func (w *world) BodySelected(b body.Body) { w.selected = append(w.selected, b.ID) }

func (w *world) RequestUpdate(id string, p body.Patch) {
	w.updates++
	w.reg.Update(id, p)
}

func (w *world) add(name string, radius, orbit, angle, angularSpeed float64) body.Body {
	return w.reg.Add(body.Template{
		Name:         name,
		Kind:         body.KindRocky,
		Radius:       radius,
		Color:        "#4A90E2",
		OrbitRadius:  orbit,
		Angle:        angle,
		AngularSpeed: angularSpeed,
		Mass:         1,
	})
}

// capture records a copy of every presented frame
type capture struct {
	frames []snapshot
	err    error
}

type snapshot struct {
	width, height int
	pix           []canvas.Pixel
	labels        []canvas.Label
}

func (c *capture) Present(s *canvas.Surface) error {
	if c.err != nil {
		return c.err
	}
	w, h := s.Size()
	snap := snapshot{width: w, height: h, pix: make([]canvas.Pixel, 0, w*h)}
	for y := range h {
		for x := range w {
			snap.pix = append(snap.pix, s.At(x, y))
		}
	}
	snap.labels = append(snap.labels, s.Labels()...)
	c.frames = append(c.frames, snap)
	return nil
}

func (c *capture) last() snapshot {
	return c.frames[len(c.frames)-1]
}

var errPresent = errors.New("display gone")

type harness struct {
	clock     *frame.MockClock
	loop      *frame.Loop
	container *fakeContainer
	world     *world
	out       *capture
	engine    *Engine
}

func newHarness(w, h, scale float64) *harness {
	clock := frame.NewMockClock(epoch)
	hs := &harness{
		clock:     clock,
		loop:      frame.NewLoop(clock),
		container: &fakeContainer{w: w, h: h, scale: scale},
		world:     newWorld(),
		out:       &capture{},
	}
	hs.engine = New(hs.loop, hs.container, hs.world, hs.world, hs.out,
		WithRand(rand.New(rand.NewPCG(1, 2))))
	return hs
}

// step advances the clock by d and runs one frame
func (h *harness) step(d time.Duration) {
	h.loop.RunFrame(h.clock.Advance(d))
}

// settle mounts and runs past the resize debounce
func (h *harness) settle() {
	h.engine.Mount()
	h.step(60 * time.Millisecond)
}
