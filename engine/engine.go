// Package engine draws the orbit scene and animates it
//
// The Engine owns no body state. Each frame it reads a snapshot from its
// Source, draws it through the render pipeline and hands the surface to its
// Presenter. While the source reports a running simulation a second frame
// loop emits one angle update per body through the Sink, throttled to at most
// one batch per kinematic interval. Pointer input becomes selection and
// position updates. All methods must be called from the goroutine that drives
// the frame loop.
package engine

import (
	"log"
	"math"
	"math/rand/v2"
	"time"

	"golang.org/x/time/rate"

	"github.com/lixenwraith/orrery/canvas"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/frame"
	"github.com/lixenwraith/orrery/render"
)

// Stats counts engine activity since creation
type Stats struct {
	Frames  uint64 // presented
	Skipped uint64 // no container or surface
	Failed  uint64 // presenter errors
	Ticks   uint64 // kinematic batches emitted
}

// Engine is the orbit renderer and interaction engine
type Engine struct {
	loop      *frame.Loop
	container Container
	source    Source
	sink      Sink
	presenter Presenter

	surface  *canvas.Surface
	pipeline *render.Orchestrator
	theme    Theme
	sun      canvas.Gradient
	paints   map[string]canvas.Paint

	rng   *rand.Rand
	stars []star

	resize       *frame.Debouncer
	renderHandle frame.Handle
	tickHandle   frame.Handle
	tickInterval time.Duration
	limiter      *rate.Limiter

	dragging string
	mounted  bool
	stats    Stats
}

// Option configures an Engine
type Option func(*Engine)

// WithTheme replaces the default scene paints
func WithTheme(t Theme) Option {
	return func(e *Engine) {
		e.theme = t
	}
}

// WithRand sets the random source used for the starfield
func WithRand(rng *rand.Rand) Option {
	return func(e *Engine) {
		e.rng = rng
	}
}

// WithTickInterval sets the minimum spacing of kinematic batches
func WithTickInterval(d time.Duration) Option {
	return func(e *Engine) {
		if d > 0 {
			e.tickInterval = d
		}
	}
}

// New creates an unmounted engine
func New(loop *frame.Loop, container Container, source Source, sink Sink, presenter Presenter, opts ...Option) *Engine {
	e := &Engine{
		loop:         loop,
		container:    container,
		source:       source,
		sink:         sink,
		presenter:    presenter,
		surface:      canvas.New(),
		pipeline:     render.NewOrchestrator(),
		theme:        DefaultTheme(),
		paints:       make(map[string]canvas.Paint),
		tickInterval: constants.KinematicTickInterval,
	}
	for _, opt := range opts {
		opt(e)
	}
	if e.rng == nil {
		e.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	e.sun = e.theme.SunGradient(constants.SunMidStop)
	e.resize = frame.NewDebouncer(loop, constants.ResizeDebounce, e.applyResize)

	e.pipeline.Register(starfieldLayer{e}, render.PriorityBackground)
	e.pipeline.Register(sunLayer{e}, render.PriorityStar)
	e.pipeline.Register(orbitsLayer{e}, render.PriorityOrbits)
	e.pipeline.Register(bodiesLayer{e}, render.PriorityBodies)
	e.pipeline.Register(labelsLayer{e}, render.PriorityLabels)

	return e
}

// Mount generates the starfield, schedules the initial resize and starts the render loop
func (e *Engine) Mount() {
	if e.mounted {
		return
	}
	e.mounted = true
	e.stars = newStarfield(e.rng, constants.StarCount)
	e.resize.Trigger()
	e.renderHandle = e.loop.RequestFrame(e.renderFrame)
	e.Sync()
}

// Unmount cancels every pending frame and timer and drops any drag
func (e *Engine) Unmount() {
	if !e.mounted {
		return
	}
	e.mounted = false
	e.resize.Cancel()
	e.loop.CancelFrame(e.renderHandle)
	e.renderHandle = 0
	e.stopTicking()
	e.dragging = ""
}

// Mounted reports whether the render loop is running
func (e *Engine) Mounted() bool {
	return e.mounted
}

// ContainerResized schedules a debounced surface resize
func (e *Engine) ContainerResized() {
	if e.mounted {
		e.resize.Trigger()
	}
}

// Sync starts or stops the kinematic loop to match the source's simulation flag
func (e *Engine) Sync() {
	if e.mounted && e.source.Simulating() {
		if e.tickHandle == 0 {
			e.limiter = rate.NewLimiter(rate.Every(e.tickInterval), 1)
			e.tickHandle = e.loop.RequestFrame(e.tick)
		}
		return
	}
	e.stopTicking()
}

// Ticking reports whether the kinematic loop is active
func (e *Engine) Ticking() bool {
	return e.tickHandle != 0
}

// Surface returns the drawable surface
func (e *Engine) Surface() *canvas.Surface {
	return e.surface
}

// Stats returns activity counters
func (e *Engine) Stats() Stats {
	return e.stats
}

func (e *Engine) stopTicking() {
	e.loop.CancelFrame(e.tickHandle)
	e.tickHandle = 0
}

// applyResize sizes the backing raster to floor(size x scale) and re-applies the scale
func (e *Engine) applyResize() {
	_, _, w, h, ok := e.container.Bounds()
	if !ok {
		return
	}
	k := e.container.ScaleFactor()
	if k <= 0 {
		k = 1
	}
	e.surface.Resize(int(math.Floor(w*k)), int(math.Floor(h*k)))
	e.surface.Scale(k)
	e.surface.SetDisplaySize(w, h)
}

func (e *Engine) renderFrame(now time.Time) {
	e.renderHandle = e.loop.RequestFrame(e.renderFrame)

	_, _, w, h, ok := e.container.Bounds()
	if !ok || e.surface.Empty() {
		e.stats.Skipped++
		return
	}

	ctx := render.Context{
		Now:        now,
		Width:      w,
		Height:     h,
		CenterX:    w / 2,
		CenterY:    h / 2,
		Bodies:     e.source.Bodies(),
		Simulating: e.source.Simulating(),
	}
	e.pipeline.Frame(ctx, e.surface)

	if err := e.presenter.Present(e.surface); err != nil {
		e.stats.Failed++
		log.Printf("engine: present: %v", err)
		return
	}
	e.stats.Frames++
}

func (e *Engine) tick(now time.Time) {
	if !e.source.Simulating() {
		e.tickHandle = 0
		return
	}
	e.tickHandle = e.loop.RequestFrame(e.tick)

	if !e.limiter.AllowN(now, 1) {
		return
	}
	for _, u := range Advance(e.source.Bodies(), e.source.Speed()) {
		e.sink.RequestUpdate(u.ID, u.Patch)
	}
	e.stats.Ticks++
}
