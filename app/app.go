// Package app wires the registry, engine and terminal host into the builder
//
// App is a single actor: every registry mutation, engine call and frame
// runs on the goroutine that calls Run (or, in tests, HandleEvent and Step).
package app

import (
	"fmt"
	"log"
	"math"
	"math/rand/v2"
	"strings"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/engine"
	"github.com/lixenwraith/orrery/feed"
	"github.com/lixenwraith/orrery/frame"
	"github.com/lixenwraith/orrery/tui"
)

// Cues receives builder feedback sounds
type Cues interface {
	PlaySelect()
	PlayPlace()
	PlayRemove()
	PlayClear()
}

// Muter is implemented by cue players that can be silenced
type Muter interface {
	SetMuted(bool)
	Muted() bool
}

type silentCues struct{}

func (silentCues) PlaySelect() {}
func (silentCues) PlayPlace()  {}
func (silentCues) PlayRemove() {}
func (silentCues) PlayClear()  {}

// App is the orrery builder
type App struct {
	screen    tcell.Screen
	viewport  *tui.Viewport
	pointer   *tui.Pointer
	presenter *tui.Presenter
	loop      *frame.Loop
	engine    *engine.Engine
	registry  *body.Registry
	bindings  *BindingTable

	clock     frame.Clock
	rng       *rand.Rand
	cues      Cues
	publisher *feed.Publisher
	interval  time.Duration

	simulating bool
	speed      float64
	selected   string

	// Rename prompt; renameID is empty while closed
	renameID  string
	renameBuf []rune
}

// Option configures an App
type Option func(*App)

// WithClock replaces the wall clock, used by tests
func WithClock(c frame.Clock) Option {
	return func(a *App) { a.clock = c }
}

// WithRand sets the source for random presets and the starfield
func WithRand(rng *rand.Rand) Option {
	return func(a *App) { a.rng = rng }
}

// WithRegistry replaces the body registry
func WithRegistry(r *body.Registry) Option {
	return func(a *App) { a.registry = r }
}

// WithCues enables audio feedback
func WithCues(c Cues) Option {
	return func(a *App) {
		if c != nil {
			a.cues = c
		}
	}
}

// WithPublisher enables the live share feed
func WithPublisher(p *feed.Publisher) Option {
	return func(a *App) { a.publisher = p }
}

// New builds an app on an initialized screen
func New(screen tcell.Screen, cfg config.Config, opts ...Option) (*App, error) {
	theme := engine.DefaultTheme()
	for k, v := range cfg.Theme {
		if err := theme.Override(k, v); err != nil {
			return nil, fmt.Errorf("apply theme: %w", err)
		}
	}

	a := &App{
		screen:   screen,
		bindings: DefaultBindings(),
		cues:     silentCues{},
		interval: cfg.FrameInterval(),
		speed:    min(max(cfg.Simulation.Speed, constants.SpeedMin), constants.SpeedMax),
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.clock == nil {
		a.clock = frame.SystemClock{}
	}
	if a.registry == nil {
		a.registry = body.NewRegistry()
	}
	if a.rng == nil {
		seed := cfg.Simulation.Seed
		if seed == 0 {
			seed = uint64(a.clock.Now().UnixNano())
		}
		a.rng = rand.New(rand.NewPCG(seed, seed>>1|1))
	}

	a.viewport = tui.NewViewport(cfg.Display.CellSize)
	a.pointer = tui.NewPointer(a.viewport)
	a.presenter = tui.NewPresenter(screen, a.viewport)
	a.presenter.SetThreshold(cfg.Display.DotThreshold)
	a.loop = frame.NewLoop(a.clock)
	a.engine = engine.New(a.loop, a.viewport, a, a, a.presenter,
		engine.WithTheme(theme),
		engine.WithRand(a.rng),
	)
	return a, nil
}

// Bodies implements engine.Source
func (a *App) Bodies() []body.Body { return a.registry.Snapshot() }

// Simulating implements engine.Source
func (a *App) Simulating() bool { return a.simulating }

// Speed implements engine.Source
func (a *App) Speed() float64 { return a.speed }

// BodySelected implements engine.Sink
func (a *App) BodySelected(b body.Body) {
	a.selected = b.ID
	a.cues.PlaySelect()
}

// RequestUpdate implements engine.Sink
func (a *App) RequestUpdate(id string, p body.Patch) {
	a.registry.Update(id, p)
}

// Registry exposes the body registry
func (a *App) Registry() *body.Registry { return a.registry }

// Engine exposes the orbit engine
func (a *App) Engine() *engine.Engine { return a.engine }

// Selected returns the selected body, if any
func (a *App) Selected() (body.Body, bool) {
	if a.selected == "" {
		return body.Body{}, false
	}
	b, ok := a.registry.Get(a.selected)
	if !ok {
		a.selected = ""
	}
	return b, ok
}

// Start sizes the viewport from the screen and mounts the engine
func (a *App) Start() {
	cols, rows := a.screen.Size()
	a.viewport.SetScreenSize(cols, rows)
	a.engine.Mount()
}

// Stop unmounts the engine
func (a *App) Stop() {
	a.engine.Unmount()
	a.presenter.Close()
}

// Run processes events and frames until quit or the event channel closes
func (a *App) Run(events <-chan tcell.Event) error {
	a.Start()
	defer a.Stop()

	ticker := time.NewTicker(a.interval)
	defer ticker.Stop()

	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			if !a.HandleEvent(ev) {
				return nil
			}
		case <-ticker.C:
			a.Step(a.clock.Now())
		}
	}
}

// Step refreshes the header, runs one frame and publishes to the feed
func (a *App) Step(now time.Time) {
	sel, ok := a.Selected()
	muted := false
	if m, isMuter := a.cues.(Muter); isMuter {
		muted = m.Muted()
	}
	right := headerRight(sel, ok, muted)
	if a.renameID != "" {
		right = renamePrompt(string(a.renameBuf))
	}
	a.presenter.SetHeader(headerLeft(a.registry.Len(), a.simulating, a.speed), right)

	a.loop.RunFrame(now)

	if a.publisher != nil {
		a.publisher.Maybe(now, a.registry.Version(), a.registry.Snapshot, a.simulating, a.speed)
	}
}

// HandleEvent dispatches one terminal event; returns false to quit
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		cols, rows := ev.Size()
		a.viewport.SetScreenSize(cols, rows)
		a.engine.ContainerResized()
		a.screen.Sync()
		return true
	case *tcell.EventKey:
		if a.renameID != "" && ev.Key() != tcell.KeyCtrlC {
			a.editName(ev)
			return true
		}
		b, ok := a.bindings.Lookup(ev)
		if !ok {
			return true
		}
		return a.apply(b)
	}

	if pe, ok := a.pointer.Translate(ev); ok {
		a.dispatchPointer(pe)
	}
	return true
}

func (a *App) dispatchPointer(pe tui.PointerEvent) {
	switch pe.Kind {
	case tui.PointerDown:
		a.engine.PointerDown(pe.X, pe.Y)
	case tui.PointerMove:
		a.engine.PointerMove(pe.X, pe.Y)
	case tui.PointerUp:
		a.engine.PointerUp()
	case tui.PointerLeave:
		a.engine.PointerLeave()
	}
}

func (a *App) apply(b Binding) bool {
	switch b.Action {
	case ActionQuit:
		return false
	case ActionToggleSimulation:
		a.simulating = !a.simulating
		a.engine.Sync()
	case ActionSpeedUp:
		a.speed = step(a.speed, constants.SpeedStep, constants.SpeedMin, constants.SpeedMax)
	case ActionSpeedDown:
		a.speed = step(a.speed, -constants.SpeedStep, constants.SpeedMin, constants.SpeedMax)
	case ActionAddPreset:
		if p, ok := catalog.At(b.Preset); ok {
			a.add(p)
		}
	case ActionAddRandom:
		p, _ := catalog.At(a.rng.IntN(catalog.Len()))
		a.add(p)
	case ActionNextSelection:
		a.nextSelection()
	case ActionCloseSelection:
		a.selected = ""
	case ActionDeleteSelected:
		if sel, ok := a.Selected(); ok {
			a.registry.Remove(sel.ID)
			a.selected = ""
			a.cues.PlayRemove()
		}
	case ActionClearSystem:
		a.registry.Clear()
		a.selected = ""
		a.simulating = false
		a.engine.Sync()
		a.cues.PlayClear()
	case ActionSizeDown, ActionSizeUp:
		a.customize(func(sel body.Body) body.Patch {
			d := float64(constants.SizeStep)
			if b.Action == ActionSizeDown {
				d = -d
			}
			return body.Patch{Radius: body.Ptr(step(sel.Radius, d, constants.SizeMin, constants.SizeMax))}
		})
	case ActionOrbitSpeedDown, ActionOrbitSpeedUp:
		a.customize(func(sel body.Body) body.Patch {
			d := constants.AngularSpeedStep
			if b.Action == ActionOrbitSpeedDown {
				d = -d
			}
			return body.Patch{AngularSpeed: body.Ptr(step(sel.AngularSpeed, d, constants.AngularSpeedMin, constants.AngularSpeedMax))}
		})
	case ActionMassDown, ActionMassUp:
		a.customize(func(sel body.Body) body.Patch {
			d := constants.MassStep
			if b.Action == ActionMassDown {
				d = -d
			}
			return body.Patch{Mass: body.Ptr(step(sel.Mass, d, constants.MassMin, constants.MassMax))}
		})
	case ActionNextColor:
		a.customize(func(sel body.Body) body.Patch {
			return body.Patch{Color: body.Ptr(catalog.NextColor(sel.Color))}
		})
	case ActionToggleRings:
		a.customize(func(sel body.Body) body.Patch {
			return body.Patch{HasRings: body.Ptr(!sel.HasRings)}
		})
	case ActionRename:
		if sel, ok := a.Selected(); ok {
			a.renameID = sel.ID
			a.renameBuf = []rune(sel.Name)
		}
	case ActionToggleMute:
		if m, ok := a.cues.(Muter); ok {
			m.SetMuted(!m.Muted())
		}
	}
	return true
}

func (a *App) add(p catalog.Preset) {
	b := a.registry.Add(catalog.Place(p, a.rng))
	log.Printf("app: added %s (%s) at r=%.0f", b.Name, b.ID, b.OrbitRadius)
	a.cues.PlayPlace()
}

func (a *App) nextSelection() {
	ids := a.registry.IDs()
	if len(ids) == 0 {
		return
	}
	next := ids[0]
	for i, id := range ids {
		if id == a.selected {
			next = ids[(i+1)%len(ids)]
			break
		}
	}
	a.selected = next
	a.cues.PlaySelect()
}

// customize applies a patch derived from the selected body
func (a *App) customize(f func(body.Body) body.Patch) {
	sel, ok := a.Selected()
	if !ok {
		return
	}
	a.registry.Update(sel.ID, f(sel))
}

// editName feeds one key to the open rename prompt
// Enter commits a non-blank name to the body the prompt was opened on
func (a *App) editName(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyEnter:
		name := strings.TrimSpace(string(a.renameBuf))
		if name != "" {
			if a.registry.Update(a.renameID, body.Patch{Name: body.Ptr(name)}) {
				log.Printf("app: renamed %s to %q", a.renameID, name)
			}
		}
		a.closeRename()
	case tcell.KeyEscape:
		a.closeRename()
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if n := len(a.renameBuf); n > 0 {
			a.renameBuf = a.renameBuf[:n-1]
		}
	case tcell.KeyRune:
		r := ev.Rune()
		if unicode.IsPrint(r) && len(a.renameBuf) < constants.NameMaxLen {
			a.renameBuf = append(a.renameBuf, r)
		}
	}
}

func (a *App) closeRename() {
	a.renameID = ""
	a.renameBuf = nil
}

// step adds d to v, clamps to [lo, hi] and drops float noise past 4 decimals
func step(v, d, lo, hi float64) float64 {
	v = math.Round((v+d)*1e4) / 1e4
	return min(max(v, lo), hi)
}
