package app

import (
	"fmt"
	"math/rand/v2"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gorilla/websocket"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/catalog"
	"github.com/lixenwraith/orrery/config"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/feed"
	"github.com/lixenwraith/orrery/frame"
	"github.com/lixenwraith/orrery/tui"
)

var epoch = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

type cueLog struct {
	selects, places, removes, clears int
	muted                            bool
}

func (c *cueLog) PlaySelect()     { c.selects++ }
func (c *cueLog) PlayPlace()      { c.places++ }
func (c *cueLog) PlayRemove()     { c.removes++ }
func (c *cueLog) PlayClear()      { c.clears++ }
func (c *cueLog) SetMuted(m bool) { c.muted = m }
func (c *cueLog) Muted() bool     { return c.muted }

type harness struct {
	t      *testing.T
	app    *App
	screen tcell.SimulationScreen
	clock  *frame.MockClock
	cues   *cueLog
}

func newHarness(t *testing.T, cols, rows int, opts ...Option) *harness {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := tui.Setup(screen); err != nil {
		t.Fatalf("setup: %v", err)
	}
	screen.SetSize(cols, rows)
	t.Cleanup(screen.Fini)

	n := 0
	reg := body.NewRegistry(body.WithIDFunc(func() string {
		n++
		return fmt.Sprintf("b%d", n)
	}))
	h := &harness{
		t:      t,
		screen: screen,
		clock:  frame.NewMockClock(epoch),
		cues:   &cueLog{},
	}
	opts = append([]Option{
		WithClock(h.clock),
		WithRand(rand.New(rand.NewPCG(1, 2))),
		WithRegistry(reg),
		WithCues(h.cues),
	}, opts...)

	a, err := New(screen, config.Default(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	h.app = a
	a.Start()
	t.Cleanup(a.Stop)
	h.step(60 * time.Millisecond)
	return h
}

func (h *harness) step(d time.Duration) {
	h.app.Step(h.clock.Advance(d))
}

func (h *harness) key(r rune) bool {
	return h.app.HandleEvent(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone))
}

func (h *harness) special(k tcell.Key) bool {
	return h.app.HandleEvent(tcell.NewEventKey(k, 0, tcell.ModNone))
}

func (h *harness) mouse(col, row int, btn tcell.ButtonMask) {
	h.app.HandleEvent(tcell.NewEventMouse(col, row, btn, tcell.ModNone))
}

func (h *harness) row(y int) string {
	cells, w, _ := h.screen.GetContents()
	var sb strings.Builder
	for x := range w {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			sb.WriteByte(' ')
			continue
		}
		sb.WriteRune(c.Runes[0])
	}
	return sb.String()
}

// addAt places a large body on a known orbit so pointer tests can hit it
func (h *harness) addAt(orbit, angle float64) body.Body {
	return h.app.Registry().Add(body.Template{
		Kind: body.KindRocky, Name: "Target", Radius: 20, Color: "#FF6B6B",
		OrbitRadius: orbit, Angle: angle, AngularSpeed: 0.01, Mass: 1,
	})
}

func TestDigitKeysAddPresets(t *testing.T) {
	h := newHarness(t, 80, 25)

	h.key('1')
	h.key('0')

	bodies := h.app.Bodies()
	if len(bodies) != 2 {
		t.Fatalf("len = %d, want 2", len(bodies))
	}
	first, _ := catalog.At(0)
	tenth, _ := catalog.At(9)
	if bodies[0].Name != first.Name || bodies[1].Name != tenth.Name {
		t.Errorf("names = %s, %s", bodies[0].Name, bodies[1].Name)
	}
	for _, b := range bodies {
		if b.OrbitRadius < catalog.MinOrbitRadius || b.OrbitRadius >= catalog.MaxOrbitRadius {
			t.Errorf("%s orbit %v out of range", b.Name, b.OrbitRadius)
		}
	}
	if h.cues.places != 2 {
		t.Errorf("place cues = %d", h.cues.places)
	}
}

func TestShiftedDigitsAddLastPresets(t *testing.T) {
	h := newHarness(t, 80, 25)
	h.key('!')
	h.key('@')

	bodies := h.app.Bodies()
	if len(bodies) != 2 {
		t.Fatalf("len = %d, want 2", len(bodies))
	}
	if bodies[0].Name != "Kepler-452b" || bodies[1].Name != "HD 209458 b" {
		t.Errorf("names = %s, %s", bodies[0].Name, bodies[1].Name)
	}
}

func TestRandomPresetFromCatalog(t *testing.T) {
	h := newHarness(t, 80, 25)
	for range 20 {
		h.key('r')
	}
	if h.app.Registry().Len() != 20 {
		t.Fatalf("len = %d", h.app.Registry().Len())
	}
	for _, b := range h.app.Bodies() {
		if _, ok := catalog.Lookup(b.Name); !ok {
			t.Errorf("unknown preset %q", b.Name)
		}
	}
}

func TestToggleSimulationStartsTicking(t *testing.T) {
	h := newHarness(t, 80, 25)
	b := h.addAt(200, 0)

	h.key(' ')
	if !h.app.Simulating() || !h.app.Engine().Ticking() {
		t.Fatal("simulation not started")
	}
	for range 10 {
		h.step(constants.FrameUpdateInterval)
	}
	got, _ := h.app.Registry().Get(b.ID)
	if got.Angle <= b.Angle {
		t.Errorf("angle %v did not advance from %v", got.Angle, b.Angle)
	}

	h.key(' ')
	if h.app.Simulating() || h.app.Engine().Ticking() {
		t.Fatal("simulation not stopped")
	}
	before, _ := h.app.Registry().Get(b.ID)
	h.step(100 * time.Millisecond)
	after, _ := h.app.Registry().Get(b.ID)
	if before.Angle != after.Angle {
		t.Error("body moved while paused")
	}
}

func TestSpeedClamped(t *testing.T) {
	h := newHarness(t, 80, 25)
	for range 100 {
		h.key('+')
	}
	if h.app.Speed() != constants.SpeedMax {
		t.Errorf("speed = %v, want %v", h.app.Speed(), constants.SpeedMax)
	}
	for range 100 {
		h.key('-')
	}
	if h.app.Speed() != constants.SpeedMin {
		t.Errorf("speed = %v, want %v", h.app.Speed(), constants.SpeedMin)
	}
	h.key('+')
	if h.app.Speed() != 0.2 {
		t.Errorf("speed = %v, want 0.2", h.app.Speed())
	}
}

func TestSelectionCycleAndClose(t *testing.T) {
	h := newHarness(t, 80, 25)
	if h.special(tcell.KeyTab); h.cues.selects != 0 {
		t.Error("tab on empty system selected something")
	}

	h.key('1')
	h.key('2')
	h.special(tcell.KeyTab)
	if sel, ok := h.app.Selected(); !ok || sel.ID != "b1" {
		t.Fatalf("selected = %+v, %v", sel, ok)
	}
	h.special(tcell.KeyTab)
	if sel, _ := h.app.Selected(); sel.ID != "b2" {
		t.Errorf("selected = %s, want b2", sel.ID)
	}
	h.special(tcell.KeyTab)
	if sel, _ := h.app.Selected(); sel.ID != "b1" {
		t.Errorf("selection did not wrap, got %s", sel.ID)
	}

	h.special(tcell.KeyEscape)
	if _, ok := h.app.Selected(); ok {
		t.Error("escape kept selection")
	}
}

func TestDeleteSelected(t *testing.T) {
	h := newHarness(t, 80, 25)
	h.key('1')
	h.key('2')
	h.special(tcell.KeyTab)

	h.key('x')
	if ids := h.app.Registry().IDs(); len(ids) != 1 || ids[0] != "b2" {
		t.Fatalf("ids = %v", ids)
	}
	if _, ok := h.app.Selected(); ok {
		t.Error("selection kept after delete")
	}

	// Nothing selected: delete is a no-op
	h.special(tcell.KeyDelete)
	if h.app.Registry().Len() != 1 || h.cues.removes != 1 {
		t.Errorf("len = %d, removes = %d", h.app.Registry().Len(), h.cues.removes)
	}
}

func TestClearSystem(t *testing.T) {
	h := newHarness(t, 80, 25)
	h.key('1')
	h.key('2')
	h.special(tcell.KeyTab)
	h.key(' ')

	h.key('C')
	if h.app.Registry().Len() != 0 {
		t.Error("bodies left after clear")
	}
	if h.app.Simulating() || h.app.Engine().Ticking() {
		t.Error("simulation still running after clear")
	}
	if _, ok := h.app.Selected(); ok {
		t.Error("selection kept after clear")
	}
	if h.cues.clears != 1 {
		t.Errorf("clear cues = %d", h.cues.clears)
	}
}

func TestCustomizeSelected(t *testing.T) {
	h := newHarness(t, 80, 25)
	b := h.addAt(200, 0)
	h.special(tcell.KeyTab)

	h.key(']')
	h.key('}')
	h.key('M')
	h.key('g')
	h.key('k')

	got, _ := h.app.Registry().Get(b.ID)
	if got.Radius != 21 {
		t.Errorf("radius = %v, want 21", got.Radius)
	}
	if got.AngularSpeed != 0.0105 {
		t.Errorf("angular speed = %v, want 0.0105", got.AngularSpeed)
	}
	if got.Mass != 1.1 {
		t.Errorf("mass = %v, want 1.1", got.Mass)
	}
	if !got.HasRings {
		t.Error("rings not toggled")
	}
	if got.Color != catalog.NextColor("#FF6B6B") {
		t.Errorf("color = %s", got.Color)
	}
	if got.OrbitRadius != 200 || got.Angle != 0 {
		t.Error("customizing moved the body")
	}
}

func TestCustomizeClamps(t *testing.T) {
	h := newHarness(t, 80, 25)
	b := h.addAt(200, 0)
	h.special(tcell.KeyTab)

	for range 100 {
		h.key('[')
		h.key('{')
		h.key('m')
	}
	got, _ := h.app.Registry().Get(b.ID)
	if got.Radius != constants.SizeMin || got.AngularSpeed != constants.AngularSpeedMin || got.Mass != constants.MassMin {
		t.Errorf("got radius %v, angular %v, mass %v", got.Radius, got.AngularSpeed, got.Mass)
	}
}

func TestCustomizeWithoutSelection(t *testing.T) {
	h := newHarness(t, 80, 25)
	h.addAt(200, 0)
	v := h.app.Registry().Version()
	h.key(']')
	h.key('g')
	if h.app.Registry().Version() != v {
		t.Error("customizer changed a body with nothing selected")
	}
}

// typeName feeds s to the app one rune at a time
func (h *harness) typeName(s string) {
	for _, r := range s {
		h.key(r)
	}
}

func TestRenameSelected(t *testing.T) {
	h := newHarness(t, 200, 25)
	h.addAt(200, 0)
	h.special(tcell.KeyTab)

	h.key('n')
	// Prompt starts from the current name
	for range len("Target") {
		h.special(tcell.KeyBackspace2)
	}
	h.typeName("New Terra")
	h.step(constants.FrameUpdateInterval)
	if header := h.row(0); !strings.Contains(header, "rename: New Terra") {
		t.Errorf("header = %q", header)
	}

	h.special(tcell.KeyEnter)
	sel, ok := h.app.Selected()
	if !ok || sel.Name != "New Terra" {
		t.Fatalf("selected = %+v, %v", sel, ok)
	}
	h.step(constants.FrameUpdateInterval)
	if header := h.row(0); !strings.Contains(header, "New Terra (rocky)") {
		t.Errorf("header = %q", header)
	}
}

func TestRenamePromptSwallowsBoundKeys(t *testing.T) {
	h := newHarness(t, 80, 25)
	h.addAt(200, 0)
	h.special(tcell.KeyTab)

	h.key('n')
	// q, x, C and space are bindings outside the prompt
	for _, r := range " qxC" {
		if !h.key(r) {
			t.Fatalf("%q quit while renaming", r)
		}
	}
	if h.app.Simulating() || h.app.Registry().Len() != 1 {
		t.Error("bound keys acted while renaming")
	}

	h.special(tcell.KeyEscape)
	sel, ok := h.app.Selected()
	if !ok || sel.Name != "Target" {
		t.Errorf("escape must cancel without renaming or deselecting, got %+v, %v", sel, ok)
	}
	if !h.key('x') || h.app.Registry().Len() != 0 {
		t.Error("bindings not restored after cancel")
	}
}

func TestRenameIgnoresBlankName(t *testing.T) {
	h := newHarness(t, 80, 25)
	h.addAt(200, 0)
	h.special(tcell.KeyTab)

	h.key('n')
	for range 10 {
		h.special(tcell.KeyBackspace)
	}
	h.typeName("   ")
	h.special(tcell.KeyEnter)

	if sel, _ := h.app.Selected(); sel.Name != "Target" {
		t.Errorf("name = %q, want Target", sel.Name)
	}
}

func TestRenameCapsLength(t *testing.T) {
	h := newHarness(t, 80, 25)
	h.addAt(200, 0)
	h.special(tcell.KeyTab)

	h.key('n')
	h.typeName(strings.Repeat("z", 2*constants.NameMaxLen))
	h.special(tcell.KeyEnter)

	sel, _ := h.app.Selected()
	if n := len([]rune(sel.Name)); n != constants.NameMaxLen {
		t.Errorf("name length = %d, want %d", n, constants.NameMaxLen)
	}
}

func TestRenameWithoutSelection(t *testing.T) {
	h := newHarness(t, 80, 25)
	h.key('1')
	h.key('n')
	// No prompt opened, so q still quits
	if h.key('q') {
		t.Error("q did not quit")
	}
	if b := h.app.Bodies()[0]; b.Name != "Mercury" {
		t.Errorf("name = %q", b.Name)
	}
}

func TestQuitKeys(t *testing.T) {
	h := newHarness(t, 80, 25)
	if !h.key('z') {
		t.Error("unbound key quit")
	}
	if h.key('q') {
		t.Error("q did not quit")
	}
	if h.special(tcell.KeyCtrlC) {
		t.Error("ctrl-c did not quit")
	}
}

func TestMuteToggle(t *testing.T) {
	h := newHarness(t, 80, 25)
	h.key('a')
	if !h.cues.muted {
		t.Error("mute not toggled")
	}
}

// 80x25 screen: region is 80x24 cells below the header, 640x384 logical px,
// system center at (320, 208). Cell (65, 13) centers on (524, 216), which
// is (204, 8) from the center.
func TestClickSelectsAndDrags(t *testing.T) {
	h := newHarness(t, 80, 25)
	b := h.addAt(200, 0)

	h.mouse(65, 13, tcell.ButtonPrimary)
	if sel, ok := h.app.Selected(); !ok || sel.ID != b.ID {
		t.Fatalf("click did not select, got %+v", sel)
	}
	if h.cues.selects != 1 {
		t.Errorf("select cues = %d", h.cues.selects)
	}

	// Drag to cell (40, 4): center (324, 72) -> system (4, -136)
	h.mouse(40, 4, tcell.ButtonPrimary)
	got, _ := h.app.Registry().Get(b.ID)
	if got.Pos.X != 4 || got.Pos.Y != -136 {
		t.Errorf("pos = %+v, want (4, -136)", got.Pos)
	}

	h.mouse(40, 4, tcell.ButtonNone)
	if _, dragging := h.app.Engine().Dragging(); dragging {
		t.Error("drag survived release")
	}
}

func TestClickEmptySpaceKeepsSelection(t *testing.T) {
	h := newHarness(t, 80, 25)
	h.addAt(200, 0)
	h.special(tcell.KeyTab)

	h.mouse(1, 1, tcell.ButtonPrimary)
	if _, ok := h.app.Selected(); !ok {
		t.Error("miss dropped selection")
	}
	if _, dragging := h.app.Engine().Dragging(); dragging {
		t.Error("miss started a drag")
	}
}

func TestResizeUpdatesSurface(t *testing.T) {
	h := newHarness(t, 80, 25)

	h.screen.SetSize(40, 11)
	h.app.HandleEvent(tcell.NewEventResize(40, 11))
	h.step(60 * time.Millisecond)

	w, hh := h.app.Engine().Surface().Size()
	if w != 80 || hh != 40 {
		t.Errorf("surface = %dx%d, want 80x40", w, hh)
	}
}

func TestHeaderShowsState(t *testing.T) {
	h := newHarness(t, 160, 25)
	h.key('1')
	h.key('2')
	h.step(constants.FrameUpdateInterval)

	header := h.row(0)
	if !strings.Contains(header, "2 bodies") || !strings.Contains(header, "Paused") {
		t.Errorf("header = %q", header)
	}

	h.key(' ')
	h.step(constants.FrameUpdateInterval)
	if header = h.row(0); !strings.Contains(header, "Active") {
		t.Errorf("header = %q", header)
	}
}

func TestHeaderTracksSelection(t *testing.T) {
	h := newHarness(t, 200, 25)
	h.addAt(200, 0)
	h.special(tcell.KeyTab)
	h.key(']')
	h.step(constants.FrameUpdateInterval)

	header := h.row(0)
	if !strings.Contains(header, "Target (rocky)") || !strings.Contains(header, "size 21") {
		t.Errorf("header = %q", header)
	}
}

func TestHeaderText(t *testing.T) {
	if got := headerLeft(1, false, 1); got != "orrery • 1 body • Paused • 1x" {
		t.Errorf("headerLeft = %q", got)
	}
	if got := headerLeft(1200, true, 2.5); got != "orrery • 1,200 bodies • Active • 2.5x" {
		t.Errorf("headerLeft = %q", got)
	}

	hab := 0.85
	b := body.Body{Name: "Kepler", Kind: body.KindRocky, Radius: 12, OrbitRadius: 250,
		AngularSpeed: 0.004, Mass: 5, Moons: 2, HasRings: true, Habitability: &hab, Color: "#fff"}
	got := headerRight(b, true, false)
	for _, want := range []string{"Kepler (rocky)", "size 12", "orbit 250", "ω 0.004", "mass 5", "rings", "2 moons", "hab 85%"} {
		if !strings.Contains(got, want) {
			t.Errorf("headerRight missing %q in %q", want, got)
		}
	}
	if got := headerRight(body.Body{}, false, true); !strings.HasSuffix(got, "[muted]") {
		t.Errorf("muted hint = %q", got)
	}
}

func TestPublishesToFeed(t *testing.T) {
	hub := feed.NewHub(64)
	srv := httptest.NewServer(hub)
	defer srv.Close()
	defer hub.Close()
	h := newHarness(t, 80, 25, WithPublisher(feed.NewPublisher(hub, constants.ShareInterval)))

	conn, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer conn.Close()

	read := func() feed.Snapshot {
		t.Helper()
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		var s feed.Snapshot
		if err := conn.ReadJSON(&s); err != nil {
			t.Fatalf("read: %v", err)
		}
		return s
	}

	// Latest snapshot arrives on connect
	if s := read(); len(s.Bodies) != 0 || s.Type != "system" {
		t.Fatalf("initial snapshot = %+v", s)
	}

	h.key('1')
	h.step(constants.ShareInterval)
	s := read()
	if len(s.Bodies) != 1 || s.Simulating || s.Speed != 1 {
		t.Errorf("snapshot = %+v", s)
	}
}

func TestInvalidThemeRejected(t *testing.T) {
	screen := tcell.NewSimulationScreen("UTF-8")
	cfg := config.Default()
	cfg.Theme["orbit"] = "nope"
	if _, err := New(screen, cfg); err == nil {
		t.Error("invalid theme accepted")
	}
}

func TestStepRounding(t *testing.T) {
	v := 1.0
	for range 3 {
		v = step(v, 0.1, 0.1, 5)
	}
	if v != 1.3 {
		t.Errorf("v = %v, want 1.3", v)
	}
}
