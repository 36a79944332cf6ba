package tui

import "github.com/gdamore/tcell/v2"

// PointerKind classifies a translated pointer event
type PointerKind uint8

const (
	PointerDown PointerKind = iota + 1
	PointerMove
	PointerUp
	PointerLeave
)

func (k PointerKind) String() string {
	switch k {
	case PointerDown:
		return "down"
	case PointerMove:
		return "move"
	case PointerUp:
		return "up"
	case PointerLeave:
		return "leave"
	default:
		return "none"
	}
}

// PointerEvent is a pointer action at a logical position
type PointerEvent struct {
	Kind PointerKind
	X, Y float64
}

// Pointer turns tcell mouse reports into down/move/up/leave transitions
// Terminals report button state, not edges, so the previous state is kept
type Pointer struct {
	vp     *Viewport
	down   bool
	inside bool
}

// NewPointer creates a translator for vp
func NewPointer(vp *Viewport) *Pointer {
	return &Pointer{vp: vp}
}

// Translate converts ev; ok is false when ev carries no pointer action
func (p *Pointer) Translate(ev tcell.Event) (PointerEvent, bool) {
	switch ev := ev.(type) {
	case *tcell.EventMouse:
		return p.mouse(ev)
	case *tcell.EventFocus:
		if !ev.Focused {
			return p.leave()
		}
	}
	return PointerEvent{}, false
}

func (p *Pointer) mouse(ev *tcell.EventMouse) (PointerEvent, bool) {
	col, row := ev.Position()
	if !p.vp.Contains(col, row) {
		return p.leave()
	}
	p.inside = true

	x, y := p.vp.PointerAt(col, row)
	pressed := ev.Buttons()&tcell.ButtonPrimary != 0

	switch {
	case pressed && !p.down:
		p.down = true
		return PointerEvent{Kind: PointerDown, X: x, Y: y}, true
	case !pressed && p.down:
		p.down = false
		return PointerEvent{Kind: PointerUp, X: x, Y: y}, true
	default:
		return PointerEvent{Kind: PointerMove, X: x, Y: y}, true
	}
}

func (p *Pointer) leave() (PointerEvent, bool) {
	if !p.inside && !p.down {
		return PointerEvent{}, false
	}
	p.inside = false
	p.down = false
	return PointerEvent{Kind: PointerLeave}, true
}
