package tui

import (
	"errors"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/orrery/canvas"
	"github.com/lixenwraith/orrery/constants"
)

// ErrClosed is returned by Present after Close
var ErrClosed = errors.New("presenter closed")

// brailleBase is the empty braille pattern; dot bits are added to it
const brailleBase = 0x2800

// brailleBits maps dot (column, row) inside a cell to its pattern bit
var brailleBits = [2][4]rune{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// Presenter draws a surface, its labels and the header onto a tcell screen
// It implements engine.Presenter
type Presenter struct {
	screen    tcell.Screen
	vp        *Viewport
	threshold float32

	headerLeft  string
	headerRight string
	headerStyle tcell.Style

	closed bool
}

// NewPresenter creates a presenter for the viewport's region of screen
func NewPresenter(screen tcell.Screen, vp *Viewport) *Presenter {
	return &Presenter{
		screen:    screen,
		vp:        vp,
		threshold: constants.DotAlphaThreshold,
		headerStyle: tcell.StyleDefault.
			Background(tcell.NewRGBColor(28, 30, 40)).
			Foreground(tcell.NewRGBColor(220, 220, 230)),
	}
}

// SetThreshold sets the minimum dot coverage that lights a dot
func (p *Presenter) SetThreshold(t float64) {
	if t > 0 && t <= 1 {
		p.threshold = float32(t)
	}
}

// SetHeader sets the left and right aligned header texts
func (p *Presenter) SetHeader(left, right string) {
	p.headerLeft, p.headerRight = left, right
}

// Close makes further Present calls fail
func (p *Presenter) Close() {
	p.closed = true
}

// Present blits s as braille, overlays labels and header, then shows the screen
func (p *Presenter) Present(s *canvas.Surface) error {
	if p.closed {
		return ErrClosed
	}

	cols, rows := p.vp.Cells()
	top := p.vp.Top()
	for row := range rows {
		for col := range cols {
			r, style := p.cell(s, col, row)
			p.screen.SetContent(col, top+row, r, nil, style)
		}
	}

	for _, l := range s.Labels() {
		p.drawLabel(l, cols, rows, top)
	}
	p.drawHeader()

	p.screen.Show()
	return nil
}

// cell folds the 2x4 backing pixels under a cell into one braille glyph
// Glyph color is the mean of lit dots composited over black
func (p *Presenter) cell(s *canvas.Surface, col, row int) (rune, tcell.Style) {
	var bits rune
	var sr, sg, sb float32
	lit := 0

	x0, y0 := col*2, row*4
	for dx := range 2 {
		for dy := range 4 {
			px := s.At(x0+dx, y0+dy)
			if px.A < p.threshold {
				continue
			}
			bits |= brailleBits[dx][dy]
			sr += px.R
			sg += px.G
			sb += px.B
			lit++
		}
	}

	base := tcell.StyleDefault.Background(Background)
	if lit == 0 {
		return ' ', base
	}
	n := float32(lit)
	fg := tcell.NewRGBColor(channel(sr/n), channel(sg/n), channel(sb/n))
	return brailleBase + bits, base.Foreground(fg)
}

func channel(v float32) int32 {
	return int32(math.Round(float64(min(max(v, 0), 1)) * 255))
}

func (p *Presenter) drawLabel(l canvas.Label, cols, rows, top int) {
	row := int(math.Floor(l.Y / 4))
	if row < 0 || row >= rows {
		return
	}
	anchor := int(math.Floor(l.X / 2))
	width := runewidth.StringWidth(l.Text)

	start := anchor
	switch l.Align {
	case canvas.AlignCenter:
		start = anchor - width/2
	case canvas.AlignRight:
		start = anchor - width
	}

	r, g, b := l.Paint.RGB255()
	a := l.Paint.A
	fg := tcell.NewRGBColor(int32(float64(r)*a), int32(float64(g)*a), int32(float64(b)*a))
	style := tcell.StyleDefault.Background(Background).Foreground(fg)

	x := start
	for _, ch := range l.Text {
		w := runewidth.RuneWidth(ch)
		if x >= 0 && x+w <= cols {
			p.screen.SetContent(x, top+row, ch, nil, style)
		}
		x += w
	}
}

func (p *Presenter) drawHeader() {
	width, _ := p.screen.Size()
	if width <= 0 {
		return
	}
	for x := range width {
		p.screen.SetContent(x, 0, ' ', nil, p.headerStyle)
	}

	right := runewidth.Truncate(p.headerRight, width, "")
	rightW := runewidth.StringWidth(right)
	left := runewidth.Truncate(p.headerLeft, max(width-rightW-3, 0), "…")

	p.putString(1, left)
	p.putString(width-rightW-1, right)
}

func (p *Presenter) putString(x int, s string) {
	for _, ch := range s {
		p.screen.SetContent(x, 0, ch, nil, p.headerStyle)
		x += runewidth.RuneWidth(ch)
	}
}
