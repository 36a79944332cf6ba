package canvas

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidPaint is returned for fill styles that cannot be parsed
var ErrInvalidPaint = errors.New("invalid paint")

// Paint is a straight-alpha color, channels in [0, 1]
type Paint struct {
	R, G, B, A float64
}

// Common paints
var (
	Transparent = Paint{}
	White       = Paint{1, 1, 1, 1}
	Black       = Paint{0, 0, 0, 1}
)

// ParsePaint accepts "#rgb", "#rrggbb", "rgb(r, g, b)", "rgba(r, g, b, a)",
// "transparent" and W3C color names
func ParsePaint(s string) (Paint, error) {
	v := strings.TrimSpace(s)
	if v == "" {
		return Paint{}, fmt.Errorf("%w: empty", ErrInvalidPaint)
	}
	lower := strings.ToLower(v)

	switch {
	case lower == "transparent":
		return Transparent, nil
	case strings.HasPrefix(lower, "rgba(") || strings.HasPrefix(lower, "rgb("):
		return parseFunctional(lower)
	case strings.HasPrefix(lower, "#"):
		c, err := colorful.Hex(lower)
		if err != nil {
			return Paint{}, fmt.Errorf("%w: %q: %v", ErrInvalidPaint, s, err)
		}
		return Paint{c.R, c.G, c.B, 1}, nil
	}

	// Named colors resolve through tcell's W3C table
	c := tcell.GetColor(lower)
	if c == tcell.ColorDefault || !c.Valid() {
		return Paint{}, fmt.Errorf("%w: unknown color %q", ErrInvalidPaint, s)
	}
	r, g, b := c.RGB()
	if r < 0 {
		return Paint{}, fmt.Errorf("%w: no rgb value for %q", ErrInvalidPaint, s)
	}
	return Paint{float64(r) / 255, float64(g) / 255, float64(b) / 255, 1}, nil
}

// MustPaint is ParsePaint for compile-time constants, panics on error
func MustPaint(s string) Paint {
	p, err := ParsePaint(s)
	if err != nil {
		panic(err)
	}
	return p
}

func parseFunctional(s string) (Paint, error) {
	open := strings.IndexByte(s, '(')
	if !strings.HasSuffix(s, ")") || open < 0 {
		return Paint{}, fmt.Errorf("%w: %q", ErrInvalidPaint, s)
	}
	parts := strings.Split(s[open+1:len(s)-1], ",")
	hasAlpha := strings.HasPrefix(s, "rgba(")
	if (hasAlpha && len(parts) != 4) || (!hasAlpha && len(parts) != 3) {
		return Paint{}, fmt.Errorf("%w: %q: wrong component count", ErrInvalidPaint, s)
	}

	var ch [4]float64
	ch[3] = 1
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Paint{}, fmt.Errorf("%w: %q: %v", ErrInvalidPaint, s, err)
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return Paint{}, fmt.Errorf("%w: %q: non-finite component", ErrInvalidPaint, s)
		}
		if i < 3 {
			f /= 255
		}
		ch[i] = min(max(f, 0), 1)
	}
	return Paint{ch[0], ch[1], ch[2], ch[3]}, nil
}

// WithAlpha returns p with its alpha multiplied by a
func (p Paint) WithAlpha(a float64) Paint {
	p.A *= a
	return p
}

// RGB255 returns the color channels as bytes, alpha ignored
func (p Paint) RGB255() (r, g, b uint8) {
	return toByte(p.R), toByte(p.G), toByte(p.B)
}

func toByte(v float64) uint8 {
	if v >= 1 {
		return 255
	}
	if v <= 0 {
		return 0
	}
	return uint8(v*255 + 0.5)
}

func (p Paint) colorful() colorful.Color {
	return colorful.Color{R: p.R, G: p.G, B: p.B}
}

// Stop is one color stop of a radial gradient, Offset in [0, 1]
type Stop struct {
	Offset float64
	Paint  Paint
}

// Gradient is an ordered list of stops
type Gradient []Stop

// At returns the interpolated paint at t in [0, 1]
// Colors blend in RGB space, alpha linearly
func (g Gradient) At(t float64) Paint {
	if len(g) == 0 {
		return Transparent
	}
	if t <= g[0].Offset {
		return g[0].Paint
	}
	for i := 1; i < len(g); i++ {
		lo, hi := g[i-1], g[i]
		if t > hi.Offset {
			continue
		}
		span := hi.Offset - lo.Offset
		if t == hi.Offset || span <= 0 {
			return hi.Paint
		}
		f := (t - lo.Offset) / span
		c := lo.Paint.colorful().BlendRgb(hi.Paint.colorful(), f)
		return Paint{c.R, c.G, c.B, lo.Paint.A + (hi.Paint.A-lo.Paint.A)*f}
	}
	return g[len(g)-1].Paint
}
