package engine

import (
	"fmt"
	"sort"

	"github.com/lixenwraith/orrery/canvas"
)

// Theme holds the paints of every fixed scene element
type Theme struct {
	Stars    canvas.Paint
	SunCore  canvas.Paint
	SunMid   canvas.Paint
	SunEdge  canvas.Paint
	Orbit    canvas.Paint
	Ring     canvas.Paint
	Label    canvas.Paint
	Fallback canvas.Paint // bodies whose color fails to parse
}

// DefaultTheme returns the canonical scene paints
func DefaultTheme() Theme {
	return Theme{
		Stars:    canvas.White,
		SunCore:  canvas.MustPaint("#FFF700"),
		SunMid:   canvas.MustPaint("#FFA500"),
		SunEdge:  canvas.MustPaint("rgba(255, 165, 0, 0.2)"),
		Orbit:    canvas.MustPaint("rgba(255, 255, 255, 0.08)"),
		Ring:     canvas.MustPaint("rgba(255, 255, 255, 0.6)"),
		Label:    canvas.MustPaint("rgba(255, 255, 255, 0.8)"),
		Fallback: canvas.MustPaint("#888888"),
	}
}

func (t *Theme) slots() map[string]*canvas.Paint {
	return map[string]*canvas.Paint{
		"stars":    &t.Stars,
		"sun_core": &t.SunCore,
		"sun_mid":  &t.SunMid,
		"sun_edge": &t.SunEdge,
		"orbit":    &t.Orbit,
		"ring":     &t.Ring,
		"label":    &t.Label,
		"fallback": &t.Fallback,
	}
}

// ThemeKeys lists the names accepted by Override, sorted
func ThemeKeys() []string {
	var t Theme
	keys := make([]string, 0, 8)
	for k := range t.slots() {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Override replaces one paint by name
func (t *Theme) Override(name, value string) error {
	slot, ok := t.slots()[name]
	if !ok {
		return fmt.Errorf("unknown theme key %q", name)
	}
	p, err := canvas.ParsePaint(value)
	if err != nil {
		return fmt.Errorf("theme %s: %w", name, err)
	}
	*slot = p
	return nil
}

// SunGradient returns the central star's radial gradient
func (t Theme) SunGradient(midStop float64) canvas.Gradient {
	return canvas.Gradient{
		{Offset: 0, Paint: t.SunCore},
		{Offset: midStop, Paint: t.SunMid},
		{Offset: 1, Paint: t.SunEdge},
	}
}
