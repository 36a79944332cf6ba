package engine

import (
	"log"
	"math/rand/v2"

	"github.com/lixenwraith/orrery/body"
	"github.com/lixenwraith/orrery/canvas"
	"github.com/lixenwraith/orrery/constants"
	"github.com/lixenwraith/orrery/render"
)

// star is a background point in normalized viewport coordinates
type star struct {
	x, y    float64
	size    float64
	opacity float64
}

func newStarfield(rng *rand.Rand, n int) []star {
	stars := make([]star, n)
	for i := range stars {
		stars[i] = star{
			x:       rng.Float64(),
			y:       rng.Float64(),
			size:    rng.Float64()*constants.StarSizeRange + constants.StarMinSize,
			opacity: rng.Float64()*constants.StarOpacityRange + constants.StarMinOpacity,
		}
	}
	return stars
}

// starfieldLayer rescales the stars against the current viewport every frame
type starfieldLayer struct {
	e *Engine
}

func (l starfieldLayer) Draw(ctx render.Context, s *canvas.Surface) {
	paint := l.e.theme.Stars
	for _, st := range l.e.stars {
		s.FillRect(st.x*ctx.Width, st.y*ctx.Height, st.size, st.size, paint.WithAlpha(st.opacity))
	}
}

type sunLayer struct {
	e *Engine
}

func (l sunLayer) Draw(ctx render.Context, s *canvas.Surface) {
	cx, cy := ctx.Center()
	s.FillRadialGradient(cx, cy, constants.SunRadius, l.e.sun)
}

// orbitsLayer strokes every orbit, paused or not
type orbitsLayer struct {
	e *Engine
}

func (l orbitsLayer) Draw(ctx render.Context, s *canvas.Surface) {
	cx, cy := ctx.Center()
	for i := range ctx.Bodies {
		s.StrokeCircle(cx, cy, ctx.Bodies[i].OrbitRadius, constants.OrbitLineWidth, l.e.theme.Orbit)
	}
}

// bodiesLayer draws discs and rings
type bodiesLayer struct {
	e *Engine
}

func (l bodiesLayer) Draw(ctx render.Context, s *canvas.Surface) {
	cx, cy := ctx.Center()
	for i := range ctx.Bodies {
		b := &ctx.Bodies[i]
		x, y := cx+b.Pos.X, cy+b.Pos.Y
		if !ctx.InView(x, y, constants.CullMargin) {
			continue
		}

		s.FillCircle(x, y, b.Radius, l.e.paintFor(b))

		if b.HasRings {
			rx := b.Radius + constants.RingPadding
			s.StrokeEllipse(x, y, rx, rx*constants.RingFlatten, constants.OrbitLineWidth, l.e.theme.Ring)
		}
	}
}

// labelsLayer names each visible body below its disc; hidden while simulating
type labelsLayer struct {
	e *Engine
}

func (l labelsLayer) IsVisible() bool {
	return !l.e.source.Simulating()
}

func (l labelsLayer) Draw(ctx render.Context, s *canvas.Surface) {
	cx, cy := ctx.Center()
	for i := range ctx.Bodies {
		b := &ctx.Bodies[i]
		x, y := cx+b.Pos.X, cy+b.Pos.Y
		if !ctx.InView(x, y, constants.CullMargin) {
			continue
		}
		s.FillText(b.Name, x, y+b.Radius+constants.LabelOffset, l.e.theme.Label, canvas.AlignCenter)
	}
}

// paintFor resolves a body's fill style, caching parses
// Unparseable styles fall back to the theme and are logged once
func (e *Engine) paintFor(b *body.Body) canvas.Paint {
	if p, ok := e.paints[b.Color]; ok {
		return p
	}
	p, err := canvas.ParsePaint(b.Color)
	if err != nil {
		log.Printf("engine: body %s: %v, using fallback", b.ID, err)
		p = e.theme.Fallback
	}
	e.paints[b.Color] = p
	return p
}
