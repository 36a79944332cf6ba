package canvas

import "math"

// ClearRect makes the logical rectangle transparent and drops labels anchored in it
func (s *Surface) ClearRect(x, y, w, h float64) {
	if s.Empty() {
		return
	}
	k := s.scale
	x0, x1 := span(x*k, (x+w)*k, s.width)
	y0, y1 := span(y*k, (y+h)*k, s.height)

	if x0 == 0 && y0 == 0 && x1 == s.width && y1 == s.height {
		clear(s.pix)
		s.labels = s.labels[:0]
		return
	}

	for py := y0; py < y1; py++ {
		row := s.pix[py*s.width : (py+1)*s.width]
		clear(row[x0:x1])
	}

	kept := s.labels[:0]
	for _, l := range s.labels {
		if l.X >= float64(x0) && l.X < float64(x1) && l.Y >= float64(y0) && l.Y < float64(y1) {
			continue
		}
		kept = append(kept, l)
	}
	s.labels = kept
}

// FillRect fills a logical rectangle; sub-pixel rects still cover one pixel
func (s *Surface) FillRect(x, y, w, h float64, p Paint) {
	if s.Empty() {
		return
	}
	k := s.scale
	x0, x1 := span(x*k, (x+w)*k, s.width)
	y0, y1 := span(y*k, (y+h)*k, s.height)
	for py := y0; py < y1; py++ {
		base := py * s.width
		for px := x0; px < x1; px++ {
			s.blend(base+px, p)
		}
	}
}

// FillCircle fills a disc; pixels are in when their center is within r
// A disc smaller than one pixel lights the pixel under its center
func (s *Surface) FillCircle(cx, cy, r float64, p Paint) {
	s.fillDisc(cx, cy, r, func(float64) Paint { return p })
}

// FillRadialGradient fills a disc whose color follows g from center (0) to edge (1)
func (s *Surface) FillRadialGradient(cx, cy, r float64, g Gradient) {
	s.fillDisc(cx, cy, r, g.At)
}

func (s *Surface) fillDisc(cx, cy, r float64, shade func(t float64) Paint) {
	if s.Empty() || r < 0 {
		return
	}
	k := s.scale
	bcx, bcy, br := cx*k, cy*k, r*k
	rsq := br * br

	x0, x1 := span(bcx-br, bcx+br, s.width)
	y0, y1 := span(bcy-br, bcy+br, s.height)

	plotted := false
	for py := y0; py < y1; py++ {
		dy := float64(py) + 0.5 - bcy
		base := py * s.width
		for px := x0; px < x1; px++ {
			dx := float64(px) + 0.5 - bcx
			dsq := dx*dx + dy*dy
			if dsq > rsq {
				continue
			}
			t := 0.0
			if br > 0 {
				t = math.Sqrt(dsq) / br
			}
			s.blend(base+px, shade(t))
			plotted = true
		}
	}

	if !plotted {
		px, py := int(math.Floor(bcx)), int(math.Floor(bcy))
		if s.inBounds(px, py) {
			s.blend(py*s.width+px, shade(0))
		}
	}
}

// StrokeCircle outlines a circle
func (s *Surface) StrokeCircle(cx, cy, r, lineWidth float64, p Paint) {
	s.StrokeEllipse(cx, cy, r, r, lineWidth, p)
}

// StrokeEllipse outlines an axis-aligned ellipse
// Each pixel is painted at most once per call
func (s *Surface) StrokeEllipse(cx, cy, rx, ry, lineWidth float64, p Paint) {
	if s.Empty() || rx < 0 || ry < 0 {
		return
	}
	k := s.scale
	bcx, bcy := cx*k, cy*k
	brx, bry := rx*k, ry*k
	thickness := max(1, int(math.Round(lineWidth*k)))
	gen := s.nextGen()

	for ring := range thickness {
		off := float64(ring) - float64(thickness-1)/2
		erx, ery := math.Max(brx+off, 0), math.Max(bry+off, 0)

		// Sample densely enough that consecutive points are under a pixel apart
		steps := max(8, int(math.Ceil(2*math.Pi*math.Max(erx, ery)*1.5)))
		for i := range steps {
			sin, cos := math.Sincos(2 * math.Pi * float64(i) / float64(steps))
			px := int(math.Floor(bcx + erx*cos))
			py := int(math.Floor(bcy + ery*sin))
			if !s.inBounds(px, py) {
				continue
			}
			idx := py*s.width + px
			if s.stamp[idx] == gen {
				continue
			}
			s.stamp[idx] = gen
			s.blend(idx, p)
		}
	}
}

// FillText records a text label anchored at logical (x, y)
func (s *Surface) FillText(text string, x, y float64, p Paint, align Align) {
	if s.Empty() || text == "" {
		return
	}
	s.labels = append(s.labels, Label{
		Text:  text,
		X:     x * s.scale,
		Y:     y * s.scale,
		Paint: p,
		Align: align,
	})
}
