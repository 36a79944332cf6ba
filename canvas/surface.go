// Package canvas is an in-memory drawable surface with a canvas-style API
//
// The backing raster is sized in device pixels; drawing calls take logical
// coordinates that pass through a uniform scale transform. Resize resets the
// transform, so callers re-apply Scale after every resize. Text is not
// rasterized: FillText records a Label that the presenter draws natively.
package canvas

import "math"

// Pixel is a premultiplied-alpha sample
type Pixel struct {
	R, G, B, A float32
}

// Align controls horizontal label anchoring
type Align uint8

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

// Label is text anchored in backing pixel coordinates
type Label struct {
	Text  string
	X, Y  float64
	Paint Paint
	Align Align
}

// Surface is the drawable raster
type Surface struct {
	width  int
	height int
	pix    []Pixel

	// Per-stroke visit stamps keep strokes from compounding alpha on overlap
	stamp []uint32
	gen   uint32

	scale float64

	displayW float64
	displayH float64

	labels []Label
}

// New creates a zero-sized surface; Resize before drawing
func New() *Surface {
	return &Surface{scale: 1}
}

// Resize reallocates the backing raster, clearing it and resetting the transform
// Reallocates only if capacity is insufficient
func (s *Surface) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(s.pix) < size {
		s.pix = make([]Pixel, size)
		s.stamp = make([]uint32, size)
		s.gen = 0
	} else {
		s.pix = s.pix[:size]
		s.stamp = s.stamp[:size]
		clear(s.pix)
	}
	s.width = width
	s.height = height
	s.scale = 1
	s.labels = s.labels[:0]
}

// Size returns backing dimensions in device pixels
func (s *Surface) Size() (width, height int) {
	return s.width, s.height
}

// Empty reports whether the surface has no backing pixels
func (s *Surface) Empty() bool {
	return s.width == 0 || s.height == 0
}

// SetDisplaySize records the logical size the surface is shown at
func (s *Surface) SetDisplaySize(width, height float64) {
	s.displayW, s.displayH = width, height
}

// DisplaySize returns the logical display size
func (s *Surface) DisplaySize() (width, height float64) {
	return s.displayW, s.displayH
}

// Scale multiplies the current transform by f
func (s *Surface) Scale(f float64) {
	s.scale *= f
}

// ResetTransform restores the identity transform
func (s *Surface) ResetTransform() {
	s.scale = 1
}

// Transform returns the current uniform scale
func (s *Surface) Transform() float64 {
	return s.scale
}

// At returns the pixel at backing coordinates, zero outside the raster
func (s *Surface) At(x, y int) Pixel {
	if !s.inBounds(x, y) {
		return Pixel{}
	}
	return s.pix[y*s.width+x]
}

// Labels returns text recorded since the last clear
func (s *Surface) Labels() []Label {
	return s.labels
}

func (s *Surface) inBounds(x, y int) bool {
	return x >= 0 && x < s.width && y >= 0 && y < s.height
}

// blend composites p over the pixel at idx (source-over)
func (s *Surface) blend(idx int, p Paint) {
	a := float32(p.A)
	if a <= 0 {
		return
	}
	inv := 1 - a
	dst := &s.pix[idx]
	dst.R = float32(p.R)*a + dst.R*inv
	dst.G = float32(p.G)*a + dst.G*inv
	dst.B = float32(p.B)*a + dst.B*inv
	dst.A = a + dst.A*inv
}

// span converts a logical interval to a clipped half-open pixel range
// At least one pixel is covered when the interval starts inside the raster
func span(lo, hi float64, limit int) (int, int) {
	start := int(math.Floor(lo))
	end := int(math.Ceil(hi))
	if end <= start {
		end = start + 1
	}
	return max(start, 0), min(end, limit)
}

// nextGen starts a new stroke stamp generation
func (s *Surface) nextGen() uint32 {
	s.gen++
	if s.gen == 0 {
		clear(s.stamp)
		s.gen = 1
	}
	return s.gen
}
