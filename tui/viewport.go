package tui

import "github.com/lixenwraith/orrery/constants"

// Viewport is the screen region below the header, measured in logical pixels
// It implements engine.Container
type Viewport struct {
	cellW float64
	cellH float64

	top  int // rows reserved above the region
	cols int
	rows int
}

// NewViewport creates a viewport with cells cellWidth logical pixels wide
// Non-positive widths use the default
func NewViewport(cellWidth int) *Viewport {
	if cellWidth <= 0 {
		cellWidth = constants.DefaultCellWidth
	}
	return &Viewport{
		cellW: float64(cellWidth),
		cellH: float64(2 * cellWidth),
		top:   constants.HeaderRows,
	}
}

// SetScreenSize updates the region from the full terminal size
func (v *Viewport) SetScreenSize(cols, rows int) {
	v.cols = max(cols, 0)
	v.rows = max(rows-v.top, 0)
}

// Cells returns the region size in cells
func (v *Viewport) Cells() (cols, rows int) {
	return v.cols, v.rows
}

// Top returns the first screen row of the region
func (v *Viewport) Top() int {
	return v.top
}

// CellSize returns the logical size of one cell
func (v *Viewport) CellSize() (w, h float64) {
	return v.cellW, v.cellH
}

// Bounds returns the region's top-left and size in logical pixels
// ok is false while the region has no area
func (v *Viewport) Bounds() (x, y, width, height float64, ok bool) {
	if v.cols == 0 || v.rows == 0 {
		return 0, 0, 0, 0, false
	}
	return 0, float64(v.top) * v.cellH, float64(v.cols) * v.cellW, float64(v.rows) * v.cellH, true
}

// ScaleFactor maps logical pixels to braille dots: two dots per cell width
func (v *Viewport) ScaleFactor() float64 {
	return 2 / v.cellW
}

// Contains reports whether a screen cell lies inside the region
func (v *Viewport) Contains(col, row int) bool {
	return col >= 0 && col < v.cols && row >= v.top && row < v.top+v.rows
}

// PointerAt returns the logical position of a cell's center, in the same
// frame as Bounds
func (v *Viewport) PointerAt(col, row int) (x, y float64) {
	return (float64(col) + 0.5) * v.cellW, (float64(row) + 0.5) * v.cellH
}
