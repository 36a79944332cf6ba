// Package tui hosts the orbit scene in a terminal
//
// The surface is shown as braille: every cell carries a 2x4 dot matrix, so a
// cell of CellWidth x 2*CellWidth logical pixels maps to 2x4 backing pixels.
// Text labels bypass the raster and are written as glyphs.
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// Background is the color every cell is composited over
var Background = tcell.NewRGBColor(0, 0, 0)

// NewScreen initializes the terminal for drawing and mouse input
func NewScreen() (tcell.Screen, error) {
	return Open(tcell.NewScreen)
}

// Open allocates a screen and runs Setup on it exactly once
// The caller owns the returned screen and must Fini it
func Open(alloc func() (tcell.Screen, error)) (tcell.Screen, error) {
	screen, err := alloc()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := Setup(screen); err != nil {
		return nil, err
	}
	return screen, nil
}

// Setup initializes an allocated screen; shared with simulation screens in tests
// Must not be called on a screen returned by Open or NewScreen
func Setup(screen tcell.Screen) error {
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	screen.SetStyle(tcell.StyleDefault.Background(Background).Foreground(tcell.ColorWhite))
	screen.EnableMouse(tcell.MouseDragEvents)
	screen.EnableFocus()
	screen.HideCursor()
	screen.Clear()
	return nil
}
