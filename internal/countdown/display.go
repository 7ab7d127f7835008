package countdown

import "github.com/brocode/goat/internal/mapping"

// Size is the display geometry in cells.
type Size struct {
	Width  int
	Height int
}

// Frame is everything a Display needs to draw one update.
type Frame struct {
	Title   string
	Percent int
	Label   string
	Legend  []mapping.Entry
	Size    Size
}

// Display owns the screen. The loop only decides what to show and when.
type Display interface {
	// Size reports the current geometry.
	Size() (Size, error)
	// Resize adopts a new geometry before the next Draw.
	Resize(Size) error
	// Draw replaces the screen contents with f.
	Draw(f Frame) error
}
