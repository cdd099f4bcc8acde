package render

import (
	"github.com/lixenwraith/snowscape/core"
	"github.com/lixenwraith/snowscape/parameter"
)

// FrameBuffer is a dense grid of glyphs, row-major, rebuilt from scratch every frame
// Writes outside the grid are dropped silently; resize robustness depends on it
type FrameBuffer struct {
	cells  []rune
	width  int
	height int
}

// NewFrameBuffer creates a blank buffer with the specified dimensions
func NewFrameBuffer(width, height int) *FrameBuffer {
	b := &FrameBuffer{}
	b.Resize(width, height)
	return b
}

// Resize adjusts buffer dimensions, reallocates only if capacity insufficient
func (b *FrameBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	size := width * height
	if cap(b.cells) < size {
		b.cells = make([]rune, size)
	} else {
		b.cells = b.cells[:size]
	}
	b.width = width
	b.height = height
	b.Clear()
}

// Clear resets all cells to blank using exponential copy
func (b *FrameBuffer) Clear() {
	if len(b.cells) == 0 {
		return
	}
	b.cells[0] = parameter.BlankGlyph
	for filled := 1; filled < len(b.cells); filled *= 2 {
		copy(b.cells[filled:], b.cells[:filled])
	}
}

// inBounds returns true if in screen bounds
func (b *FrameBuffer) inBounds(x, y int) bool {
	return core.Dimensions{Width: b.width, Height: b.height}.Contains(x, y)
}

// Set writes a glyph, dropping out-of-bounds writes
func (b *FrameBuffer) Set(x, y int, r rune) {
	if !b.inBounds(x, y) {
		return
	}
	b.cells[y*b.width+x] = r
}

// Get returns the glyph at (x, y), 0 outside the grid
func (b *FrameBuffer) Get(x, y int) rune {
	if !b.inBounds(x, y) {
		return 0
	}
	return b.cells[y*b.width+x]
}

// Row returns row y as a slice into the buffer, nil outside the grid
func (b *FrameBuffer) Row(y int) []rune {
	if y < 0 || y >= b.height {
		return nil
	}
	return b.cells[y*b.width : (y+1)*b.width]
}

// Rows returns a copy of the frame, one string per screen row
func (b *FrameBuffer) Rows() []string {
	rows := make([]string, b.height)
	for y := range rows {
		rows[y] = string(b.Row(y))
	}
	return rows
}

// Bounds returns buffer dimensions
func (b *FrameBuffer) Bounds() (int, int) {
	return b.width, b.height
}
