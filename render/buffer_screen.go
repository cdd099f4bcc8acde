package render

import (
	"bufio"
	"io"

	"github.com/gdamore/tcell/v2"
)

// Surface is the display a frame is flushed to; tcell.Screen satisfies it
type Surface interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Show()
}

// Flush writes the whole buffer to surface row by row, then presents it once
func (b *FrameBuffer) Flush(surface Surface) {
	style := tcell.StyleDefault
	for y := 0; y < b.height; y++ {
		row := b.Row(y)
		for x, r := range row {
			surface.SetContent(x, y, r, nil, style)
		}
	}
	surface.Show()
}

// TextSurface is a Surface writing plain text frames, used when no terminal is attached
type TextSurface struct {
	w      io.Writer
	width  int
	height int
	cells  []rune
	err    error
}

// NewTextSurface creates a text surface of the given size writing to w
func NewTextSurface(w io.Writer, width, height int) *TextSurface {
	width, height = max(width, 0), max(height, 0)
	cells := make([]rune, width*height)
	for i := range cells {
		cells[i] = ' '
	}
	return &TextSurface{w: w, width: width, height: height, cells: cells}
}

// SetContent stores a cell. Combining runes and style are ignored
func (s *TextSurface) SetContent(x, y int, primary rune, combining []rune, style tcell.Style) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y*s.width+x] = primary
}

// Show writes the stored frame, one line per row
func (s *TextSurface) Show() {
	if s.err != nil {
		return
	}
	bw := bufio.NewWriter(s.w)
	for y := 0; y < s.height; y++ {
		bw.WriteString(string(s.cells[y*s.width : (y+1)*s.width]))
		bw.WriteByte('\n')
	}
	s.err = bw.Flush()
}

// Err returns the first write error
func (s *TextSurface) Err() error {
	return s.err
}
