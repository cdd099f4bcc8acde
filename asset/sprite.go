package asset

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// Transparent marks sprite cells that never overwrite the layers below
const Transparent rune = 0

// Kind identifies a decorative object
type Kind uint8

const (
	KindTree Kind = iota
	KindSnowman
	KindHouse
)

func (k Kind) String() string {
	switch k {
	case KindTree:
		return "tree"
	case KindSnowman:
		return "snowman"
	case KindHouse:
		return "house"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Sprite is a normalized multi-line art asset
// Rows are top to bottom, each exactly Width cells, padding replaced by Transparent
type Sprite struct {
	Kind   Kind
	Rows   [][]rune
	Width  int
	Height int

	// Offset is the column inside the sprite that stands over its anchor column
	Offset int

	// ContactRow counts rows from the bottom to the first row touching the ground
	// at Offset; rows below it hang into the terrain
	ContactRow int
}

// Load normalizes art into a Sprite
// Leading and trailing spaces of each row become Transparent, interior spaces stay opaque.
// A negative offset centers the sprite
func Load(kind Kind, art string, offset int) (*Sprite, error) {
	lines := strings.Split(strings.Trim(art, "\n"), "\n")
	if len(lines) == 0 || (len(lines) == 1 && lines[0] == "") {
		return nil, fmt.Errorf("sprite %s: empty art", kind)
	}

	width := 0
	for i, line := range lines {
		for _, r := range line {
			if runewidth.RuneWidth(r) != 1 {
				return nil, fmt.Errorf("sprite %s: row %d: rune %q is not single-cell", kind, i, r)
			}
		}
		width = max(width, runewidth.StringWidth(line))
	}

	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = normalizeRow(line, width)
	}

	if offset < 0 {
		offset = width / 2
	}
	if offset >= width {
		return nil, fmt.Errorf("sprite %s: offset %d outside width %d", kind, offset, width)
	}

	s := &Sprite{
		Kind:   kind,
		Rows:   rows,
		Width:  width,
		Height: len(rows),
		Offset: offset,
	}
	s.ContactRow = s.contactRow()
	return s, nil
}

// MustLoad is Load for compiled-in art
func MustLoad(kind Kind, art string, offset int) *Sprite {
	s, err := Load(kind, art, offset)
	if err != nil {
		panic(err)
	}
	return s
}

func normalizeRow(line string, width int) []rune {
	src := []rune(line)
	row := make([]rune, width)

	first := len(src)
	last := -1
	for i, r := range src {
		if r != ' ' {
			first = min(first, i)
			last = i
		}
	}

	for i := range row {
		if i >= first && i <= last {
			row[i] = src[i]
		} else {
			row[i] = Transparent
		}
	}
	return row
}

// contactRow walks up from the bottom row at Offset until it meets an opaque cell
func (s *Sprite) contactRow() int {
	for up := 0; up < s.Height; up++ {
		if s.Rows[s.Height-1-up][s.Offset] != Transparent {
			return up
		}
	}
	return 0
}

// Cell returns the glyph at sprite-local (col, row), Transparent outside the art
func (s *Sprite) Cell(col, row int) rune {
	if row < 0 || row >= s.Height || col < 0 || col >= s.Width {
		return Transparent
	}
	return s.Rows[row][col]
}
