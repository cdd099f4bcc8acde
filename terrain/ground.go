package terrain

import "github.com/lixenwraith/snowscape/vmath"

// Ground is the flat snow band at the bottom of the screen
// Content is row-major from the bottom row up, exactly width*height glyphs
type Ground struct {
	rng     *vmath.FastRand
	width   int
	height  int
	content []rune
}

// NewGround fills a width*height band with random glyphs
func NewGround(width, height int, rng *vmath.FastRand) *Ground {
	g := &Ground{rng: rng}
	g.Resize(width, height)
	return g
}

// Resize appends random glyphs on growth and truncates on shrink
// Existing glyphs are kept, so the pattern is not reproducible across grow/shrink cycles
func (g *Ground) Resize(width, height int) {
	g.width = max(width, 0)
	g.height = max(height, 0)

	count := g.width * g.height
	switch {
	case len(g.content) > count:
		g.content = g.content[:count]
	case len(g.content) < count:
		for i := len(g.content); i < count; i++ {
			g.content = append(g.content, randomGlyph(g.rng))
		}
	}
}

// At returns the glyph at column x, row counted from the bottom
func (g *Ground) At(x, row int) (rune, bool) {
	if x < 0 || x >= g.width || row < 0 || row >= g.height {
		return 0, false
	}
	return g.content[row*g.width+x], true
}

func (g *Ground) Width() int      { return g.width }
func (g *Ground) Height() int     { return g.height }
func (g *Ground) Content() []rune { return g.content }
