package terrain

import (
	"github.com/lixenwraith/snowscape/parameter"
	"github.com/lixenwraith/snowscape/vmath"
)

// randomGlyph draws one of the snow density glyphs with equal weight
func randomGlyph(rng *vmath.FastRand) rune {
	return parameter.SnowGlyphs[rng.Intn(len(parameter.SnowGlyphs))]
}

// IsSnowGlyph reports whether r belongs to the snow alphabet
func IsSnowGlyph(r rune) bool {
	for _, g := range parameter.SnowGlyphs {
		if g == r {
			return true
		}
	}
	return false
}
