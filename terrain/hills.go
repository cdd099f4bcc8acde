package terrain

import (
	"github.com/lixenwraith/snowscape/parameter"
	"github.com/lixenwraith/snowscape/vmath"
	opensimplex "github.com/ojrac/opensimplex-go"
)

// Hills is a 1D noise height field over the screen columns
// Each column holds a stack of snow glyphs, bottom first
type Hills struct {
	noise opensimplex.Noise
	rng   *vmath.FastRand
	seed  int64

	width  int
	height int

	frequency float64
	amplitude float64
	offset    float64

	content [][]rune
}

// NewHills seeds the noise source and computes every column eagerly
func NewHills(width, height int, frequency, amplitude float64, seed int64) *Hills {
	h := &Hills{
		width:     max(width, 0),
		height:    max(height, 0),
		frequency: frequency,
		amplitude: vmath.ClampFloat(amplitude, 0, 1),
		offset:    parameter.HillOffset,
	}
	h.seedWith(seed)
	h.updateContent()
	return h
}

// Reseed replaces the noise source; every previously derived placement is stale afterwards
func (h *Hills) Reseed(seed int64) {
	h.seedWith(seed)
	h.updateContent()
}

// Resize recomputes content for new dimensions keeping the current seed,
// so the landscape stretches instead of changing shape
func (h *Hills) Resize(width, height int) {
	h.width = max(width, 0)
	h.height = max(height, 0)
	// Glyph stream restarts too, so equal dimensions reproduce equal stacks
	h.rng = vmath.NewFastRand(uint64(h.seed))
	h.updateContent()
}

func (h *Hills) seedWith(seed int64) {
	h.seed = seed
	h.noise = opensimplex.New(seed)
	h.rng = vmath.NewFastRand(uint64(seed))
}

func (h *Hills) updateContent() {
	if cap(h.content) >= h.width {
		h.content = h.content[:h.width]
	} else {
		h.content = make([][]rune, h.width)
	}

	for x := 0; x < h.width; x++ {
		h.content[x] = h.generateStrip(x, h.content[x][:0])
	}
}

// generateStrip builds one column; glyphs are drawn per cell, never cached per height
func (h *Hills) generateStrip(x int, dst []rune) []rune {
	if h.height == 0 {
		return dst
	}
	n := h.columnHeight(x)
	for i := 0; i < n; i++ {
		dst = append(dst, randomGlyph(h.rng))
	}
	return dst
}

// columnHeight maps the noise sample at x to a cell count in [1, height]
func (h *Hills) columnHeight(x int) int {
	normalized := (h.RealHeight(x) + 1) / 2
	scaled := normalized*h.amplitude + (1-h.amplitude)*h.offset
	return vmath.Clamp(int(float64(h.height)*scaled), 1, h.height)
}

// RealHeight returns the raw noise sample at x
// Continuous, so it is the value to compare when searching extrema
func (h *Hills) RealHeight(x int) float64 {
	return h.noise.Eval2(float64(x)*h.frequency, 0)
}

// DisplayHeight returns the rendered glyph count of column x, 0 outside the field
func (h *Hills) DisplayHeight(x int) int {
	if x < 0 || x >= len(h.content) {
		return 0
	}
	return len(h.content[x])
}

func (h *Hills) Width() int        { return h.width }
func (h *Hills) Height() int       { return h.height }
func (h *Hills) Seed() int64       { return h.seed }
func (h *Hills) Content() [][]rune { return h.content }
