package parameter

// Terrain Generation
const (
	// TerrainRatio is the share of screen rows reserved for the terrain band
	TerrainRatio = 0.3

	// HillFrequency scales column index before sampling noise
	HillFrequency = 0.02

	// HillAmplitude blends noise against HillOffset; 1.0 is pure noise, 0.0 is flat
	HillAmplitude = 0.6

	// HillOffset is the flat baseline the noise is blended with
	HillOffset = 0.5

	// FlakeDensity is the per-column spawn probability each tick
	FlakeDensity = 0.15
)

// SnowGlyphs is the snow density alphabet shared by ground, hills and flakes
var SnowGlyphs = [3]rune{'.', '+', '*'}

// BlankGlyph fills cleared frame cells
const BlankGlyph = ' '
