package terrain

import (
	"github.com/lixenwraith/snowscape/parameter"
	"github.com/lixenwraith/snowscape/vmath"
)

// Options tunes generation; non-positive frequency and ratio fall back to parameter defaults
// Amplitude 0 is a flat plain and density 0 a calm sky, only negatives fall back
type Options struct {
	Frequency    float64
	Amplitude    float64
	Density      float64
	TerrainRatio float64
}

func (o Options) withDefaults() Options {
	if o.Frequency <= 0 {
		o.Frequency = parameter.HillFrequency
	}
	if o.Amplitude < 0 {
		o.Amplitude = parameter.HillAmplitude
	}
	if o.Density < 0 {
		o.Density = parameter.FlakeDensity
	}
	if o.TerrainRatio <= 0 {
		o.TerrainRatio = parameter.TerrainRatio
	}
	return o
}

// DefaultOptions returns the stock landscape tuning
func DefaultOptions() Options {
	return Options{
		Frequency:    parameter.HillFrequency,
		Amplitude:    parameter.HillAmplitude,
		Density:      parameter.FlakeDensity,
		TerrainRatio: parameter.TerrainRatio,
	}
}

// Manager owns ground, hills and snowfall for one screen
// All three always share the dimensions of the last Regenerate or Resize
type Manager struct {
	opts Options

	ground   *Ground
	hills    *Hills
	snowfall *Snowfall

	width  int
	height int
	seed   int64
}

// NewManager generates a landscape for the given screen size
func NewManager(width, height int, seed int64, opts Options) *Manager {
	m := &Manager{opts: opts.withDefaults()}
	m.Regenerate(width, height, seed)
	return m
}

// BandHeight returns the rows reserved for the terrain band on a screen of the given height
func (m *Manager) BandHeight(screenHeight int) int {
	return int(float64(max(screenHeight, 0)) * m.opts.TerrainRatio)
}

// Regenerate rebuilds every layer from a new seed
func (m *Manager) Regenerate(width, height int, seed int64) {
	m.width, m.height, m.seed = width, height, seed
	band := m.BandHeight(height)

	root := vmath.NewFastRand(uint64(seed))
	m.ground = NewGround(width, band, root.Split())
	m.hills = NewHills(width, band, m.opts.Frequency, m.opts.Amplitude, seed)
	m.snowfall = NewSnowfall(width, height, m.opts.Density, root.Split().Next())
}

// Resize applies new screen dimensions without reseeding
// Hills keep their shape, ground grows or truncates, snowfall reclamps
func (m *Manager) Resize(width, height int) {
	m.width, m.height = width, height
	band := m.BandHeight(height)

	m.ground.Resize(width, band)
	m.hills.Resize(width, band)
	m.snowfall.Resize(width, height)
}

// UpdateSnow advances the snowfall by one tick
func (m *Manager) UpdateSnow() {
	m.snowfall.Update()
}

// HighestPoint returns the column with the greatest raw noise and its display height
// Ties go to the first column scanned
func (m *Manager) HighestPoint() (int, int) {
	return m.extremum(0, m.hills.Width(), func(a, b float64) bool { return a > b })
}

// LowestPoint returns the column with the smallest raw noise and its display height
func (m *Manager) LowestPoint() (int, int) {
	return m.extremum(0, m.hills.Width(), func(a, b float64) bool { return a < b })
}

// LowestPointIn restricts the lowest point search to columns [from, to)
func (m *Manager) LowestPointIn(from, to int) (int, int) {
	return m.extremum(from, to, func(a, b float64) bool { return a < b })
}

// extremum scans [from, to) once, replacing the best only on a strict improvement
func (m *Manager) extremum(from, to int, better func(a, b float64) bool) (int, int) {
	from = vmath.Clamp(from, 0, m.hills.Width())
	to = vmath.Clamp(to, from, m.hills.Width())
	if from == to {
		return from, m.hills.DisplayHeight(from)
	}

	bestX := from
	best := m.hills.RealHeight(from)
	for x := from + 1; x < to; x++ {
		if h := m.hills.RealHeight(x); better(h, best) {
			best, bestX = h, x
		}
	}
	return bestX, m.hills.DisplayHeight(bestX)
}

func (m *Manager) Ground() *Ground         { return m.ground }
func (m *Manager) Hills() *Hills           { return m.hills }
func (m *Manager) Snowfall() *Snowfall     { return m.snowfall }
func (m *Manager) Snowflakes() []Snowflake { return m.snowfall.Flakes() }
func (m *Manager) GroundHeight() int       { return m.ground.Height() }
func (m *Manager) DisplayHeight(x int) int { return m.hills.DisplayHeight(x) }
func (m *Manager) Seed() int64             { return m.seed }
func (m *Manager) Dimensions() (int, int)  { return m.width, m.height }
func (m *Manager) Options() Options        { return m.opts }
