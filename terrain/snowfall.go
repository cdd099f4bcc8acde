package terrain

import (
	"github.com/lixenwraith/snowscape/vmath"
)

// Snowflake is a single falling particle
// X may leave the screen for one tick before it is culled
type Snowflake struct {
	Glyph rune
	X     int
	Y     int
}

// Snowfall owns the live flakes and their spawn/advance/cull lifecycle
type Snowfall struct {
	flakes  []Snowflake
	rng     *vmath.FastRand
	width   int
	depth   int
	density float64
}

// NewSnowfall creates an empty snowfall; depth is the lowest row a flake may reach
func NewSnowfall(width, depth int, density float64, seed uint64) *Snowfall {
	return &Snowfall{
		flakes:  make([]Snowflake, 0, max(width, 0)*4),
		rng:     vmath.NewFastRand(seed),
		width:   max(width, 0),
		depth:   max(depth, 0),
		density: vmath.ClampFloat(density, 0, 1),
	}
}

// Update runs one tick: cull stale, advance survivors, spawn new
// Culling first keeps flakes from rendering a frame past their bounds,
// spawning last keeps new flakes on the top row
func (s *Snowfall) Update() {
	s.cull()

	for i := range s.flakes {
		s.flakes[i].Y++
		s.flakes[i].X += s.rng.Step()
	}

	for x := 0; x < s.width; x++ {
		if s.rng.Chance(s.density) {
			s.flakes = append(s.flakes, Snowflake{
				Glyph: randomGlyph(s.rng),
				X:     x,
				Y:     0,
			})
		}
	}
}

// cull removes flakes below depth or outside [0, width] in place
func (s *Snowfall) cull() {
	live := s.flakes[:0]
	for _, f := range s.flakes {
		if s.inBounds(f) {
			live = append(live, f)
		}
	}
	// Clear tail so dropped flakes do not linger in the backing array
	clear(s.flakes[len(live):])
	s.flakes = live
}

func (s *Snowfall) inBounds(f Snowflake) bool {
	return f.Y >= 0 && f.Y <= s.depth && f.X >= 0 && f.X <= s.width
}

// Resize updates bounds and culls immediately, so no flake is drawn at a stale coordinate
func (s *Snowfall) Resize(width, depth int) {
	s.width = max(width, 0)
	s.depth = max(depth, 0)
	s.cull()
}

// Bound is the steady-state ceiling on live flakes: one spawn per column per tick,
// each alive for depth+2 ticks (rows 0..depth plus the advance past depth before its cull)
func (s *Snowfall) Bound() int {
	return s.width * (s.depth + 2)
}

func (s *Snowfall) Flakes() []Snowflake { return s.flakes }
func (s *Snowfall) Len() int            { return len(s.flakes) }
func (s *Snowfall) Width() int          { return s.width }
func (s *Snowfall) Depth() int          { return s.depth }
func (s *Snowfall) Density() float64    { return s.density }
