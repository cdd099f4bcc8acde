package vmath

import "math"

// --- Randomness ---

// FastRand is a xorshift64 generator (13, 17, 5)
// Each component owns its instance so generation stays reproducible per seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

func (r *FastRand) Intn(n int) int {
	if n <= 0 {
		return 0
	}
	return int(r.Next() % uint64(n))
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Chance reports true with probability p; p <= 0 never fires, p >= 1 always fires
func (r *FastRand) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return r.Float64() < p
}

// Step returns -1, 0 or +1 uniformly
func (r *FastRand) Step() int {
	return r.Intn(3) - 1
}

// Int63 returns a non-negative int64, used to derive noise seeds
func (r *FastRand) Int63() int64 {
	return int64(r.Next() >> 1)
}

// Split derives an independent child generator
func (r *FastRand) Split() *FastRand {
	// splitmix64 finalizer decorrelates child streams from the parent
	z := r.Next() + 0x9E3779B97F4A7C15
	z = (z ^ (z >> 30)) * 0xBF58476D1CE4E5B9
	z = (z ^ (z >> 27)) * 0x94D049BB133111EB
	return NewFastRand(z ^ (z >> 31))
}

// --- Integer helpers ---

// SatSub returns a-b clamped at zero
func SatSub(a, b int) int {
	if b >= a {
		return 0
	}
	return a - b
}

// Clamp limits v to [lo, hi]
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// ClampFloat limits v to [lo, hi], NaN collapses to lo
func ClampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
