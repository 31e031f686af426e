package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// Chance reports true with probability p.
func (r *RNG) Chance(p float64) bool {
	if p <= 0 {
		return false
	}
	return r.r.Float64() < p
}

// State returns a random state in [0, n).
func (r *RNG) State(n int32) int32 {
	if n <= 0 {
		return 0
	}
	return r.r.Int32N(n)
}

// Binary returns 1 with probability density and 0 otherwise.
func (r *RNG) Binary(density float64) int32 {
	if r.Chance(density) {
		return 1
	}
	return 0
}
