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

// IntRange returns a random int in [lo, hi].
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Source exposes the underlying rand.Rand for advanced use.
func (r *RNG) Source() *rand.Rand { return r.r }

// FillBernoulli sets each cell to 1 with probability p and 0 otherwise.
// p is clamped to [0, 1].
func FillBernoulli(r *rand.Rand, buf []uint8, p float64) {
	p = min(max(p, 0), 1)
	for i := range buf {
		buf[i] = 0
		if r.Float64() < p {
			buf[i] = 1
		}
	}
}

// Seed builds a grid of the given shape whose cells are independently alive
// with probability p.
func Seed(rng *RNG, p float64, shape ...int) (*Grid, error) {
	g, err := NewGrid(shape...)
	if err != nil {
		return nil, err
	}
	FillBernoulli(rng.Source(), g.Cells(), p)
	return g, nil
}
