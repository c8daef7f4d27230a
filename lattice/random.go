// SPDX-License-Identifier: MIT

package lattice

import (
	"math"
	"math/rand"
	"time"
)

// Option customizes Random.
type Option func(*randomConfig)

type randomConfig struct {
	rng *rand.Rand // nil until resolved; a time-seeded source is used if unset
}

// WithSeed makes Random reproducible.
func WithSeed(seed int64) Option {
	return func(c *randomConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithRand supplies an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("lattice: WithRand(nil)")
	}
	return func(c *randomConfig) {
		c.rng = r
	}
}

// Random returns a rows×cols lattice where each site is occupied
// independently with probability p.
//
// p = 0 and p = 1 short-circuit to the empty and full lattice without
// consuming randomness.
//
// Errors: ErrBadShape, ErrBadProbability.
// Complexity: O(rows*cols).
func Random(rows, cols int, p float64, opts ...Option) (*Grid, error) {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return nil, latticeErrorf(methodRandom, ErrBadProbability, "p=%g", p)
	}
	g, err := New(rows, cols)
	if err != nil {
		return nil, err
	}

	cfg := randomConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	switch p {
	case 0:
		return g, nil
	case 1:
		for i := range g.cells {
			g.cells[i] = true
		}
		return g, nil
	}
	for i := range g.cells {
		g.cells[i] = cfg.rng.Float64() < p
	}

	return g, nil
}
