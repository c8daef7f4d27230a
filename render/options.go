package render

import (
	"fmt"
	"math/rand"
)

// Option customizes rendering.
type Option func(*config)

type config struct {
	scale int        // pixels per lattice site
	rng   *rand.Rand // colour shuffle
}

const (
	defaultScale = 2
	defaultSeed  = 42
)

func newConfig(opts ...Option) config {
	cfg := config{scale: defaultScale}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.rng == nil {
		cfg.rng = rand.New(rand.NewSource(defaultSeed))
	}
	return cfg
}

// WithScale sets the edge length in pixels of one site. Panics if px < 1.
func WithScale(px int) Option {
	if px < 1 {
		panic(fmt.Sprintf("render: WithScale(%d)", px))
	}
	return func(c *config) { c.scale = px }
}

// WithSeed fixes the colour assignment.
func WithSeed(seed int64) Option {
	return func(c *config) { c.rng = rand.New(rand.NewSource(seed)) }
}
