package hk

import "fmt"

// Option customizes Scan, Resolve and Analyze.
type Option func(*config)

type config struct {
	step     Label // provisional label increment, >= 1
	compress bool  // flatten the equivalence forest before the rewrite pass
}

const (
	defaultStep     = Label(1)
	defaultCompress = true
)

func newConfig(opts ...Option) config {
	cfg := config{step: defaultStep, compress: defaultCompress}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLabelStep sets the increment between consecutive provisional labels.
// Any step yields the same partition; a step of 10 reproduces the label
// values of the classic percolation scripts. Panics if step < 1.
func WithLabelStep(step int) Option {
	if step < 1 || int64(step) > int64(MaxLabel) {
		panic(fmt.Sprintf("hk: WithLabelStep(%d)", step))
	}
	return func(c *config) {
		c.step = Label(step)
	}
}

// WithPathCompression toggles flattening of the equivalence forest during
// Resolve. Output is identical either way; disabling it follows every chain
// per site.
func WithPathCompression(on bool) Option {
	return func(c *config) {
		c.compress = on
	}
}
