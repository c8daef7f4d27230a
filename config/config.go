// Package config loads run settings for the percolate command from TOML.
//
// A file only needs the keys it wants to change; everything else keeps the
// value from Default:
//
//	[lattice]
//	rows = 6000
//	cols = 6000
//	probability = 0.4
//	seed = 42
//
//	[labeling]
//	step = 10
//	path_compression = true
//
//	[output]
//	image = "cluster_labeling.png"
//	matrix = "cluster_matrix.txt"
//	scale = 2
package config

import (
	"errors"
	"fmt"
	"math"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/percolation/hk"
)

// ErrInvalid indicates a configuration value outside its allowed range.
var ErrInvalid = errors.New("config: invalid value")

// Config is the full set of run settings.
type Config struct {
	Lattice  Lattice  `toml:"lattice"`
	Labeling Labeling `toml:"labeling"`
	Output   Output   `toml:"output"`
}

// Lattice controls how the occupancy grid is produced.
type Lattice struct {
	Rows        int     `toml:"rows"`
	Cols        int     `toml:"cols"`
	Probability float64 `toml:"probability"`
	Seed        int64   `toml:"seed"`  // 0 means time-seeded
	Input       string  `toml:"input"` // read a 0/1 matrix instead of generating
}

// Labeling controls the cluster labeling engine.
type Labeling struct {
	Step            int  `toml:"step"`
	PathCompression bool `toml:"path_compression"`
}

// Output names the artifacts written after labeling. Empty paths are skipped.
type Output struct {
	Image  string `toml:"image"`
	Matrix string `toml:"matrix"`
	Scale  int    `toml:"scale"`
}

// Default mirrors the classic study: a 6000×6000 lattice at p = 0.4.
func Default() Config {
	return Config{
		Lattice: Lattice{
			Rows:        6000,
			Cols:        6000,
			Probability: 0.4,
		},
		Labeling: Labeling{
			Step:            1,
			PathCompression: true,
		},
		Output: Output{
			Image: "cluster_labeling.png",
			Scale: 2,
		},
	}
}

// Load decodes the TOML file at path over Default and validates the result.
// Unknown keys are rejected so typos do not pass silently.
func Load(path string) (Config, error) {
	return LoadOver(path, Default())
}

// LoadOver is Load with base in place of Default, for callers whose
// defaults differ from the label run.
func LoadOver(path string, base Config) (Config, error) {
	cfg := base
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: decode %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("config: %s: unknown key %q: %w", path, undecoded[0].String(), ErrInvalid)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks ranges. Rows and Cols are ignored when Input is set.
func (c Config) Validate() error {
	if c.Lattice.Input == "" && (c.Lattice.Rows < 0 || c.Lattice.Cols < 0) {
		return fmt.Errorf("lattice size %dx%d: %w", c.Lattice.Rows, c.Lattice.Cols, ErrInvalid)
	}
	if p := c.Lattice.Probability; math.IsNaN(p) || p < 0 || p > 1 {
		return fmt.Errorf("lattice probability %g: %w", p, ErrInvalid)
	}
	if c.Labeling.Step < 1 || int64(c.Labeling.Step) > int64(hk.MaxLabel) {
		return fmt.Errorf("labeling step %d: %w", c.Labeling.Step, ErrInvalid)
	}
	if c.Output.Scale < 1 {
		return fmt.Errorf("output scale %d: %w", c.Output.Scale, ErrInvalid)
	}
	return nil
}
