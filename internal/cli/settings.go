package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/config"
	"github.com/katalvlaran/percolation/gridio"
	"github.com/katalvlaran/percolation/hk"
	"github.com/katalvlaran/percolation/lattice"
)

// runFlags holds command-line overrides of the TOML configuration.
type runFlags struct {
	rows, cols int
	prob       float64
	seed       int64
	input      string
	step       int
	noCompress bool
	image      string
	matrix     string
	scale      int
}

// bindLatticeFlags registers the flags that choose or generate a lattice.
func bindLatticeFlags(cmd *cobra.Command, f *runFlags) {
	def := config.Default()
	cmd.Flags().IntVar(&f.rows, "rows", def.Lattice.Rows, "lattice rows")
	cmd.Flags().IntVar(&f.cols, "cols", def.Lattice.Cols, "lattice columns")
	cmd.Flags().Float64VarP(&f.prob, "probability", "p", def.Lattice.Probability, "site occupation probability")
	cmd.Flags().Int64Var(&f.seed, "seed", 0, "random seed (0 = time-seeded)")
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "read a 0/1 matrix instead of generating")
}

// bindLabelFlags registers labeling engine flags.
func bindLabelFlags(cmd *cobra.Command, f *runFlags) {
	cmd.Flags().IntVar(&f.step, "step", 1, "provisional label increment")
	cmd.Flags().BoolVar(&f.noCompress, "no-compress", false, "follow equivalence chains per site instead of flattening")
}

// bindOutputFlags registers artifact paths.
func bindOutputFlags(cmd *cobra.Command, f *runFlags, image string) {
	cmd.Flags().StringVarP(&f.image, "image", "o", image, "PNG output path (empty to skip)")
	cmd.Flags().StringVarP(&f.matrix, "matrix", "m", "", "text matrix output path (empty to skip)")
	cmd.Flags().IntVar(&f.scale, "scale", config.Default().Output.Scale, "pixels per lattice site")
}

// resolveConfig layers base, the optional TOML file and explicitly set flags,
// in that order.
func resolveConfig(cmd *cobra.Command, path string, f *runFlags, base config.Config) (config.Config, error) {
	cfg := base
	if path != "" {
		var err error
		if cfg, err = config.LoadOver(path, base); err != nil {
			return config.Config{}, err
		}
	}

	fl := cmd.Flags()
	if fl.Changed("rows") {
		cfg.Lattice.Rows = f.rows
	}
	if fl.Changed("cols") {
		cfg.Lattice.Cols = f.cols
	}
	if fl.Changed("probability") {
		cfg.Lattice.Probability = f.prob
	}
	if fl.Changed("seed") {
		cfg.Lattice.Seed = f.seed
	}
	if fl.Changed("input") {
		cfg.Lattice.Input = f.input
	}
	if fl.Changed("step") {
		cfg.Labeling.Step = f.step
	}
	if fl.Changed("no-compress") {
		cfg.Labeling.PathCompression = !f.noCompress
	}
	if fl.Changed("image") {
		cfg.Output.Image = f.image
	}
	if fl.Changed("matrix") {
		cfg.Output.Matrix = f.matrix
	}
	if fl.Changed("scale") {
		cfg.Output.Scale = f.scale
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

// labelOptions translates the labeling section into hk options.
func labelOptions(cfg config.Labeling) []hk.Option {
	return []hk.Option{
		hk.WithLabelStep(cfg.Step),
		hk.WithPathCompression(cfg.PathCompression),
	}
}

// loadLattice reads cfg.Input or generates a Bernoulli lattice.
func loadLattice(ctx context.Context, cfg config.Lattice) (*lattice.Grid, error) {
	logger := loggerFromContext(ctx)

	if cfg.Input != "" {
		f, err := os.Open(cfg.Input)
		if err != nil {
			return nil, fmt.Errorf("open lattice: %w", err)
		}
		defer f.Close()

		prog := newProgress(logger)
		g, err := gridio.ReadOccupancy(f)
		if err != nil {
			return nil, fmt.Errorf("read lattice %s: %w", cfg.Input, err)
		}
		prog.done("Read lattice", "path", cfg.Input, "rows", g.Rows(), "cols", g.Cols())
		return g, nil
	}

	var opts []lattice.Option
	if cfg.Seed != 0 {
		opts = append(opts, lattice.WithSeed(cfg.Seed))
	}
	prog := newProgress(logger)
	g, err := lattice.Random(cfg.Rows, cfg.Cols, cfg.Probability, opts...)
	if err != nil {
		return nil, fmt.Errorf("generate lattice: %w", err)
	}
	prog.done("Generated lattice", "rows", g.Rows(), "cols", g.Cols(), "p", cfg.Probability)
	logger.Debug("Lattice density", "occupied", g.Count(), "density", g.Density())
	return g, nil
}

// createFile opens path for writing and hands it to write.
func createFile(path string, write func(*os.File) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return write(f)
}
