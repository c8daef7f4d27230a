package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/config"
	"github.com/katalvlaran/percolation/gridio"
	"github.com/katalvlaran/percolation/hk"
	"github.com/katalvlaran/percolation/render"
)

// newLabelCmd creates the label command: lattice → Hoshen-Kopelman → PNG and matrix.
func newLabelCmd(configPath *string) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "label",
		Short: "Label the clusters of a lattice and render them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *configPath, &f, config.Default())
			if err != nil {
				return err
			}
			return runLabel(cmd.Context(), cmd.OutOrStdout(), cfg)
		},
	}
	bindLatticeFlags(cmd, &f)
	bindLabelFlags(cmd, &f)
	bindOutputFlags(cmd, &f, config.Default().Output.Image)

	return cmd
}

// runLabel executes one labeling run and writes the configured artifacts.
func runLabel(ctx context.Context, out io.Writer, cfg config.Config) error {
	runID := uuid.NewString()
	logger := loggerFromContext(ctx).With("run", runID[:8])
	ctx = withLogger(ctx, logger)

	g, err := loadLattice(ctx, cfg.Lattice)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	logger.Debug("Labeling", "step", cfg.Labeling.Step, "compress", cfg.Labeling.PathCompression)
	res, err := hk.Analyze(g, labelOptions(cfg.Labeling)...)
	if err != nil {
		return fmt.Errorf("label clusters: %w", err)
	}
	largest, size := res.Largest()
	logger.Info("Labeled clusters",
		"clusters", res.ClusterCount(),
		"provisional", res.Provisional,
		"merges", res.Merges,
		"elapsed", res.Elapsed)
	if err := ctx.Err(); err != nil {
		return err
	}

	if cfg.Output.Image != "" {
		meta := render.Meta{
			Elapsed:     res.Elapsed,
			Rows:        g.Rows(),
			Cols:        g.Cols(),
			Probability: cfg.Lattice.Probability,
			RunID:       runID,
		}
		opts := []render.Option{render.WithScale(cfg.Output.Scale)}
		if cfg.Lattice.Seed != 0 {
			opts = append(opts, render.WithSeed(cfg.Lattice.Seed))
		}
		prog := newProgress(logger)
		err := createFile(cfg.Output.Image, func(f *os.File) error {
			return render.Render(f, res.Labels, meta, opts...)
		})
		if err != nil {
			return fmt.Errorf("write image: %w", err)
		}
		prog.done("Rendered clusters", "path", cfg.Output.Image)
		printWritten(out, "image", cfg.Output.Image)
	}

	if cfg.Output.Matrix != "" {
		prog := newProgress(logger)
		err := createFile(cfg.Output.Matrix, func(f *os.File) error {
			return gridio.WriteLabels(f, res.Labels)
		})
		if err != nil {
			return fmt.Errorf("write matrix: %w", err)
		}
		prog.done("Wrote label matrix", "path", cfg.Output.Matrix)
		printWritten(out, "matrix", cfg.Output.Matrix)
	}

	printSummary(out, "Cluster labeling", []field{
		{"Run", runID},
		{"Lattice", fmt.Sprintf("%d x %d", g.Rows(), g.Cols())},
		{"Probability", strconv.FormatFloat(cfg.Lattice.Probability, 'g', -1, 64)},
		{"Occupied", strconv.Itoa(g.Count())},
		{"Clusters", strconv.Itoa(res.ClusterCount())},
		{"Largest", fmt.Sprintf("label %d (%d sites)", largest, size)},
		{"Percolates", strconv.FormatBool(res.Percolates())},
		{"Execution time", res.Elapsed.String()},
	})
	return nil
}
