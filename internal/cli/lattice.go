package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/config"
	"github.com/katalvlaran/percolation/gridio"
	"github.com/katalvlaran/percolation/render"
)

const defaultLatticeImage = "lattice_plot.png"

// latticeDefaults is config.Default with the occupancy plot as image.
func latticeDefaults() config.Config {
	cfg := config.Default()
	cfg.Output.Image = defaultLatticeImage
	return cfg
}

// newLatticeCmd creates the lattice command, which renders the raw occupancy.
func newLatticeCmd(configPath *string) *cobra.Command {
	var f runFlags

	cmd := &cobra.Command{
		Use:   "lattice",
		Short: "Generate a random lattice and render its occupancy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *configPath, &f, latticeDefaults())
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			out := cmd.OutOrStdout()
			logger := loggerFromContext(ctx)

			g, err := loadLattice(ctx, cfg.Lattice)
			if err != nil {
				return err
			}

			if img := cfg.Output.Image; img != "" {
				err := createFile(img, func(file *os.File) error {
					return render.RenderOccupancy(file, g, render.WithScale(cfg.Output.Scale))
				})
				if err != nil {
					return fmt.Errorf("write image: %w", err)
				}
				logger.Info("Plot saved", "path", img)
				printWritten(out, "image", img)
			}
			if cfg.Output.Matrix != "" {
				err := createFile(cfg.Output.Matrix, func(file *os.File) error {
					return gridio.WriteOccupancy(file, g)
				})
				if err != nil {
					return fmt.Errorf("write matrix: %w", err)
				}
				printWritten(out, "matrix", cfg.Output.Matrix)
			}
			return nil
		},
	}
	bindLatticeFlags(cmd, &f)
	bindOutputFlags(cmd, &f, defaultLatticeImage)

	return cmd
}
