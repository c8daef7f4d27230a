package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/config"
	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/hk"
	"github.com/katalvlaran/percolation/lattice"
)

// errTooFewClusters is returned when the lattice has fewer than two islands to join.
var errTooFewClusters = errors.New("bridge: lattice has fewer than two clusters")

// newBridgeCmd creates the bridge command.
func newBridgeCmd(configPath *string) *cobra.Command {
	var f runFlags
	var diagonal bool

	cmd := &cobra.Command{
		Use:   "bridge",
		Short: "Count the empty sites needed to join the two largest clusters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, *configPath, &f, config.Default())
			if err != nil {
				return err
			}
			g, err := loadLattice(cmd.Context(), cfg.Lattice)
			if err != nil {
				return err
			}
			conn := gridgraph.Conn4
			if diagonal {
				conn = gridgraph.Conn8
			}
			return runBridge(cmd.Context(), cmd.OutOrStdout(), g, conn, labelOptions(cfg.Labeling)...)
		},
	}
	bindLatticeFlags(cmd, &f)
	bindLabelFlags(cmd, &f)
	cmd.Flags().BoolVar(&diagonal, "diagonal", false, "use 8-neighbour contact; clusters touching at a corner count as one")

	return cmd
}

// island is one flood-fill component with the hk clusters it contains.
type island struct {
	sites  []int
	label  hk.Label // smallest canonical label inside
	labels int      // number of distinct hk clusters inside
}

// runBridge labels g, picks the two largest islands under conn and finds the
// cheapest chain of empty sites joining them. With Conn4 every island is one
// hk cluster; with Conn8 clusters touching at a corner form one island.
func runBridge(ctx context.Context, out io.Writer, g *lattice.Grid, conn gridgraph.Connectivity, opts ...hk.Option) error {
	logger := loggerFromContext(ctx)

	res, err := hk.Analyze(g, opts...)
	if err != nil {
		return fmt.Errorf("label clusters: %w", err)
	}
	graph, err := gridgraph.From(g, conn)
	if err != nil {
		return err
	}
	islands := islandsOf(res.Labels, graph.ConnectedComponents())
	if len(islands) < 2 {
		return errTooFewClusters
	}
	a, b := islands[0], islands[1]
	logger.Debug("Bridging", "from", a.label, "to", b.label, "islands", len(islands), "clusters", res.ClusterCount())

	prog := newProgress(logger)
	path, cost, err := graph.Bridge(a.sites, b.sites)
	if err != nil {
		return fmt.Errorf("bridge %d -> %d: %w", a.label, b.label, err)
	}
	prog.done("Bridged clusters", "cost", cost, "path", len(path))

	printSummary(out, "Bridge", []field{
		{"From", a.String()},
		{"To", b.String()},
		{"Sites to occupy", strconv.Itoa(cost)},
		{"Path length", strconv.Itoa(len(path))},
	})
	return nil
}

// islandsOf attaches hk labels to flood-fill components and orders them by
// size, largest first, ties broken by label.
func islandsOf(labels *hk.LabelGrid, comps [][]int) []island {
	cells := labels.Cells()
	out := make([]island, 0, len(comps))
	for _, sites := range comps {
		is := island{sites: sites, label: hk.MaxLabel}
		seen := make(map[hk.Label]struct{})
		for _, idx := range sites {
			l := cells[idx]
			if l < is.label {
				is.label = l
			}
			seen[l] = struct{}{}
		}
		is.labels = len(seen)
		out = append(out, is)
	}
	sort.Slice(out, func(i, j int) bool {
		if len(out[i].sites) != len(out[j].sites) {
			return len(out[i].sites) > len(out[j].sites)
		}
		return out[i].label < out[j].label
	})
	return out
}

func (is island) String() string {
	if is.labels > 1 {
		return fmt.Sprintf("label %d (%d sites, %d clusters)", is.label, len(is.sites), is.labels)
	}
	return fmt.Sprintf("label %d (%d sites)", is.label, len(is.sites))
}
