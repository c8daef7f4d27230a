package hk

import (
	"math"
	"slices"
	"strconv"
	"strings"
)

// Label is a cluster identifier. Positive values are cluster labels,
// Unlabeled marks an unoccupied site.
//
// int32 keeps a 6000×6000 label grid at 144 MB; at most ⌈R·C/2⌉ seeds can
// be minted, which fits comfortably for every step up to 100.
type Label int32

const (
	// Unlabeled is the sentinel held by every unoccupied site.
	Unlabeled Label = -1

	// MaxLabel is the largest label that can be minted.
	MaxLabel = Label(math.MaxInt32)
)

// Occupancy is the read-only lattice consumed by Scan.
// *lattice.Grid satisfies it.
type Occupancy interface {
	Rows() int
	Cols() int
	Occupied(i, j int) bool
}

// LabelGrid is an R×C grid of labels in flat row-major storage.
type LabelGrid struct {
	rows, cols int
	cells      []Label
}

// newLabelGrid allocates a rows×cols grid with every cell Unlabeled.
func newLabelGrid(rows, cols int) *LabelGrid {
	cells := make([]Label, rows*cols)
	for i := range cells {
		cells[i] = Unlabeled
	}

	return &LabelGrid{rows: rows, cols: cols, cells: cells}
}

// Rows returns the number of rows.
func (g *LabelGrid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *LabelGrid) Cols() int { return g.cols }

// At returns the label at (i,j), or Unlabeled outside the grid.
func (g *LabelGrid) At(i, j int) Label {
	if i < 0 || i >= g.rows || j < 0 || j >= g.cols {
		return Unlabeled
	}

	return g.cells[i*g.cols+j]
}

// Cells exposes the row-major backing slice. Callers must not modify it.
func (g *LabelGrid) Cells() []Label { return g.cells }

// Clone returns an independent copy of g.
func (g *LabelGrid) Clone() *LabelGrid {
	return &LabelGrid{rows: g.rows, cols: g.cols, cells: slices.Clone(g.cells)}
}

// Sizes maps every non-sentinel label to the number of sites carrying it.
// On a resolved grid this is the cluster size distribution.
func (g *LabelGrid) Sizes() map[Label]int {
	sizes := make(map[Label]int)
	for _, l := range g.cells {
		if l != Unlabeled {
			sizes[l]++
		}
	}

	return sizes
}

// ClusterCount returns the number of distinct non-sentinel labels.
func (g *LabelGrid) ClusterCount() int {
	return len(g.Sizes())
}

// Distinct returns the labels present in ascending order. Unlabeled is
// included (and therefore first) when the grid has any unoccupied site.
func (g *LabelGrid) Distinct() []Label {
	seen := make(map[Label]struct{})
	for _, l := range g.cells {
		seen[l] = struct{}{}
	}
	out := make([]Label, 0, len(seen))
	for l := range seen {
		out = append(out, l)
	}
	slices.Sort(out)

	return out
}

// String renders the grid as space-separated rows, one per line.
func (g *LabelGrid) String() string {
	var sb strings.Builder
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteString(strconv.Itoa(int(g.cells[i*g.cols+j])))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
