package hk

import (
	"slices"
	"time"
)

// Result is the outcome of Analyze, ready for a presentation layer.
type Result struct {
	// Labels is the canonical label grid.
	Labels *LabelGrid
	// Clusters lists the distinct labels present, ascending, with Unlabeled
	// first when any site is unoccupied.
	Clusters []Label
	// Provisional is the number of provisional labels minted by the raster pass.
	Provisional int
	// Merges is the number of equivalences recorded between distinct roots.
	Merges int
	// Elapsed is the wall time of labeling plus resolution. Advisory only.
	Elapsed time.Duration
}

// Analyze scans grid, resolves the equivalences and summarizes the result.
//
// Errors: as Scan.
// Complexity: O(R×C) plus sorting the distinct labels.
func Analyze(grid Occupancy, opts ...Option) (*Result, error) {
	start := time.Now()
	labels, eq, err := Scan(grid, opts...)
	if err != nil {
		return nil, err
	}
	Resolve(labels, eq, opts...)
	elapsed := time.Since(start)

	return &Result{
		Labels:      labels,
		Clusters:    labels.Distinct(),
		Provisional: eq.Minted(),
		Merges:      eq.Len(),
		Elapsed:     elapsed,
	}, nil
}

// ClusterCount returns the number of clusters, excluding the Unlabeled marker.
func (r *Result) ClusterCount() int {
	n := len(r.Clusters)
	if n > 0 && r.Clusters[0] == Unlabeled {
		n--
	}

	return n
}

// Largest returns the label and size of the biggest cluster. Ties resolve to
// the smaller label. Returns (Unlabeled, 0) when there are no clusters.
func (r *Result) Largest() (Label, int) {
	best, size := Unlabeled, 0
	for l, n := range r.Labels.Sizes() {
		if n > size || (n == size && l < best) {
			best, size = l, n
		}
	}

	return best, size
}

// Spanning returns, ascending, the clusters that touch both the top and the
// bottom row or both the left and the right column.
func (r *Result) Spanning() []Label {
	g := r.Labels
	if g.rows == 0 || g.cols == 0 {
		return nil
	}

	top := make(map[Label]struct{})
	left := make(map[Label]struct{})
	for j := 0; j < g.cols; j++ {
		if l := g.At(0, j); l != Unlabeled {
			top[l] = struct{}{}
		}
	}
	for i := 0; i < g.rows; i++ {
		if l := g.At(i, 0); l != Unlabeled {
			left[l] = struct{}{}
		}
	}

	span := make(map[Label]struct{})
	for j := 0; j < g.cols; j++ {
		l := g.At(g.rows-1, j)
		if _, ok := top[l]; ok {
			span[l] = struct{}{}
		}
	}
	for i := 0; i < g.rows; i++ {
		l := g.At(i, g.cols-1)
		if _, ok := left[l]; ok {
			span[l] = struct{}{}
		}
	}

	out := make([]Label, 0, len(span))
	for l := range span {
		out = append(out, l)
	}
	slices.Sort(out)

	return out
}

// Percolates reports whether at least one cluster spans the lattice.
func (r *Result) Percolates() bool {
	return len(r.Spanning()) > 0
}
