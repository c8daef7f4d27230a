// Package gridgraph provides utilities to treat a 2D occupancy lattice
// as a graph. It supports:
//
//   - Four- or eight-connectivity (Conn4 or Conn8)
//   - Identification of connected components of occupied sites by flood fill
//   - Minimal bridging: the fewest empty sites to occupy to join two clusters
//
// Coordinates follow the image convention: x is the column, y is the row.
package gridgraph

// NewGridGraph snapshots the lattice into a GridGraph.
// It copies the occupancy so later mutation of the source has no effect.
// Returns ErrNilGrid for a nil lattice and ErrBadShape for negative dimensions.
// Zero-sized lattices are valid and have no components.
// Algorithmic complexity: O(W×H) time and memory.
func NewGridGraph(src Lattice, opts GridOptions) (*GridGraph, error) {
	if src == nil {
		return nil, ErrNilGrid
	}
	h, w := src.Rows(), src.Cols()
	if h < 0 || w < 0 {
		return nil, ErrBadShape
	}
	occupied := make([]bool, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			occupied[y*w+x] = src.Occupied(y, x)
		}
	}
	// Precompute neighbor offsets based on connectivity
	var offsets [][2]int
	if opts.Conn == Conn8 {
		offsets = [][2]int{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
	} else {
		offsets = [][2]int{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	}

	return &GridGraph{
		Width:           w,
		Height:          h,
		Conn:            opts.Conn,
		occupied:        occupied,
		neighborOffsets: offsets,
	}, nil
}

// From is shorthand for NewGridGraph with the given connectivity.
func From(src Lattice, conn Connectivity) (*GridGraph, error) {
	return NewGridGraph(src, GridOptions{Conn: conn})
}

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (gg *GridGraph) InBounds(x, y int) bool {
	return x >= 0 && x < gg.Width && y >= 0 && y < gg.Height
}

// Occupied reports whether site (x,y) is occupied; false outside the grid.
func (gg *GridGraph) Occupied(x, y int) bool {
	return gg.InBounds(x, y) && gg.occupied[gg.index(x, y)]
}

// NeighborOffsets returns the precomputed neighbor offsets slice.
// Should be used in all adjacency traversals to avoid branching.
// Complexity: O(1).
func (gg *GridGraph) NeighborOffsets() [][2]int {
	return gg.neighborOffsets
}

// index maps (x,y) to a row‑major index: y*Width + x.
// Complexity: O(1).
func (gg *GridGraph) index(x, y int) int {
	return y*gg.Width + x
}

// Coordinate converts a row‑major index back to (x,y).
// Complexity: O(1).
func (gg *GridGraph) Coordinate(idx int) (x, y int) {
	return idx % gg.Width, idx / gg.Width
}
