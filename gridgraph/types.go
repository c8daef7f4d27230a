// Package gridgraph defines core types, options, and sentinel errors
// for the gridgraph subpackage of github.com/katalvlaran/percolation.
package gridgraph

import (
	"errors"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrNilGrid indicates a nil lattice was passed to New.
	ErrNilGrid = errors.New("gridgraph: lattice must not be nil")
	// ErrBadShape indicates a lattice reporting negative dimensions.
	ErrBadShape = errors.New("gridgraph: lattice dimensions must be >= 0")
	// ErrComponentIndex indicates a requested component index is out of range.
	ErrComponentIndex = errors.New("gridgraph: component index out of range")
	// ErrSiteIndex indicates a site index outside the lattice.
	ErrSiteIndex = errors.New("gridgraph: site index out of range")
	// ErrNoPath indicates no conversion path exists between two components.
	ErrNoPath = errors.New("gridgraph: no path between specified components")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

// Lattice is the occupancy source read by New. Occupied takes (row, col).
// *lattice.Grid satisfies it.
type Lattice interface {
	Rows() int
	Cols() int
	Occupied(row, col int) bool
}

// GridOptions contains tunable parameters for grid analysis.
type GridOptions struct {
	// Conn chooses 4- or 8-directional connectivity.
	Conn Connectivity
}

// DefaultGridOptions returns a GridOptions with default settings: Conn=Conn4.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Conn: Conn4,
	}
}

// GridGraph treats an occupancy lattice as a graph whose vertices are sites
// and whose edges join neighboring sites. It is immutable once built.
// Width and Height define dimensions; occupied[y*Width+x] holds site state.
// neighborOffsets is precomputed for efficient adjacency lookups.
type GridGraph struct {
	Width, Height   int
	Conn            Connectivity
	occupied        []bool
	neighborOffsets [][2]int
}
