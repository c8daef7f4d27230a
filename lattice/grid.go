// SPDX-License-Identifier: MIT

package lattice

import (
	"strings"
)

const (
	methodNew       = "New"
	methodFromInts  = "FromInts"
	methodFromBools = "FromBools"
	methodSet       = "Grid.Set"
	methodRandom    = "Random"
)

// Grid is an R×C occupancy lattice. The shape is fixed at construction.
// The zero value is a valid 0×0 grid.
type Grid struct {
	rows, cols int
	cells      []bool // row-major, len == rows*cols
}

// New returns an empty (all sites unoccupied) rows×cols grid.
// Zero-sized grids are valid; negative dimensions yield ErrBadShape.
// Complexity: O(rows*cols).
func New(rows, cols int) (*Grid, error) {
	if rows < 0 || cols < 0 {
		return nil, latticeErrorf(methodNew, ErrBadShape, "%d,%d", rows, cols)
	}
	if rows == 0 || cols == 0 {
		// Normalize degenerate shapes so that Len() == Rows()*Cols() holds.
		return &Grid{rows: rows, cols: cols}, nil
	}

	return &Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}, nil
}

// FromBools deep-copies a rectangular [][]bool.
// An empty outer slice produces a 0×0 grid.
func FromBools(values [][]bool) (*Grid, error) {
	rows, cols, err := shapeOf(methodFromBools, len(values), func(i int) int { return len(values[i]) })
	if err != nil {
		return nil, err
	}
	g, _ := New(rows, cols)
	for i, row := range values {
		copy(g.cells[i*cols:(i+1)*cols], row)
	}

	return g, nil
}

// FromInts deep-copies a rectangular [][]int whose cells are 0 (empty) or 1 (occupied).
func FromInts(values [][]int) (*Grid, error) {
	rows, cols, err := shapeOf(methodFromInts, len(values), func(i int) int { return len(values[i]) })
	if err != nil {
		return nil, err
	}
	g, _ := New(rows, cols)
	for i, row := range values {
		for j, v := range row {
			switch v {
			case 0:
			case 1:
				g.cells[i*cols+j] = true
			default:
				return nil, latticeErrorf(methodFromInts, ErrBadValue, "%d,%d=%d", i, j, v)
			}
		}
	}

	return g, nil
}

// shapeOf validates that every row has the length of the first one.
func shapeOf(method string, rows int, rowLen func(int) int) (int, int, error) {
	if rows == 0 {
		return 0, 0, nil
	}
	cols := rowLen(0)
	for i := 1; i < rows; i++ {
		if rowLen(i) != cols {
			return 0, 0, latticeErrorf(method, ErrNonRectangular, "row %d has %d cols, want %d", i, rowLen(i), cols)
		}
	}

	return rows, cols, nil
}

// Rows returns the number of rows. A nil *Grid reads as 0×0.
func (g *Grid) Rows() int {
	if g == nil {
		return 0
	}

	return g.rows
}

// Cols returns the number of columns.
func (g *Grid) Cols() int {
	if g == nil {
		return 0
	}

	return g.cols
}

// Len returns the number of sites, Rows()*Cols().
func (g *Grid) Len() int {
	if g == nil {
		return 0
	}

	return len(g.cells)
}

// InBounds reports whether (i,j) lies within the grid.
func (g *Grid) InBounds(i, j int) bool {
	return g != nil && i >= 0 && i < g.rows && j >= 0 && j < g.cols
}

// Occupied reports whether site (i,j) is occupied.
// Coordinates outside the grid are reported as unoccupied.
// Complexity: O(1).
func (g *Grid) Occupied(i, j int) bool {
	if !g.InBounds(i, j) {
		return false
	}

	return g.cells[i*g.cols+j]
}

// Set marks site (i,j) as occupied or empty.
func (g *Grid) Set(i, j int, occupied bool) error {
	if !g.InBounds(i, j) {
		return latticeErrorf(methodSet, ErrOutOfRange, "%d,%d", i, j)
	}
	g.cells[i*g.cols+j] = occupied

	return nil
}

// Count returns the number of occupied sites.
func (g *Grid) Count() int {
	n := 0
	for _, c := range g.cells {
		if c {
			n++
		}
	}

	return n
}

// Density returns the occupied fraction of sites, or 0 for an empty grid.
func (g *Grid) Density() float64 {
	if len(g.cells) == 0 {
		return 0
	}

	return float64(g.Count()) / float64(len(g.cells))
}

// Clone returns an independent copy of g.
func (g *Grid) Clone() *Grid {
	c := &Grid{rows: g.rows, cols: g.cols}
	if g.cells != nil {
		c.cells = make([]bool, len(g.cells))
		copy(c.cells, g.cells)
	}

	return c
}

// String renders the grid as rows of space-separated 0/1 digits.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(len(g.cells) * 2)
	for i := 0; i < g.rows; i++ {
		for j := 0; j < g.cols; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			if g.cells[i*g.cols+j] {
				sb.WriteByte('1')
			} else {
				sb.WriteByte('0')
			}
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
