package hk

import "fmt"

// Scan performs the raster pass of the Hoshen–Kopelman method.
//
// Sites are visited row-major. For an occupied site the already-visited
// neighbours left (i,j-1) and top (i-1,j) are inspected:
//
//   - neither labeled: mint a new provisional label (cluster seed);
//   - exactly one labeled: inherit it;
//   - both labeled and equal: inherit it;
//   - both labeled and different: inherit the smaller one and record that
//     the two labels are equivalent.
//
// The returned grid holds provisional labels; pass it with the returned
// Equivalences to Resolve. Unoccupied sites hold Unlabeled.
//
// Errors: ErrInvalidInput, ErrLabelSpaceExhausted.
// Complexity: O(R×C) amortized time, O(R×C + K) memory.
func Scan(grid Occupancy, opts ...Option) (*LabelGrid, *Equivalences, error) {
	if grid == nil {
		return nil, nil, fmt.Errorf("Scan: nil occupancy: %w", ErrInvalidInput)
	}
	rows, cols := grid.Rows(), grid.Cols()
	if rows < 0 || cols < 0 {
		return nil, nil, fmt.Errorf("Scan: shape %dx%d: %w", rows, cols, ErrInvalidInput)
	}
	cfg := newConfig(opts...)

	out := newLabelGrid(rows, cols)
	eq := newEquivalences(cfg.step)
	cells := out.cells

	for i := 0; i < rows; i++ {
		row := i * cols
		for j := 0; j < cols; j++ {
			if !grid.Occupied(i, j) {
				continue
			}
			off := row + j
			left, top := Unlabeled, Unlabeled
			if j > 0 {
				left = cells[off-1]
			}
			if i > 0 {
				top = cells[off-cols]
			}

			switch {
			case left == Unlabeled && top == Unlabeled:
				l, err := eq.mint()
				if err != nil {
					return nil, nil, fmt.Errorf("Scan(%d,%d): %w", i, j, err)
				}
				cells[off] = l
			case top == Unlabeled:
				cells[off] = left
			case left == Unlabeled, left == top:
				cells[off] = top
			default:
				small, large := min(left, top), max(left, top)
				cells[off] = small
				eq.union(large, small)
			}
		}
	}

	return out, eq, nil
}
