package hk

// Resolve rewrites every provisional label in grid to the root of its
// equivalence chain and returns grid. The rewrite happens in place: the
// provisional grid is consumed. Unlabeled sites are left untouched.
//
// A nil eq is treated as an empty map, which makes Resolve(g, nil) the
// identity on an already-resolved grid.
//
// Complexity: O(R×C + K) with path compression, O(R×C·h) without.
func Resolve(grid *LabelGrid, eq *Equivalences, opts ...Option) *LabelGrid {
	if grid == nil || eq.Len() == 0 {
		return grid
	}
	cfg := newConfig(opts...)
	cells := grid.cells

	if !cfg.compress {
		for i, l := range cells {
			if l != Unlabeled {
				cells[i] = eq.Root(l)
			}
		}
		return grid
	}

	roots := eq.flatten()
	for i, l := range cells {
		if l == Unlabeled {
			continue
		}
		// Labels unknown to eq are already canonical.
		if k := eq.ordinal(l); k >= 0 {
			cells[i] = roots[k]
		}
	}

	return grid
}
