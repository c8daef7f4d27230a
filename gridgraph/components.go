package gridgraph

// ConnectedComponents finds all clusters of occupied sites according to
// gg.Conn connectivity, by breadth-first flood fill.
// Returns a slice of components; each component is a slice of cell‐indices
// (row‐major) in BFS discovery order. Components are ordered by their first
// cell in row-major order.
//
// To convert an index back to (x,y), use Coordinate(idx).
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	total := gg.Width * gg.Height
	seen := make([]bool, total)
	var comps [][]int
	offsets := gg.neighborOffsets

	for i0 := 0; i0 < total; i0++ {
		if !gg.occupied[i0] || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true

		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range offsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.Occupied(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// ComponentIndex returns, for every cell, the index of its component in
// ConnectedComponents order, or -1 for empty sites.
//
// Time: O(W·H·d), Memory: O(W·H).
func (gg *GridGraph) ComponentIndex() []int {
	out := make([]int, gg.Width*gg.Height)
	for i := range out {
		out[i] = -1
	}
	for c, comp := range gg.ConnectedComponents() {
		for _, idx := range comp {
			out[idx] = c
		}
	}
	return out
}
