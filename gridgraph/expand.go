package gridgraph

// ExpandIsland returns the cheapest chain of sites joining component srcComp
// to component dstComp, in ConnectedComponents order. See Bridge for the
// cost model and the shape of the returned path.
//
// Errors: ErrComponentIndex, ErrNoPath.
func (gg *GridGraph) ExpandIsland(srcComp, dstComp int) (path []int, cost int, err error) {
	comps := gg.ConnectedComponents()
	if srcComp < 0 || srcComp >= len(comps) || dstComp < 0 || dstComp >= len(comps) {
		return nil, 0, ErrComponentIndex
	}
	return gg.Bridge(comps[srcComp], comps[dstComp])
}

// Bridge finds the fewest empty sites that must be occupied so that some
// site of src becomes connected to some site of dst. src and dst are
// row-major site indices, typically whole components.
//
// Entering an occupied site costs 0, entering an empty one costs 1. The
// search runs cost level by level: sites reached at the current cost are
// drained (growing the level through occupied neighbours) before any site
// one empty step further is expanded.
//
// The path runs from a src site to the first dst site reached, both ends
// included; cost is the number of empty sites on it.
//
// Errors: ErrSiteIndex for an index outside the lattice, ErrNoPath when
// either set is empty or dst is unreachable.
// Time: O(W·H·d), Memory: O(W·H).
func (gg *GridGraph) Bridge(src, dst []int) (path []int, cost int, err error) {
	n := gg.Width * gg.Height
	for _, set := range [2][]int{src, dst} {
		for _, i := range set {
			if i < 0 || i >= n {
				return nil, 0, ErrSiteIndex
			}
		}
	}
	if len(src) == 0 || len(dst) == 0 {
		return nil, 0, ErrNoPath
	}

	target := make([]bool, n)
	for _, i := range dst {
		target[i] = true
	}
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = -1
		prev[i] = -1
	}

	level := make([]int, 0, len(src))
	for _, i := range src {
		if dist[i] != 0 {
			dist[i] = 0
			level = append(level, i)
		}
	}

	for cost = 0; len(level) > 0; cost++ {
		var next []int
		// level grows while it is drained.
		for k := 0; k < len(level); k++ {
			u := level[k]
			if dist[u] != cost {
				continue
			}
			if target[u] {
				return gg.trace(prev, u), cost, nil
			}
			ux, uy := gg.Coordinate(u)
			for _, d := range gg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.InBounds(vx, vy) {
					continue
				}
				v := gg.index(vx, vy)
				nd := cost
				if !gg.occupied[v] {
					nd++
				}
				if dist[v] >= 0 && dist[v] <= nd {
					continue
				}
				dist[v], prev[v] = nd, u
				if nd == cost {
					level = append(level, v)
				} else {
					next = append(next, v)
				}
			}
		}
		level = next
	}

	return nil, 0, ErrNoPath
}

// trace walks prev back from end and returns the path in forward order.
func (gg *GridGraph) trace(prev []int, end int) []int {
	var path []int
	for at := end; at >= 0; at = prev[at] {
		path = append(path, at)
	}
	for l, r := 0, len(path)-1; l < r; l, r = l+1, r-1 {
		path[l], path[r] = path[r], path[l]
	}
	return path
}
