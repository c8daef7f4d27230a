// File: gridgraph/example_test.go
package gridgraph_test

import (
	"fmt"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/lattice"
)

////////////////////////////////////////////////////////////////////////////////
// Example: ConnectedComponents
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ConnectedComponents demonstrates how to identify
// clusters of occupied sites in a small lattice.
// Scenario:
//
//   - 1 = occupied, 0 = empty
//   - Conn4: 4-directional adjacency (N/E/S/W)
//   - Expect three clusters, listed in BFS order from their first site.
func ExampleGridGraph_ConnectedComponents() {
	g, _ := lattice.FromInts([][]int{
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 0, 1, 1, 0},
	})
	gg, _ := gridgraph.From(g, gridgraph.Conn4)

	comps := gg.ConnectedComponents()
	fmt.Println("components:", len(comps))
	for i, comp := range comps {
		fmt.Printf("component %d:", i)
		for _, idx := range comp {
			x, y := gg.Coordinate(idx)
			fmt.Printf(" (%d,%d)", x, y)
		}
		fmt.Println()
	}

	// Output:
	// components: 2
	// component 0: (1,0) (2,0) (1,1) (0,1) (0,2)
	// component 1: (4,0) (4,1) (3,1) (3,2) (2,2)
}

////////////////////////////////////////////////////////////////////////////////
// Example: ExpandIsland
////////////////////////////////////////////////////////////////////////////////

// ExampleGridGraph_ExpandIsland computes the fewest empty sites that must be
// occupied to join the two clusters above.
func ExampleGridGraph_ExpandIsland() {
	g, _ := lattice.FromInts([][]int{
		{0, 1, 1, 0, 1},
		{1, 1, 0, 1, 1},
		{1, 0, 1, 1, 0},
	})
	gg, _ := gridgraph.From(g, gridgraph.Conn4)

	_, cost, _ := gg.ExpandIsland(0, 1)
	fmt.Printf("occupy %d site(s)\n", cost)
	// Output:
	// occupy 1 site(s)
}
