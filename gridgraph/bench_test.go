package gridgraph_test

import (
	"testing"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/lattice"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a random
// 1000×1000 lattice at p=0.59 (near the site-percolation threshold).
// Complexity: O(W×H×d)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	g, err := lattice.Random(n, n, 0.59, lattice.WithSeed(42))
	if err != nil {
		b.Fatalf("setup Random failed: %v", err)
	}
	gg, err := gridgraph.From(g, gridgraph.Conn4)
	if err != nil {
		b.Fatalf("setup From failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = gg.ConnectedComponents()
	}
}

// BenchmarkExpandIsland measures ExpandIsland on a 1000×1000 lattice with
// two single-site clusters at opposite corners.
// Complexity: O(W×H×d)
func BenchmarkExpandIsland(b *testing.B) {
	const n = 1000
	g, _ := lattice.New(n, n)
	_ = g.Set(0, 0, true)
	_ = g.Set(n-1, n-1, true)

	gg, err := gridgraph.From(g, gridgraph.Conn8)
	if err != nil {
		b.Fatalf("setup From failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = gg.ExpandIsland(0, 1)
	}
}
