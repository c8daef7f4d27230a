package hk_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/hk"
	"github.com/katalvlaran/percolation/lattice"
)

// TestResolve_Idempotent applies Resolve to its own output with an empty map.
func TestResolve_Idempotent(t *testing.T) {
	g, err := lattice.Random(80, 60, 0.5, lattice.WithSeed(11))
	require.NoError(t, err)

	labels, eq, err := hk.Scan(g)
	require.NoError(t, err)
	once := hk.Resolve(labels, eq).Clone()
	twice := hk.Resolve(once.Clone(), nil)

	assert.Equal(t, once.Cells(), twice.Cells())
}

// TestResolve_InPlace checks the provisional grid is rewritten and returned.
func TestResolve_InPlace(t *testing.T) {
	g := mustLattice(t, [][]int{{1, 0, 1}, {1, 1, 1}})
	labels, eq, err := hk.Scan(g)
	require.NoError(t, err)

	out := hk.Resolve(labels, eq)
	assert.Same(t, labels, out)
	assert.Equal(t, hk.Label(1), labels.At(0, 2))
}

// TestResolve_CompressionEquivalent compares chain following with the
// flattened forest on lattices near the percolation threshold.
func TestResolve_CompressionEquivalent(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		g, err := lattice.Random(64, 64, 0.6, lattice.WithSeed(seed))
		require.NoError(t, err)

		a, eqA, err := hk.Scan(g)
		require.NoError(t, err)
		b, eqB, err := hk.Scan(g)
		require.NoError(t, err)

		hk.Resolve(a, eqA, hk.WithPathCompression(true))
		hk.Resolve(b, eqB, hk.WithPathCompression(false))
		assert.Equal(t, a.Cells(), b.Cells(), "seed %d", seed)
	}
}

// TestResolve_CanonicalIsSmallest verifies that each cluster carries the
// smallest provisional label minted inside it.
func TestResolve_CanonicalIsSmallest(t *testing.T) {
	g, err := lattice.Random(50, 50, 0.55, lattice.WithSeed(5))
	require.NoError(t, err)

	provisional, eq, err := hk.Scan(g)
	require.NoError(t, err)
	resolved := hk.Resolve(provisional.Clone(), eq)

	smallest := make(map[hk.Label]hk.Label)
	for idx, canon := range resolved.Cells() {
		if canon == hk.Unlabeled {
			continue
		}
		p := provisional.Cells()[idx]
		if cur, ok := smallest[canon]; !ok || p < cur {
			smallest[canon] = p
		}
	}
	for canon, p := range smallest {
		assert.Equal(t, canon, p)
	}
}

// TestResolve_Nil tolerates nil inputs.
func TestResolve_Nil(t *testing.T) {
	assert.Nil(t, hk.Resolve(nil, nil))

	var eq *hk.Equivalences
	assert.Zero(t, eq.Len())
	assert.Equal(t, hk.Label(4), eq.Root(4))
	assert.Empty(t, eq.Pairs())
}
