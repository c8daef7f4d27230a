package lattice_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/lattice"
)

// TestRandom_Deterministic verifies that equal seeds give equal lattices.
func TestRandom_Deterministic(t *testing.T) {
	a, err := lattice.Random(50, 40, 0.4, lattice.WithSeed(7))
	require.NoError(t, err)
	b, err := lattice.Random(50, 40, 0.4, lattice.WithSeed(7))
	require.NoError(t, err)
	assert.Equal(t, a.String(), b.String())
}

// TestRandom_Density checks the occupied fraction is close to p on a large lattice.
func TestRandom_Density(t *testing.T) {
	g, err := lattice.Random(300, 300, 0.4, lattice.WithSeed(1))
	require.NoError(t, err)
	assert.InDelta(t, 0.4, g.Density(), 0.02)
}

// TestRandom_Extremes covers p=0 and p=1.
func TestRandom_Extremes(t *testing.T) {
	empty, err := lattice.Random(5, 5, 0, lattice.WithSeed(1))
	require.NoError(t, err)
	assert.Zero(t, empty.Count())

	full, err := lattice.Random(5, 5, 1)
	require.NoError(t, err)
	assert.Equal(t, 25, full.Count())
}

// TestRandom_BadProbability rejects p outside [0,1] and NaN.
func TestRandom_BadProbability(t *testing.T) {
	for _, p := range []float64{-0.1, 1.1, math.NaN()} {
		_, err := lattice.Random(2, 2, p)
		assert.ErrorIs(t, err, lattice.ErrBadProbability, "p=%v", p)
	}
	_, err := lattice.Random(-1, 2, 0.5)
	assert.ErrorIs(t, err, lattice.ErrBadShape)
}

// TestWithRand_NilPanics confirms option constructors fail fast.
func TestWithRand_NilPanics(t *testing.T) {
	assert.Panics(t, func() { lattice.WithRand(nil) })
}
