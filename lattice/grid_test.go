package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/lattice"
)

// TestNew_Shapes verifies degenerate and negative dimensions.
func TestNew_Shapes(t *testing.T) {
	cases := []struct {
		name       string
		rows, cols int
		wantErr    error
		wantLen    int
	}{
		{"ZeroByZero", 0, 0, nil, 0},
		{"ZeroRows", 0, 5, nil, 0},
		{"ZeroCols", 3, 0, nil, 0},
		{"OneByOne", 1, 1, nil, 1},
		{"Rect", 2, 3, nil, 6},
		{"NegativeRows", -1, 2, lattice.ErrBadShape, 0},
		{"NegativeCols", 2, -1, lattice.ErrBadShape, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := lattice.New(tc.rows, tc.cols)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, lattice.ErrInvalidInput)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.rows, g.Rows())
			assert.Equal(t, tc.cols, g.Cols())
			assert.Equal(t, tc.wantLen, g.Len())
			assert.Zero(t, g.Count())
		})
	}
}

// TestFromInts covers copying, value validation and ragged rows.
func TestFromInts(t *testing.T) {
	src := [][]int{
		{1, 0, 1},
		{0, 1, 0},
	}
	g, err := lattice.FromInts(src)
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, 3, g.Count())
	assert.True(t, g.Occupied(0, 0))
	assert.False(t, g.Occupied(0, 1))
	assert.True(t, g.Occupied(1, 1))

	// mutating the source must not leak into the grid
	src[0][1] = 1
	assert.False(t, g.Occupied(0, 1))

	_, err = lattice.FromInts([][]int{{1, 2}})
	assert.ErrorIs(t, err, lattice.ErrBadValue)
	assert.ErrorIs(t, err, lattice.ErrInvalidInput)

	_, err = lattice.FromInts([][]int{{1, 0}, {1}})
	assert.ErrorIs(t, err, lattice.ErrNonRectangular)
	assert.ErrorIs(t, err, lattice.ErrInvalidInput)

	empty, err := lattice.FromInts(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
}

// TestFromBools_Ragged ensures jagged input is rejected.
func TestFromBools_Ragged(t *testing.T) {
	_, err := lattice.FromBools([][]bool{{true}, {true, false}})
	assert.ErrorIs(t, err, lattice.ErrNonRectangular)

	g, err := lattice.FromBools([][]bool{{true, false}, {false, true}})
	require.NoError(t, err)
	assert.Equal(t, 2, g.Count())
	assert.InDelta(t, 0.5, g.Density(), 1e-12)
}

// TestOccupied_OutOfRange checks that reads outside the grid are empty
// and writes fail.
func TestOccupied_OutOfRange(t *testing.T) {
	g, err := lattice.New(2, 2)
	require.NoError(t, err)
	require.NoError(t, g.Set(1, 1, true))

	assert.True(t, g.Occupied(1, 1))
	for _, ij := range [][2]int{{-1, 0}, {0, -1}, {2, 0}, {0, 2}} {
		assert.False(t, g.Occupied(ij[0], ij[1]), "Occupied(%d,%d)", ij[0], ij[1])
		assert.ErrorIs(t, g.Set(ij[0], ij[1], true), lattice.ErrOutOfRange)
	}
}

// TestClone_Independent verifies Clone copies storage.
func TestClone_Independent(t *testing.T) {
	g, _ := lattice.FromInts([][]int{{1, 0}})
	c := g.Clone()
	require.NoError(t, c.Set(0, 1, true))
	assert.False(t, g.Occupied(0, 1))
	assert.True(t, c.Occupied(0, 1))
}

// TestString renders a 0/1 matrix.
func TestString(t *testing.T) {
	g, _ := lattice.FromInts([][]int{{1, 0}, {0, 1}})
	assert.Equal(t, "1 0\n0 1\n", g.String())
}
