package gridio_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/gridio"
	"github.com/katalvlaran/percolation/hk"
	"github.com/katalvlaran/percolation/lattice"
)

// TestReadOccupancy_Formats accepts spaces, commas and blank lines.
func TestReadOccupancy_Formats(t *testing.T) {
	in := "1 0 1\n\n0,1,0\r\n1\t1 0\n"
	g, err := gridio.ReadOccupancy(strings.NewReader(in))
	require.NoError(t, err)
	assert.Equal(t, 3, g.Rows())
	assert.Equal(t, 3, g.Cols())
	assert.Equal(t, "1 0 1\n0 1 0\n1 1 0\n", g.String())
}

// TestReadOccupancy_Errors reports bad values and ragged rows with line numbers.
func TestReadOccupancy_Errors(t *testing.T) {
	_, err := gridio.ReadOccupancy(strings.NewReader("1 0\n1 2\n"))
	require.ErrorIs(t, err, gridio.ErrSyntax)
	assert.Contains(t, err.Error(), "line 2 col 2")

	_, err = gridio.ReadOccupancy(strings.NewReader("1 0\n1\n"))
	require.ErrorIs(t, err, lattice.ErrNonRectangular)
	assert.ErrorIs(t, err, lattice.ErrInvalidInput)
}

// TestReadOccupancy_Empty returns a 0×0 lattice.
func TestReadOccupancy_Empty(t *testing.T) {
	g, err := gridio.ReadOccupancy(strings.NewReader("\n\n"))
	require.NoError(t, err)
	assert.Zero(t, g.Len())
}

// TestOccupancy_WriteRead writes a random lattice and reads it back.
func TestOccupancy_WriteRead(t *testing.T) {
	g, err := lattice.Random(13, 7, 0.5, lattice.WithSeed(2))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gridio.WriteOccupancy(&buf, g))
	back, err := gridio.ReadOccupancy(&buf)
	require.NoError(t, err)
	assert.Equal(t, g.String(), back.String())
}

// TestWriteLabels dumps the canonical matrix as the classic text format.
func TestWriteLabels(t *testing.T) {
	g, err := lattice.FromInts([][]int{{1, 0, 1}, {1, 1, 1}})
	require.NoError(t, err)
	res, err := hk.Analyze(g, hk.WithLabelStep(10))
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, gridio.WriteLabels(&buf, res.Labels))
	assert.Equal(t, "10 -1 10\n10 10 10\n", buf.String())

	rows, err := gridio.ReadLabels(&buf)
	require.NoError(t, err)
	assert.Equal(t, [][]hk.Label{{10, -1, 10}, {10, 10, 10}}, rows)
}

// TestReadLabels_Syntax rejects non-integers.
func TestReadLabels_Syntax(t *testing.T) {
	_, err := gridio.ReadLabels(strings.NewReader("1 x\n"))
	assert.ErrorIs(t, err, gridio.ErrSyntax)
}
