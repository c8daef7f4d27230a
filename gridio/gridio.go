// Package gridio reads and writes lattices and label grids as plain text
// matrices: one row per line, cells separated by spaces or commas.
package gridio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/percolation/hk"
	"github.com/katalvlaran/percolation/lattice"
)

// ErrSyntax indicates a malformed matrix file.
var ErrSyntax = errors.New("gridio: syntax error")

// maxLine bounds a single input row; a 6000-site row of "0 " pairs needs 12 KB.
const maxLine = 1 << 20

// ReadOccupancy parses a 0/1 matrix into a lattice. Blank lines are skipped.
// Errors carry the 1-based line number and satisfy errors.Is(err, ErrSyntax)
// or lattice.ErrInvalidInput for ragged rows.
func ReadOccupancy(r io.Reader) (*lattice.Grid, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var rows [][]bool
	line := 0
	for sc.Scan() {
		line++
		fields := splitFields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]bool, len(fields))
		for j, f := range fields {
			switch f {
			case "0":
			case "1":
				row[j] = true
			default:
				return nil, fmt.Errorf("line %d col %d: %q is not 0 or 1: %w", line, j+1, f, ErrSyntax)
			}
		}
		if len(rows) > 0 && len(row) != len(rows[0]) {
			return nil, fmt.Errorf("line %d: %d cells, want %d: %w", line, len(row), len(rows[0]), lattice.ErrNonRectangular)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read: %w", err)
	}

	return lattice.FromBools(rows)
}

// WriteOccupancy writes g as space-separated 0/1 rows.
func WriteOccupancy(w io.Writer, g *lattice.Grid) error {
	bw := bufio.NewWriter(w)
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			if g.Occupied(i, j) {
				bw.WriteByte('1')
			} else {
				bw.WriteByte('0')
			}
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteLabels writes a label grid as space-separated integer rows;
// unoccupied sites appear as -1.
func WriteLabels(w io.Writer, g *hk.LabelGrid) error {
	bw := bufio.NewWriter(w)
	buf := make([]byte, 0, 12)
	for i := 0; i < g.Rows(); i++ {
		for j := 0; j < g.Cols(); j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			buf = strconv.AppendInt(buf[:0], int64(g.At(i, j)), 10)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// ReadLabels parses a matrix written by WriteLabels.
func ReadLabels(r io.Reader) ([][]hk.Label, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	var rows [][]hk.Label
	line := 0
	for sc.Scan() {
		line++
		fields := splitFields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		row := make([]hk.Label, len(fields))
		for j, f := range fields {
			v, err := strconv.ParseInt(f, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("line %d col %d: %w: %v", line, j+1, ErrSyntax, err)
			}
			row[j] = hk.Label(v)
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridio: read: %w", err)
	}
	return rows, nil
}

// splitFields splits on whitespace and commas.
func splitFields(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\r'
	})
}
