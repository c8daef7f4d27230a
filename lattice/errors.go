// SPDX-License-Identifier: MIT

package lattice

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the umbrella sentinel for malformed lattices.
// Every shape and value error of this package satisfies errors.Is(err, ErrInvalidInput).
var ErrInvalidInput = errors.New("lattice: invalid input")

var (
	// ErrBadShape indicates negative row or column counts.
	ErrBadShape = fmt.Errorf("%w: dimensions must be >= 0", ErrInvalidInput)

	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = fmt.Errorf("%w: all rows must have the same length", ErrInvalidInput)

	// ErrBadValue indicates an integer cell that is neither 0 nor 1.
	ErrBadValue = fmt.Errorf("%w: cell values must be 0 or 1", ErrInvalidInput)

	// ErrBadProbability indicates an occupation probability outside [0,1].
	ErrBadProbability = fmt.Errorf("%w: probability must be in [0,1]", ErrInvalidInput)

	// ErrOutOfRange indicates a (row, col) pair outside the grid.
	ErrOutOfRange = errors.New("lattice: index out of range")
)

// latticeErrorf attaches a method tag to a sentinel.
func latticeErrorf(method string, err error, format string, args ...any) error {
	return fmt.Errorf("%s(%s): %w", method, fmt.Sprintf(format, args...), err)
}
