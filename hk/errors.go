package hk

import "errors"

var (
	// ErrInvalidInput indicates a malformed occupancy grid (nil, negative shape).
	ErrInvalidInput = errors.New("hk: invalid input")

	// ErrLabelSpaceExhausted indicates the provisional label counter would overflow.
	ErrLabelSpaceExhausted = errors.New("hk: label space exhausted")
)
