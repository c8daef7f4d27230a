// Package lattice provides the occupancy grid consumed by the cluster
// labeling engine: a fixed-shape R×C lattice of boolean sites.
//
// What:
//
//   - Grid stores sites in a flat, row-major []bool (offset = i*cols + j).
//   - Shape is validated once at construction; every accessor is O(1).
//   - Random fills a lattice with independent Bernoulli(p) draws.
//
// Why:
//
//   - Percolation studies: generate site-percolation lattices at
//     occupation probability p and hand them to hk for labeling.
//   - Fixtures: build small lattices from [][]int / [][]bool literals.
//
// Complexity:
//
//   - New, FromInts, FromBools, Random: O(R×C) time and memory.
//   - Occupied, Set: O(1).
//
// Errors:
//
//   - ErrInvalidInput: umbrella for every malformed-input condition below.
//   - ErrBadShape: negative dimensions.
//   - ErrNonRectangular: rows of differing lengths.
//   - ErrBadValue: FromInts cell other than 0 or 1.
//   - ErrBadProbability: p outside [0,1] or NaN.
//   - ErrOutOfRange: Set outside the grid.
package lattice
