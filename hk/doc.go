// Package hk labels clusters of occupied sites on a 2D lattice using the
// Hoshen–Kopelman method: a single raster pass that assigns provisional
// labels and records label equivalences, followed by a resolution pass that
// rewrites every provisional label to its canonical root.
//
// What:
//
//   - Scan walks an Occupancy row-major and returns a provisional
//     LabelGrid together with the Equivalences discovered on the way.
//   - Resolve collapses the equivalence forest and rewrites the grid in place.
//   - Analyze runs both passes, times them, and summarizes the clusters
//     (distinct labels, sizes, spanning clusters) for presentation.
//
// Why:
//
//   - Site percolation: measure cluster sizes and detect whether any
//     cluster spans the lattice at occupation probability p.
//   - Image analysis: 4-connected component labeling of binary rasters.
//
// Connectivity is 4-neighbour (N/E/S/W); diagonal contact does not join
// clusters. Unoccupied sites always hold Unlabeled (-1).
//
// Labels:
//
//	Provisional labels are minted step, 2·step, 3·step, … (step = 1 unless
//	WithLabelStep is given). The canonical label of a cluster is the smallest
//	provisional label minted inside it. Only the partition is meaningful; the
//	numeric identity of a label is an artifact of scan order.
//
// Complexity:
//
//   - Scan:    O(R×C·α) time, O(R×C) memory for the label grid plus
//     O(K) for K provisional labels.
//   - Resolve: O(R×C + K) time with path compression (default),
//     O(R×C·h) without, h = longest equivalence chain.
//
// Errors:
//
//   - ErrInvalidInput: nil occupancy or negative dimensions.
//   - ErrLabelSpaceExhausted: the next provisional label would overflow Label.
package hk
