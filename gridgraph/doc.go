// Package gridgraph treats a 2D occupancy lattice as a graph, enabling
// flood-fill component analysis and minimal-cost bridging between clusters.
//
// What:
//
//   - GridGraph snapshots any Lattice (Rows/Cols/Occupied) into flat storage.
//   - Identifies connected components of occupied sites by BFS.
//   - Computes minimal conversions (0-1 BFS) to connect two clusters.
//
// Why:
//
//   - Independent check of the raster labeling in package hk: BFS and
//     Hoshen–Kopelman must agree on every partition.
//   - Percolation: how many more sites must be occupied to join two
//     clusters (e.g. the two largest) into one.
//
// Complexity:
//
//   - ConnectedComponents: O(W×H×d), Memory: O(W×H)    (d = number of neighbors, 4 or 8).
//   - ExpandIsland/Bridge: O(W×H×d), Memory: O(W×H).
//
// Options:
//
//   - GridOptions.Conn: Conn4 (4-neighbors) or Conn8 (8-neighbors).
//
// Errors:
//
//   - ErrNilGrid: nil lattice.
//   - ErrBadShape: lattice reports negative dimensions.
//   - ErrComponentIndex: requested component index out of range.
//   - ErrSiteIndex: site index passed to Bridge lies outside the lattice.
//   - ErrNoPath: no conversion path exists (an empty site set).
package gridgraph
