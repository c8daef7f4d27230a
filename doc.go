// Package percolation is a toolkit for site-percolation studies on square
// lattices: generate a Bernoulli lattice, label its 4-connected clusters with
// the Hoshen-Kopelman method, and render or dump the result.
//
// Everything is organized under a few subpackages:
//
//	lattice/    fixed-shape occupancy grid and the Bernoulli generator
//	hk/         Hoshen-Kopelman labeler, resolver and cluster statistics
//	gridgraph/  BFS flood fill and minimal bridging between clusters
//	render/     high-contrast palette and PNG output with a metadata box
//	gridio/     plain-text 0/1 and label matrices
//	config/     TOML run configuration
//
// Quick example:
//
//	g, _ := lattice.Random(600, 600, 0.4, lattice.WithSeed(1))
//	res, _ := hk.Analyze(g)
//	fmt.Println(res.ClusterCount(), res.Percolates())
//
// The percolate command (cmd/percolate) wires the same pipeline into a CLI:
//
//	go install github.com/katalvlaran/percolation/cmd/percolate@latest
//	percolate label --rows 6000 --cols 6000 -p 0.4 -o cluster_labeling.png
package percolation
