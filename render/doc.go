// Package render is the presentation side of the percolation tools: it maps
// canonical cluster labels to high-contrast colours and writes PNG images of
// label grids and raw lattices.
//
// Colours are evenly spaced HSV hues (full saturation and value) assigned to
// clusters in a seeded random order, so clusters with adjacent label values
// rarely share similar hues. Unoccupied sites are black.
//
// Each lattice site becomes a Scale×Scale pixel block. Render optionally
// stamps a metadata box (execution time, lattice size, probability) in the
// top-left corner.
package render
