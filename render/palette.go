package render

import (
	"image/color"
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/katalvlaran/percolation/hk"
)

var (
	// Background is the colour of unoccupied sites.
	Background = color.RGBA{A: 0xff}
	// Occupied is the colour of occupied sites in occupancy plots.
	Occupied = color.RGBA{A: 0xff}
	// Empty is the colour of empty sites in occupancy plots.
	Empty = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
)

// Palette returns n colours with hues spread evenly over the colour wheel.
func Palette(n int) []color.RGBA {
	if n <= 0 {
		return nil
	}
	out := make([]color.RGBA, n)
	for i := range out {
		r, g, b := colorful.Hsv(360*float64(i)/float64(n), 1, 1).RGB255()
		out[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out
}

// ColorMap assigns a colour to every canonical label.
type ColorMap map[hk.Label]color.RGBA

// NewColorMap gives each non-sentinel label in labels a distinct palette
// entry, shuffled with rng. Unlabeled always maps to Background.
func NewColorMap(labels []hk.Label, rng *rand.Rand) ColorMap {
	clusters := make([]hk.Label, 0, len(labels))
	for _, l := range labels {
		if l != hk.Unlabeled {
			clusters = append(clusters, l)
		}
	}
	pal := Palette(len(clusters))
	rng.Shuffle(len(pal), func(i, j int) { pal[i], pal[j] = pal[j], pal[i] })

	cm := make(ColorMap, len(clusters)+1)
	cm[hk.Unlabeled] = Background
	for i, l := range clusters {
		cm[l] = pal[i]
	}
	return cm
}

// Color returns the colour of l, Background if l is unknown.
func (cm ColorMap) Color(l hk.Label) color.RGBA {
	if c, ok := cm[l]; ok {
		return c
	}
	return Background
}
