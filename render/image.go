package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/katalvlaran/percolation/hk"
)

var (
	// ErrNilGrid indicates a nil grid was passed for rendering.
	ErrNilGrid = errors.New("render: grid must not be nil")
	// ErrEmptyGrid indicates a grid with no sites; PNG cannot encode 0-area images.
	ErrEmptyGrid = errors.New("render: grid has no sites")
)

// Meta is the run information stamped onto a cluster image.
type Meta struct {
	Elapsed     time.Duration
	Rows, Cols  int
	Probability float64
	RunID       string // optional
}

// Lines returns the overlay text, one entry per line.
func (m Meta) Lines() []string {
	lines := []string{
		fmt.Sprintf("Execution Time: %.4f s", m.Elapsed.Seconds()),
		fmt.Sprintf("Lattice Size: %d x %d", m.Rows, m.Cols),
		fmt.Sprintf("Probability: %g", m.Probability),
	}
	if m.RunID != "" {
		lines = append(lines, "Run: "+m.RunID)
	}
	return lines
}

// Occupancy is the lattice read by RenderOccupancy.
type Occupancy interface {
	Rows() int
	Cols() int
	Occupied(i, j int) bool
}

// Image paints a label grid, one Scale×Scale block per site.
func Image(grid *hk.LabelGrid, opts ...Option) (*image.RGBA, error) {
	if grid == nil {
		return nil, ErrNilGrid
	}
	cfg := newConfig(opts...)
	cm := NewColorMap(grid.Distinct(), cfg.rng)
	return paint(grid.Rows(), grid.Cols(), cfg.scale, func(i, j int) color.RGBA {
		return cm.Color(grid.At(i, j))
	}), nil
}

// Render writes grid as PNG to w with meta in the top-left corner.
func Render(w io.Writer, grid *hk.LabelGrid, meta Meta, opts ...Option) error {
	img, err := Image(grid, opts...)
	if err != nil {
		return err
	}
	if img.Bounds().Empty() {
		return ErrEmptyGrid
	}
	dc := gg.NewContextForRGBA(img)
	drawMeta(dc, meta.Lines())
	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// RenderOccupancy writes the raw lattice as PNG: occupied sites dark,
// empty sites white.
func RenderOccupancy(w io.Writer, grid Occupancy, opts ...Option) error {
	if grid == nil {
		return ErrNilGrid
	}
	if grid.Rows() == 0 || grid.Cols() == 0 {
		return ErrEmptyGrid
	}
	cfg := newConfig(opts...)
	img := paint(grid.Rows(), grid.Cols(), cfg.scale, func(i, j int) color.RGBA {
		if grid.Occupied(i, j) {
			return Occupied
		}
		return Empty
	})
	if err := gg.NewContextForRGBA(img).EncodePNG(w); err != nil {
		return fmt.Errorf("render: encode png: %w", err)
	}
	return nil
}

// paint fills a rows×cols lattice image directly in the pixel buffer.
func paint(rows, cols, scale int, at func(i, j int) color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, cols*scale, rows*scale))
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			c := at(i, j)
			for dy := 0; dy < scale; dy++ {
				off := img.PixOffset(j*scale, i*scale+dy)
				for dx := 0; dx < scale; dx++ {
					p := img.Pix[off+4*dx : off+4*dx+4 : off+4*dx+4]
					p[0], p[1], p[2], p[3] = c.R, c.G, c.B, c.A
				}
			}
		}
	}
	return img
}

// drawMeta stamps lines in white on a translucent black box. The font size
// follows the image width so the text stays legible on large lattices.
func drawMeta(dc *gg.Context, lines []string) {
	if len(lines) == 0 || dc.Width() == 0 || dc.Height() == 0 {
		return
	}
	size := float64(dc.Width()) / 50
	if size < 10 {
		size = 10
	}
	if f, err := truetype.Parse(goregular.TTF); err == nil {
		dc.SetFontFace(truetype.NewFace(f, &truetype.Options{Size: size}))
	}

	pad := dc.FontHeight() / 2
	lineH := dc.FontHeight() * 1.4
	boxW := 0.0
	for _, l := range lines {
		if w, _ := dc.MeasureString(l); w > boxW {
			boxW = w
		}
	}
	boxH := lineH * float64(len(lines))

	dc.SetRGBA(0, 0, 0, 0.7)
	dc.DrawRectangle(pad, pad, boxW+2*pad, boxH+pad)
	dc.Fill()

	dc.SetRGB(1, 1, 1)
	for i, l := range lines {
		dc.DrawStringAnchored(l, 2*pad, pad+lineH*float64(i)+lineH/2+pad/2, 0, 0.5)
	}
}
