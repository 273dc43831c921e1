// Package render turns finished index grids and palettes into pixel images.
// All functions are pure: same grid, palette and dimensions yield a
// byte-identical image.
package render

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"

	"github.com/wizard-wizard/kaleido-stitch/internal/chart"
)

// gridlineColor is the fixed neutral color painted between cell blocks.
var gridlineColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}

// Limits for cell and gridline pixel sizes. Anything outside is rejected
// with chart.ErrInvalidParameter.
const (
	MinCell     = 1
	MaxCell     = 60
	MaxGridline = 4
)

// Chart renders the grid as solid cell×cell blocks separated by
// gridline-wide neutral lines. Image size is
// (cols*cell + (cols+1)*gridline) × (rows*cell + (rows+1)*gridline).
// With gridline 0 the blocks abut directly.
func Chart(g *chart.Grid, colors []color.RGBA, cell, gridline int) (*image.RGBA, error) {
	if err := checkDimensions(g, colors, cell, gridline); err != nil {
		return nil, err
	}
	w := chart.Size*cell + (chart.Size+1)*gridline
	img := image.NewRGBA(image.Rect(0, 0, w, w))
	draw.Draw(img, img.Bounds(), image.NewUniform(gridlineColor), image.Point{}, draw.Src)
	for y := 0; y < chart.Size; y++ {
		for x := 0; x < chart.Size; x++ {
			x0 := x*cell + (x+1)*gridline
			y0 := y*cell + (y+1)*gridline
			block := image.Rect(x0, y0, x0+cell, y0+cell)
			draw.Draw(img, block, image.NewUniform(colors[g.At(x, y)]), image.Point{}, draw.Src)
		}
	}
	return img, nil
}

// Preview renders the grid without gridlines at a (typically smaller) cell
// size, with the background color filling the canvas first.
func Preview(g *chart.Grid, colors []color.RGBA, cell int) (*image.RGBA, error) {
	if err := checkDimensions(g, colors, cell, 0); err != nil {
		return nil, err
	}
	w := chart.Size * cell
	img := image.NewRGBA(image.Rect(0, 0, w, w))
	draw.Draw(img, img.Bounds(), image.NewUniform(colors[0]), image.Point{}, draw.Src)
	for y := 0; y < chart.Size; y++ {
		for x := 0; x < chart.Size; x++ {
			block := image.Rect(x*cell, y*cell, (x+1)*cell, (y+1)*cell)
			draw.Draw(img, block, image.NewUniform(colors[g.At(x, y)]), image.Point{}, draw.Src)
		}
	}
	return img, nil
}

// EncodePNG encodes an image to PNG bytes.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func checkDimensions(g *chart.Grid, colors []color.RGBA, cell, gridline int) error {
	if cell < MinCell || cell > MaxCell {
		return fmt.Errorf("%w: cell size must be in [%d, %d], got %d", chart.ErrInvalidParameter, MinCell, MaxCell, cell)
	}
	if gridline < 0 || gridline > MaxGridline {
		return fmt.Errorf("%w: gridline width must be in [0, %d], got %d", chart.ErrInvalidParameter, MaxGridline, gridline)
	}
	if m := g.MaxIndex(); m >= len(colors) {
		return fmt.Errorf("%w: grid uses index %d but palette has %d colors", chart.ErrInvalidParameter, m, len(colors))
	}
	return nil
}
