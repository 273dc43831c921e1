package render

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/inconsolata"
	"golang.org/x/image/math/fixed"
)

// Legend layout constants.
const (
	legendSwatch = 44
	legendPad    = 14
	legendWidth  = 420
)

// Legend renders the palette key: one row per color with its swatch, index
// and hex value, plus a title line. Row order matches palette index order.
func Legend(colors []color.RGBA, hex []string, title string) *image.RGBA {
	rows := len(colors)
	h := legendPad*2 + 40 + rows*(legendSwatch+10)
	img := image.NewRGBA(image.Rect(0, 0, legendWidth, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)

	ink := color.RGBA{R: 20, G: 20, B: 20, A: 255}
	drawText(img, legendPad, legendPad+16, title, ink)

	y := legendPad + 40
	for i, c := range colors {
		swatch := image.Rect(legendPad, y, legendPad+legendSwatch, y+legendSwatch)
		draw.Draw(img, swatch, image.NewUniform(c), image.Point{}, draw.Src)
		drawRectOutline(img, swatch, ink)

		label := fmt.Sprintf("%d: %s", i, hex[i])
		if i == 0 {
			label += " (background)"
		}
		drawText(img, legendPad+legendSwatch+14, y+legendSwatch/2+6, label, ink)
		y += legendSwatch + 10
	}
	return img
}

func drawText(img *image.RGBA, x, y int, s string, c color.Color) {
	d := font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: inconsolata.Regular8x16,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

func drawRectOutline(img *image.RGBA, r image.Rectangle, c color.Color) {
	for x := r.Min.X; x < r.Max.X; x++ {
		img.Set(x, r.Min.Y, c)
		img.Set(x, r.Max.Y-1, c)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		img.Set(r.Min.X, y, c)
		img.Set(r.Max.X-1, y, c)
	}
}
