// Command design-atlas renders every design and palette combination to PNG
// and plots how the neighbor-agreement ratio responds to smoothing strength
// for each design. Useful when tuning new designs or thresholds.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/wizard-wizard/kaleido-stitch/internal/chart"
	"github.com/wizard-wizard/kaleido-stitch/internal/render"
)

var (
	outDir = flag.String("out", "atlas", "Output directory")
	seeds  = flag.Int("seeds", 5, "Seeds to average per design")
	cell   = flag.Int("cell", 12, "Preview cell size in pixels")
)

func main() {
	flag.Parse()

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}

	if err := renderAtlas(); err != nil {
		log.Fatalf("render atlas: %v", err)
	}
	if err := plotAgreement(); err != nil {
		log.Fatalf("plot agreement: %v", err)
	}
	fmt.Printf("Atlas written to %s\n", *outDir)
}

// renderAtlas writes one preview PNG per design and palette at seed 0.
func renderAtlas() error {
	for _, designKey := range chart.DesignKeys() {
		grid, err := chart.GenerateIndices(designKey, chart.DefaultParams())
		if err != nil {
			return err
		}
		for _, paletteKey := range chart.PaletteKeys() {
			pal, err := chart.LookupPalette(paletteKey)
			if err != nil {
				return err
			}
			colors, err := pal.Colors(chart.MaxColors)
			if err != nil {
				return err
			}
			img, err := render.Preview(grid, colors, *cell)
			if err != nil {
				return err
			}
			pngBytes, err := render.EncodePNG(img)
			if err != nil {
				return err
			}
			name := fmt.Sprintf("%s__%s.png", designKey, paletteKey)
			if err := os.WriteFile(filepath.Join(*outDir, name), pngBytes, 0644); err != nil {
				return fmt.Errorf("write %s: %w", name, err)
			}
		}
	}
	return nil
}

// plotAgreement draws one line per design: mean neighbor agreement across
// seeds at each smoothing strength.
func plotAgreement() error {
	p := plot.New()
	p.Title.Text = "Neighbor agreement vs smoothing strength"
	p.X.Label.Text = "Smoothing passes"
	p.Y.Label.Text = "Agreement ratio"

	designKeys := chart.DesignKeys()
	colors := lineColors(len(designKeys))
	for i, designKey := range designKeys {
		pts := make(plotter.XYs, 0, chart.MaxSmoothing+1)
		for s := 0; s <= chart.MaxSmoothing; s++ {
			ratios := make([]float64, 0, *seeds)
			for seed := 0; seed < *seeds; seed++ {
				params := chart.DefaultParams()
				params.Seed = int64(seed)
				params.Smoothing = s
				grid, err := chart.GenerateIndices(designKey, params)
				if err != nil {
					return err
				}
				ratios = append(ratios, grid.NeighborAgreement())
			}
			pts = append(pts, plotter.XY{X: float64(s), Y: stat.Mean(ratios, nil)})
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Width = vg.Points(1)
		line.Color = colors[i]
		p.Add(line)
		p.Legend.Add(designKey, line)
	}

	p.Legend.Top = false
	out := filepath.Join(*outDir, "agreement_vs_smoothing.png")
	if err := p.Save(8*vg.Inch, 6*vg.Inch, out); err != nil {
		return fmt.Errorf("save agreement plot: %w", err)
	}
	return nil
}

// lineColors spreads n hues evenly around the HSL wheel.
func lineColors(n int) []color.Color {
	out := make([]color.Color, n)
	for i := 0; i < n; i++ {
		r, g, b := hslToRGB(float64(i)/float64(n), 0.7, 0.5)
		out[i] = color.RGBA{R: r, G: g, B: b, A: 255}
	}
	return out
}

// hslToRGB converts HSL to RGB (0-255 range).
func hslToRGB(h, s, l float64) (r, g, b uint8) {
	var rf, gf, bf float64
	if s == 0 {
		rf, gf, bf = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q
		rf = hueToRGB(p, q, h+1.0/3.0)
		gf = hueToRGB(p, q, h)
		bf = hueToRGB(p, q, h-1.0/3.0)
	}
	return uint8(rf * 255), uint8(gf * 255), uint8(bf * 255)
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t += 1
	}
	if t > 1 {
		t -= 1
	}
	if t < 1.0/6.0 {
		return p + (q-p)*6*t
	}
	if t < 1.0/2.0 {
		return q
	}
	if t < 2.0/3.0 {
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
