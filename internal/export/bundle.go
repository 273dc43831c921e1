package export

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/wizard-wizard/kaleido-stitch/internal/chart"
	"github.com/wizard-wizard/kaleido-stitch/internal/render"
)

// BundleRequest names everything needed to build one downloadable bundle.
// Numeric knobs are clamped here rather than rejected; unknown design or
// palette keys remain hard errors from the core.
type BundleRequest struct {
	Design   string
	Palette  string
	Params   chart.Params
	Cell     int
	Gridline int
}

const readmeText = `Kaleido Stitch bundle

- chart.png: grid + colored blocks
- preview.png: colored blocks, no grid
- legend.png: index->hex list
- pattern_indices.csv: 35x35 indices
- palette.csv: index->hex
- chart.pdf: printable chart + legend

Notes:
- index 0 is background
- design is guaranteed D8 (8-way) symmetric
`

// Bundle generates a chart and packs the full deliverable set into a ZIP:
// chart, preview and legend PNGs, the two CSVs, the printable PDF and a
// README. The archive member order is fixed so identical requests produce
// identical archives apart from ZIP timestamps.
func Bundle(req BundleRequest) ([]byte, error) {
	p := req.Params.Clamped()
	cell := clampInt(req.Cell, render.MinCell, render.MaxCell)
	gridline := clampInt(req.Gridline, 0, render.MaxGridline)

	grid, err := chart.GenerateIndices(req.Design, p)
	if err != nil {
		return nil, err
	}
	pal, err := chart.LookupPalette(req.Palette)
	if err != nil {
		return nil, err
	}
	colors, err := pal.Colors(p.Colors)
	if err != nil {
		return nil, err
	}
	hex := pal.Hex[:p.Colors]

	chartImg, err := render.Chart(grid, colors, cell, gridline)
	if err != nil {
		return nil, err
	}
	previewCell := cell / 2
	if previewCell < 6 {
		previewCell = 6
	}
	previewImg, err := render.Preview(grid, colors, previewCell)
	if err != nil {
		return nil, err
	}
	legendImg := render.Legend(colors, hex, fmt.Sprintf("%s - %s (35x35, %d colors)", req.Design, req.Palette, p.Colors))

	pdfBytes, err := BuildPDF(fmt.Sprintf("%s - %s - seed %d", req.Design, req.Palette, p.Seed), chartImg, legendImg)
	if err != nil {
		return nil, err
	}
	gridCSV, err := GridCSV(grid)
	if err != nil {
		return nil, err
	}
	paletteCSV, err := PaletteCSV(hex)
	if err != nil {
		return nil, err
	}

	chartPNG, err := render.EncodePNG(chartImg)
	if err != nil {
		return nil, err
	}
	previewPNG, err := render.EncodePNG(previewImg)
	if err != nil {
		return nil, err
	}
	legendPNG, err := render.EncodePNG(legendImg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	members := []struct {
		name string
		data []byte
	}{
		{"chart.png", chartPNG},
		{"preview.png", previewPNG},
		{"legend.png", legendPNG},
		{"pattern_indices.csv", gridCSV},
		{"palette.csv", paletteCSV},
		{"chart.pdf", pdfBytes},
		{"README.txt", []byte(readmeText)},
	}
	for _, m := range members {
		f, err := zw.Create(m.name)
		if err != nil {
			return nil, fmt.Errorf("create zip member %s: %w", m.name, err)
		}
		if _, err := f.Write(m.data); err != nil {
			return nil, fmt.Errorf("write zip member %s: %w", m.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
