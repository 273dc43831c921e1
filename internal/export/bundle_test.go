package export

import (
	"archive/zip"
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wizard-wizard/kaleido-stitch/internal/chart"
)

func testRequest() BundleRequest {
	return BundleRequest{
		Design:   "rings_spokes",
		Palette:  "jewel_bazaar",
		Params:   chart.DefaultParams(),
		Cell:     22,
		Gridline: 1,
	}
}

func TestBundleContents(t *testing.T) {
	zipBytes, err := Bundle(testRequest())
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	require.NoError(t, err)

	want := []string{
		"chart.png", "preview.png", "legend.png",
		"pattern_indices.csv", "palette.csv", "chart.pdf", "README.txt",
	}
	var got []string
	for _, f := range zr.File {
		got = append(got, f.Name)
	}
	assert.Equal(t, want, got, "bundle member order is part of the contract")

	for _, f := range zr.File {
		rc, err := f.Open()
		require.NoError(t, err)
		data, err := io.ReadAll(rc)
		rc.Close()
		require.NoError(t, err)
		assert.NotEmpty(t, data, "member %s is empty", f.Name)

		switch {
		case strings.HasSuffix(f.Name, ".png"):
			assert.Equal(t, "\x89PNG", string(data[:4]), "member %s is not a PNG", f.Name)
		case f.Name == "chart.pdf":
			assert.Equal(t, "%PDF", string(data[:4]), "chart.pdf is not a PDF")
		}
	}
}

func TestBundleUnknownDesign(t *testing.T) {
	req := testRequest()
	req.Design = "not_a_design"
	_, err := Bundle(req)
	assert.True(t, errors.Is(err, chart.ErrUnknownDesign), "got %v", err)
}

func TestBundleUnknownPalette(t *testing.T) {
	req := testRequest()
	req.Palette = "not_a_palette"
	_, err := Bundle(req)
	assert.True(t, errors.Is(err, chart.ErrUnknownPalette), "got %v", err)
}

func TestBundleClampsKnobs(t *testing.T) {
	req := testRequest()
	req.Params.Colors = 99
	req.Params.Smoothing = -5
	req.Cell = 9999
	req.Gridline = -2
	_, err := Bundle(req)
	assert.NoError(t, err, "numeric knobs must be clamped, not rejected")
}

func TestGridCSVShape(t *testing.T) {
	g, err := chart.GenerateIndices("mosaic_steps", chart.DefaultParams())
	require.NoError(t, err)

	data, err := GridCSV(g)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, chart.Size+1, "header plus one line per row")
	assert.True(t, strings.HasPrefix(lines[0], `y\x,0,1,`), "header row: %q", lines[0])
	assert.Equal(t, chart.Size+1, len(strings.Split(lines[1], ",")))
}

func TestPaletteCSV(t *testing.T) {
	pal, err := chart.LookupPalette("ocean_coral")
	require.NoError(t, err)

	data, err := PaletteCSV(pal.Hex[:4])
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 5)
	assert.Equal(t, "index,hex", lines[0])
	assert.Equal(t, "0,#F5FBFF", lines[1])
}
