// Package export packages generated charts into the downloadable bundle
// formats: CSV index dumps, a printable PDF, and the ZIP that ties them
// together. It consumes the chart and render packages; nothing here feeds
// back into generation.
package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"

	"github.com/wizard-wizard/kaleido-stitch/internal/chart"
)

// GridCSV writes the index grid as CSV: a header row of column numbers
// behind a "y\x" corner label, then one row per grid row prefixed with its
// row number.
func GridCSV(g *chart.Grid) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := make([]string, chart.Size+1)
	header[0] = `y\x`
	for x := 0; x < chart.Size; x++ {
		header[x+1] = strconv.Itoa(x)
	}
	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}

	row := make([]string, chart.Size+1)
	for y := 0; y < chart.Size; y++ {
		row[0] = strconv.Itoa(y)
		for x := 0; x < chart.Size; x++ {
			row[x+1] = strconv.Itoa(g.At(x, y))
		}
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("write csv row %d: %w", y, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// PaletteCSV writes the index→hex mapping for the active palette slice.
func PaletteCSV(hex []string) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"index", "hex"}); err != nil {
		return nil, err
	}
	for i, h := range hex {
		if err := w.Write([]string{strconv.Itoa(i), h}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
