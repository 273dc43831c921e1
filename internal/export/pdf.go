package export

import (
	"bytes"
	"fmt"
	"image"

	"codeberg.org/go-pdf/fpdf"

	"github.com/wizard-wizard/kaleido-stitch/internal/render"
)

// BuildPDF lays out a printable landscape-letter page: title across the top,
// chart on the left ~60% of the width, legend on the right, footer note at
// the bottom. Images keep their aspect ratios.
func BuildPDF(title string, chartImg, legendImg image.Image) ([]byte, error) {
	const margin = 36.0

	pdf := fpdf.New("L", "pt", "Letter", "")
	pdf.AddPage()
	pageW, pageH := pdf.GetPageSize()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Text(margin, margin+6, title)

	topY := margin + 24
	leftW := pageW * 0.62
	rightW := pageW - leftW - 2*margin

	if err := placeImage(pdf, "chart", chartImg, margin, topY, leftW-margin, pageH-topY-margin); err != nil {
		return nil, err
	}
	if err := placeImage(pdf, "legend", legendImg, leftW, topY, rightW, pageH-topY-margin); err != nil {
		return nil, err
	}

	pdf.SetFont("Helvetica", "", 10)
	pdf.Text(margin, pageH-14, "35x35 stitches / perfect 8-way symmetry (D8) / index 0 is background")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("write pdf: %w", err)
	}
	return buf.Bytes(), nil
}

// placeImage registers a PNG image with the document and draws it at (x, y)
// scaled down to fit inside maxW×maxH.
func placeImage(pdf *fpdf.Fpdf, name string, img image.Image, x, y, maxW, maxH float64) error {
	pngBytes, err := render.EncodePNG(img)
	if err != nil {
		return err
	}
	opts := fpdf.ImageOptions{ImageType: "PNG"}
	info := pdf.RegisterImageOptionsReader(name, opts, bytes.NewReader(pngBytes))
	if pdf.Err() {
		return fmt.Errorf("register %s image: %v", name, pdf.Error())
	}

	scale := maxW / info.Width()
	if s := maxH / info.Height(); s < scale {
		scale = s
	}
	if scale > 1 {
		scale = 1
	}
	pdf.ImageOptions(name, x, y, info.Width()*scale, info.Height()*scale, false, opts, 0, "")
	if pdf.Err() {
		return fmt.Errorf("place %s image: %v", name, pdf.Error())
	}
	return nil
}
