package server

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/wizard-wizard/kaleido-stitch/internal/chart"
	"github.com/wizard-wizard/kaleido-stitch/internal/httputil"
)

// handleHeatmap renders the raw index grid as an ECharts heatmap (HTML).
// This is a debugging-only endpoint to eyeball symmetry and quantization
// without downloading a bundle. Takes the same query params as
// /api/chart.png.
func (s *Server) handleHeatmap(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	req := s.bundleRequestFromQuery(r)
	p := req.Params.Clamped()

	grid, err := chart.GenerateIndices(req.Design, p)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	pal, err := chart.LookupPalette(req.Palette)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	axis := make([]string, chart.Size)
	for i := range axis {
		axis[i] = strconv.Itoa(i)
	}
	data := make([]opts.HeatMapData, 0, chart.Size*chart.Size)
	for y := 0; y < chart.Size; y++ {
		for x := 0; x < chart.Size; x++ {
			// flip y so row 0 renders at the top, matching the PNG
			data = append(data, opts.HeatMapData{Value: [3]interface{}{x, chart.Size - 1 - y, grid.At(x, y)}})
		}
	}

	hm := charts.NewHeatMap()
	hm.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{PageTitle: "Kaleido Stitch Index Grid", Width: "780px", Height: "820px"}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Index grid",
			Subtitle: fmt.Sprintf("design=%s palette=%s seed=%d colors=%d", req.Design, req.Palette, p.Seed, p.Colors),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: axis}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: axis}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Show:       opts.Bool(true),
			Calculable: opts.Bool(false),
			Min:        0,
			Max:        float32(p.Colors - 1),
			InRange:    &opts.VisualMapInRange{Color: pal.Hex[:p.Colors]},
		}),
	)
	hm.AddSeries("indices", data)

	var buf bytes.Buffer
	if err := hm.Render(&buf); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to render heatmap: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
