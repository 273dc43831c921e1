// Package server exposes the generation core over HTTP: an embedded HTML
// form, JSON registry endpoints, direct PNG rendering, and ZIP bundle
// downloads. It is a thin consumer of internal/chart and internal/export;
// out-of-range numeric knobs are clamped here, unknown identifiers stay
// hard errors.
package server

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/wizard-wizard/kaleido-stitch/internal/chart"
	"github.com/wizard-wizard/kaleido-stitch/internal/config"
	"github.com/wizard-wizard/kaleido-stitch/internal/export"
	"github.com/wizard-wizard/kaleido-stitch/internal/httputil"
	"github.com/wizard-wizard/kaleido-stitch/internal/monitoring"
	"github.com/wizard-wizard/kaleido-stitch/internal/render"
	"github.com/wizard-wizard/kaleido-stitch/internal/security"
	"github.com/wizard-wizard/kaleido-stitch/internal/timeutil"
)

//go:embed index.html
var indexHTML embed.FS

// Server handles the HTTP interface for chart generation.
type Server struct {
	address string
	cfg     *config.ChartConfig
	server  *http.Server
	tmpl    *template.Template
	clock   timeutil.Clock
}

// NewServer creates a web server with the provided listen address and
// defaults. cfg may be nil; built-in defaults apply.
func NewServer(address string, cfg *config.ChartConfig) (*Server, error) {
	content, err := indexHTML.ReadFile("index.html")
	if err != nil {
		return nil, fmt.Errorf("read embedded index: %w", err)
	}
	tmpl, err := template.New("index").Parse(string(content))
	if err != nil {
		return nil, fmt.Errorf("parse index template: %w", err)
	}

	s := &Server{
		address: address,
		cfg:     cfg,
		tmpl:    tmpl,
		clock:   timeutil.RealClock{},
	}
	s.server = &http.Server{
		Addr:    address,
		Handler: loggingMiddleware(s.setupRoutes()),
	}
	return s, nil
}

// Start begins the HTTP server in a goroutine and shuts it down when the
// context is cancelled.
func (s *Server) Start(ctx context.Context) error {
	go func() {
		monitoring.Logf("starting HTTP server on %s", s.address)
		if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			monitoring.Logf("HTTP server error: %v", err)
		}
	}()

	<-ctx.Done()
	monitoring.Logf("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil {
		monitoring.Logf("HTTP server shutdown error: %v", err)
		if err := s.server.Close(); err != nil {
			monitoring.Logf("HTTP server force close error: %v", err)
		}
	}
	return nil
}

// setupRoutes configures the HTTP routes and handlers.
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/generate", s.handleGenerate)
	mux.HandleFunc("/api/designs", s.handleDesigns)
	mux.HandleFunc("/api/palettes", s.handlePalettes)
	mux.HandleFunc("/api/chart.png", s.handleChartPNG)
	mux.HandleFunc("/api/debug/heatmap", s.handleHeatmap)
	return mux
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		httputil.NotFound(w, "not found")
		return
	}
	data := struct {
		Designs  []string
		Palettes []string
		Design   string
		Palette  string
		Cell     int
		Gridline int
	}{
		Designs:  chart.DesignKeys(),
		Palettes: chart.PaletteKeys(),
		Design:   s.cfg.GetDesign(),
		Palette:  s.cfg.GetPalette(),
		Cell:     s.cfg.GetCell(),
		Gridline: s.cfg.GetGridline(),
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.tmpl.Execute(w, data); err != nil {
		monitoring.Logf("render index template: %v", err)
	}
}

func (s *Server) handleDesigns(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string][]string{"designs": chart.DesignKeys()})
}

func (s *Server) handlePalettes(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string][]string{"palettes": chart.PaletteKeys()})
}

// handleGenerate builds the full ZIP bundle and serves it as a download.
func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}
	req := s.bundleRequestFromForm(r)

	zipBytes, err := export.Bundle(req)
	if err != nil {
		writeCoreError(w, err)
		return
	}

	bundleID := uuid.NewString()
	stamp := s.clock.Now().Format("20060102_150405")
	fname := fmt.Sprintf("kaleido_%s_%s_seed%d_%s.zip",
		security.SanitizeFilename(req.Design), security.SanitizeFilename(req.Palette), req.Params.Seed, stamp)

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fname))
	w.Header().Set("X-Bundle-ID", bundleID)
	if _, err := w.Write(zipBytes); err != nil {
		monitoring.Logf("write bundle %s: %v", bundleID, err)
	}
}

// handleChartPNG renders just the chart image for quick previews.
// Query params: design, palette, seed, colors, smoothing, linebias, cell,
// gridline.
func (s *Server) handleChartPNG(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		httputil.MethodNotAllowed(w)
		return
	}
	req := s.bundleRequestFromQuery(r)

	grid, err := chart.GenerateIndices(req.Design, req.Params.Clamped())
	if err != nil {
		writeCoreError(w, err)
		return
	}
	pal, err := chart.LookupPalette(req.Palette)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	colors, err := pal.Colors(req.Params.Clamped().Colors)
	if err != nil {
		writeCoreError(w, err)
		return
	}
	img, err := render.Chart(grid, colors, clamp(req.Cell, render.MinCell, render.MaxCell), clamp(req.Gridline, 0, render.MaxGridline))
	if err != nil {
		writeCoreError(w, err)
		return
	}
	pngBytes, err := render.EncodePNG(img)
	if err != nil {
		httputil.InternalServerError(w, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/png")
	_, _ = w.Write(pngBytes)
}

func (s *Server) bundleRequestFromForm(r *http.Request) export.BundleRequest {
	return export.BundleRequest{
		Design:  formValue(r.FormValue("design"), s.cfg.GetDesign()),
		Palette: formValue(r.FormValue("palette"), s.cfg.GetPalette()),
		Params: chart.Params{
			Seed:      parseInt64(r.FormValue("seed"), 0),
			Colors:    parseInt(r.FormValue("colors"), chart.MaxColors),
			Smoothing: parseInt(r.FormValue("smoothing"), 0),
			LineBias:  parseFloat(r.FormValue("linebias"), 0),
		},
		Cell:     parseInt(r.FormValue("cell"), s.cfg.GetCell()),
		Gridline: parseInt(r.FormValue("gridline"), s.cfg.GetGridline()),
	}
}

func (s *Server) bundleRequestFromQuery(r *http.Request) export.BundleRequest {
	q := r.URL.Query()
	return export.BundleRequest{
		Design:  formValue(q.Get("design"), s.cfg.GetDesign()),
		Palette: formValue(q.Get("palette"), s.cfg.GetPalette()),
		Params: chart.Params{
			Seed:      parseInt64(q.Get("seed"), 0),
			Colors:    parseInt(q.Get("colors"), chart.MaxColors),
			Smoothing: parseInt(q.Get("smoothing"), 0),
			LineBias:  parseFloat(q.Get("linebias"), 0),
		},
		Cell:     parseInt(q.Get("cell"), s.cfg.GetCell()),
		Gridline: parseInt(q.Get("gridline"), s.cfg.GetGridline()),
	}
}

func formValue(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}

func parseInt(v string, fallback int) int {
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func parseInt64(v string, fallback int64) int64 {
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}

func parseFloat(v string, fallback float64) float64 {
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fallback
	}
	return f
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
