package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/wizard-wizard/kaleido-stitch/internal/chart"
	"github.com/wizard-wizard/kaleido-stitch/internal/httputil"
	"github.com/wizard-wizard/kaleido-stitch/internal/monitoring"
)

// ANSI escape codes for request log coloring.
const (
	colorCyan      = "\033[36m"
	colorReset     = "\033[0m"
	colorYellow    = "\033[33m"
	colorBoldGreen = "\033[1;32m"
	colorBoldRed   = "\033[1;31m"
)

type loggingResponseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (lrw *loggingResponseWriter) WriteHeader(code int) {
	lrw.statusCode = code
	lrw.ResponseWriter.WriteHeader(code)
}

func statusCodeColor(statusCode int) string {
	switch {
	case statusCode >= 200 && statusCode < 300:
		return colorBoldGreen + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 300 && statusCode < 400:
		return colorYellow + strconv.Itoa(statusCode) + colorReset
	case statusCode >= 400:
		return colorBoldRed + strconv.Itoa(statusCode) + colorReset
	default:
		return strconv.Itoa(statusCode)
	}
}

// loggingMiddleware logs method, path, status, and duration.
func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		lrw := &loggingResponseWriter{w, http.StatusOK}
		next.ServeHTTP(lrw, r)
		monitoring.Logf(
			"[%s] %s %s%s%s %vms",
			statusCodeColor(lrw.statusCode), r.Method,
			colorCyan, r.RequestURI, colorReset,
			float64(time.Since(start).Nanoseconds())/1e6,
		)
	})
}

// writeCoreError maps core errors onto HTTP statuses: unknown identifiers
// are 404, bad knobs 400, anything else 500.
func writeCoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, chart.ErrUnknownDesign), errors.Is(err, chart.ErrUnknownPalette):
		httputil.NotFound(w, err.Error())
	case errors.Is(err, chart.ErrInvalidParameter):
		httputil.BadRequest(w, err.Error())
	default:
		httputil.InternalServerError(w, err.Error())
	}
}
