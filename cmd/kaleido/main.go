// Command kaleido generates a Kaleido Stitch ZIP bundle from the command
// line and extracts it next to the archive for convenience.
package main

import (
	"archive/zip"
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/wizard-wizard/kaleido-stitch/internal/chart"
	"github.com/wizard-wizard/kaleido-stitch/internal/config"
	"github.com/wizard-wizard/kaleido-stitch/internal/export"
	"github.com/wizard-wizard/kaleido-stitch/internal/security"
	"github.com/wizard-wizard/kaleido-stitch/internal/version"
)

var (
	designFlag  = flag.String("design", config.DefaultDesign, "Design key (see -list)")
	paletteFlag = flag.String("palette", config.DefaultPalette, "Palette key (see -list)")
	seed        = flag.Int64("seed", 0, "Seed for the randomized terms")
	colors      = flag.Int("colors", chart.MaxColors, "Palette size including background (3-7)")
	smoothing   = flag.Int("smoothing", 0, "Majority filter passes (0-6)")
	lineBias    = flag.Float64("linebias", 0, "Banding accent strength (0-10)")
	cell        = flag.Int("cell", config.DefaultCell, "Chart cell size in pixels")
	gridline    = flag.Int("gridline", config.DefaultGridline, "Gridline width in pixels")
	outDir      = flag.String("out", "out", "Output directory (will be created)")
	configPath  = flag.String("config", "", "Optional JSON defaults file")
	list        = flag.Bool("list", false, "List designs and palettes, then exit")
	showVersion = flag.Bool("version", false, "Print version and exit")
)

func main() {
	flag.Parse()

	if *showVersion {
		fmt.Printf("kaleido %s (%s, built %s)\n", version.Version, version.GitSHA, version.BuildTime)
		return
	}
	if *list {
		fmt.Println("Designs:")
		for _, k := range chart.DesignKeys() {
			fmt.Printf("  %s\n", k)
		}
		fmt.Println("Palettes:")
		for _, k := range chart.PaletteKeys() {
			fmt.Printf("  %s\n", k)
		}
		return
	}

	req := export.BundleRequest{
		Design:  *designFlag,
		Palette: *paletteFlag,
		Params: chart.Params{
			Seed:      *seed,
			Colors:    *colors,
			Smoothing: *smoothing,
			LineBias:  *lineBias,
		},
		Cell:     *cell,
		Gridline: *gridline,
	}
	if *configPath != "" {
		cfg, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("load config: %v", err)
		}
		applyConfigDefaults(&req, cfg)
	}

	zipBytes, err := export.Bundle(req)
	if err != nil {
		log.Fatalf("generate bundle: %v", err)
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		log.Fatalf("create output dir: %v", err)
	}
	base := fmt.Sprintf("kaleido_%s_%s_seed%d", security.SanitizeFilename(req.Design), security.SanitizeFilename(req.Palette), req.Params.Seed)
	zipPath := filepath.Join(*outDir, base+".zip")
	if err := os.WriteFile(zipPath, zipBytes, 0644); err != nil {
		log.Fatalf("write zip: %v", err)
	}

	extractDir := filepath.Join(*outDir, base)
	if err := extractZip(zipBytes, extractDir); err != nil {
		log.Fatalf("extract zip: %v", err)
	}

	fmt.Printf("Wrote: %s\n", zipPath)
	fmt.Printf("Extracted to: %s\n", extractDir)
}

// applyConfigDefaults fills request fields the user left at built-in
// defaults with values from the config file. Explicit flags win.
func applyConfigDefaults(req *export.BundleRequest, cfg *config.ChartConfig) {
	flagsSet := map[string]bool{}
	flag.Visit(func(f *flag.Flag) { flagsSet[f.Name] = true })
	if !flagsSet["design"] {
		req.Design = cfg.GetDesign()
	}
	if !flagsSet["palette"] {
		req.Palette = cfg.GetPalette()
	}
	if !flagsSet["cell"] {
		req.Cell = cfg.GetCell()
	}
	if !flagsSet["gridline"] {
		req.Gridline = cfg.GetGridline()
	}
}

func extractZip(zipBytes []byte, dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	zr, err := zip.NewReader(bytes.NewReader(zipBytes), int64(len(zipBytes)))
	if err != nil {
		return err
	}
	for _, f := range zr.File {
		if err := security.ValidateArchiveMemberPath(f.Name, dir); err != nil {
			return err
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		data, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return err
		}
		if err := os.WriteFile(filepath.Join(dir, f.Name), data, 0644); err != nil {
			return err
		}
	}
	return nil
}
