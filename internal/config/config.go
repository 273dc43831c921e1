// Package config loads chart generation defaults from an optional JSON
// file. Fields omitted from the file fall back to the built-in defaults via
// the Get* accessors, so partial configs are safe.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Built-in defaults used when a field is absent from the config file (or no
// file is given at all).
const (
	DefaultDesign   = "rings_spokes"
	DefaultPalette  = "jewel_bazaar"
	DefaultCell     = 22
	DefaultGridline = 1
)

// ChartConfig represents the optional defaults file for the CLI and server.
// All fields are pointers so a partial file only overrides what it names.
type ChartConfig struct {
	Design   *string `json:"design,omitempty"`
	Palette  *string `json:"palette,omitempty"`
	Cell     *int    `json:"cell,omitempty"`
	Gridline *int    `json:"gridline,omitempty"`
}

// Empty returns a ChartConfig with every field unset.
func Empty() *ChartConfig {
	return &ChartConfig{}
}

// Load reads a ChartConfig from a JSON file. The path must end in .json and
// the file must be under 1MB.
func Load(path string) (*ChartConfig, error) {
	cleanPath := filepath.Clean(path)
	if ext := filepath.Ext(cleanPath); ext != ".json" {
		return nil, fmt.Errorf("config file must have .json extension, got %q", ext)
	}

	info, err := os.Stat(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}
	const maxFileSize = 1 * 1024 * 1024
	if info.Size() > maxFileSize {
		return nil, fmt.Errorf("config file too large: %d bytes (max %d)", info.Size(), maxFileSize)
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := Empty()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	return cfg, nil
}

// GetDesign returns the configured default design key.
func (c *ChartConfig) GetDesign() string {
	if c != nil && c.Design != nil {
		return *c.Design
	}
	return DefaultDesign
}

// GetPalette returns the configured default palette key.
func (c *ChartConfig) GetPalette() string {
	if c != nil && c.Palette != nil {
		return *c.Palette
	}
	return DefaultPalette
}

// GetCell returns the configured default chart cell size in pixels.
func (c *ChartConfig) GetCell() int {
	if c != nil && c.Cell != nil {
		return *c.Cell
	}
	return DefaultCell
}

// GetGridline returns the configured default gridline width in pixels.
func (c *ChartConfig) GetGridline() int {
	if c != nil && c.Gridline != nil {
		return *c.Gridline
	}
	return DefaultGridline
}
