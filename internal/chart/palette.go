package chart

import (
	"fmt"
	"image/color"
	"sort"
	"strconv"
)

// Palette is an ordered list of chart colors. Index 0 is always the
// background color. Palettes are static process-wide data; nothing mutates
// them after init.
type Palette struct {
	Key string
	Hex []string
}

// Colors returns the first k palette entries as RGBA values. k must be in
// [MinColors, len(Hex)].
func (p Palette) Colors(k int) ([]color.RGBA, error) {
	if k < MinColors || k > len(p.Hex) {
		return nil, fmt.Errorf("%w: palette %q has %d colors, requested %d", ErrInvalidParameter, p.Key, len(p.Hex), k)
	}
	out := make([]color.RGBA, k)
	for i := 0; i < k; i++ {
		c, err := ParseHexColor(p.Hex[i])
		if err != nil {
			return nil, fmt.Errorf("palette %q entry %d: %w", p.Key, i, err)
		}
		out[i] = c
	}
	return out, nil
}

// ParseHexColor parses a "#RRGGBB" string into an opaque RGBA color.
func ParseHexColor(h string) (color.RGBA, error) {
	if len(h) > 0 && h[0] == '#' {
		h = h[1:]
	}
	if len(h) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: hex color must be 6 digits, got %q", ErrInvalidParameter, h)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: bad hex color %q", ErrInvalidParameter, h)
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// palettes is the static palette registry. Seven colors each, background
// first.
var palettes = map[string]Palette{
	"jewel_bazaar":    {Key: "jewel_bazaar", Hex: []string{"#F7F0E8", "#1B4F72", "#7D3C98", "#117A65", "#B03A2E", "#AF601A", "#5D4037"}},
	"forest_copper":   {Key: "forest_copper", Hex: []string{"#FBF6EF", "#1E2D24", "#2E6B4F", "#7A8F3A", "#B76E3A", "#6B3E26", "#2A7FAA"}},
	"ocean_coral":     {Key: "ocean_coral", Hex: []string{"#F5FBFF", "#0B3954", "#087E8B", "#BFD7EA", "#FF5A5F", "#C81D25", "#4E8098"}},
	"night_neon":      {Key: "night_neon", Hex: []string{"#0A0A0B", "#00E5FF", "#FF2EEA", "#FFD400", "#00FF6A", "#7C4DFF", "#FFFFFF"}},
	"antique_sampler": {Key: "antique_sampler", Hex: []string{"#FAF5EA", "#2E2A24", "#6C4B3B", "#A77B5A", "#C2A46B", "#6E7F63", "#9B4F4F"}},
}

// LookupPalette returns the registered palette for key, or ErrUnknownPalette.
func LookupPalette(key string) (Palette, error) {
	p, ok := palettes[key]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q (options: %v)", ErrUnknownPalette, key, PaletteKeys())
	}
	return p, nil
}

// PaletteKeys returns the registered palette keys in sorted order.
func PaletteKeys() []string {
	keys := make([]string, 0, len(palettes))
	for k := range palettes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
