package chart

import (
	"errors"
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    color.RGBA
		wantErr bool
	}{
		{"with hash", "#FF5A5F", color.RGBA{R: 0xFF, G: 0x5A, B: 0x5F, A: 255}, false},
		{"without hash", "0B3954", color.RGBA{R: 0x0B, G: 0x39, B: 0x54, A: 255}, false},
		{"black", "#000000", color.RGBA{A: 255}, false},
		{"too short", "#FFF", color.RGBA{}, true},
		{"not hex", "#GGGGGG", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHexColor(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseHexColor(%q) expected error, got %v", tt.in, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q) unexpected error: %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPaletteRegistry(t *testing.T) {
	keys := PaletteKeys()
	if len(keys) != 5 {
		t.Fatalf("expected 5 palettes, got %d", len(keys))
	}
	for _, key := range keys {
		p, err := LookupPalette(key)
		if err != nil {
			t.Fatalf("LookupPalette(%q): %v", key, err)
		}
		if len(p.Hex) != MaxColors {
			t.Errorf("palette %q has %d colors, want %d", key, len(p.Hex), MaxColors)
		}
		for i, h := range p.Hex {
			if _, err := ParseHexColor(h); err != nil {
				t.Errorf("palette %q entry %d (%q) does not parse: %v", key, i, h, err)
			}
		}
	}
}

func TestLookupPaletteUnknown(t *testing.T) {
	_, err := LookupPalette("not_a_palette")
	if !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("want ErrUnknownPalette, got %v", err)
	}
}

func TestPaletteColorsSlice(t *testing.T) {
	p, err := LookupPalette("jewel_bazaar")
	if err != nil {
		t.Fatal(err)
	}
	colors, err := p.Colors(3)
	if err != nil {
		t.Fatal(err)
	}
	if len(colors) != 3 {
		t.Fatalf("expected a 3-entry slice, got %d", len(colors))
	}

	if _, err := p.Colors(8); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("oversized slice: want ErrInvalidParameter, got %v", err)
	}
	if _, err := p.Colors(2); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("undersized slice: want ErrInvalidParameter, got %v", err)
	}
}
