package chart

import "fmt"

// Knob bounds. Numeric knobs outside these ranges are rejected by Validate;
// consumers that prefer clamping call Clamped before Validate.
const (
	MinColors    = 3
	MaxColors    = 7
	MaxSmoothing = 6
	MaxLineBias  = 10.0
)

// Params holds the tunable knobs for one generation request. The zero value
// is not valid; start from DefaultParams.
type Params struct {
	Seed      int64   // drives every randomized term (default: 0)
	Colors    int     // palette size K, indices land in [0, K-1] (default: 7)
	Smoothing int     // majority filter iterations (default: 0)
	LineBias  float64 // banding term amplitude (default: 0)
}

// DefaultParams returns the baseline knob settings used by the CLI and the
// web form.
func DefaultParams() Params {
	return Params{Seed: 0, Colors: MaxColors, Smoothing: 0, LineBias: 0}
}

// Validate checks that every knob is in range. It returns an error wrapping
// ErrInvalidParameter so callers can distinguish knob problems from unknown
// identifiers.
func (p Params) Validate() error {
	if p.Colors < MinColors || p.Colors > MaxColors {
		return fmt.Errorf("%w: colors must be in [%d, %d], got %d", ErrInvalidParameter, MinColors, MaxColors, p.Colors)
	}
	if p.Smoothing < 0 || p.Smoothing > MaxSmoothing {
		return fmt.Errorf("%w: smoothing must be in [0, %d], got %d", ErrInvalidParameter, MaxSmoothing, p.Smoothing)
	}
	if p.LineBias < 0 || p.LineBias > MaxLineBias {
		return fmt.Errorf("%w: line bias must be in [0, %g], got %g", ErrInvalidParameter, MaxLineBias, p.LineBias)
	}
	return nil
}

// Clamped returns a copy with every numeric knob clamped to its nearest
// valid bound. The CLI and HTTP layers clamp rather than reject; the core
// itself stays strict.
func (p Params) Clamped() Params {
	if p.Colors < MinColors {
		p.Colors = MinColors
	}
	if p.Colors > MaxColors {
		p.Colors = MaxColors
	}
	if p.Smoothing < 0 {
		p.Smoothing = 0
	}
	if p.Smoothing > MaxSmoothing {
		p.Smoothing = MaxSmoothing
	}
	if p.LineBias < 0 {
		p.LineBias = 0
	}
	if p.LineBias > MaxLineBias {
		p.LineBias = MaxLineBias
	}
	return p
}
