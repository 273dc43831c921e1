package chart

import "errors"

// Sentinel errors for the generation core. Callers match them with
// errors.Is; the core wraps them with context via fmt.Errorf and %w.
var (
	// ErrUnknownDesign is returned when a design key is not registered.
	ErrUnknownDesign = errors.New("unknown design")
	// ErrUnknownPalette is returned when a palette key is not registered.
	ErrUnknownPalette = errors.New("unknown palette")
	// ErrInvalidParameter is returned for out-of-range generation or
	// rendering parameters.
	ErrInvalidParameter = errors.New("invalid parameter")
)
