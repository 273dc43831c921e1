package chart

import (
	"fmt"
	"math/rand"
)

// GenerateIndices runs the full generation pipeline for one request: build
// the seeded field, evaluate it over the fundamental wedge, quantize,
// smooth, and expand to the symmetric Size×Size grid. The same design key,
// seed and knobs always reproduce a bit-identical grid.
//
// Unknown design keys are hard errors; out-of-range knobs are rejected (the
// CLI and HTTP layers clamp before calling, and document that policy).
func GenerateIndices(designKey string, p Params) (*Grid, error) {
	d, err := LookupDesign(designKey)
	if err != nil {
		return nil, err
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("design %q: %w", designKey, err)
	}

	rng := rand.New(rand.NewSource(p.Seed))
	field := withLineBias(rng, d.build(rng), p.LineBias)

	idx := quantizeWedge(evaluate(field), d, p.Colors)
	for i := 0; i < p.Smoothing; i++ {
		idx = smoothWedge(idx)
	}
	return idx.expand(), nil
}
