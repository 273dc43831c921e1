package chart

import (
	"math"
	"math/rand"
)

// FieldFunc is a pure scalar field over folded wedge coordinates. Every
// design reduces to one of these once its seeded constants are drawn.
type FieldFunc func(fx, fy int) float64

// fieldWedge holds the evaluated scalar field over the fundamental wedge.
type fieldWedge [Half][Half]float64

// uniform draws from [lo, hi) using the generation RNG.
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

// polar returns the Euclidean radius and polar angle of a wedge cell. The
// tiny epsilons avoid r == 0 and atan2(0, 0) at the centre cell.
func polar(fx, fy int) (r, a float64) {
	x, y := float64(fx), float64(fy)
	return math.Hypot(x, y) + 1e-6, math.Atan2(y, x+1e-6)
}

// blob is one Gaussian bump of a stochastic design's low-frequency field.
type blob struct {
	x, y float64
	inv  float64 // 1 / (2*sigma^2)
	amp  float64
}

// seedBlobs draws n Gaussian bumps with centres inside the wedge. Amplitude
// signs alternate by draw so the blob field has both ridges and hollows.
func seedBlobs(rng *rand.Rand, n int, ampLo, ampHi float64) []blob {
	blobs := make([]blob, n)
	for i := range blobs {
		sigma := uniform(rng, 1.6, 4.2)
		amp := uniform(rng, ampLo, ampHi)
		if rng.Intn(2) == 1 {
			amp = -amp
		}
		blobs[i] = blob{
			x:   uniform(rng, 0, float64(maskRadius)),
			y:   uniform(rng, 0, float64(maskRadius)),
			inv: 1 / (2 * sigma * sigma),
			amp: amp,
		}
	}
	return blobs
}

// blobField sums the Gaussian bumps at a wedge cell.
func blobField(blobs []blob, fx, fy int) float64 {
	x, y := float64(fx), float64(fy)
	var v float64
	for _, b := range blobs {
		dx, dy := x-b.x, y-b.y
		v += b.amp * math.Exp(-(dx*dx+dy*dy)*b.inv)
	}
	return v
}

// seedJitter fills a per-cell noise table. Values are small enough to break
// quantization ties without visible texture of their own.
func seedJitter(rng *rand.Rand, amp float64) *fieldWedge {
	var j fieldWedge
	for fy := 0; fy < Half; fy++ {
		for fx := 0; fx < Half; fx++ {
			j[fy][fx] = (rng.Float64()*2 - 1) * amp
		}
	}
	return &j
}

// withLineBias layers the seeded banding term over a design field. The knob
// scales concentric ring and spoke accents; zero bias returns the field
// untouched so closed-form designs stay bit-identical to their baseline.
func withLineBias(rng *rand.Rand, base FieldFunc, bias float64) FieldFunc {
	if bias == 0 {
		return base
	}
	freq := uniform(rng, 0.45, 0.85)
	phase := uniform(rng, 0, 2*math.Pi)
	mult := float64(4 + 2*rng.Intn(3)) // spoke multiplicity 4, 6 or 8
	amp := bias * 0.045
	return func(fx, fy int) float64 {
		r, a := polar(fx, fy)
		return base(fx, fy) + amp*math.Sin(r*freq+phase) + 0.6*amp*math.Cos(a*mult)
	}
}

// evaluate fills the canonical half of the wedge (fy <= fx) from a field
// function. The redundant half is never read; expansion folds into the
// canonical cells.
func evaluate(f FieldFunc) *fieldWedge {
	var w fieldWedge
	for fy := 0; fy < Half; fy++ {
		for fx := fy; fx < Half; fx++ {
			w[fy][fx] = f(fx, fy)
		}
	}
	return &w
}
