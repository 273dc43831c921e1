package chart

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
)

// Design is one named pattern family. build draws the seeded constants for a
// generation and returns the resulting field function. Designs carrying
// fixed thresholds quantize with them when the requested color count
// matches; everything else goes through normalized equal-width bins.
type Design struct {
	Key        string
	Label      string
	thresholds []float64
	build      func(rng *rand.Rand) FieldFunc
}

// designs is the static design registry: six closed-form families and six
// stochastic blob-field families behind the same interface. Populated at
// process start, never mutated.
var designs = map[string]Design{}

func register(d Design) {
	if _, dup := designs[d.Key]; dup {
		panic(fmt.Sprintf("duplicate design key %q", d.Key))
	}
	designs[d.Key] = d
}

// LookupDesign returns the registered design for key, or ErrUnknownDesign.
func LookupDesign(key string) (Design, error) {
	d, ok := designs[key]
	if !ok {
		return Design{}, fmt.Errorf("%w: %q (options: %v)", ErrUnknownDesign, key, DesignKeys())
	}
	return d, nil
}

// DesignKeys returns the registered design keys in sorted order.
func DesignKeys() []string {
	keys := make([]string, 0, len(designs))
	for k := range designs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func init() {
	// Closed-form families: a few seeded constants, otherwise deterministic
	// trigonometric and modular combinations.
	register(Design{
		Key:        "rings_spokes",
		Label:      "Rings & Spokes",
		thresholds: []float64{-0.55, -0.25, -0.05, 0.10, 0.28, 0.52},
		build: func(rng *rand.Rand) FieldFunc {
			kr := uniform(rng, 0.55, 0.9)
			ka := uniform(rng, 4.5, 7.0)
			wob := uniform(rng, 0.15, 0.35)
			return func(fx, fy int) float64 {
				r, a := polar(fx, fy)
				return math.Sin(r*kr)*0.65 + math.Cos(a*ka)*0.55 + math.Sin(float64(fx-fy)*0.7)*wob
			}
		},
	})

	register(Design{
		Key:        "petal_vault",
		Label:      "Petal Vault",
		thresholds: []float64{-0.4, -0.15, 0.05, 0.20, 0.38, 0.60},
		build: func(rng *rand.Rand) FieldFunc {
			k1 := uniform(rng, 0.35, 0.55)
			k2 := uniform(rng, 1.2, 1.8)
			return func(fx, fy int) float64 {
				r, a := polar(fx, fy)
				v := math.Cos(r*k1)*(0.65+0.35*math.Cos(a*8)) + 0.35*math.Sin(float64(fx+fy)*k2)
				if r < 2.2 {
					v += 0.7
				}
				return v
			}
		},
	})

	register(Design{
		Key:        "starburst",
		Label:      "Starburst",
		thresholds: []float64{-0.45, -0.2, 0.0, 0.18, 0.35, 0.55},
		build: func(rng *rand.Rand) FieldFunc {
			k := uniform(rng, 0.85, 1.15)
			return func(fx, fy int) float64 {
				r, a := polar(fx, fy)
				v := math.Cos(a*12)*0.7 + math.Cos(r*k)*0.6 + math.Sin(float64(fx-fy)*0.9)*0.25
				if fy == 0 || fx == fy {
					// brighten the axis and diagonal rays
					v += 0.35
				}
				return v
			}
		},
	})

	register(Design{
		Key:        "mosaic_steps",
		Label:      "Mosaic Steps",
		thresholds: []float64{0.6, 1.15, 1.7, 2.2, 2.8, 3.4},
		build: func(rng *rand.Rand) FieldFunc {
			return func(fx, fy int) float64 {
				var v float64
				if m := (fx + fy) % 4; m == 0 || m == 1 {
					v += 1.1
				}
				if m := (fx - fy) % 5; m == 0 || m == 1 {
					v += 1.0
				}
				if fx%3 == 0 || fy%3 == 0 {
					v += 0.9
				}
				r := int(math.Sqrt(float64(fx*fx + fy*fy)))
				v += float64(r%6) * 0.35
				if (fx*fy)%11 == 0 {
					v += 0.8
				}
				return v
			}
		},
	})

	register(Design{
		Key:        "knotwork",
		Label:      "Knotwork",
		thresholds: []float64{0.7, 1.35, 2.0, 2.55, 3.2, 3.9},
		build: func(rng *rand.Rand) FieldFunc {
			return func(fx, fy int) float64 {
				var v float64
				if m, n := fx%4, fy%6; (m == 1 || m == 2) && (n == 2 || n == 3) {
					v += 1.8
				}
				if m, n := fy%4, fx%6; (m == 1 || m == 2) && (n == 2 || n == 3) {
					v += 1.6
				}
				r := math.Sqrt(float64(fx*fx + fy*fy))
				if int(r)%5 == 0 {
					v += 1.5
				}
				if fx%7 == 0 && fy%7 == 0 {
					v += 0.8
				}
				v += 0.6 * (math.Sin(float64(fx+1)*0.8) + math.Cos(float64(fy+1)*0.7))
				return v
			}
		},
	})

	register(Design{
		Key:        "lattice_garden",
		Label:      "Lattice Garden",
		thresholds: []float64{-0.4, -0.15, 0.05, 0.22, 0.40, 0.62},
		build: func(rng *rand.Rand) FieldFunc {
			return func(fx, fy int) float64 {
				r, _ := polar(fx, fy)
				v := 0.45*math.Sin(float64(fx)*0.9) + 0.45*math.Cos(float64(fy)*1.05) + 0.55*math.Cos(r*0.55)
				v += 0.25 * math.Cos(float64(fx-fy)*1.7)
				return v
			}
		},
	})

	// Stochastic blob-field families: seeded Gaussian bumps for large-scale
	// structure plus per-cell jitter to break quantization ties. These have
	// no fixed thresholds; their fields are normalized before bucketing.
	register(Design{
		Key:   "nebula_bloom",
		Label: "Nebula Bloom",
		build: func(rng *rand.Rand) FieldFunc {
			blobs := seedBlobs(rng, 5, 0.6, 1.1)
			jit := seedJitter(rng, 0.04)
			kr := uniform(rng, 0.3, 0.5)
			return func(fx, fy int) float64 {
				r, a := polar(fx, fy)
				return blobField(blobs, fx, fy) + 0.45*math.Cos(r*kr) + 0.2*math.Cos(a*6) + jit[fy][fx]
			}
		},
	})

	register(Design{
		Key:   "tide_pools",
		Label: "Tide Pools",
		build: func(rng *rand.Rand) FieldFunc {
			blobs := seedBlobs(rng, 7, 0.4, 0.8)
			jit := seedJitter(rng, 0.035)
			kr := uniform(rng, 0.6, 0.95)
			return func(fx, fy int) float64 {
				r, _ := polar(fx, fy)
				return blobField(blobs, fx, fy) + 0.5*math.Sin(r*kr) + 0.15*math.Sin(float64(fx-fy)*0.8) + jit[fy][fx]
			}
		},
	})

	register(Design{
		Key:   "ember_drift",
		Label: "Ember Drift",
		build: func(rng *rand.Rand) FieldFunc {
			blobs := seedBlobs(rng, 4, 0.7, 1.3)
			jit := seedJitter(rng, 0.06)
			ka := uniform(rng, 9, 11)
			return func(fx, fy int) float64 {
				r, a := polar(fx, fy)
				return blobField(blobs, fx, fy) + 0.35*math.Cos(a*ka) - 0.02*r + jit[fy][fx]
			}
		},
	})

	register(Design{
		Key:   "moss_quilt",
		Label: "Moss Quilt",
		build: func(rng *rand.Rand) FieldFunc {
			blobs := seedBlobs(rng, 6, 0.5, 0.9)
			jit := seedJitter(rng, 0.04)
			k1 := uniform(rng, 0.7, 1.1)
			k2 := uniform(rng, 0.5, 0.9)
			return func(fx, fy int) float64 {
				// corridor terms keep this family blocky
				v := 0.4*math.Sin(math.Abs(float64(fx-fy))*k1) + 0.35*math.Cos(float64(fx+fy)*k2)
				return v + blobField(blobs, fx, fy) + jit[fy][fx]
			}
		},
	})

	register(Design{
		Key:   "frost_feathers",
		Label: "Frost Feathers",
		build: func(rng *rand.Rand) FieldFunc {
			blobs := seedBlobs(rng, 3, 0.3, 0.6)
			jit := seedJitter(rng, 0.05)
			k := uniform(rng, 0.75, 1.05)
			return func(fx, fy int) float64 {
				r, a := polar(fx, fy)
				return 0.6*math.Cos(a*14) + 0.4*math.Cos(r*k) + blobField(blobs, fx, fy) + jit[fy][fx]
			}
		},
	})

	register(Design{
		Key:   "geode_veins",
		Label: "Geode Veins",
		build: func(rng *rand.Rand) FieldFunc {
			blobs := seedBlobs(rng, 5, 0.5, 1.0)
			jit := seedJitter(rng, 0.045)
			k1 := uniform(rng, 0.5, 0.8)
			k2 := uniform(rng, 1.1, 1.6)
			return func(fx, fy int) float64 {
				r, _ := polar(fx, fy)
				v := 0.55*math.Sin(r*k1) + 0.3*math.Sin(float64(fx+fy)*k2)
				return v + blobField(blobs, fx, fy) + jit[fy][fx]
			}
		},
	})
}
