package chart

import "gonum.org/v1/gonum/floats"

// bucket returns the index of v under ascending cutoffs: the count of
// cutoffs v is greater than or equal to. Values below the first cutoff land
// in bucket 0.
func bucket(v float64, cutoffs []float64) int {
	for i, t := range cutoffs {
		if v < t {
			return i
		}
	}
	return len(cutoffs)
}

// quantizeWedge maps the continuous field to palette indices in [0, k-1].
// Designs with fixed thresholds matching k-1 cutoffs use them directly;
// otherwise the field is min-max normalized over in-mask cells and bucketed
// into k equal-width bins. Cells outside the boundary mask always take
// background index 0.
func quantizeWedge(w *fieldWedge, d Design, k int) *indexWedge {
	var idx indexWedge
	if len(d.thresholds) == k-1 {
		for fy := 0; fy < Half; fy++ {
			for fx := fy; fx < Half; fx++ {
				if inMask(fx, fy) {
					idx[fy][fx] = bucket(w[fy][fx], d.thresholds)
				}
			}
		}
		return &idx
	}

	vals := make([]float64, 0, Half*Half)
	for fy := 0; fy < Half; fy++ {
		for fx := fy; fx < Half; fx++ {
			if inMask(fx, fy) {
				vals = append(vals, w[fy][fx])
			}
		}
	}
	lo, hi := floats.Min(vals), floats.Max(vals)
	span := hi - lo
	if span == 0 {
		// degenerate constant field: everything stays background
		return &idx
	}
	for fy := 0; fy < Half; fy++ {
		for fx := fy; fx < Half; fx++ {
			if !inMask(fx, fy) {
				continue
			}
			b := int((w[fy][fx] - lo) / span * float64(k))
			if b >= k {
				b = k - 1
			}
			idx[fy][fx] = b
		}
	}
	return &idx
}
