package chart

// smoothWedge applies one pass of the 3×3 majority filter to the wedge.
// Neighborhood lookups fold through the symmetry group, so filtering the
// wedge is exactly equivalent to filtering the full grid and folding the
// result: symmetry can never be violated. Neighbors that would fall outside
// the grid are skipped (clamped boundary, no wraparound). Ties resolve to
// the lowest index for determinism.
func smoothWedge(w *indexWedge) *indexWedge {
	var out indexWedge
	for fy := 0; fy < Half; fy++ {
		for fx := fy; fx < Half; fx++ {
			out[fy][fx] = majorityAt(w, fx, fy)
		}
	}
	return &out
}

// majorityAt returns the most frequent index in the 3×3 neighborhood of a
// wedge cell, including the cell itself.
func majorityAt(w *indexWedge, fx, fy int) int {
	var counts [MaxColors]int
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			nx, ny := fx+dx, fy+dy
			if nx < 0 {
				nx = -nx
			}
			if ny < 0 {
				ny = -ny
			}
			if nx >= Half || ny >= Half {
				continue
			}
			if ny > nx {
				nx, ny = ny, nx
			}
			v := w[ny][nx]
			if v < 0 || v >= MaxColors {
				// malformed wedge value; exclude it from the vote
				continue
			}
			counts[v]++
		}
	}
	best, bestCount := 0, 0
	for i, c := range counts {
		if c > bestCount {
			best, bestCount = i, c
		}
	}
	return best
}
