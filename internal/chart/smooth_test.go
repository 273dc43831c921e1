package chart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMajorityAtTieBreaksLow(t *testing.T) {
	var w indexWedge
	for fy := 0; fy < Half; fy++ {
		for fx := 0; fx < Half; fx++ {
			w[fy][fx] = 5
		}
	}
	// Neighborhood of canonical interior cell (8, 4): five 2s (centre plus
	// four neighbors) against four 5s, so 2 holds the clear majority.
	w[4][8] = 2
	w[4][7] = 2
	w[3][7], w[3][8], w[3][9] = 2, 2, 2
	got := majorityAt(&w, 8, 4)
	assert.Equal(t, 2, got)

	// Exact tie: centre flips to 6, leaving counts 2:4, 5:4, 6:1. The
	// lower index must win.
	w[4][8] = 6
	got = majorityAt(&w, 8, 4)
	assert.Equal(t, 2, got, "tie must resolve to the lowest index")
}

func TestMajorityAtSkipsOutOfRangeValues(t *testing.T) {
	var w indexWedge
	for fy := 0; fy < Half; fy++ {
		for fx := 0; fx < Half; fx++ {
			w[fy][fx] = 4
		}
	}
	// A corrupted cell beyond the palette domain must not crash the vote;
	// it is simply excluded from the count.
	w[4][8] = MaxColors + 3
	assert.NotPanics(t, func() {
		got := majorityAt(&w, 8, 4)
		assert.Equal(t, 4, got, "vote should fall to the valid neighbors")
	})
}

func TestSmoothUniformIsFixedPoint(t *testing.T) {
	var w indexWedge
	for fy := 0; fy < Half; fy++ {
		for fx := fy; fx < Half; fx++ {
			w[fy][fx] = 3
		}
	}
	out := smoothWedge(&w)
	for fy := 0; fy < Half; fy++ {
		for fx := fy; fx < Half; fx++ {
			require.Equal(t, 3, out[fy][fx], "uniform wedge must be unchanged at (%d, %d)", fx, fy)
		}
	}
}

func TestSmoothRemovesIsolatedSpeckle(t *testing.T) {
	var w indexWedge
	w[4][9] = 6 // lone speckle in a field of zeros
	out := smoothWedge(&w)
	assert.Equal(t, 0, out[4][9], "isolated speckle should be voted out")
}

func TestSmoothingMonotonicAgreement(t *testing.T) {
	t.Parallel()
	// More smoothing passes must never reduce the neighbor-agreement
	// ratio of the expanded grid.
	for _, designKey := range DesignKeys() {
		designKey := designKey
		t.Run(designKey, func(t *testing.T) {
			t.Parallel()
			agreements := make([]float64, MaxSmoothing+1)
			for s := 0; s <= MaxSmoothing; s++ {
				p := DefaultParams()
				p.Seed = 42
				p.Smoothing = s
				g, err := GenerateIndices(designKey, p)
				require.NoError(t, err)
				agreements[s] = g.NeighborAgreement()
			}
			for s := 1; s <= MaxSmoothing; s++ {
				assert.GreaterOrEqual(t, agreements[s], agreements[s-1],
					"agreement dropped between smoothing %d and %d", s-1, s)
			}
			assert.Greater(t, agreements[MaxSmoothing], agreements[0],
				"full smoothing should merge regions versus none")
		})
	}
}
