package chart

// Grid is a finished Size×Size matrix of palette indices. A Grid is only
// ever produced by expanding a quantized wedge, so it is invariant under all
// 8 dihedral symmetry operations by construction.
type Grid struct {
	Cells [Size][Size]int
}

// At returns the palette index at column x, row y.
func (g *Grid) At(x, y int) int {
	return g.Cells[y][x]
}

// MaxIndex returns the largest palette index present in the grid.
func (g *Grid) MaxIndex() int {
	m := 0
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if g.Cells[y][x] > m {
				m = g.Cells[y][x]
			}
		}
	}
	return m
}

// NeighborAgreement returns the fraction of horizontally and vertically
// adjacent cell pairs that share the same index. Smoothing should never
// decrease this ratio; the design-atlas tool plots it against filter
// strength.
func (g *Grid) NeighborAgreement() float64 {
	var agree, total int
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			if x+1 < Size {
				total++
				if g.Cells[y][x] == g.Cells[y][x+1] {
					agree++
				}
			}
			if y+1 < Size {
				total++
				if g.Cells[y][x] == g.Cells[y+1][x] {
					agree++
				}
			}
		}
	}
	return float64(agree) / float64(total)
}

// indexWedge holds quantized palette indices over the fundamental wedge.
// Only canonical cells (fy <= fx) are meaningful; lookups go through fold
// coordinates so the redundant half is never read.
type indexWedge [Half][Half]int

// expand derives the full grid by inverse-mapping every output cell through
// FoldD8 and reading the wedge value. Per-cell folding sidesteps the seam
// bugs that block-mirroring the shared centre row and column invites.
func (w *indexWedge) expand() *Grid {
	var g Grid
	for y := 0; y < Size; y++ {
		for x := 0; x < Size; x++ {
			fx, fy := foldCell(x, y)
			g.Cells[y][x] = w[fy][fx]
		}
	}
	return &g
}
