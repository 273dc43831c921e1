// Package chart implements the pattern generation core: the D8 octant
// folding engine, the scalar-field design functions, and the quantize and
// smooth pipeline that turns continuous fields into discrete, symmetric,
// small-palette index grids.
package chart

// Size is the fixed chart dimension in stitches. Charts are always square
// and odd-sized so the centre cell is exact.
const Size = 35

// Center is the coordinate of the centre cell on both axes.
const Center = Size / 2

// Half is the side of the fundamental wedge, ceil(Size/2). Folded
// coordinates always land in [0, Half-1].
const Half = Size/2 + 1

// maskRadius bounds max(fx, fy) for generated cells. Cells beyond it stay at
// background index 0 so the pattern boundary is a centred diamond rather
// than filling into the square corners.
const maskRadius = 16

// FoldD8 maps a centre-relative offset into the fundamental octant of the
// order-8 dihedral group: reflect across both axes (absolute value), then
// across the diagonal so fy <= fx. The result uniquely identifies the orbit
// of the offset under all 8 symmetry operations.
func FoldD8(dx, dy int) (fx, fy int) {
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	if dy > dx {
		dx, dy = dy, dx
	}
	return dx, dy
}

// foldCell folds an absolute grid coordinate into its wedge representative.
func foldCell(x, y int) (fx, fy int) {
	return FoldD8(x-Center, y-Center)
}

// inMask reports whether a folded coordinate is inside the diamond boundary.
func inMask(fx, fy int) bool {
	if fy > fx {
		fx = fy
	}
	return fx <= maskRadius
}
