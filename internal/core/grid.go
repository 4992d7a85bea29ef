package core

import "math"

// Lattice describes a row-major arrangement of Cols*Rows points placed at a
// fixed spacing, starting at the origin.
type Lattice struct {
	Cols, Rows int
	Spacing    float64
}

// NewLattice sizes a lattice so that it covers a w*h surface with one extra
// row and column of overhang. Non-positive inputs produce a 1x1 lattice.
func NewLattice(w, h, spacing float64) Lattice {
	if spacing <= 0 {
		spacing = 1
	}
	l := Lattice{Cols: 1, Rows: 1, Spacing: spacing}
	if w > 0 {
		l.Cols = int(math.Ceil(w/spacing)) + 1
	}
	if h > 0 {
		l.Rows = int(math.Ceil(h/spacing)) + 1
	}
	return l
}

// Len returns the number of lattice points.
func (l Lattice) Len() int { return l.Cols * l.Rows }

// Index returns the linear index for (col, row).
func (l Lattice) Index(col, row int) int { return row*l.Cols + col }

// Point returns the unperturbed position of (col, row).
func (l Lattice) Point(col, row int) (float64, float64) {
	return float64(col) * l.Spacing, float64(row) * l.Spacing
}
