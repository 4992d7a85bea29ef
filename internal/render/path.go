package render

import "math"

// OpKind identifies a path segment.
type OpKind uint8

const (
	OpMoveTo OpKind = iota
	OpLineTo
	OpQuadTo
	OpCubicTo
	OpClose
)

// Point is a 2D coordinate in surface space.
type Point struct {
	X, Y float64
}

// Op is one path segment. Pts holds the control points followed by the end
// point; unused entries are zero.
type Op struct {
	Kind OpKind
	Pts  [3]Point
}

// Path is a backend-neutral vector path. Every point is offset by the origin
// given to NewPathAt, which stands in for a translated drawing context.
type Path struct {
	ox, oy float64
	ops    []Op
}

// NewPath returns an empty path at the surface origin.
func NewPath() *Path { return &Path{} }

// NewPathAt returns an empty path whose coordinates are relative to (ox, oy).
func NewPathAt(ox, oy float64) *Path { return &Path{ox: ox, oy: oy} }

// Ops exposes the recorded segments in absolute coordinates.
func (p *Path) Ops() []Op { return p.ops }

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool { return len(p.ops) == 0 }

func (p *Path) pt(x, y float64) Point { return Point{X: x + p.ox, Y: y + p.oy} }

// MoveTo starts a new subpath.
func (p *Path) MoveTo(x, y float64) *Path {
	p.ops = append(p.ops, Op{Kind: OpMoveTo, Pts: [3]Point{p.pt(x, y)}})
	return p
}

// LineTo appends a straight segment.
func (p *Path) LineTo(x, y float64) *Path {
	p.ops = append(p.ops, Op{Kind: OpLineTo, Pts: [3]Point{p.pt(x, y)}})
	return p
}

// QuadTo appends a quadratic bezier with control point (cx, cy).
func (p *Path) QuadTo(cx, cy, x, y float64) *Path {
	p.ops = append(p.ops, Op{Kind: OpQuadTo, Pts: [3]Point{p.pt(cx, cy), p.pt(x, y)}})
	return p
}

// CubicTo appends a cubic bezier.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) *Path {
	p.ops = append(p.ops, Op{Kind: OpCubicTo, Pts: [3]Point{p.pt(c1x, c1y), p.pt(c2x, c2y), p.pt(x, y)}})
	return p
}

// Close closes the current subpath.
func (p *Path) Close() *Path {
	p.ops = append(p.ops, Op{Kind: OpClose})
	return p
}

// Rect appends an axis-aligned rectangle subpath.
func (p *Path) Rect(x, y, w, h float64) *Path {
	return p.MoveTo(x, y).LineTo(x+w, y).LineTo(x+w, y+h).LineTo(x, y+h).Close()
}

// kappa is the cubic control distance approximating a quarter circle.
const kappa = 0.5522847498

// Ellipse appends a closed ellipse centred on (cx, cy) with radii rx, ry,
// rotated by rot radians, built from four cubic segments.
func (p *Path) Ellipse(cx, cy, rx, ry, rot float64) *Path {
	sin, cos := math.Sincos(rot)
	at := func(x, y float64) (float64, float64) {
		return cx + x*cos - y*sin, cy + x*sin + y*cos
	}
	kx, ky := rx*kappa, ry*kappa

	x0, y0 := at(rx, 0)
	p.MoveTo(x0, y0)
	quads := [4][6]float64{
		{rx, ky, kx, ry, 0, ry},
		{-kx, ry, -rx, ky, -rx, 0},
		{-rx, -ky, -kx, -ry, 0, -ry},
		{kx, -ry, rx, -ky, rx, 0},
	}
	for _, q := range quads {
		c1x, c1y := at(q[0], q[1])
		c2x, c2y := at(q[2], q[3])
		ex, ey := at(q[4], q[5])
		p.CubicTo(c1x, c1y, c2x, c2y, ex, ey)
	}
	return p.Close()
}

// Circle appends a closed circle.
func (p *Path) Circle(cx, cy, r float64) *Path {
	return p.Ellipse(cx, cy, r, r, 0)
}

// Bounds returns the axis-aligned box of every recorded point, control points
// included. ok is false for an empty path.
func (p *Path) Bounds() (minX, minY, maxX, maxY float64, ok bool) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, op := range p.ops {
		n := 0
		switch op.Kind {
		case OpMoveTo, OpLineTo:
			n = 1
		case OpQuadTo:
			n = 2
		case OpCubicTo:
			n = 3
		}
		for _, pt := range op.Pts[:n] {
			minX = math.Min(minX, pt.X)
			minY = math.Min(minY, pt.Y)
			maxX = math.Max(maxX, pt.X)
			maxY = math.Max(maxY, pt.Y)
			ok = true
		}
	}
	return minX, minY, maxX, maxY, ok
}
