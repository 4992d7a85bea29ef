//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Surface implements Canvas on top of an ebiten image by tessellating paths
// with the vector package.
type Surface struct {
	img   *ebiten.Image
	white *ebiten.Image

	vs []ebiten.Vertex
	is []uint16
}

// NewSurface allocates an offscreen surface of w*h pixels.
func NewSurface(w, h int) *Surface {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	pixel := ebiten.NewImage(3, 3)
	pixel.Fill(color.White)
	return &Surface{
		img:   ebiten.NewImage(w, h),
		white: pixel.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image),
	}
}

// Image exposes the backing image so hosts can composite it.
func (s *Surface) Image() *ebiten.Image { return s.img }

// Size returns the surface dimensions.
func (s *Surface) Size() (int, int) {
	b := s.img.Bounds()
	return b.Dx(), b.Dy()
}

func (s *Surface) Clear() { s.img.Clear() }

func (s *Surface) Fill(p *Path, c color.NRGBA) {
	vp := toVector(p)
	s.vs, s.is = vp.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.shade(func(float32, float32) color.NRGBA { return c })
	s.draw(ebiten.FillRuleNonZero)
}

func (s *Surface) FillGradient(p *Path, g LinearGradient) {
	vp := toVector(p)
	s.vs, s.is = vp.AppendVerticesAndIndicesForFilling(s.vs[:0], s.is[:0])
	s.shade(func(x, y float32) color.NRGBA { return g.At(float64(x), float64(y)) })
	s.draw(ebiten.FillRuleNonZero)
}

func (s *Surface) Stroke(p *Path, style StrokeStyle, c color.NRGBA) {
	vp := toVector(p)
	opts := &vector.StrokeOptions{Width: float32(style.Width)}
	if style.Round {
		opts.LineCap = vector.LineCapRound
		opts.LineJoin = vector.LineJoinRound
	}
	s.vs, s.is = vp.AppendVerticesAndIndicesForStroke(s.vs[:0], s.is[:0], opts)
	s.shade(func(float32, float32) color.NRGBA { return c })
	s.draw(ebiten.FillRuleFillAll)
}

func (s *Surface) FillCircle(cx, cy, r float64, c color.NRGBA) {
	if r <= 0 || c.A == 0 {
		return
	}
	vector.DrawFilledCircle(s.img, float32(cx), float32(cy), float32(r), c, true)
}

func (s *Surface) shade(at func(x, y float32) color.NRGBA) {
	for i := range s.vs {
		v := &s.vs[i]
		c := at(v.DstX, v.DstY)
		v.SrcX, v.SrcY = 1, 1
		v.ColorR = float32(c.R) / 255
		v.ColorG = float32(c.G) / 255
		v.ColorB = float32(c.B) / 255
		v.ColorA = float32(c.A) / 255
	}
}

func (s *Surface) draw(rule ebiten.FillRule) {
	if len(s.is) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{
		AntiAlias:      true,
		FillRule:       rule,
		ColorScaleMode: ebiten.ColorScaleModeStraightAlpha,
	}
	s.img.DrawTriangles(s.vs, s.is, s.white, op)
}

func toVector(p *Path) *vector.Path {
	var vp vector.Path
	for _, op := range p.Ops() {
		switch op.Kind {
		case OpMoveTo:
			vp.MoveTo(float32(op.Pts[0].X), float32(op.Pts[0].Y))
		case OpLineTo:
			vp.LineTo(float32(op.Pts[0].X), float32(op.Pts[0].Y))
		case OpQuadTo:
			vp.QuadTo(float32(op.Pts[0].X), float32(op.Pts[0].Y), float32(op.Pts[1].X), float32(op.Pts[1].Y))
		case OpCubicTo:
			vp.CubicTo(float32(op.Pts[0].X), float32(op.Pts[0].Y), float32(op.Pts[1].X), float32(op.Pts[1].Y), float32(op.Pts[2].X), float32(op.Pts[2].Y))
		case OpClose:
			vp.Close()
		}
	}
	return &vp
}
