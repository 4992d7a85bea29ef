package forest

import (
	"cmp"
	"math"
	"slices"

	"bioscene/internal/render"
)

var (
	groundStops = []render.Stop{
		{Offset: 0, Color: render.RGBA(139, 195, 74, 0)},
		{Offset: 0.5, Color: render.RGBA(139, 195, 74, 0.08)},
		{Offset: 1, Color: render.RGBA(101, 163, 13, 0.15)},
	}
	grassColor = render.RGBA(139, 195, 74, 0.4)
)

const (
	grassSpacing = 8
	groundInset  = 8
	groundBand   = 15
)

// palette is the hue/saturation/lightness triple shared by every part of a
// plant; all three move linearly with colour intensity.
type palette struct {
	hue, sat, light float64
}

func paletteFor(intensity float64) palette {
	return palette{
		hue:   95 + intensity*35,
		sat:   0.55 + intensity*0.25,
		light: 0.48 - intensity*0.12,
	}
}

// Draw repaints the ground, the plants back to front by X, then particles.
func (f *Forest) Draw(c render.Canvas) {
	c.Clear()
	if f.w <= 0 || f.h <= 0 {
		return
	}
	f.drawGround(c)
	for _, i := range f.drawOrder() {
		f.drawPlant(c, f.plants[i])
	}
	for _, pt := range f.particles {
		drawParticle(c, pt)
	}
}

// drawOrder returns plant indices stably sorted by X.
func (f *Forest) drawOrder() []int {
	order := make([]int, len(f.plants))
	for i := range order {
		order[i] = i
	}
	slices.SortStableFunc(order, func(a, b int) int {
		return cmp.Compare(f.plants[a].X, f.plants[b].X)
	})
	return order
}

func (f *Forest) drawGround(c render.Canvas) {
	groundY := f.h - groundInset
	top := groundY - groundBand
	band := render.NewPath().Rect(0, top, f.w, groundBand+groundInset)
	c.FillGradient(band, render.LinearGradient{X0: 0, Y0: top, X1: 0, Y1: f.h, Stops: groundStops})

	blades := render.NewPath()
	for x := 0.0; x < f.w; x += grassSpacing {
		height := 6 + math.Sin(x*0.1+f.clock*0.5)*3
		sway := math.Sin(f.clock*0.8+x*0.05) * 2
		blades.MoveTo(x, groundY).QuadTo(x+sway*0.5, groundY-height*0.5, x+sway, groundY-height)
	}
	if !blades.Empty() {
		c.Stroke(blades, render.StrokeStyle{Width: 1.5, Round: true}, grassColor)
	}
}

func (f *Forest) drawPlant(c render.Canvas, pl Plant) {
	height := pl.EasedHeight()
	if height < 1 {
		return
	}
	sway := pl.Sway(f.clock, f.pointerX)
	pal := paletteFor(pl.ColorIntensity)

	if pl.Seed && height < f.cfg.Params.SproutHeight {
		drawSprout(c, pl, height, sway, pal)
		return
	}

	ci := pl.ColorIntensity
	trunkHeight := height * 0.25
	trunk := render.NewPathAt(pl.X, pl.Y).
		MoveTo(-pl.Width*0.12, 0).
		LineTo(-pl.Width*0.08+sway*0.1, -trunkHeight).
		LineTo(pl.Width*0.08+sway*0.1, -trunkHeight).
		LineTo(pl.Width*0.12, 0).
		Close()
	c.FillGradient(trunk, render.LinearGradient{
		X0: pl.X, Y0: pl.Y, X1: pl.X, Y1: pl.Y - trunkHeight,
		Stops: []render.Stop{
			{Offset: 0, Color: render.HSL(25, 0.35, 0.30+ci*0.08)},
			{Offset: 1, Color: render.HSL(30, 0.30, 0.22+ci*0.05)},
		},
	})

	layers := max(pl.Layers, 1)
	layerHeight := height * 0.85 / float64(layers)
	for i := 0; i < layers; i++ {
		fi := float64(i)
		layerY := -trunkHeight - fi*layerHeight*0.65
		layerWidth := pl.Width * (1.1 - fi*0.18)
		layerSway := sway * (1 + fi*0.35)
		light := pal.light + fi*0.06
		sat := pal.sat - fi*0.05

		c.Fill(foliage(pl, layerY, layerWidth, layerHeight, layerSway), render.HSL(pal.hue, sat, light))

		highlight := render.NewPathAt(pl.X, pl.Y).
			Ellipse(layerSway*0.4, layerY-layerHeight*0.55, layerWidth*0.25, layerHeight*0.2, 0)
		c.Fill(highlight, render.HSLA(pal.hue+15, sat+0.10, light+0.15, 0.25))
	}
}

// foliage builds one layer outline relative to the plant's foot.
func foliage(pl Plant, y, w, h, sway float64) *render.Path {
	p := render.NewPathAt(pl.X, pl.Y).MoveTo(sway, y-h)
	switch pl.Shape {
	case ShapeDiamond:
		p.LineTo(-w*0.7+sway*0.5, y-h*0.45).
			LineTo(-w+sway*0.3, y).
			LineTo(w+sway*0.3, y).
			LineTo(w*0.7+sway*0.5, y-h*0.45)
	case ShapeRound:
		cp := h * 0.35
		p.CubicTo(-w*0.3+sway*0.7, y-h*0.8, -w*0.8+sway*0.4, y-cp, -w+sway*0.3, y).
			LineTo(w+sway*0.3, y).
			CubicTo(w*0.8+sway*0.4, y-cp, w*0.3+sway*0.7, y-h*0.8, sway, y-h)
	default:
		p.LineTo(-w+sway*0.5, y).LineTo(w+sway*0.5, y)
	}
	return p.Close()
}

func drawSprout(c render.Canvas, pl Plant, height, sway float64, pal palette) {
	stem := render.NewPathAt(pl.X, pl.Y).MoveTo(0, 0).QuadTo(sway*0.5, -height*0.5, sway, -height)
	c.Stroke(stem, render.StrokeStyle{Width: 2, Round: true}, render.HSL(pal.hue+10, pal.sat-0.10, pal.light+0.05))

	leaf := render.HSL(pal.hue, pal.sat, pal.light)
	c.Fill(render.NewPathAt(pl.X, pl.Y).Ellipse(sway-4, -height*0.7, 5, 3, -0.5+sway*0.05), leaf)
	c.Fill(render.NewPathAt(pl.X, pl.Y).Ellipse(sway+4, -height*0.8, 5, 3, 0.5+sway*0.05), leaf)

	c.FillCircle(pl.X+sway, pl.Y-height, 3, render.HSL(pal.hue+20, pal.sat+0.10, pal.light+0.10))
}

func drawParticle(c render.Canvas, pt Particle) {
	r := pt.Size * pt.Life
	c.FillCircle(pt.X, pt.Y, r, render.HSLA(pt.Hue, 0.7, 0.6, pt.Life*0.6))
	c.FillCircle(pt.X, pt.Y, r*2, render.HSLA(pt.Hue, 0.7, 0.7, pt.Life*0.2))
}
