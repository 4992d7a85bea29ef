package ui

import (
	"image/color"
	"math"

	"bioscene/internal/render"
	"bioscene/internal/tooltip"
)

const (
	tooltipRadius  = 6
	tooltipPadding = 10
	tooltipLeading = 20
)

var (
	tooltipFill   = color.NRGBA{R: 20, G: 32, B: 16, A: 220}
	tooltipBorder = color.NRGBA{R: 139, G: 195, B: 74, A: 160}
	tooltipTitle  = color.NRGBA{R: 190, G: 225, B: 160, A: 255}
	tooltipText   = color.NRGBA{R: 226, G: 234, B: 220, A: 255}
)

// DrawTooltipBox paints the rounded backing of v onto c, faded by its
// opacity. Text is drawn by the host on top.
func DrawTooltipBox(c render.Canvas, v tooltip.View) {
	if !v.Visible || v.W <= 0 || v.H <= 0 {
		return
	}
	box := roundRect(render.NewPathAt(v.X, v.Y), v.W, v.H, tooltipRadius)
	c.Fill(box, render.WithAlpha(tooltipFill, v.Opacity))
	c.Stroke(box, render.StrokeStyle{Width: 1}, render.WithAlpha(tooltipBorder, v.Opacity))
}

// tooltipLine returns the top-left of line i inside v and its colour.
func tooltipLine(v tooltip.View, i int) (x, y float64, c color.NRGBA) {
	c = tooltipText
	if i == 0 {
		c = tooltipTitle
	}
	return v.X + tooltipPadding, v.Y + tooltipPadding + float64(i)*tooltipLeading, render.WithAlpha(c, v.Opacity)
}

// roundRect appends a w*h rectangle with corners of radius r at the path
// origin.
func roundRect(p *render.Path, w, h, r float64) *render.Path {
	r = math.Min(r, math.Min(w, h)/2)
	return p.MoveTo(r, 0).
		LineTo(w-r, 0).QuadTo(w, 0, w, r).
		LineTo(w, h-r).QuadTo(w, h, w-r, h).
		LineTo(r, h).QuadTo(0, h, 0, h-r).
		LineTo(0, r).QuadTo(0, 0, r, 0).
		Close()
}
