// Package render holds the backend-neutral drawing vocabulary shared by the
// scenes: paths, colours, gradients and the Canvas they are painted onto.
package render

import "image/color"

// Stop is one colour stop of a linear gradient; Offset is in [0, 1].
type Stop struct {
	Offset float64
	Color  color.NRGBA
}

// LinearGradient shades along the axis (X0, Y0) -> (X1, Y1).
type LinearGradient struct {
	X0, Y0, X1, Y1 float64
	Stops          []Stop
}

// At returns the gradient colour for the surface point (x, y).
func (g LinearGradient) At(x, y float64) color.NRGBA {
	if len(g.Stops) == 0 {
		return color.NRGBA{}
	}
	dx, dy := g.X1-g.X0, g.Y1-g.Y0
	den := dx*dx + dy*dy
	t := 0.0
	if den > 0 {
		t = ((x-g.X0)*dx + (y-g.Y0)*dy) / den
	}
	return g.sample(t)
}

func (g LinearGradient) sample(t float64) color.NRGBA {
	first := g.Stops[0]
	if t <= first.Offset {
		return first.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		curr := g.Stops[i]
		if t <= curr.Offset {
			prev := g.Stops[i-1]
			span := curr.Offset - prev.Offset
			local := 0.0
			if span > 0 {
				local = (t - prev.Offset) / span
			}
			return LerpNRGBA(prev.Color, curr.Color, local)
		}
	}
	return g.Stops[len(g.Stops)-1].Color
}

// StrokeStyle configures line rendering.
type StrokeStyle struct {
	Width float64
	Round bool
}

// Canvas is the drawing surface a scene paints on each frame.
type Canvas interface {
	// Clear erases the whole surface to transparent.
	Clear()
	// Fill paints the interior of p.
	Fill(p *Path, c color.NRGBA)
	// FillGradient paints the interior of p with a linear gradient.
	FillGradient(p *Path, g LinearGradient)
	// Stroke paints the outline of p.
	Stroke(p *Path, style StrokeStyle, c color.NRGBA)
	// FillCircle paints a filled disc.
	FillCircle(cx, cy, r float64, c color.NRGBA)
}
