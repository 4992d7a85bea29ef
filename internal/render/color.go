package render

import (
	"image/color"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// HSL returns an opaque colour for hue in degrees and saturation/lightness in
// [0, 1]. Out-of-range inputs are clamped.
func HSL(h, s, l float64) color.NRGBA {
	return HSLA(h, s, l, 1)
}

// HSLA is HSL with an alpha in [0, 1].
func HSLA(h, s, l, a float64) color.NRGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	r, g, b := colorful.Hsl(h, Clamp01(s), Clamp01(l)).Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// RGBA returns a colour from 8-bit channels and a fractional alpha.
func RGBA(r, g, b uint8, a float64) color.NRGBA {
	return color.NRGBA{R: r, G: g, B: b, A: alpha8(a)}
}

// WithAlpha scales the alpha channel of c by f.
func WithAlpha(c color.NRGBA, f float64) color.NRGBA {
	c.A = uint8(math.Round(float64(c.A) * Clamp01(f)))
	return c
}

// LerpNRGBA blends a towards b by t in [0, 1].
func LerpNRGBA(a, b color.NRGBA, t float64) color.NRGBA {
	t = Clamp01(t)
	return color.NRGBA{
		R: lerpComponent(a.R, b.R, t),
		G: lerpComponent(a.G, b.G, t),
		B: lerpComponent(a.B, b.B, t),
		A: lerpComponent(a.A, b.A, t),
	}
}

// Clamp01 limits v to [0, 1]; NaN maps to 0.
func Clamp01(v float64) float64 {
	if v > 1 {
		return 1
	}
	if v >= 0 {
		return v
	}
	return 0
}

func alpha8(a float64) uint8 {
	return uint8(math.Round(Clamp01(a) * 255))
}

func lerpComponent(a, b uint8, t float64) uint8 {
	return uint8(math.Round(float64(a) + (float64(b)-float64(a))*t))
}
