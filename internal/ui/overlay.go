package ui

import (
	"image/color"
	"math"

	"bioscene/internal/anim"
	"bioscene/internal/render"
	"bioscene/internal/scenes/forest"
	"bioscene/internal/scenes/grid"
)

// Layer identifies one debug visual of the overlay.
type Layer int

const (
	// LayerLinks strokes every grid link, tinted by how far it is stretched.
	LayerLinks Layer = iota
	// LayerHitBoxes outlines the hover region of every plant.
	LayerHitBoxes
	// LayerCharge marks each node with a dot sized by its charge.
	LayerCharge
	// LayerInfluence rings the pointer with the scene influence radii.
	LayerInfluence
	layerCount
)

func (l Layer) String() string {
	switch l {
	case LayerLinks:
		return "links"
	case LayerHitBoxes:
		return "hitboxes"
	case LayerCharge:
		return "charge"
	case LayerInfluence:
		return "influence"
	default:
		return "unknown"
	}
}

type gridView interface {
	Nodes() []grid.Node
	Links() []grid.Link
	Params() grid.Params
	Pointer() (float64, float64)
}

type forestView interface {
	Plants() []forest.Plant
	Params() forest.Params
	Pointer() (float64, float64)
}

const stretchTiers = 4

var (
	snappedColor   = color.NRGBA{R: 235, G: 80, B: 60, A: 200}
	hitBoxColor    = color.NRGBA{R: 255, G: 210, B: 90, A: 160}
	influenceColor = color.NRGBA{R: 240, G: 240, B: 240, A: 110}
	coldCharge     = color.NRGBA{R: 60, G: 90, B: 160, A: 200}
	hotCharge      = color.NRGBA{R: 255, G: 230, B: 120, A: 255}
)

// Overlay draws optional debugging visuals on top of the scenes.
type Overlay struct {
	enabled [layerCount]bool
}

// NewOverlay returns an overlay with every layer hidden.
func NewOverlay() *Overlay { return &Overlay{} }

// Toggle flips the visibility of l and reports the new state.
func (o *Overlay) Toggle(l Layer) bool {
	if l < 0 || l >= layerCount {
		return false
	}
	o.enabled[l] = !o.enabled[l]
	return o.enabled[l]
}

// Enabled reports whether l is drawn.
func (o *Overlay) Enabled(l Layer) bool {
	if l < 0 || l >= layerCount {
		return false
	}
	return o.enabled[l]
}

// Active reports whether any layer is drawn.
func (o *Overlay) Active() bool {
	for _, on := range o.enabled {
		if on {
			return true
		}
	}
	return false
}

// DrawGrid paints the grid layers onto c in viewport coordinates.
func (o *Overlay) DrawGrid(c render.Canvas, g gridView) {
	nodes := g.Nodes()
	if len(nodes) == 0 {
		return
	}
	p := g.Params()
	if o.enabled[LayerLinks] {
		drawStretch(c, nodes, g.Links(), p.SnapFactor)
	}
	if o.enabled[LayerCharge] {
		for _, n := range nodes {
			c.FillCircle(n.X, n.Y, 1.5+3*n.Charge, render.LerpNRGBA(coldCharge, hotCharge, n.Charge))
		}
	}
	if o.enabled[LayerInfluence] {
		drawRings(c, g.Pointer, p.ChargeRadius)
	}
}

// DrawForest paints the forest layers onto c in panel coordinates.
func (o *Overlay) DrawForest(c render.Canvas, f forestView) {
	if o.enabled[LayerHitBoxes] {
		boxes := render.NewPath()
		for _, pl := range f.Plants() {
			if pl.CurrentHeight <= 0 {
				continue
			}
			boxes.Rect(pl.X-2*pl.Width, pl.Y-pl.CurrentHeight, 4*pl.Width, pl.CurrentHeight)
		}
		if !boxes.Empty() {
			c.Stroke(boxes, render.StrokeStyle{Width: 1}, hitBoxColor)
		}
	}
	if o.enabled[LayerInfluence] {
		drawRings(c, f.Pointer, f.Params().InfluenceRadius)
	}
}

// drawStretch batches links into one stroke per stretch tier plus one for
// links past the snap distance.
func drawStretch(c render.Canvas, nodes []grid.Node, links []grid.Link, snap float64) {
	var tiers [stretchTiers]*render.Path
	var snapped *render.Path
	for _, l := range links {
		if l.A >= len(nodes) || l.B >= len(nodes) || l.Length <= 0 {
			continue
		}
		a, b := nodes[l.A], nodes[l.B]
		ratio := anim.Dist(a.X, a.Y, b.X, b.Y) / l.Length
		if ratio > snap {
			if snapped == nil {
				snapped = render.NewPath()
			}
			snapped.MoveTo(a.X, a.Y).LineTo(b.X, b.Y)
			continue
		}
		tier := stretchTier(ratio, snap)
		if tiers[tier] == nil {
			tiers[tier] = render.NewPath()
		}
		tiers[tier].MoveTo(a.X, a.Y).LineTo(b.X, b.Y)
	}
	for i, p := range tiers {
		if p == nil {
			continue
		}
		t := (float64(i) + 0.5) / stretchTiers
		c.Stroke(p, render.StrokeStyle{Width: 1}, interpolateColor(t))
	}
	if snapped != nil {
		c.Stroke(snapped, render.StrokeStyle{Width: 1}, snappedColor)
	}
}

// stretchTier maps a length ratio in [1, snap] onto a tier; compressed links
// share the first tier.
func stretchTier(ratio, snap float64) int {
	span := snap - 1
	if span <= 0 {
		return 0
	}
	t := render.Clamp01((ratio - 1) / span)
	return min(int(t*stretchTiers), stretchTiers-1)
}

func drawRings(c render.Canvas, pointer func() (float64, float64), radius float64) {
	x, y := pointer()
	if x < 0 && y < 0 || radius <= 0 {
		return
	}
	ring := render.NewPath().Circle(x, y, radius)
	c.Stroke(ring, render.StrokeStyle{Width: 1}, influenceColor)
}

func interpolateColor(t float64) color.NRGBA {
	t = render.Clamp01(t)
	r := uint8(math.Round(80 + 150*t))
	g := uint8(math.Round(170 - 40*t))
	b := uint8(math.Round(230 - 150*t))
	a := uint8(math.Round(150 + 90*t))
	return color.NRGBA{R: r, G: g, B: b, A: a}
}
