package grid

import (
	"image/color"
	"math"

	"bioscene/internal/anim"
	"bioscene/internal/render"
)

// BucketCount is the number of opacity tiers links are batched into.
const BucketCount = 10

var (
	linkRGB   = [3]uint8{76, 122, 40}
	brightRGB = [3]uint8{143, 209, 79}
)

// BucketIndex maps an average link charge to its opacity tier.
func BucketIndex(avg float64) int {
	return min(max(int(math.Floor(avg*BucketCount)), 0), BucketCount-1)
}

// BucketOpacity is the stroke alpha shared by every link in tier i.
func BucketOpacity(i int) float64 {
	return (float64(i) + 0.5) / BucketCount * 0.5
}

// bucketLinks groups the visible links by opacity tier. Links whose average
// charge is at or below the visibility threshold, or that have stretched past
// SnapFactor times their base length, are left out.
func (g *Grid) bucketLinks() [BucketCount][]int {
	var buckets [BucketCount][]int
	p := g.cfg.Params
	for i, l := range g.links {
		a, b := g.nodes[l.A], g.nodes[l.B]
		avg := (a.Charge + b.Charge) / 2
		if avg <= p.VisibleCharge {
			continue
		}
		limit := l.Length * p.SnapFactor
		dx, dy := b.X-a.X, b.Y-a.Y
		if dx*dx+dy*dy > limit*limit {
			continue
		}
		k := BucketIndex(avg)
		buckets[k] = append(buckets[k], i)
	}
	return buckets
}

// Buckets reports how many links fall in each opacity tier this frame.
func (g *Grid) Buckets() [BucketCount]int {
	var counts [BucketCount]int
	for i, b := range g.bucketLinks() {
		counts[i] = len(b)
	}
	return counts
}

// VisibleLinkCount is the number of links Draw would stroke.
func (g *Grid) VisibleLinkCount() int {
	n := 0
	for _, c := range g.Buckets() {
		n += c
	}
	return n
}

// Draw repaints the links as one stroke per opacity tier, then the nodes.
func (g *Grid) Draw(c render.Canvas) {
	c.Clear()
	if len(g.nodes) == 0 {
		return
	}
	p := g.cfg.Params
	t := float64(g.frame)

	for i, bucket := range g.bucketLinks() {
		if len(bucket) == 0 {
			continue
		}
		path := render.NewPath()
		for _, li := range bucket {
			l := g.links[li]
			a, b := g.nodes[l.A], g.nodes[l.B]
			nx, ny := anim.Normal(a.X, a.Y, b.X, b.Y)
			offset := l.CurveStrength + math.Sin(t*p.FlexRate+l.CurvePhase)*p.FlexAmount
			cx := (a.X+b.X)/2 + nx*offset
			cy := (a.Y+b.Y)/2 + ny*offset
			path.MoveTo(a.X, a.Y).QuadTo(cx, cy, b.X, b.Y)
		}
		c.Stroke(path, render.StrokeStyle{Width: 1}, rgba(linkRGB, BucketOpacity(i)))
	}

	for _, n := range g.nodes {
		if n.Charge > 0.5 {
			c.FillCircle(n.X, n.Y, n.Charge*12, rgba(brightRGB, n.Charge*0.2))
		}
		body := rgba(linkRGB, n.Charge+0.2)
		if n.Charge > 0.3 {
			body = rgba(brightRGB, n.Charge)
		}
		c.FillCircle(n.X, n.Y, n.Radius+n.Charge*2, body)
	}
}

func rgba(rgb [3]uint8, a float64) color.NRGBA {
	return render.RGBA(rgb[0], rgb[1], rgb[2], a)
}
