// Package anim collects the small easing and geometry helpers the scenes
// share.
package anim

import "math"

const elasticPeriod = 2 * math.Pi / 3

// EaseOutElastic overshoots and settles on 1 with decaying oscillation.
// It returns exactly 0 at t <= 0 and exactly 1 at t >= 1.
func EaseOutElastic(t float64) float64 {
	switch {
	case t <= 0 || math.IsNaN(t):
		return 0
	case t >= 1:
		return 1
	}
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*elasticPeriod) + 1
}

// Approach moves current towards target by the fraction blend.
func Approach(current, target, blend float64) float64 {
	return current + (target-current)*blend
}

// Falloff returns the linear proximity weight 1 - dist/radius clamped to
// [0, 1].
func Falloff(dist, radius float64) float64 {
	if radius <= 0 || dist >= radius {
		return 0
	}
	w := 1 - dist/radius
	if w > 1 {
		return 1
	}
	return w
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Dist returns the euclidean distance between two points.
func Dist(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

// Normal returns the unit normal (-dy, dx)/len of the segment a->b. A
// degenerate segment yields (0, 0).
func Normal(ax, ay, bx, by float64) (float64, float64) {
	dx, dy := bx-ax, by-ay
	l := math.Hypot(dx, dy)
	if l == 0 {
		return 0, 0
	}
	return -dy / l, dx / l
}

// Finite replaces NaN with 0 and clamps infinities to ±limit.
func Finite(v, limit float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v > limit:
		return limit
	case v < -limit:
		return -limit
	}
	return v
}
