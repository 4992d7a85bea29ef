package anim

import (
	"math"
	"testing"
)

func TestEaseOutElasticFixedPoints(t *testing.T) {
	if got := EaseOutElastic(0); got != 0 {
		t.Fatalf("ease(0) = %v, want 0", got)
	}
	if got := EaseOutElastic(1); got != 1 {
		t.Fatalf("ease(1) = %v, want 1", got)
	}
	if got := EaseOutElastic(math.NaN()); got != 0 {
		t.Fatalf("ease(NaN) = %v, want 0", got)
	}

	overshoot := false
	for i := 1; i < 100; i++ {
		v := EaseOutElastic(float64(i) / 100)
		if v > 1 {
			overshoot = true
		}
		if math.IsNaN(v) || v < -0.5 || v > 1.5 {
			t.Fatalf("ease(%v) = %v out of expected envelope", float64(i)/100, v)
		}
	}
	if !overshoot {
		t.Fatal("elastic ease should overshoot 1 before settling")
	}
	if d := math.Abs(EaseOutElastic(0.99) - 1); d > 0.01 {
		t.Fatalf("ease near 1 should have settled, off by %v", d)
	}
}

func TestFalloff(t *testing.T) {
	cases := []struct {
		dist, radius, want float64
	}{
		{0, 200, 1},
		{100, 200, 0.5},
		{200, 200, 0},
		{500, 200, 0},
		{10, 0, 0},
	}
	for _, tc := range cases {
		if got := Falloff(tc.dist, tc.radius); math.Abs(got-tc.want) > 1e-12 {
			t.Fatalf("Falloff(%v, %v) = %v, want %v", tc.dist, tc.radius, got, tc.want)
		}
	}
}

func TestNormalIsUnitAndPerpendicular(t *testing.T) {
	nx, ny := Normal(0, 0, 3, 4)
	if math.Abs(math.Hypot(nx, ny)-1) > 1e-12 {
		t.Fatalf("normal not unit: (%v, %v)", nx, ny)
	}
	if dot := nx*3 + ny*4; math.Abs(dot) > 1e-12 {
		t.Fatalf("normal not perpendicular, dot = %v", dot)
	}
	if nx, ny := Normal(1, 1, 1, 1); nx != 0 || ny != 0 {
		t.Fatalf("degenerate normal = (%v, %v)", nx, ny)
	}
}

func TestFinite(t *testing.T) {
	if got := Finite(math.NaN(), 10); got != 0 {
		t.Fatalf("Finite(NaN) = %v", got)
	}
	if got := Finite(math.Inf(1), 10); got != 10 {
		t.Fatalf("Finite(+Inf) = %v", got)
	}
	if got := Finite(math.Inf(-1), 10); got != -10 {
		t.Fatalf("Finite(-Inf) = %v", got)
	}
	if got := Finite(3, 10); got != 3 {
		t.Fatalf("Finite(3) = %v", got)
	}
}
