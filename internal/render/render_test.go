package render

import (
	"image/color"
	"math"
	"testing"
)

func TestPathOriginOffsetsPoints(t *testing.T) {
	p := NewPathAt(10, 20).MoveTo(1, 2).QuadTo(3, 4, 5, 6).Close()
	ops := p.Ops()
	if len(ops) != 3 {
		t.Fatalf("expected 3 ops, got %d", len(ops))
	}
	if ops[0].Pts[0] != (Point{X: 11, Y: 22}) {
		t.Fatalf("move point = %+v", ops[0].Pts[0])
	}
	if ops[1].Pts[0] != (Point{X: 13, Y: 24}) || ops[1].Pts[1] != (Point{X: 15, Y: 26}) {
		t.Fatalf("quad points = %+v", ops[1].Pts)
	}
}

func TestEllipseBoundsMatchRadii(t *testing.T) {
	p := NewPath().Ellipse(50, 40, 10, 4, 0)
	minX, minY, maxX, maxY, ok := p.Bounds()
	if !ok {
		t.Fatal("ellipse path should have bounds")
	}
	if math.Abs(minX-40) > 1e-9 || math.Abs(maxX-60) > 1e-9 {
		t.Fatalf("x bounds = [%v, %v], want [40, 60]", minX, maxX)
	}
	if math.Abs(minY-36) > 1e-9 || math.Abs(maxY-44) > 1e-9 {
		t.Fatalf("y bounds = [%v, %v], want [36, 44]", minY, maxY)
	}

	rotated := NewPath().Ellipse(0, 0, 10, 4, math.Pi/2)
	_, rMinY, _, rMaxY, _ := rotated.Bounds()
	if math.Abs(rMinY+10) > 1e-9 || math.Abs(rMaxY-10) > 1e-9 {
		t.Fatalf("rotated y bounds = [%v, %v], want [-10, 10]", rMinY, rMaxY)
	}
}

func TestGradientSamplesStops(t *testing.T) {
	g := LinearGradient{
		X0: 0, Y0: 0, X1: 0, Y1: 100,
		Stops: []Stop{
			{Offset: 0, Color: color.NRGBA{R: 0, A: 0}},
			{Offset: 0.5, Color: color.NRGBA{R: 100, A: 100}},
			{Offset: 1, Color: color.NRGBA{R: 200, A: 200}},
		},
	}
	cases := []struct {
		y    float64
		want uint8
	}{
		{-10, 0}, {0, 0}, {25, 50}, {50, 100}, {75, 150}, {100, 200}, {150, 200},
	}
	for _, tc := range cases {
		if got := g.At(37, tc.y); got.R != tc.want || got.A != tc.want {
			t.Fatalf("At(y=%v) = %+v, want channel %d", tc.y, got, tc.want)
		}
	}
}

func TestHSLKnownColours(t *testing.T) {
	cases := []struct {
		h, s, l float64
		want    color.NRGBA
	}{
		{0, 1, 0.5, color.NRGBA{R: 255, G: 0, B: 0, A: 255}},
		{120, 1, 0.5, color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
		{480, 1, 0.5, color.NRGBA{R: 0, G: 255, B: 0, A: 255}},
		{0, 0, 1, color.NRGBA{R: 255, G: 255, B: 255, A: 255}},
		{200, 2, -1, color.NRGBA{R: 0, G: 0, B: 0, A: 255}},
	}
	for _, tc := range cases {
		if got := HSL(tc.h, tc.s, tc.l); got != tc.want {
			t.Fatalf("HSL(%v,%v,%v) = %+v, want %+v", tc.h, tc.s, tc.l, got, tc.want)
		}
	}
	if got := HSLA(0, 1, 0.5, 0.5).A; got != 128 {
		t.Fatalf("alpha 0.5 -> %d, want 128", got)
	}
}

func TestClamp01HandlesNaN(t *testing.T) {
	if got := Clamp01(math.NaN()); got != 0 {
		t.Fatalf("Clamp01(NaN) = %v", got)
	}
	if got := Clamp01(3); got != 1 {
		t.Fatalf("Clamp01(3) = %v", got)
	}
}
