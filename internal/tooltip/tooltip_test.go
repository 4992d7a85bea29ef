package tooltip

import (
	"testing"

	"bioscene/internal/scenes/forest"
)

type stubSource struct {
	plants  []forest.Plant
	metrics forest.Metrics
}

func (s *stubSource) Plants() []forest.Plant  { return s.plants }
func (s *stubSource) Metrics() forest.Metrics { return s.metrics }

func plantAt(x, width, height float64) forest.Plant {
	return forest.Plant{X: x, Y: 200, Width: width, CurrentHeight: height}
}

func TestLocate(t *testing.T) {
	src := &stubSource{plants: []forest.Plant{
		plantAt(100, 10, 50),
		plantAt(110, 10, 80),
		plantAt(400, 15, 60),
	}}
	tip := New(src, 800, 240)

	cases := []struct {
		name   string
		x, y   float64
		want   int
		wantOK bool
	}{
		{"empty space", 250, 180, -1, false},
		{"first overlap wins", 105, 180, 0, true},
		{"only second is tall enough", 110, 140, 1, true},
		{"horizontal edge inclusive", 430, 180, 2, true},
		{"beyond horizontal edge", 431, 180, -1, false},
		{"on the baseline", 400, 200, -1, false},
		{"below the baseline", 400, 210, -1, false},
		{"at the top", 400, 140, -1, false},
		{"just under the top", 400, 141, 2, true},
	}
	for _, tc := range cases {
		got, ok := tip.Locate(tc.x, tc.y)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("%s: Locate(%v, %v) = %d, %v; want %d, %v", tc.name, tc.x, tc.y, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestDisplayShares(t *testing.T) {
	plants := make([]forest.Plant, 12)
	src := &stubSource{plants: plants, metrics: forest.Metrics{CO2: 50, KWh: 500, GPUs: 2, Hours: 150}}
	tip := New(src, 800, 240)
	tip.Display(3, 100, 150)

	v := tip.View()
	want := []string{Title, "4.17 kg CO2 absorbed", "41.67 kWh clean energy"}
	if len(v.Lines) != len(want) {
		t.Fatalf("lines = %q", v.Lines)
	}
	for i := range want {
		if v.Lines[i] != want[i] {
			t.Fatalf("line %d = %q, want %q", i, v.Lines[i], want[i])
		}
	}
	if v.Index != 3 {
		t.Fatalf("index = %d", v.Index)
	}
}

func TestSharesFloorDivisor(t *testing.T) {
	co2, kwh := Shares(forest.Metrics{CO2: 7, KWh: 3}, 0)
	if co2 != 7 || kwh != 3 {
		t.Fatalf("shares with no plants = %v, %v", co2, kwh)
	}
}

func TestPositionClamped(t *testing.T) {
	cases := []struct {
		w, h         int
		x, y         float64
		wantX, wantY float64
	}{
		{800, 240, 100, 150, 110, 60},
		{800, 240, 700, 50, 600, 10},
		{800, 240, 100, 239, 110, 149},
		{800, 200, 100, 250, 110, 120},
		{150, 60, 20, 20, 0, 0},
	}
	for _, tc := range cases {
		tip := New(&stubSource{}, tc.w, tc.h)
		tip.Display(0, tc.x, tc.y)
		v := tip.View()
		if v.X != tc.wantX || v.Y != tc.wantY {
			t.Fatalf("%dx%d at (%v,%v): box at (%v,%v), want (%v,%v)", tc.w, tc.h, tc.x, tc.y, v.X, v.Y, tc.wantX, tc.wantY)
		}
	}
}

func TestFadeInAndOut(t *testing.T) {
	tip := New(&stubSource{plants: []forest.Plant{plantAt(100, 10, 50)}}, 800, 240)
	if tip.View().Visible {
		t.Fatal("tooltip starts hidden")
	}

	tip.Display(0, 100, 180)
	tip.Update()
	if o := tip.View().Opacity; o <= 0 || o >= 1 {
		t.Fatalf("first frame of fade-in opacity = %v", o)
	}
	for i := 0; i < 60; i++ {
		tip.Update()
		if o := tip.View().Opacity; o < 0 || o > 1 {
			t.Fatalf("opacity %v out of range", o)
		}
	}
	if v := tip.View(); v.Opacity != 1 || !v.Visible {
		t.Fatalf("fade-in did not settle: %+v", v)
	}

	tip.Hide()
	tip.Update()
	if v := tip.View(); !v.Visible || len(v.Lines) == 0 {
		t.Fatal("content should persist while fading out")
	}
	for i := 0; i < 60; i++ {
		tip.Update()
	}
	if v := tip.View(); v.Opacity != 0 || v.Visible || v.Lines != nil || v.Index != -1 {
		t.Fatalf("fade-out did not settle: %+v", v)
	}
}

func TestHover(t *testing.T) {
	src := &stubSource{plants: []forest.Plant{plantAt(100, 10, 50)}, metrics: forest.Metrics{CO2: 1, KWh: 2}}
	tip := New(src, 800, 240)
	if !tip.Hover(100, 180) {
		t.Fatal("hover over a plant should display")
	}
	tip.Update()
	if tip.Hover(500, 180) {
		t.Fatal("hover over empty ground should hide")
	}
	for i := 0; i < 60; i++ {
		tip.Update()
	}
	if tip.View().Visible {
		t.Fatal("tooltip should have faded out")
	}
}

func TestLocateOnLiveForest(t *testing.T) {
	f := forest.New(800, 200)
	f.UpdateValues(30, 100, 1, 60)
	for i := 0; i < 30; i++ {
		f.Step()
	}
	pl := f.Plants()[0]
	tip := New(f, 800, 200)
	i, ok := tip.Locate(pl.X, pl.Y-pl.CurrentHeight/2)
	if !ok {
		t.Fatal("expected a plant under its own mid-height")
	}
	if i != 0 {
		t.Fatalf("located plant %d, want the first plant", i)
	}
}
