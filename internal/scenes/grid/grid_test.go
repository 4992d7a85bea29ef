package grid

import (
	"math"
	"slices"
	"testing"

	"bioscene/internal/anim"
	"bioscene/internal/core"
)

func quietGrid(t *testing.T) *Grid {
	t.Helper()
	cfg := DefaultConfig()
	cfg.Params.ImpulseChance = 0
	return NewWithConfig(cfg)
}

func TestLatticeCoversViewport(t *testing.T) {
	g := New(960, 540)
	l := g.Lattice()
	if l.Cols != 17 || l.Rows != 10 {
		t.Fatalf("lattice %dx%d, want 17x10", l.Cols, l.Rows)
	}
	if got := len(g.Nodes()); got != 170 {
		t.Fatalf("expected 170 nodes, got %d", got)
	}
	for row := 0; row < l.Rows; row++ {
		for col := 0; col < l.Cols; col++ {
			n := g.Nodes()[l.Index(col, row)]
			x, y := l.Point(col, row)
			if math.Abs(n.BaseX-x) > 15 || math.Abs(n.BaseY-y) > 15 {
				t.Fatalf("node (%d,%d) jitter out of bounds: %v,%v", col, row, n.BaseX, n.BaseY)
			}
			if n.Speed < 0.002 || n.Speed >= 0.005 || n.Radius < 1 || n.Radius >= 3 {
				t.Fatalf("node (%d,%d) traits out of range: %+v", col, row, n)
			}
		}
	}
}

func TestLinksWithinThreshold(t *testing.T) {
	g := New(960, 540)
	nodes := g.Nodes()
	links := g.Links()
	if len(links) == 0 {
		t.Fatal("expected links")
	}
	seen := make(map[[2]int]bool, len(links))
	for _, l := range links {
		if l.A >= l.B {
			t.Fatalf("link endpoints not ordered: %d,%d", l.A, l.B)
		}
		key := [2]int{l.A, l.B}
		if seen[key] {
			t.Fatalf("duplicate link %v", key)
		}
		seen[key] = true
		a, b := nodes[l.A], nodes[l.B]
		d := math.Hypot(a.BaseX-b.BaseX, a.BaseY-b.BaseY)
		if d >= 90 {
			t.Fatalf("link %v spans %v, beyond 1.5*spacing", key, d)
		}
		if math.Abs(d-l.Length) > 1e-9 {
			t.Fatalf("link %v stored length %v, want %v", key, l.Length, d)
		}
		if l.CurveStrength < -10 || l.CurveStrength >= 10 {
			t.Fatalf("curve strength %v out of range", l.CurveStrength)
		}
	}
	// Every close pair must be linked.
	for i := range nodes {
		for j := i + 1; j < len(nodes); j++ {
			d := math.Hypot(nodes[i].BaseX-nodes[j].BaseX, nodes[i].BaseY-nodes[j].BaseY)
			if d < 90 && !seen[[2]int{i, j}] {
				t.Fatalf("nodes %d,%d are %v apart but unlinked", i, j, d)
			}
		}
	}
}

func TestPulseCharge(t *testing.T) {
	g := quietGrid(t)
	px, py := 300.0, 200.0

	for round := 0; round < 2; round++ {
		before := g.Nodes()
		g.Pulse(px, py)
		after := g.Nodes()
		for i := range after {
			d := anim.Dist(px, py, before[i].X, before[i].Y)
			want := before[i].Charge
			if d < 400 {
				want = math.Min(before[i].Charge+1-d/400, 1)
			}
			if after[i].Charge != want {
				t.Fatalf("round %d node %d at d=%v: charge %v, want %v", round, i, d, after[i].Charge, want)
			}
		}
	}
}

func TestPulseFarAwayNoChange(t *testing.T) {
	g := quietGrid(t)
	before := g.Nodes()
	g.Pulse(-5000, -5000)
	if !slices.Equal(before, g.Nodes()) {
		t.Fatal("distant pulse changed node state")
	}
}

func TestStepPositionsArePureFunctionOfFrame(t *testing.T) {
	g := quietGrid(t)
	for i := 0; i < 37; i++ {
		g.Step()
	}
	for i, n := range g.Nodes() {
		angle := 37*n.Speed + n.Phase
		if math.Abs(n.X-(n.BaseX+math.Cos(angle)*15)) > 1e-9 || math.Abs(n.Y-(n.BaseY+math.Sin(angle)*15)) > 1e-9 {
			t.Fatalf("node %d off its orbit: %+v", i, n)
		}
	}
	if g.Frame() != 37 {
		t.Fatalf("frame = %d, want 37", g.Frame())
	}
}

func TestStepDecay(t *testing.T) {
	g := quietGrid(t)
	target := g.Nodes()[g.Lattice().Index(5, 5)]
	g.Pulse(target.X, target.Y)
	g.Step()
	got := g.Nodes()[g.Lattice().Index(5, 5)].Charge
	if math.Abs(got-0.985) > 1e-12 {
		t.Fatalf("charge after one decay step = %v, want 0.985", got)
	}
}

func TestStepPointerCharge(t *testing.T) {
	g := quietGrid(t)
	idx := g.Lattice().Index(4, 3)
	n := g.Nodes()[idx]
	angle := n.Speed + n.Phase
	g.PointerMove(n.BaseX+math.Cos(angle)*15, n.BaseY+math.Sin(angle)*15)
	g.Step()
	got := g.Nodes()[idx].Charge
	if want := 0.15 * 0.985; math.Abs(got-want) > 1e-12 {
		t.Fatalf("charge under pointer = %v, want %v", got, want)
	}

	g.PointerLeave()
	if x, y := g.Pointer(); x != -1000 || y != -1000 {
		t.Fatalf("pointer not parked: %v,%v", x, y)
	}
}

func TestIdleFloor(t *testing.T) {
	g := quietGrid(t)
	for i := 0; i < 500; i++ {
		g.Step()
	}
	for i, n := range g.Nodes() {
		if idle := g.IdleLevel(i); n.Charge < idle-1e-12 {
			t.Fatalf("node %d charge %v under idle floor %v", i, n.Charge, idle)
		}
		if n.Charge < 0.03 || n.Charge > 0.07+1e-12 {
			t.Fatalf("idle node %d charge %v outside [0.03, 0.07]", i, n.Charge)
		}
	}
}

func TestChargeStaysInUnitRange(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Params.ImpulseChance = 1
	cfg.Params.ChargeAmount = 3
	g := NewWithConfig(cfg)
	for i := 0; i < 300; i++ {
		g.PointerMove(float64(i*3%960), float64(i*7%540))
		if i%5 == 0 {
			g.Pulse(float64(i%960), 270)
		}
		g.Step()
		for j, n := range g.Nodes() {
			if n.Charge < 0 || n.Charge > 1 {
				t.Fatalf("step %d node %d charge %v out of range", i, j, n.Charge)
			}
		}
	}
}

func TestResizeRebuilds(t *testing.T) {
	g := New(960, 540)
	g.Pulse(100, 100)
	g.Resize(300, 200)
	if got := len(g.Nodes()); got != 30 {
		t.Fatalf("expected 6x5 nodes after resize, got %d", got)
	}
	for _, n := range g.Nodes() {
		if n.Charge != 0 {
			t.Fatal("resize should start from fresh nodes")
		}
	}
	for _, l := range g.Links() {
		if l.B >= 30 {
			t.Fatalf("stale link %+v", l)
		}
	}
	if g.Size() != (core.Size{W: 300, H: 200}) {
		t.Fatalf("size = %+v", g.Size())
	}
}

func TestZeroSizeIsEmpty(t *testing.T) {
	g := New(0, 400)
	if len(g.Nodes()) != 0 || len(g.Links()) != 0 {
		t.Fatal("zero-width grid should have no nodes")
	}
	g.Pulse(0, 0)
	g.Step()
}

func TestResetDeterministic(t *testing.T) {
	a := New(400, 300)
	b := New(400, 300)
	if !slices.Equal(a.Nodes(), b.Nodes()) || !slices.Equal(a.Links(), b.Links()) {
		t.Fatal("same seed built different grids")
	}
	a.Reset(42)
	nodes := a.Nodes()
	a.Step()
	a.Reset(42)
	if !slices.Equal(nodes, a.Nodes()) || a.Frame() != 0 {
		t.Fatal("Reset did not restore the initial state")
	}
}

func TestRegisteredFactory(t *testing.T) {
	factory, ok := core.Scenes()["grid"]
	if !ok {
		t.Fatal("grid scene not registered")
	}
	scene := factory(map[string]string{"w": "120", "h": "60", "spacing": "30"})
	if scene.Name() != "grid" {
		t.Fatalf("name = %q", scene.Name())
	}
	if got := len(scene.(*Grid).Nodes()); got != 15 {
		t.Fatalf("expected 5x3 nodes, got %d", got)
	}
}

func TestSetFloatParameter(t *testing.T) {
	g := quietGrid(t)
	if !g.SetFloatParameter("decay", 0.95) || g.Params().Decay != 0.95 {
		t.Fatal("decay not applied")
	}
	if g.SetFloatParameter("spacing", 10) {
		t.Fatal("spacing is not adjustable at runtime")
	}
	if p, ok := g.Parameters().Lookup("nodes"); !ok || p.Value != "170" {
		t.Fatalf("nodes parameter = %+v", p)
	}
}
