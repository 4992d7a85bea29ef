package grid

import (
	"math"

	"bioscene/internal/anim"
	"bioscene/internal/core"
)

// Node is one lattice point. X and Y orbit BaseX and BaseY.
type Node struct {
	BaseX, BaseY float64
	X, Y         float64

	Charge float64
	Phase  float64
	Speed  float64
	Radius float64
}

// Link joins two nodes that were close at construction time. A < B.
type Link struct {
	A, B          int
	Length        float64
	CurvePhase    float64
	CurveStrength float64
}

const offscreen = -1000

// Grid is the ambient node lattice scene. Coordinates are viewport pixels.
type Grid struct {
	cfg  Config
	w, h float64

	lattice core.Lattice
	nodes   []Node
	links   []Link

	pointerX, pointerY float64
	frame              uint64

	rng *core.RNG
}

// New returns a grid covering a w*h viewport using default parameters.
func New(w, h int) *Grid {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig builds the lattice and its links for cfg.
func NewWithConfig(cfg Config) *Grid {
	g := &Grid{
		cfg: cfg,
		w:   math.Max(float64(cfg.Width), 0),
		h:   math.Max(float64(cfg.Height), 0),
		rng: core.NewRNG(cfg.Seed),
	}
	g.Reset(0)
	return g
}

// Name returns the scene identifier.
func (g *Grid) Name() string { return "grid" }

// Size reports the viewport dimensions.
func (g *Grid) Size() core.Size { return core.Size{W: int(g.w), H: int(g.h)} }

// Params exposes the active tuning.
func (g *Grid) Params() Params { return g.cfg.Params }

// Reset reseeds the RNG (0 selects the configured seed), rewinds the frame
// counter, parks the pointer and rebuilds the lattice.
func (g *Grid) Reset(seed int64) {
	if seed == 0 {
		seed = g.cfg.Seed
	}
	g.rng.Reseed(seed)
	g.frame = 0
	g.pointerX, g.pointerY = offscreen, offscreen
	g.build()
}

// Resize rebuilds nodes and links for a new viewport. Charges are lost.
func (g *Grid) Resize(w, h int) {
	g.w = math.Max(float64(w), 0)
	g.h = math.Max(float64(h), 0)
	g.build()
}

func (g *Grid) build() {
	g.nodes = g.nodes[:0]
	g.links = g.links[:0]
	if g.w <= 0 || g.h <= 0 {
		g.lattice = core.Lattice{}
		return
	}
	p := g.cfg.Params
	g.lattice = core.NewLattice(g.w, g.h, p.Spacing)
	spacing := g.lattice.Spacing
	for row := 0; row < g.lattice.Rows; row++ {
		for col := 0; col < g.lattice.Cols; col++ {
			x, y := g.lattice.Point(col, row)
			x += g.rng.Centered(spacing * p.Jitter)
			y += g.rng.Centered(spacing * p.Jitter)
			g.nodes = append(g.nodes, Node{
				BaseX:  x,
				BaseY:  y,
				X:      x,
				Y:      y,
				Phase:  g.rng.Angle(),
				Speed:  g.rng.Range(0.002, 0.005),
				Radius: g.rng.Range(1, 3),
			})
		}
	}

	threshold := spacing * p.LinkFactor
	for i := range g.nodes {
		a := g.nodes[i]
		for j := i + 1; j < len(g.nodes); j++ {
			b := g.nodes[j]
			dx, dy := a.BaseX-b.BaseX, a.BaseY-b.BaseY
			if math.Abs(dx) > threshold || math.Abs(dy) > threshold {
				continue
			}
			dist := math.Hypot(dx, dy)
			if dist >= threshold {
				continue
			}
			g.links = append(g.links, Link{
				A:             i,
				B:             j,
				Length:        dist,
				CurvePhase:    g.rng.Angle(),
				CurveStrength: g.rng.Centered(20),
			})
		}
	}
}

// PointerMove records the pointer in viewport coordinates.
func (g *Grid) PointerMove(x, y float64) {
	g.pointerX, g.pointerY = x, y
}

// PointerLeave parks the pointer outside the viewport.
func (g *Grid) PointerLeave() {
	g.pointerX, g.pointerY = offscreen, offscreen
}

// Pulse charges every node within the pulse radius of (x, y) by
// 1 - d/radius, capped at 1.
func (g *Grid) Pulse(x, y float64) {
	radius := g.cfg.Params.PulseRadius
	for i := range g.nodes {
		n := &g.nodes[i]
		d := anim.Dist(x, y, n.X, n.Y)
		if d < radius {
			n.Charge = math.Min(n.Charge+1-d/radius, 1)
		}
	}
}

// Step advances the scene by one display frame.
func (g *Grid) Step() {
	p := g.cfg.Params
	g.frame++
	t := float64(g.frame)
	for i := range g.nodes {
		n := &g.nodes[i]
		angle := t*n.Speed + n.Phase
		n.X = n.BaseX + math.Cos(angle)*p.Amplitude
		n.Y = n.BaseY + math.Sin(angle)*p.Amplitude

		d := anim.Dist(g.pointerX, g.pointerY, n.X, n.Y)
		if w := anim.Falloff(d, p.ChargeRadius); w > 0 {
			n.Charge = math.Min(n.Charge+w*p.ChargeAmount, 1)
		}
		if g.rng.Chance(p.ImpulseChance) {
			n.Charge = math.Min(n.Charge+p.ImpulseAmount, 1)
		}

		n.Charge *= p.Decay
		if idle := g.IdleLevel(i); n.Charge < idle {
			n.Charge = idle
		}
		n.Charge = anim.Clamp(n.Charge, 0, 1)
	}
}

// IdleLevel is the charge floor of node i at the current frame.
func (g *Grid) IdleLevel(i int) float64 {
	p := g.cfg.Params
	return p.IdleBase + math.Sin(float64(g.frame)*p.IdleRate+g.nodes[i].Phase)*p.IdleSwing
}

// Nodes returns a copy of the nodes in lattice order.
func (g *Grid) Nodes() []Node { return append([]Node(nil), g.nodes...) }

// Links returns a copy of the link set.
func (g *Grid) Links() []Link { return append([]Link(nil), g.links...) }

// Lattice returns the layout the nodes were built on.
func (g *Grid) Lattice() core.Lattice { return g.lattice }

// Frame returns the frame counter.
func (g *Grid) Frame() uint64 { return g.frame }

// Pointer returns the stored pointer position.
func (g *Grid) Pointer() (float64, float64) { return g.pointerX, g.pointerY }

func init() {
	core.Register("grid", func(cfg map[string]string) core.Scene {
		return NewWithConfig(FromMap(cfg))
	})
}
