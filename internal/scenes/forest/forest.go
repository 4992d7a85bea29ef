package forest

import (
	"math"

	"bioscene/internal/anim"
	"bioscene/internal/core"
)

// Shape selects the foliage geometry of a plant.
type Shape uint8

const (
	ShapePine Shape = iota
	ShapeDiamond
	ShapeRound
	shapeCount
)

func (s Shape) String() string {
	switch s {
	case ShapePine:
		return "pine"
	case ShapeDiamond:
		return "diamond"
	case ShapeRound:
		return "round"
	default:
		return "unknown"
	}
}

// Plant is one animated tree. X and Y mark the foot of the trunk.
type Plant struct {
	X, Y float64

	BaseHeight    float64
	TargetHeight  float64
	CurrentHeight float64
	Width         float64

	GrowthProgress float64
	ColorIntensity float64

	Phase     float64
	SwaySpeed float64
	Layers    int
	Shape     Shape

	Seed             bool
	PointerInfluence float64
}

// EasedHeight is the visible height: the smoothed height scaled by the
// elastic growth curve.
func (p Plant) EasedHeight() float64 {
	return p.CurrentHeight * anim.EaseOutElastic(p.GrowthProgress)
}

// Sway returns the horizontal tip offset at scene time clock for a pointer at
// pointerX.
func (p Plant) Sway(clock, pointerX float64) float64 {
	base := math.Sin(clock*p.SwaySpeed+p.Phase) * 3
	return base + p.PointerInfluence*(pointerX-p.X)*0.05
}

// Particle is a short-lived mote drifting up from a growing plant.
type Particle struct {
	X, Y   float64
	VX, VY float64
	Life   float64
	Size   float64
	Hue    float64
}

const (
	// inputLimit bounds metric inputs so infinities stay finite.
	inputLimit = 1e9
	// offscreen parks the pointer where it influences nothing.
	offscreen = -1000
)

// Forest is the metric-driven plant scene.
type Forest struct {
	cfg  Config
	w, h float64

	plants    []Plant
	particles []Particle
	metrics   Metrics

	pointerX, pointerY float64
	clock              float64

	rng *core.RNG
}

// New returns a forest for a w*h container using default parameters.
func New(w, h int) *Forest {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a forest configured from cfg, already populated from
// cfg.Initial.
func NewWithConfig(cfg Config) *Forest {
	cfg.Params.MaxPlants = min(max(cfg.Params.MaxPlants, 1), PlantLimit)
	f := &Forest{
		cfg: cfg,
		w:   math.Max(float64(cfg.Width), 0),
		h:   math.Max(float64(cfg.Height), 0),
		rng: core.NewRNG(cfg.Seed),
	}
	f.Reset(0)
	return f
}

// Name returns the scene identifier.
func (f *Forest) Name() string { return "forest" }

// Size reports the container dimensions.
func (f *Forest) Size() core.Size { return core.Size{W: int(f.w), H: int(f.h)} }

// Params exposes the active tuning.
func (f *Forest) Params() Params { return f.cfg.Params }

// Reset discards plants, particles and the clock, reseeds the RNG (0 selects
// the configured seed) and repopulates from the configured initial metrics.
func (f *Forest) Reset(seed int64) {
	effective := seed
	if effective == 0 {
		effective = f.cfg.Seed
	}
	f.rng.Reseed(effective)
	f.plants = f.plants[:0]
	f.particles = f.particles[:0]
	f.clock = 0
	f.pointerX, f.pointerY = offscreen, offscreen
	m := f.cfg.Initial
	f.UpdateValues(m.CO2, m.KWh, m.GPUs, m.Hours)
}

// Resize changes the container size. Existing plants keep their horizontal
// position and are re-anchored to the new ground line.
func (f *Forest) Resize(w, h int) {
	f.w = math.Max(float64(w), 0)
	f.h = math.Max(float64(h), 0)
	for i := range f.plants {
		f.plants[i].Y = f.baseline()
	}
}

// TargetCount is the number of plants the metrics call for.
func (p Params) TargetCount(co2 float64, gpus int) int {
	per := p.CO2PerPlant
	if per <= 0 {
		per = 5
	}
	n := math.Floor(co2/per) + float64(gpus)
	limit := min(max(p.MaxPlants, 1), PlantLimit)
	return int(anim.Clamp(n, 1, float64(limit)))
}

// HeightMultiplier maps hours to the factor applied to every base height.
func (p Params) HeightMultiplier(hours float64) float64 {
	ref := p.HoursRef
	if ref <= 0 {
		ref = 150
	}
	return p.HeightFloor + anim.Clamp(hours/ref, 0, p.HeightBoostMax)
}

// ColorIntensity maps kWh to the shared colour intensity in [0, 1].
func (p Params) ColorIntensity(kwh float64) float64 {
	ref := p.KWhRef
	if ref <= 0 {
		ref = 500
	}
	return anim.Clamp(kwh/ref, 0, 1)
}

// UpdateValues applies new metric inputs: it adds or removes plants from the
// end of the collection, retargets every height and recolours every plant. It
// never touches the frame clock, so it may be called at any rate.
func (f *Forest) UpdateValues(co2, kwh float64, gpuCount int, hours float64) {
	co2 = anim.Finite(co2, inputLimit)
	kwh = anim.Finite(kwh, inputLimit)
	hours = anim.Finite(hours, inputLimit)
	f.metrics = Metrics{CO2: co2, KWh: kwh, GPUs: gpuCount, Hours: hours}

	p := f.cfg.Params
	target := p.TargetCount(co2, gpuCount)
	for len(f.plants) < target {
		f.plants = append(f.plants, f.newPlant())
	}
	if len(f.plants) > target {
		f.plants = f.plants[:target]
	}

	mult := p.HeightMultiplier(hours)
	intensity := p.ColorIntensity(kwh)
	for i := range f.plants {
		pl := &f.plants[i]
		pl.TargetHeight = pl.BaseHeight * mult
		pl.ColorIntensity = intensity
	}
}

// PointerMove records the pointer in container coordinates.
func (f *Forest) PointerMove(x, y float64) {
	f.pointerX, f.pointerY = x, y
}

// PointerLeave parks the pointer outside the container.
func (f *Forest) PointerLeave() {
	f.pointerX, f.pointerY = offscreen, offscreen
}

// Step advances the scene by one display frame.
func (f *Forest) Step() {
	p := f.cfg.Params
	f.clock += p.FrameStep

	for i := range f.plants {
		pl := &f.plants[i]
		pl.GrowthProgress = math.Min(pl.GrowthProgress+p.GrowthStep, 1)
		pl.CurrentHeight = anim.Approach(pl.CurrentHeight, pl.TargetHeight, p.HeightBlend)

		dist := anim.Dist(f.pointerX, f.pointerY, pl.X, pl.Y-pl.CurrentHeight/2)
		pl.PointerInfluence = anim.Falloff(dist, p.InfluenceRadius)

		if pl.Seed && pl.EasedHeight() >= p.SproutHeight {
			pl.Seed = false
		}

		if f.metrics.CO2 > 0 && f.rng.Chance(p.SpawnChance*pl.GrowthProgress) {
			f.spawnParticle(pl)
		}
	}

	live := f.particles[:0]
	for _, pt := range f.particles {
		pt.X += pt.VX
		pt.Y += pt.VY
		pt.VY -= p.ParticleLift
		pt.Life -= p.ParticleDecay
		if pt.Life > 0 {
			live = append(live, pt)
		}
	}
	f.particles = live
}

// Plants returns a copy of the plants in scene order.
func (f *Forest) Plants() []Plant {
	return append([]Plant(nil), f.plants...)
}

// PlantCount returns the number of plants.
func (f *Forest) PlantCount() int { return len(f.plants) }

// Particles returns a copy of the live particles.
func (f *Forest) Particles() []Particle {
	return append([]Particle(nil), f.particles...)
}

// Metrics returns the last applied inputs.
func (f *Forest) Metrics() Metrics { return f.metrics }

// Clock returns the scene time.
func (f *Forest) Clock() float64 { return f.clock }

// Pointer returns the stored pointer position.
func (f *Forest) Pointer() (float64, float64) { return f.pointerX, f.pointerY }

func (f *Forest) baseline() float64 { return f.h - 5 }

func (f *Forest) newPlant() Plant {
	x := 20 + f.rng.Float64()*math.Max(f.w-40, 0)
	base := f.rng.Range(40, 100)
	return Plant{
		X:            x,
		Y:            f.baseline(),
		BaseHeight:   base,
		TargetHeight: base,
		Width:        f.rng.Range(10, 20),
		Phase:        f.rng.Angle(),
		SwaySpeed:    f.rng.Range(0.5, 1),
		Layers:       3 + f.rng.IntN(2),
		Shape:        Shape(f.rng.IntN(int(shapeCount))),
		Seed:         true,
	}
}

func (f *Forest) spawnParticle(pl *Plant) {
	if len(f.particles) >= f.cfg.Params.MaxParticles {
		return
	}
	y := pl.Y - pl.CurrentHeight*f.rng.Range(0.3, 0.9)
	x := pl.X + f.rng.Centered(pl.Width*2)
	f.particles = append(f.particles, Particle{
		X:    x,
		Y:    y,
		VX:   f.rng.Centered(0.5),
		VY:   -f.rng.Float64() - 0.5,
		Life: 1,
		Size: f.rng.Range(2, 5),
		Hue:  f.rng.Range(80, 120),
	})
}

func init() {
	core.Register("forest", func(cfg map[string]string) core.Scene {
		return NewWithConfig(FromMap(cfg))
	})
}
