package forest

import "strconv"

// PlantLimit is the most plants a forest ever holds; MaxPlants above it is
// capped.
const PlantLimit = 40

// Params holds the tunable constants of the forest scene.
type Params struct {
	MaxPlants   int     `yaml:"max_plants"`
	CO2PerPlant float64 `yaml:"co2_per_plant"`

	HeightFloor    float64 `yaml:"height_floor"`
	HoursRef       float64 `yaml:"hours_ref"`
	HeightBoostMax float64 `yaml:"height_boost_max"`
	KWhRef         float64 `yaml:"kwh_ref"`

	FrameStep       float64 `yaml:"frame_step"`
	GrowthStep      float64 `yaml:"growth_step"`
	HeightBlend     float64 `yaml:"height_blend"`
	InfluenceRadius float64 `yaml:"influence_radius"`
	SproutHeight    float64 `yaml:"sprout_height"`

	SpawnChance   float64 `yaml:"spawn_chance"`
	MaxParticles  int     `yaml:"max_particles"`
	ParticleDecay float64 `yaml:"particle_decay"`
	ParticleLift  float64 `yaml:"particle_lift"`
}

// Metrics are the externally supplied inputs.
type Metrics struct {
	CO2   float64 `yaml:"co2"`
	KWh   float64 `yaml:"kwh"`
	GPUs  int     `yaml:"gpus"`
	Hours float64 `yaml:"hours"`
}

// DefaultMetrics are the values a page shows before it has real numbers.
func DefaultMetrics() Metrics {
	return Metrics{CO2: 0.15, KWh: 0.3, GPUs: 1, Hours: 1}
}

// Config controls the forest container and its behaviour.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Initial Metrics `yaml:"initial"`
	Params  Params  `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:   960,
		Height:  240,
		Seed:    1337,
		Initial: DefaultMetrics(),
		Params: Params{
			MaxPlants:       PlantLimit,
			CO2PerPlant:     5,
			HeightFloor:     0.3,
			HoursRef:        150,
			HeightBoostMax:  1.2,
			KWhRef:          500,
			FrameStep:       0.016,
			GrowthStep:      0.02,
			HeightBlend:     0.05,
			InfluenceRadius: 200,
			SproutHeight:    20,
			SpawnChance:     0.02,
			MaxParticles:    100,
			ParticleDecay:   0.015,
			ParticleLift:    0.01,
		},
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["co2"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Initial.CO2 = parsed
		}
	}
	if v, ok := cfg["kwh"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Initial.KWh = parsed
		}
	}
	if v, ok := cfg["gpus"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil {
			c.Initial.GPUs = parsed
		}
	}
	if v, ok := cfg["hours"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil {
			c.Initial.Hours = parsed
		}
	}
	if v, ok := cfg["spawn_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.SpawnChance = parsed
		}
	}
	if v, ok := cfg["max_particles"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Params.MaxParticles = parsed
		}
	}
	if v, ok := cfg["max_plants"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 1 {
			c.Params.MaxPlants = min(parsed, PlantLimit)
		}
	}
	return c
}
