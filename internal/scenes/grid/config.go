package grid

import "strconv"

// Params holds the tunable constants of the grid scene.
type Params struct {
	Spacing    float64 `yaml:"spacing"`
	Jitter     float64 `yaml:"jitter"`
	LinkFactor float64 `yaml:"link_factor"`
	Amplitude  float64 `yaml:"amplitude"`

	PulseRadius   float64 `yaml:"pulse_radius"`
	ChargeRadius  float64 `yaml:"charge_radius"`
	ChargeAmount  float64 `yaml:"charge_amount"`
	ImpulseChance float64 `yaml:"impulse_chance"`
	ImpulseAmount float64 `yaml:"impulse_amount"`
	Decay         float64 `yaml:"decay"`

	IdleBase  float64 `yaml:"idle_base"`
	IdleSwing float64 `yaml:"idle_swing"`
	IdleRate  float64 `yaml:"idle_rate"`

	VisibleCharge float64 `yaml:"visible_charge"`
	SnapFactor    float64 `yaml:"snap_factor"`
	FlexRate      float64 `yaml:"flex_rate"`
	FlexAmount    float64 `yaml:"flex_amount"`
}

// Config controls the grid viewport and its behaviour.
type Config struct {
	Width  int   `yaml:"width"`
	Height int   `yaml:"height"`
	Seed   int64 `yaml:"seed"`

	Params Params `yaml:"params"`
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:  960,
		Height: 540,
		Seed:   1337,
		Params: Params{
			Spacing:       60,
			Jitter:        0.5,
			LinkFactor:    1.5,
			Amplitude:     15,
			PulseRadius:   400,
			ChargeRadius:  200,
			ChargeAmount:  0.15,
			ImpulseChance: 0.00002,
			ImpulseAmount: 0.5,
			Decay:         0.985,
			IdleBase:      0.05,
			IdleSwing:     0.02,
			IdleRate:      0.002,
			VisibleCharge: 0.08,
			SnapFactor:    1.5,
			FlexRate:      0.005,
			FlexAmount:    5,
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
	if v, ok := cfg["spacing"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed > 0 {
			c.Params.Spacing = parsed
		}
	}
	if v, ok := cfg["jitter"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.Jitter = parsed
		}
	}
	if v, ok := cfg["impulse_chance"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 {
			c.Params.ImpulseChance = parsed
		}
	}
	if v, ok := cfg["decay"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Params.Decay = parsed
		}
	}
	return c
}
