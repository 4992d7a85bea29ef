package app

import (
	"flag"

	"bioscene/internal/config"
)

// Config represents the command-line parameters for the application. Zero or
// negative values leave the file/default settings untouched.
type Config struct {
	ConfigPath string
	Seed       int64
	TPS        int
	Width      int
	Height     int
	HUDWidth   int

	CO2   float64
	KWh   float64
	GPUs  int
	Hours float64
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{HUDWidth: 220, CO2: -1, KWh: -1, Hours: -1}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.ConfigPath, "config", c.ConfigPath, "YAML file layered over the built-in defaults")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for both scenes (0 keeps the config seed)")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second (0 keeps the config value)")
	fs.IntVar(&c.Width, "width", c.Width, "scene area width in pixels")
	fs.IntVar(&c.Height, "height", c.Height, "window height in pixels")
	fs.IntVar(&c.HUDWidth, "hud", c.HUDWidth, "width of the control panel (0 hides it)")
	fs.Float64Var(&c.CO2, "co2", c.CO2, "initial CO2 kg")
	fs.Float64Var(&c.KWh, "kwh", c.KWh, "initial energy in kWh")
	fs.IntVar(&c.GPUs, "gpus", c.GPUs, "initial GPU count")
	fs.Float64Var(&c.Hours, "hours", c.Hours, "initial hours")
}

// Load reads the YAML settings named by -config and applies the flag
// overrides on top.
func (c *Config) Load() (*config.Config, error) {
	cfg, err := config.Load(c.ConfigPath)
	if err != nil {
		return nil, err
	}
	c.Apply(cfg)
	return cfg, nil
}

// Apply overlays the flags that were given on cfg. Scene sizes that follow
// the window are recomputed.
func (c *Config) Apply(cfg *config.Config) {
	if c.Seed != 0 {
		cfg.Forest.Seed = c.Seed
		cfg.Grid.Seed = c.Seed
	}
	if c.TPS > 0 {
		cfg.Window.TPS = c.TPS
	}
	if c.Width > 0 {
		cfg.Window.Width = c.Width
		cfg.Forest.Width = c.Width
		cfg.Grid.Width = c.Width
	}
	if c.Height > 0 {
		cfg.Window.Height = c.Height
		cfg.Grid.Height = c.Height
		if cfg.Window.PanelHeight > c.Height {
			cfg.Window.PanelHeight = c.Height
			cfg.Forest.Height = c.Height
		}
	}
	if c.CO2 >= 0 {
		cfg.Forest.Initial.CO2 = c.CO2
	}
	if c.KWh >= 0 {
		cfg.Forest.Initial.KWh = c.KWh
	}
	if c.GPUs > 0 {
		cfg.Forest.Initial.GPUs = c.GPUs
	}
	if c.Hours >= 0 {
		cfg.Forest.Initial.Hours = c.Hours
	}
}
