// Package config loads the YAML settings shared by the host and the trace
// tool. Files are layered over the embedded defaults.
package config

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"bioscene/internal/scenes/forest"
	"bioscene/internal/scenes/grid"
	"bioscene/internal/tooltip"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds every tunable of the program.
type Config struct {
	Window  WindowConfig   `yaml:"window"`
	Forest  forest.Config  `yaml:"forest"`
	Grid    grid.Config    `yaml:"grid"`
	Tooltip tooltip.Config `yaml:"tooltip"`
	Trace   TraceConfig    `yaml:"trace"`
}

// WindowConfig sizes the host window and its forest panel.
type WindowConfig struct {
	Width       int `yaml:"width"`
	Height      int `yaml:"height"`
	TPS         int `yaml:"tps"`
	PanelHeight int `yaml:"panel_height"`
}

// TraceConfig drives the headless trace run.
type TraceConfig struct {
	Frames      int `yaml:"frames"`
	SampleEvery int `yaml:"sample_every"` // record one sample every N frames
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Only fields present in the file are overwritten.
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	cfg.normalize()
	return cfg, nil
}

// normalize fills sizes that follow the window and repairs values that would
// stall the program.
func (c *Config) normalize() {
	if c.Window.Width <= 0 {
		c.Window.Width = 960
	}
	if c.Window.Height <= 0 {
		c.Window.Height = 640
	}
	if c.Window.TPS <= 0 {
		c.Window.TPS = 60
	}
	if c.Window.PanelHeight <= 0 || c.Window.PanelHeight > c.Window.Height {
		c.Window.PanelHeight = c.Window.Height
	}
	if c.Forest.Width == 0 {
		c.Forest.Width = c.Window.Width
	}
	if c.Forest.Height == 0 {
		c.Forest.Height = c.Window.PanelHeight
	}
	if c.Grid.Width == 0 {
		c.Grid.Width = c.Window.Width
	}
	if c.Grid.Height == 0 {
		c.Grid.Height = c.Window.Height
	}
	if c.Trace.Frames < 0 {
		c.Trace.Frames = 0
	}
	if c.Trace.SampleEvery <= 0 {
		c.Trace.SampleEvery = 1
	}
}

// PanelY is the top edge of the forest panel in window coordinates.
func (c *Config) PanelY() int {
	return c.Window.Height - c.Window.PanelHeight
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
