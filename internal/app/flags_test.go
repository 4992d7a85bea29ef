package app

import (
	"flag"
	"testing"

	"bioscene/internal/config"
)

func TestFlagsOverrideConfig(t *testing.T) {
	fs := flag.NewFlagSet("bioscene", flag.ContinueOnError)
	c := NewConfig()
	c.Bind(fs)
	if err := fs.Parse([]string{"-seed", "9", "-width", "1200", "-co2", "0", "-gpus", "3"}); err != nil {
		t.Fatal(err)
	}
	cfg, err := c.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Forest.Seed != 9 || cfg.Grid.Seed != 9 {
		t.Fatalf("seeds = %d/%d", cfg.Forest.Seed, cfg.Grid.Seed)
	}
	if cfg.Window.Width != 1200 || cfg.Forest.Width != 1200 || cfg.Grid.Width != 1200 {
		t.Fatalf("widths = %d/%d/%d", cfg.Window.Width, cfg.Forest.Width, cfg.Grid.Width)
	}
	if cfg.Forest.Initial.CO2 != 0 || cfg.Forest.Initial.GPUs != 3 {
		t.Fatalf("initial = %+v", cfg.Forest.Initial)
	}
	if cfg.Forest.Initial.KWh != 0.3 || cfg.Forest.Initial.Hours != 1 {
		t.Fatal("unset metric flags must keep defaults")
	}
}

func TestShortWindowShrinksPanel(t *testing.T) {
	cfg, err := config.Load("")
	if err != nil {
		t.Fatal(err)
	}
	c := NewConfig()
	c.Height = 200
	c.Apply(cfg)
	if cfg.Window.PanelHeight != 200 || cfg.Forest.Height != 200 || cfg.Grid.Height != 200 {
		t.Fatalf("window = %+v forest h = %d", cfg.Window, cfg.Forest.Height)
	}
}
