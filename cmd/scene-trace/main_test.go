package main

import (
	"strings"
	"testing"

	"bioscene/internal/config"
	"bioscene/internal/scenes/forest"
	"bioscene/internal/scenes/grid"
)

func loadDefaults(t *testing.T) *config.Config {
	t.Helper()
	cfg, err := config.Load("")
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	return cfg
}

func TestBuildSceneUsesRegistry(t *testing.T) {
	cfg := loadDefaults(t)
	cfg.Forest.Initial = forest.Metrics{CO2: 50, KWh: 500, GPUs: 2, Hours: 180}

	scene, err := buildScene("forest", cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	f, ok := scene.(*forest.Forest)
	if !ok {
		t.Fatalf("registry returned %T", scene)
	}
	if f.PlantCount() != 12 {
		t.Fatalf("expected 12 plants, got %d", f.PlantCount())
	}
	if size := f.Size(); size.W != cfg.Forest.Width || size.H != cfg.Forest.Height {
		t.Fatalf("size = %+v, want %dx%d", size, cfg.Forest.Width, cfg.Forest.Height)
	}

	scene, err = buildScene("forest", cfg, map[string]string{"gpus": "3"})
	if err != nil {
		t.Fatal(err)
	}
	if n := scene.(*forest.Forest).PlantCount(); n != 13 {
		t.Fatalf("override ignored, %d plants", n)
	}

	scene, err = buildScene("grid", cfg, map[string]string{"spacing": "30"})
	if err != nil {
		t.Fatal(err)
	}
	if got := scene.(*grid.Grid).Lattice().Spacing; got != 30 {
		t.Fatalf("grid spacing = %v, want 30", got)
	}
}

func TestBuildSceneUnknown(t *testing.T) {
	_, err := buildScene("lava", loadDefaults(t), nil)
	if err == nil || !strings.Contains(err.Error(), "forest, grid") {
		t.Fatalf("expected registered names in error, got %v", err)
	}
}

func TestFactoryArgsMatchConfig(t *testing.T) {
	cfg := loadDefaults(t)
	if got := forest.FromMap(forestArgs(cfg.Forest)); got != cfg.Forest {
		t.Fatalf("forest args lost settings:\n got %+v\nwant %+v", got, cfg.Forest)
	}
	if got := grid.FromMap(gridArgs(cfg.Grid)); got != cfg.Grid {
		t.Fatalf("grid args lost settings:\n got %+v\nwant %+v", got, cfg.Grid)
	}
}

func TestParseOverrides(t *testing.T) {
	got, err := parseOverrides([]string{"co2=12", " decay = 0.9 "})
	if err != nil {
		t.Fatal(err)
	}
	if got["co2"] != "12" || got["decay"] != "0.9" {
		t.Fatalf("unexpected overrides %v", got)
	}
	if _, err := parseOverrides([]string{"nokey"}); err == nil {
		t.Fatal("expected an error for a bare key")
	}
}
