//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"bioscene/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	settings, err := cfg.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	game := app.New(settings, cfg.HUDWidth, 0)
	hud := max(cfg.HUDWidth, 0)

	ebiten.SetWindowTitle("bioscene")
	ebiten.SetTPS(settings.Window.TPS)
	ebiten.SetWindowSize(settings.Window.Width+hud, settings.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
