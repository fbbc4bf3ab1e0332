package main

import (
	"log"

	"whitetail/internal/config"
	"whitetail/internal/game"
	"whitetail/internal/wound"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	// Load configuration
	cfg := config.MustLoadConfig("config.yaml")

	// Load the wound catalogue; fall back to built-in defaults
	profiles, err := wound.LoadCatalog("assets/wounds.yaml")
	if err != nil {
		log.Printf("Warning: Failed to load wound catalogue: %v", err)
		profiles = wound.DefaultProfiles()
	}

	// Set window properties from config
	ebiten.SetWindowSize(cfg.GetScreenWidth(), cfg.GetScreenHeight())
	ebiten.SetWindowTitle(cfg.Display.WindowTitle)
	if cfg.Display.Resizable {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}
	ebiten.SetTPS(cfg.GetTPS())

	g := game.NewHuntGame(cfg, profiles)
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
