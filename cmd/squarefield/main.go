package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/sorauchi/squarefield/pkg/config"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML engine config; defaults to built-in settings")
	verbose := flag.Bool("verbose", false, "enable diagnostic logging")
	flag.Parse()

	var cfg *config.EngineConfig
	if *configPath != "" {
		cfg = config.Load(*configPath)
	} else {
		cfg = config.Default()
	}
	if *verbose {
		cfg.Verbose = true
	}

	app, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("squarefield: %v", err)
	}
	defer app.Close()

	ebiten.SetWindowSize(cfg.CanvasWidth, cfg.CanvasHeight)
	ebiten.SetWindowTitle("squarefield")

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
