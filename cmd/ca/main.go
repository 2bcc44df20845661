//go:build ebiten

package main

import (
	"flag"
	"log"
	"strings"

	"gridview/internal/app"
	_ "gridview/internal/sims/briansbrain"
	_ "gridview/internal/sims/elementary"
	_ "gridview/internal/sims/life"
	_ "gridview/internal/sims/sparselife"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	scene, err := app.NewScene(cfg.Sim, cfg.SceneParams(), cfg.Frontend(), cfg.Seed)
	if err != nil {
		log.Fatalf("%v (available: %s)", err, strings.Join(app.Names(), ", "))
	}

	log.Printf("running %s: %dx%d window, every %v, seed %d", cfg.Sim, cfg.Width, cfg.Height, cfg.Rate, cfg.Seed)
	if err := app.Run(cfg.Sim, scene, cfg.TPS); err != nil {
		log.Fatal(err)
	}
}
