//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"torus-life/internal/app"
	"torus-life/internal/cli"
	"torus-life/internal/config"
	"torus-life/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg, err := config.Parse(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}

	sim, err := cli.Simulate(cfg, log.New(os.Stderr, "", log.LstdFlags))
	if err != nil {
		log.Fatal(err)
	}

	game := app.New(sim.Result, sim.Engine, sim.Rule, cfg.Scale, cfg.FPS)
	w, h, _ := render.Plane(sim.Result.Generations[0])
	sw, sh := game.Layout(w, h)

	ebiten.SetWindowTitle("torus-life: " + sim.Engine + " " + sim.Rule.String())
	ebiten.SetWindowSize(sw, sh)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
