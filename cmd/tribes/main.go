//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"hex-tribes/internal/app"
	"hex-tribes/internal/core"
	"hex-tribes/internal/sims/tribes"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.Build("tribes", cfg.SimConfig())
	if err != nil {
		log.Fatal(err)
	}
	world, ok := sim.(*tribes.World)
	if !ok {
		log.Fatalf("sim %q is not a tribes world", sim.Name())
	}

	game := app.New(world, cfg)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("hex-tribes: " + string(world.Generator()))
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
