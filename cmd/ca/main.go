//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"nd-ca/internal/app"
	"nd-ca/internal/core"
	_ "nd-ca/internal/sims/briansbrain"
	_ "nd-ca/internal/sims/elementary"
	_ "nd-ca/internal/sims/life3d"
	_ "nd-ca/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	sim, err := core.Build(cfg.Sim, cfg.Set)
	if err != nil {
		log.Fatal(err)
	}
	sim.Reset(cfg.Seed)

	game := app.New(sim, cfg.Scale, cfg.Seed)
	w, h := game.Layout(0, 0)

	ebiten.SetWindowTitle("nd-ca — " + sim.Name())
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(w, h)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
