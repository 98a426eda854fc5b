//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"fieldplot/internal/app"
	_ "fieldplot/internal/sims/briansbrain"
	_ "fieldplot/internal/sims/elementary"
	_ "fieldplot/internal/sims/gaussian"
	_ "fieldplot/internal/sims/life"
	_ "fieldplot/internal/sims/pulse"
	_ "fieldplot/internal/sims/wave"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	var err error
	var l *zap.Logger
	if cfg.Debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	zap.ReplaceGlobals(l)
	defer l.Sync() //nolint:errcheck

	if err := cfg.Validate(); err != nil {
		for _, e := range multierr.Errors(err) {
			l.Error("invalid flag", zap.Error(e))
		}
		l.Fatal("invalid configuration")
	}

	game, err := app.New(cfg, l)
	if err != nil {
		l.Fatal("init", zap.Error(err))
	}

	ebiten.SetWindowTitle("fieldplot — " + cfg.Sources)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetScreenClearedEveryFrame(false)

	runErr := ebiten.RunGame(game)
	if errors.Is(runErr, ebiten.Termination) {
		runErr = nil
	}
	if err := multierr.Append(runErr, game.Close()); err != nil {
		l.Fatal("run", zap.Error(err))
	}
}
