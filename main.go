package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	debug := flag.Bool("debug", false, "show the phase overlay and frame counter")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed for the serpent and effects")
	watch := flag.Bool("watch", true, "hot reload prefab specs and scripts from ./prefabs")
	tracePath := flag.String("trace", "", "write per-tick serpent telemetry as CSV to this file")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	cfg := gameConfig{Debug: *debug, Seed: *seed, Watch: *watch}
	if *tracePath != "" {
		f, err := os.Create(*tracePath)
		if err != nil {
			log.Error("open trace", "path", *tracePath, "err", err)
			os.Exit(1)
		}
		defer f.Close()
		cfg.Trace = f
	}

	game, err := NewGame(cfg, log)
	if err != nil {
		log.Error("new game", "err", err)
		os.Exit(1)
	}

	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSize(baseWidth, baseHeight)
	ebiten.SetWindowTitle("serpent")

	runErr := ebiten.RunGame(game)
	if err := game.Close(); err != nil {
		log.Error("close game", "err", err)
	}
	if runErr != nil {
		log.Error("run game", "err", runErr)
		os.Exit(1)
	}
}
