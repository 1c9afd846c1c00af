package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log/slog"
	"path/filepath"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/jakecoffman/cp"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"github.com/jblob-devs/rymech-sub001/ecs/entity"
	"github.com/jblob-devs/rymech-sub001/ecs/render"
	"github.com/jblob-devs/rymech-sub001/ecs/system"
	"github.com/jblob-devs/rymech-sub001/prefabs"
	"github.com/jblob-devs/rymech-sub001/serpent"
	"github.com/jblob-devs/rymech-sub001/telemetry"
)

const (
	baseWidth  = 1280
	baseHeight = 720
)

type gameConfig struct {
	Debug bool
	Seed  int64
	Watch bool
	Trace io.Writer
}

type Game struct {
	cfg gameConfig
	log *slog.Logger

	world      *ecs.World
	scheduler  *ecs.Scheduler
	renderer   *render.RenderSystem
	scripts    *system.SerpentScriptSystem
	trace      *system.SerpentTraceSystem
	watcher    *prefabs.Watcher
	boss       ecs.Entity
	background color.RGBA
	frames     int
}

func NewGame(cfg gameConfig, log *slog.Logger) (*Game, error) {
	g := &Game{
		cfg:      cfg,
		log:      log,
		renderer: render.NewRenderSystem(),
	}
	g.renderer.Debug = cfg.Debug

	if cfg.Trace != nil {
		g.trace = system.NewSerpentTraceSystem(telemetry.NewRecorder(cfg.Trace), log)
	}

	if err := g.reset(); err != nil {
		return nil, err
	}

	if cfg.Watch {
		w, err := prefabs.NewWatcher(prefabs.Dir, filepath.Join(prefabs.Dir, "scripts"))
		if err != nil {
			log.Warn("game: prefab hot reload disabled", "err", err)
		} else {
			g.watcher = w
		}
	}

	return g, nil
}

// reset builds a fresh arena from the prefab specs.
func (g *Game) reset() error {
	arena, err := prefabs.LoadArenaSpec()
	if err != nil {
		return err
	}
	serpentSpec, err := prefabs.LoadSerpentSpec()
	if err != nil {
		return err
	}
	playerSpec, err := prefabs.LoadPlayerSpec()
	if err != nil {
		return err
	}

	w := ecs.NewWorld()
	if _, err := entity.NewCamera(w, arena.Camera, arena.PlayerSpawn.X, arena.PlayerSpawn.Y); err != nil {
		return err
	}
	if _, err := entity.NewPlayer(w, playerSpec, arena.PlayerSpawn.X, arena.PlayerSpawn.Y); err != nil {
		return err
	}
	spawn := cp.Vector{X: arena.SerpentSpawn.X, Y: arena.SerpentSpawn.Y}
	boss, err := entity.NewSerpent(w, serpentSpec, spawn, serpent.NewRand(g.cfg.Seed), g.log)
	if err != nil {
		return err
	}

	g.scripts = system.NewSerpentScriptSystem(g.cfg.Seed+1, g.log)
	g.scheduler = ecs.NewScheduler(
		system.NewInputSystem(render.Keyboard{}),
		system.NewPlayerControllerSystem(system.Bounds{MaxX: arena.Width, MaxY: arena.Height}),
		system.NewSerpentSystem(g.cfg.Seed+2, g.log),
		system.NewSerpentHazardSystem(g.log),
		g.scripts,
		system.NewSerpentDefeatSystem(g.cfg.Seed+3, g.log),
		system.NewParticleSystem(),
		system.NewTTLSystem(),
		system.NewWhiteFlashSystem(),
		system.NewCameraSystem(g.cfg.Seed+4),
	)
	if g.trace != nil {
		g.scheduler.Add(g.trace)
	}

	g.world = w
	g.boss = boss
	g.background = arena.Background.RGBA
	g.log.Info("game: arena ready", "seed", g.cfg.Seed, "boss", boss)
	return nil
}

func (g *Game) Update() error {
	g.frames++
	g.pollWatcher()

	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reset(); err != nil {
			g.log.Error("game: reset failed", "err", err)
		}
	}

	g.scheduler.Update(g.world)
	return nil
}

func (g *Game) pollWatcher() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case change, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			g.applyChange(change)
		case err, ok := <-g.watcher.Errors:
			if ok {
				g.log.Warn("game: prefab watcher", "err", err)
			}
		default:
			return
		}
	}
}

func (g *Game) applyChange(change prefabs.Change) {
	switch change.Kind {
	case prefabs.ScriptChanged:
		g.scripts.Invalidate()
		g.log.Info("game: scripts reloaded", "path", change.Path)
	case prefabs.SpecChanged:
		if filepath.Base(change.Path) != "serpent.yaml" {
			return
		}
		spec, err := prefabs.LoadSerpentSpec()
		if err != nil {
			g.log.Warn("game: serpent spec reload", "err", err)
			return
		}
		sb, ok := ecs.Get(g.world, g.boss, component.SerpentBossComponent.Kind())
		if !ok {
			return
		}
		sb.Boss.SetTuning(spec.Tuning)
		sb.ContactDamage = spec.ContactDamage
		sb.BreathDamage = spec.BreathDamage
		sb.Script = spec.Script
		g.log.Info("game: serpent tuning reloaded", "path", change.Path)
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.background)
	g.renderer.Draw(g.world, screen)

	if g.cfg.Debug {
		ebitenutil.DebugPrint(screen, fmt.Sprintf("Frames: %d    FPS: %.2f", g.frames, ebiten.ActualFPS()))
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

// Close stops the watcher and flushes the trace.
func (g *Game) Close() error {
	var errs []error
	if g.watcher != nil {
		errs = append(errs, g.watcher.Close())
	}
	if g.trace != nil {
		errs = append(errs, g.trace.Close())
	}
	return errors.Join(errs...)
}
