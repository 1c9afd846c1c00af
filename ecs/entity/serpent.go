package entity

import (
	"fmt"
	"log/slog"

	"github.com/jakecoffman/cp"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"github.com/jblob-devs/rymech-sub001/prefabs"
	"github.com/jblob-devs/rymech-sub001/serpent"
	"golang.org/x/image/colornames"
)

// NewSerpent spawns a serpent boss at spawn. rng may be nil for a time
// seeded source.
func NewSerpent(w *ecs.World, spec *prefabs.SerpentSpec, spawn cp.Vector, rng serpent.Rand, log *slog.Logger) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("serpent: nil spec")
	}

	opts := []serpent.Option{
		serpent.WithTuning(spec.Tuning),
		serpent.WithHealth(spec.Health),
		serpent.WithSize(spec.Size),
		serpent.WithLogger(log),
	}
	if rng != nil {
		opts = append(opts, serpent.WithRand(rng))
	}
	boss := serpent.New(spawn, opts...)

	body := spec.BodyColor.RGBA
	if body.A == 0 {
		body = colornames.Seagreen
	}
	tendril := spec.TendrilColor.RGBA
	if tendril.A == 0 {
		tendril = colornames.Darkolivegreen
	}

	e := ecs.CreateEntity(w)
	if err := ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{
		X:        spawn.X,
		Y:        spawn.Y,
		Rotation: boss.Head().Rotation,
	}); err != nil {
		return 0, fmt.Errorf("serpent: add transform: %w", err)
	}
	if err := ecs.Add(w, e, component.SerpentBossComponent.Kind(), &component.SerpentBoss{
		Boss:          boss,
		ContactDamage: spec.ContactDamage,
		BreathDamage:  spec.BreathDamage,
		Script:        spec.Script,
		BodyColor:     body,
		TendrilColor:  tendril,
		LastPhase:     boss.PhaseKind(),
	}); err != nil {
		return 0, fmt.Errorf("serpent: add serpent boss: %w", err)
	}

	return e, nil
}
