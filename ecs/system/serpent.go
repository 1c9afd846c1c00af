package system

import (
	"image/color"
	"log/slog"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"github.com/jblob-devs/rymech-sub001/serpent"
)

// SerpentSystem advances every serpent one fixed step, aims it at the
// player, mirrors its position into the entity Transform and publishes
// phase changes.
type SerpentSystem struct {
	rng *rand.Rand
	log *slog.Logger
}

func NewSerpentSystem(seed int64, log *slog.Logger) *SerpentSystem {
	return &SerpentSystem{
		rng: rand.New(rand.NewSource(seed)),
		log: orDiscard(log),
	}
}

func (s *SerpentSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	target, hasTarget := playerPosition(w)
	emit := s.emitter(w)

	ecs.ForEach2(w,
		component.SerpentBossComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, sb *component.SerpentBoss, t *component.Transform) {
			if sb.Boss == nil {
				return
			}
			aim := target
			if !hasTarget {
				aim = sb.Boss.Position
			}

			sb.Boss.Update(Step, aim, emit)

			t.X, t.Y = sb.Boss.Position.X, sb.Boss.Position.Y
			t.Rotation = sb.Boss.Head().Rotation

			kind := sb.Boss.PhaseKind()
			if kind == sb.LastPhase {
				return
			}
			w.Events().Push(ecs.Event{
				Type: ecs.EventSerpentPhase,
				Data: ecs.SerpentPhaseEvent{Entity: e, From: sb.LastPhase, To: kind},
			})
			s.log.Debug("serpent: phase change", "entity", e, "from", sb.LastPhase, "to", kind)
			sb.LastPhase = kind
		})
}

func (s *SerpentSystem) emitter(w *ecs.World) serpent.ParticleFunc {
	return func(pos cp.Vector, count int, c color.RGBA, lifetime float64) {
		SpawnParticles(w, s.rng, pos, count, c, lifetime)
	}
}

func playerPosition(w *ecs.World) (cp.Vector, bool) {
	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return cp.Vector{}, false
	}
	return cp.Vector{X: t.X, Y: t.Y}, true
}
