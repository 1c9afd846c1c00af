package system

import (
	"log/slog"
	"math/rand"

	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"golang.org/x/image/colornames"
)

// SerpentDefeatSystem removes serpents whose health ran out.
type SerpentDefeatSystem struct {
	rng *rand.Rand
	log *slog.Logger
}

func NewSerpentDefeatSystem(seed int64, log *slog.Logger) *SerpentDefeatSystem {
	return &SerpentDefeatSystem{rng: rand.New(rand.NewSource(seed)), log: orDiscard(log)}
}

func (s *SerpentDefeatSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.SerpentBossComponent.Kind(), func(e ecs.Entity, sb *component.SerpentBoss) {
		if sb.Boss == nil || sb.Boss.Health > 0 {
			return
		}
		for _, seg := range sb.Boss.Segments {
			SpawnParticles(w, s.rng, seg.Position, 6, colornames.Gold, 1.2)
		}
		RequestShake(w, 40, 10)

		w.Events().Push(ecs.Event{Type: ecs.EventSerpentDefeated, Data: e})
		s.log.Info("serpent: defeated", "entity", e)
		ecs.DestroyEntity(w, e)
	})
}
