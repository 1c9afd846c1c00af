package system

import (
	"math"

	"github.com/jblob-devs/rymech-sub001/common"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
)

// Bounds is an axis-aligned arena rectangle. The zero value is unbounded.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

func (b Bounds) empty() bool {
	return b.MaxX <= b.MinX || b.MaxY <= b.MinY
}

// PlayerControllerSystem moves the player from its Input and applies the
// debug damage action to every spawned serpent.
type PlayerControllerSystem struct {
	Arena Bounds
}

func NewPlayerControllerSystem(arena Bounds) *PlayerControllerSystem {
	return &PlayerControllerSystem{Arena: arena}
}

func (s *PlayerControllerSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.PlayerComponent.Kind(),
		component.InputComponent.Kind(),
		component.TransformComponent.Kind(),
		func(e ecs.Entity, p *component.Player, in *component.Input, t *component.Transform) {
			if h, ok := ecs.Get(w, e, component.HealthComponent.Kind()); ok && !h.IsAlive() {
				return
			}

			dx, dy := in.MoveX, in.MoveY
			if l := math.Hypot(dx, dy); l > 1 {
				dx, dy = dx/l, dy/l
			}
			t.X += dx * p.Speed * Step
			t.Y += dy * p.Speed * Step
			if !s.Arena.empty() {
				t.X = common.Clamp(t.X, s.Arena.MinX+p.Radius, s.Arena.MaxX-p.Radius)
				t.Y = common.Clamp(t.Y, s.Arena.MinY+p.Radius, s.Arena.MaxY-p.Radius)
			}

			if !in.DamageBoss || p.DebugDamage <= 0 {
				return
			}
			ecs.ForEach(w, component.SerpentBossComponent.Kind(), func(_ ecs.Entity, sb *component.SerpentBoss) {
				if sb.Boss == nil || !sb.Boss.FullySpawned {
					return
				}
				sb.Boss.Health = math.Max(0, sb.Boss.Health-p.DebugDamage)
			})
		})
}
