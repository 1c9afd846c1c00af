package system

import (
	"log/slog"
	"math"

	"github.com/jakecoffman/cp"
	"github.com/jblob-devs/rymech-sub001/common"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"github.com/jblob-devs/rymech-sub001/serpent"
)

const (
	hitFlashInterval = 4
	hitShakeFrames   = 10
	hitShakeStrength = 5
)

// SerpentHazardSystem applies serpent damage to the player: tendrils first,
// then body contact, then the breath cone. At most one hit lands per frame
// and a hit grants invulnerability frames.
type SerpentHazardSystem struct {
	log *slog.Logger
}

func NewSerpentHazardSystem(log *slog.Logger) *SerpentHazardSystem {
	return &SerpentHazardSystem{log: orDiscard(log)}
}

func (s *SerpentHazardSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	player, ok := ecs.First(w, component.PlayerTagComponent.Kind())
	if !ok {
		return
	}
	if inv, ok := ecs.Get(w, player, component.InvulnerableComponent.Kind()); ok {
		inv.Frames--
		if inv.Frames > 0 {
			return
		}
		ecs.Remove(w, player, component.InvulnerableComponent.Kind())
	}

	t, ok := ecs.Get(w, player, component.TransformComponent.Kind())
	if !ok {
		return
	}
	p, ok := ecs.Get(w, player, component.PlayerComponent.Kind())
	if !ok {
		return
	}
	health, ok := ecs.Get(w, player, component.HealthComponent.Kind())
	if !ok || !health.IsAlive() {
		return
	}

	point := cp.Vector{X: t.X, Y: t.Y}
	hit := false
	ecs.ForEach(w, component.SerpentBossComponent.Kind(), func(boss ecs.Entity, sb *component.SerpentBoss) {
		if hit {
			return
		}
		damage, source := SerpentDamageAt(sb, point, p.Radius)
		if damage <= 0 {
			return
		}
		hit = true

		health.ApplyDamage(damage)
		if p.IFrames > 0 {
			_ = ecs.Add(w, player, component.InvulnerableComponent.Kind(), &component.Invulnerable{Frames: p.IFrames})
			Flash(w, player, p.IFrames, hitFlashInterval)
		}
		RequestShake(w, hitShakeFrames, hitShakeStrength)

		w.Events().Push(ecs.Event{
			Type: ecs.EventPlayerHit,
			Data: ecs.PlayerHitEvent{Player: player, Boss: boss, Source: source, Damage: damage},
		})
		s.log.Info("serpent: player hit", "source", source, "damage", damage, "health", health.Current)
	})
}

// SerpentDamageAt reports the damage a circle at point would take from sb
// this frame and which part of the serpent deals it.
func SerpentDamageAt(sb *component.SerpentBoss, point cp.Vector, radius float64) (float64, string) {
	if sb == nil || sb.Boss == nil || !sb.Boss.FullySpawned {
		return 0, ""
	}
	if td, ok := sb.Boss.HitTendril(point, radius); ok {
		return td.Damage, "tendril"
	}
	if _, ok := sb.Boss.HitSegment(point, radius); ok && sb.ContactDamage > 0 {
		return sb.ContactDamage, "body"
	}
	if sb.BreathDamage > 0 && InBreathCone(sb.Boss, point, radius) {
		return sb.BreathDamage, "breath"
	}
	return 0, ""
}

// InBreathCone reports whether a circle at point overlaps the breath cone of
// a boss currently breathing.
func InBreathCone(b *serpent.Boss, point cp.Vector, radius float64) bool {
	if b == nil || !b.FullySpawned {
		return false
	}
	br, ok := b.Phase.(*serpent.Breath)
	if !ok {
		return false
	}
	tun := b.Tuning()

	d := point.Sub(b.Head().Position)
	dist := d.Length()
	if dist <= radius {
		return true
	}
	if dist-radius > tun.BreathRange {
		return false
	}
	// Widen the half angle by the angular size of the circle.
	slack := math.Asin(math.Min(radius/dist, 1))
	return math.Abs(common.AngleDiff(d.ToAngle(), br.Direction)) <= tun.BreathSpread+slack
}
