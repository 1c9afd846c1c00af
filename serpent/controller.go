package serpent

import (
	"math"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

func (b *Boss) updatePhase(dt float64, target cp.Vector, emit ParticleFunc) {
	t := &b.tuning

	switch p := b.Phase.(type) {
	case *Dash:
		p.Elapsed += dt
		b.Velocity = p.Direction.Mult(t.DashSpeed)
		if b.rng.Float64() < t.DashParticleChance {
			b.emit(emit, b.Position, 3, colornames.Orangered, 0.4)
		}
		if p.Elapsed >= t.DashDuration {
			b.Velocity = cp.Vector{}
			b.enterPhase(PhaseIdle, target)
		}

	case *Teleport:
		b.Velocity = cp.Vector{}
		switch {
		case b.PhaseTimer < t.TeleportChargeTime:
			if b.rng.Float64() < t.TeleportParticleChance {
				b.emit(emit, b.Position, 2, colornames.Mediumpurple, 0.5)
			}
		case p.Stage == TeleportCharging:
			// A long tick can step past the blink window; relocation still
			// happens exactly once.
			b.relocate(target, emit)
			p.Stage = TeleportBlink
		case p.Stage == TeleportBlink && b.PhaseTimer >= t.TeleportBlinkEnd:
			p.Stage = TeleportRecovering
		}
		if b.PhaseTimer >= t.TeleportDuration {
			b.TeleportCooldown = t.TeleportCooldown
			b.enterPhase(PhaseIdle, target)
		}

	case *Breath:
		b.Velocity = cp.Vector{}
		p.Elapsed += dt
		p.Direction = angleTo(b.Segments[0].Position, target, p.Direction)
		if b.rng.Float64() < t.BreathParticleChance {
			mouth := b.Segments[0].Position.Add(cp.ForAngle(p.Direction).Mult(b.Size))
			b.emit(emit, mouth, 2, colornames.Orange, 0.6)
		}
		if p.Elapsed >= t.BreathDuration {
			b.enterPhase(PhaseIdle, target)
		}

	case *Coil:
		angle := b.PhaseTimer * t.CoilAngularRate
		p.Anchor = target.Add(cp.ForAngle(angle).Mult(t.CoilRadius))
		b.steerToward(p.Anchor, t.BaseSpeed*t.CoilSpeedFactor, dt)
		if b.PhaseTimer >= t.CoilDuration {
			b.enterPhase(PhaseIdle, target)
		}

	case *TendrilStrike:
		if b.PhaseTimer < t.StrikeFreezeTime {
			b.Velocity = cp.Vector{}
		} else {
			b.steerIdle(target, dt)
		}
		if !p.Spawned && b.PhaseTimer > t.StrikeSpawnTime {
			b.spawnTendrils(emit)
			p.Spawned = true
		}
		if b.PhaseTimer >= t.StrikeDuration {
			b.Tendrils = b.Tendrils[:0]
			b.enterPhase(PhaseIdle, target)
		}

	default:
		if _, ok := b.Phase.(*Idle); !ok {
			b.Phase = &Idle{}
		}
		b.steerIdle(target, dt)
		if b.PhaseTimer < t.IdleDecisionTime {
			return
		}
		next := t.SelectPhase(b.rng.Float64(), b.TeleportCooldown <= 0)
		b.enterPhase(next, target)
	}
}

func (b *Boss) enterPhase(kind PhaseKind, target cp.Vector) {
	prev := b.PhaseKind()
	b.PhaseTimer = 0

	switch kind {
	case PhaseDash:
		dir, _ := unit(target.Sub(b.Position))
		b.Phase = &Dash{Direction: dir}
		b.Velocity = dir.Mult(b.tuning.DashSpeed)
	case PhaseTeleport:
		b.Phase = &Teleport{Stage: TeleportCharging}
		b.Velocity = cp.Vector{}
	case PhaseBreath:
		b.Phase = &Breath{Direction: angleTo(b.Segments[0].Position, target, b.Segments[0].Rotation)}
		b.Velocity = cp.Vector{}
	case PhaseCoil:
		b.Phase = &Coil{Anchor: target.Add(cp.Vector{X: b.tuning.CoilRadius})}
	case PhaseTendrilStrike:
		b.Phase = &TendrilStrike{}
		b.Velocity = cp.Vector{}
	default:
		b.Phase = &Idle{}
	}

	b.log.Debug("serpent: phase change", "from", prev.String(), "to", b.PhaseKind().String())
}

// relocate moves the boss to a random point around target and snaps the whole
// body there. This is the only place the chain is hard-reset.
func (b *Boss) relocate(target cp.Vector, emit ParticleFunc) {
	t := &b.tuning
	angle := b.rng.Float64() * 2 * math.Pi
	dist := t.TeleportMinDistance + b.rng.Float64()*(t.TeleportMaxDistance-t.TeleportMinDistance)

	b.Position = target.Add(cp.ForAngle(angle).Mult(dist))
	b.emit(emit, b.Position, 30, colornames.Violet, 0.8)
	b.snapChain(b.Position)
}

// steerIdle closes in on a distant target and circles a near one.
func (b *Boss) steerIdle(target cp.Vector, dt float64) {
	t := &b.tuning
	delta := target.Sub(b.Position)
	dir, dist := unit(delta)
	if dist == 0 {
		b.Velocity = cp.Vector{}
		return
	}
	if dist > t.IdleChaseRange {
		b.Velocity = dir.Mult(t.BaseSpeed * t.IdleChaseFactor)
		return
	}
	b.Velocity = dir.Perp().Mult(t.BaseSpeed * t.IdleOrbitFactor)
}

// steerToward heads for point at speed without overshooting it this tick.
func (b *Boss) steerToward(point cp.Vector, speed, dt float64) {
	delta := point.Sub(b.Position)
	dir, dist := unit(delta)
	if dist == 0 {
		b.Velocity = cp.Vector{}
		return
	}
	if frames := dt * FrameRate; frames > 0 && speed*frames > dist {
		b.Velocity = delta.Mult(1 / frames)
		return
	}
	b.Velocity = dir.Mult(speed)
}

// unit returns v normalised and its length. A zero vector stays zero.
func unit(v cp.Vector) (cp.Vector, float64) {
	l := v.Length()
	if l == 0 {
		return cp.Vector{}, 0
	}
	return v.Mult(1 / l), l
}
