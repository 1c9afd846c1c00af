package serpent

import (
	"math"

	"github.com/jakecoffman/cp"
	"golang.org/x/image/colornames"
)

// spawnTendrils fans a batch of tendrils out of the current position at evenly
// spaced, jittered angles.
func (b *Boss) spawnTendrils(emit ParticleFunc) {
	t := &b.tuning
	spread := t.TendrilMax - t.TendrilMin + 1
	n := t.TendrilMin + int(b.rng.Float64()*float64(spread))
	if n > t.TendrilMax {
		n = t.TendrilMax
	}

	origin := b.Position
	for k := 0; k < n; k++ {
		angle := float64(k)/float64(n)*2*math.Pi + (b.rng.Float64()*2-1)*t.TendrilJitter
		length := t.TendrilMinLength + b.rng.Float64()*(t.TendrilMaxLength-t.TendrilMinLength)

		b.nextTendrilID++
		b.Tendrils = append(b.Tendrils, TendrilAttack{
			ID:     b.nextTendrilID,
			Start:  origin,
			End:    origin.Add(cp.ForAngle(angle).Mult(length)),
			Damage: t.TendrilDamage,
			Width:  t.TendrilWidth,
		})
	}
	b.emit(emit, origin, n*4, colornames.Darkolivegreen, 0.7)
}

// updateTendrils advances reveal progress and drops finished tendrils.
func (b *Boss) updateTendrils(dt float64) {
	live := b.Tendrils[:0]
	for _, td := range b.Tendrils {
		td.Progress += dt * b.tuning.TendrilRevealRate
		if td.Progress >= 1 {
			continue
		}
		live = append(live, td)
	}
	b.Tendrils = live
}
