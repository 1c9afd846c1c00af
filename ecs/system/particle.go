package system

import (
	"image/color"
	"math"
	"math/rand"

	"github.com/jakecoffman/cp"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
)

const maxParticlesPerBurst = 64

// SpawnParticles creates count short-lived particle entities at pos flying
// outward in random directions.
func SpawnParticles(w *ecs.World, rng *rand.Rand, pos cp.Vector, count int, c color.RGBA, lifetime float64) {
	if w == nil || rng == nil || count <= 0 || lifetime <= 0 {
		return
	}
	if count > maxParticlesPerBurst {
		count = maxParticlesPerBurst
	}
	frames := int(math.Ceil(lifetime/Step - 1e-9))

	for i := 0; i < count; i++ {
		dir := cp.ForAngle(rng.Float64() * 2 * math.Pi)
		speed := 40 + rng.Float64()*160

		e := w.CreateEntity()
		_ = ecs.Add(w, e, component.TransformComponent.Kind(), &component.Transform{X: pos.X, Y: pos.Y})
		_ = ecs.Add(w, e, component.VelocityComponent.Kind(), &component.Velocity{X: dir.X * speed, Y: dir.Y * speed})
		_ = ecs.Add(w, e, component.ParticleComponent.Kind(), &component.Particle{
			Color:    c,
			Size:     2 + rng.Float64()*3,
			Lifetime: lifetime,
			Drag:     2.5,
		})
		_ = ecs.Add(w, e, component.TTLComponent.Kind(), &component.TTL{Frames: frames})
	}
}

// ParticleSystem integrates particle motion. Expiry is left to TTLSystem.
type ParticleSystem struct{}

func NewParticleSystem() *ParticleSystem { return &ParticleSystem{} }

func (s *ParticleSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach3(w,
		component.ParticleComponent.Kind(),
		component.TransformComponent.Kind(),
		component.VelocityComponent.Kind(),
		func(_ ecs.Entity, p *component.Particle, t *component.Transform, v *component.Velocity) {
			t.X += v.X * Step
			t.Y += v.Y * Step
			damp := math.Max(0, 1-p.Drag*Step)
			v.X *= damp
			v.Y *= damp
			p.Age += Step
		})
}
