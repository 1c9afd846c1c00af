// Package serpent simulates the serpent boss: the spawn unfurl, the body chain
// that trails the head, the combat phase machine, the tendril ground hazards
// and point hit tests against all of them.
//
// A Boss is owned by a single caller that drives it with one Update per
// simulation tick. Nothing in this package blocks, spawns goroutines or
// applies damage.
package serpent

import (
	"image/color"
	"io"
	"log/slog"
	"math"
	"time"

	"github.com/jakecoffman/cp"
)

const (
	// SegmentCount is the number of body segments, head included.
	SegmentCount = 24
	// FrameRate converts per-frame velocities into per-second motion.
	FrameRate = 60.0

	DefaultSize   = 60.0
	DefaultHealth = 5000.0
)

// ParticleFunc receives fire-and-forget particle bursts for a rendering
// layer. A panicking callback is recovered and logged.
type ParticleFunc func(pos cp.Vector, count int, c color.RGBA, lifetime float64)

// Segment is one piece of the body. Segment 0 is the head.
type Segment struct {
	Position cp.Vector
	// Target is only meaningful for the head.
	Target   cp.Vector
	Rotation float64
	Size     float64
	// Offset places the segment along the unfurled line during spawn.
	Offset cp.Vector
}

// TendrilAttack is a line hazard revealed from Start toward End.
type TendrilAttack struct {
	ID       uint64
	Start    cp.Vector
	End      cp.Vector
	Progress float64
	Damage   float64
	Width    float64
}

// Tip returns the currently revealed endpoint.
func (t TendrilAttack) Tip() cp.Vector {
	return t.Start.Lerp(t.End, math.Min(t.Progress, 1))
}

// Boss is the serpent aggregate. Renderers and damage systems read the
// exported fields; only Update mutates them, except Health, which belongs to
// whoever applies damage.
type Boss struct {
	Position cp.Vector
	Velocity cp.Vector
	Size     float64

	Health    float64
	MaxHealth float64

	Segments [SegmentCount]Segment

	Phase            Phase
	PhaseTimer       float64
	TeleportCooldown float64

	Tendrils []TendrilAttack

	SpawnProgress float64
	FullySpawned  bool

	tuning        Tuning
	rng           Rand
	log           *slog.Logger
	nextTendrilID uint64
}

type Option func(*Boss)

func WithRand(r Rand) Option {
	return func(b *Boss) {
		if r != nil {
			b.rng = r
		}
	}
}

func WithTuning(t Tuning) Option {
	return func(b *Boss) { b.tuning = t.WithDefaults() }
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Boss) {
		if l != nil {
			b.log = l
		}
	}
}

// WithHealth sets both the current and maximum health.
func WithHealth(max float64) Option {
	return func(b *Boss) {
		if max > 0 {
			b.Health = max
			b.MaxHealth = max
		}
	}
}

func WithSize(size float64) Option {
	return func(b *Boss) {
		if size > 0 {
			b.Size = size
		}
	}
}

// New builds a boss folded at spawn, ready to unfurl. The body is laid out
// along +Y from the head through each segment's Offset.
func New(spawn cp.Vector, opts ...Option) *Boss {
	b := &Boss{
		Position:  spawn,
		Size:      DefaultSize,
		Health:    DefaultHealth,
		MaxHealth: DefaultHealth,
		Phase:     &Idle{},
		tuning:    DefaultTuning(),
		log:       slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(b)
	}
	if b.rng == nil {
		b.rng = NewRand(time.Now().UnixNano())
	}

	for i := range b.Segments {
		taper := 1 - b.tuning.SegmentTaper*float64(i)/float64(SegmentCount)
		b.Segments[i] = Segment{
			Position: spawn,
			Target:   spawn,
			Rotation: -math.Pi / 2,
			Size:     b.Size * taper,
			Offset:   cp.Vector{Y: float64(i) * b.tuning.SegmentSpacing},
		}
	}
	return b
}

// Tuning returns the numbers the boss currently runs on.
func (b *Boss) Tuning() Tuning {
	return b.tuning
}

// SetTuning swaps the tuning of a live boss. Segment count and spawn offsets
// stay as built.
func (b *Boss) SetTuning(t Tuning) {
	if b == nil {
		return
	}
	b.tuning = t.WithDefaults()
}

// PhaseKind reports the active phase, treating a missing phase as idle.
func (b *Boss) PhaseKind() PhaseKind {
	if b == nil || b.Phase == nil {
		return PhaseIdle
	}
	return b.Phase.Kind()
}

// Head returns the head segment.
func (b *Boss) Head() Segment {
	return b.Segments[0]
}

// Update advances the simulation by one tick of dt seconds toward target.
// dt is clamped to [0, Tuning.MaxStep]; NaN counts as zero.
func (b *Boss) Update(dt float64, target cp.Vector, emit ParticleFunc) {
	if b == nil {
		return
	}
	dt = b.clampStep(dt)

	if !b.FullySpawned {
		b.updateSpawn(dt)
		return
	}

	if b.TeleportCooldown > 0 {
		b.TeleportCooldown -= dt
	}
	b.PhaseTimer += dt

	b.updatePhase(dt, target, emit)
	b.Position = b.Position.Add(b.Velocity.Mult(dt * FrameRate))

	b.updateChain(dt)
	b.updateTendrils(dt)
}

func (b *Boss) clampStep(dt float64) float64 {
	if math.IsNaN(dt) || dt < 0 {
		return 0
	}
	if dt > b.tuning.MaxStep {
		return b.tuning.MaxStep
	}
	return dt
}

func (b *Boss) emit(fn ParticleFunc, pos cp.Vector, count int, c color.RGBA, lifetime float64) {
	if fn == nil || count <= 0 {
		return
	}
	defer func() {
		if r := recover(); r != nil {
			b.log.Warn("serpent: particle callback panicked", "panic", r, "phase", b.PhaseKind().String())
		}
	}()
	fn(pos, count, c, lifetime)
}
