// Package telemetry records per-tick serpent state for offline inspection.
package telemetry

import (
	"log/slog"

	"github.com/jblob-devs/rymech-sub001/serpent"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Sample is one tick of boss state, written as one CSV row.
type Sample struct {
	Tick             int     `csv:"tick"`
	Time             float64 `csv:"time"`
	Phase            string  `csv:"phase"`
	PhaseTimer       float64 `csv:"phase_timer"`
	X                float64 `csv:"x"`
	Y                float64 `csv:"y"`
	HeadX            float64 `csv:"head_x"`
	HeadY            float64 `csv:"head_y"`
	MeanSpacing      float64 `csv:"mean_spacing"`
	MaxSpacing       float64 `csv:"max_spacing"`
	Tendrils         int     `csv:"tendrils"`
	TeleportCooldown float64 `csv:"teleport_cooldown"`
	Health           float64 `csv:"health"`
	Spawned          bool    `csv:"spawned"`
}

// Capture reads a sample from b without mutating it.
func Capture(tick int, simTime float64, b *serpent.Boss) Sample {
	spacing := make([]float64, serpent.SegmentCount-1)
	for i := 1; i < serpent.SegmentCount; i++ {
		spacing[i-1] = b.Segments[i].Position.Distance(b.Segments[i-1].Position)
	}
	head := b.Head().Position

	return Sample{
		Tick:             tick,
		Time:             simTime,
		Phase:            b.PhaseKind().String(),
		PhaseTimer:       b.PhaseTimer,
		X:                b.Position.X,
		Y:                b.Position.Y,
		HeadX:            head.X,
		HeadY:            head.Y,
		MeanSpacing:      stat.Mean(spacing, nil),
		MaxSpacing:       floats.Max(spacing),
		Tendrils:         len(b.Tendrils),
		TeleportCooldown: b.TeleportCooldown,
		Health:           b.Health,
		Spawned:          b.FullySpawned,
	}
}

// LogValue implements slog.LogValuer for structured logging.
func (s Sample) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("tick", s.Tick),
		slog.Float64("time", s.Time),
		slog.String("phase", s.Phase),
		slog.Float64("x", s.X),
		slog.Float64("y", s.Y),
		slog.Float64("mean_spacing", s.MeanSpacing),
		slog.Float64("max_spacing", s.MaxSpacing),
		slog.Int("tendrils", s.Tendrils),
		slog.Bool("spawned", s.Spawned),
	)
}
