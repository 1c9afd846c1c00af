package system

import (
	"log/slog"

	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"github.com/jblob-devs/rymech-sub001/telemetry"
)

// SerpentTraceSystem writes one telemetry sample per serpent per tick.
type SerpentTraceSystem struct {
	rec  *telemetry.Recorder
	log  *slog.Logger
	tick int
	err  error
}

func NewSerpentTraceSystem(rec *telemetry.Recorder, log *slog.Logger) *SerpentTraceSystem {
	return &SerpentTraceSystem{rec: rec, log: orDiscard(log)}
}

func (s *SerpentTraceSystem) Update(w *ecs.World) {
	if w == nil || s.rec == nil || s.err != nil {
		return
	}

	ecs.ForEach(w, component.SerpentBossComponent.Kind(), func(_ ecs.Entity, sb *component.SerpentBoss) {
		if sb.Boss == nil || s.err != nil {
			return
		}
		if err := s.rec.Record(telemetry.Capture(s.tick, float64(s.tick)*Step, sb.Boss)); err != nil {
			s.err = err
			s.log.Error("serpent: trace disabled", "err", err)
		}
	})
	s.tick++
}

// Close flushes buffered samples.
func (s *SerpentTraceSystem) Close() error {
	if s.err != nil {
		return s.err
	}
	return s.rec.Flush()
}
