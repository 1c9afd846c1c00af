package telemetry

import (
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Summary aggregates samples over a run: how often each phase was entered and
// how the body spacing behaved once spawned.
type Summary struct {
	Entries map[string]int
	Ticks   int

	spacing []float64
	last    string
}

func NewSummary() *Summary {
	return &Summary{Entries: map[string]int{}}
}

// Observe folds one sample into the summary.
func (s *Summary) Observe(sample Sample) {
	s.Ticks++
	if sample.Spawned {
		s.spacing = append(s.spacing, sample.MeanSpacing)
	}
	if sample.Phase != s.last {
		if s.last != "" {
			s.Entries[sample.Phase]++
		}
		s.last = sample.Phase
	}
}

// MeanSpacing returns the average of per-tick mean spacing after spawn and
// its standard deviation.
func (s *Summary) MeanSpacing() (mean, std float64) {
	if len(s.spacing) == 0 {
		return 0, 0
	}
	return stat.MeanStdDev(s.spacing, nil)
}

// LogValue implements slog.LogValuer for structured logging.
func (s *Summary) LogValue() slog.Value {
	names := make([]string, 0, len(s.Entries))
	for name := range s.Entries {
		names = append(names, name)
	}
	sort.Strings(names)

	mean, std := s.MeanSpacing()
	attrs := []slog.Attr{
		slog.Int("ticks", s.Ticks),
		slog.Float64("spacing_mean", mean),
		slog.Float64("spacing_std", std),
	}
	for _, name := range names {
		attrs = append(attrs, slog.Int("enter_"+name, s.Entries[name]))
	}
	return slog.GroupValue(attrs...)
}
