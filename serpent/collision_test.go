package serpent

import (
	"testing"

	"github.com/jakecoffman/cp"
)

// bareBoss returns a spawned boss whose body is parked far away with zero
// size so only the geometry under test can collide.
func bareBoss() *Boss {
	b := spawnedBoss(cp.Vector{}, fixedRand(0))
	for i := range b.Segments {
		b.Segments[i].Position = cp.Vector{X: -1e6, Y: -1e6}
		b.Segments[i].Size = 0
	}
	return b
}

func TestHitTestSegments(t *testing.T) {
	tests := []struct {
		name   string
		size   float64
		point  cp.Vector
		radius float64
		want   bool
	}{
		{"center_zero_size_zero_radius", 0, cp.Vector{X: 10, Y: 10}, 0, false},
		{"center_zero_size_tiny_radius", 0, cp.Vector{X: 10, Y: 10}, 0.001, true},
		{"inside_radius", 40, cp.Vector{X: 29, Y: 10}, 0, true},
		{"exact_boundary_is_miss", 40, cp.Vector{X: 30, Y: 10}, 0, false},
		{"test_radius_extends_reach", 40, cp.Vector{X: 35, Y: 10}, 6, true},
		{"outside", 40, cp.Vector{X: 40, Y: 10}, 5, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := bareBoss()
			b.Segments[5].Position = cp.Vector{X: 10, Y: 10}
			b.Segments[5].Size = tc.size

			if got := b.HitTest(tc.point, tc.radius); got != tc.want {
				t.Fatalf("HitTest(%v, %v) = %v, want %v", tc.point, tc.radius, got, tc.want)
			}
			if idx, ok := b.HitSegment(tc.point, tc.radius); ok != tc.want || (ok && idx != 5) {
				t.Fatalf("HitSegment = (%d, %v), want (5, %v)", idx, ok, tc.want)
			}
		})
	}
}

func TestHitTestTendrils(t *testing.T) {
	tests := []struct {
		name     string
		progress float64
		point    cp.Vector
		radius   float64
		want     bool
	}{
		{"before_window_on_line", 0.1, cp.Vector{X: 5}, 0, false},
		{"window_start_exclusive", 0.2, cp.Vector{X: 5}, 0, false},
		{"inside_window_on_line", 0.5, cp.Vector{X: 200}, 0, true},
		{"inside_window_within_width", 0.5, cp.Vector{X: 200, Y: 14}, 0, true},
		{"inside_window_width_boundary", 0.5, cp.Vector{X: 200, Y: 15}, 0, false},
		{"inside_window_radius_reach", 0.5, cp.Vector{X: 200, Y: 20}, 6, true},
		{"beyond_revealed_tip", 0.5, cp.Vector{X: 400}, 0, false},
		{"window_end_exclusive", 0.9, cp.Vector{X: 200}, 0, false},
		{"after_window", 0.95, cp.Vector{X: 200}, 0, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			b := bareBoss()
			b.Tendrils = []TendrilAttack{{
				ID:       7,
				Start:    cp.Vector{},
				End:      cp.Vector{X: 600},
				Progress: tc.progress,
				Damage:   20,
				Width:    30,
			}}

			if got := b.HitTest(tc.point, tc.radius); got != tc.want {
				t.Fatalf("HitTest(%v, %v) = %v, want %v", tc.point, tc.radius, got, tc.want)
			}
			td, ok := b.HitTendril(tc.point, tc.radius)
			if ok != tc.want || (ok && td.ID != 7) {
				t.Fatalf("HitTendril = (%d, %v), want (7, %v)", td.ID, ok, tc.want)
			}
		})
	}
}

func TestHitTestBeforeSpawn(t *testing.T) {
	b := New(cp.Vector{}, WithRand(fixedRand(0)))
	b.Tendrils = []TendrilAttack{{Start: cp.Vector{}, End: cp.Vector{X: 100}, Progress: 0.5, Width: 30}}

	for _, p := range []cp.Vector{{}, {X: 50}, {Y: 45}} {
		if b.HitTest(p, 100) {
			t.Fatalf("expected no hit at %v while unspawned", p)
		}
	}
}

func TestHitTestHasNoSideEffects(t *testing.T) {
	b := spawnedBoss(cp.Vector{}, fixedRand(0.8))
	for i := 0; i < 40; i++ {
		b.Update(tick, cp.Vector{X: 300}, nil)
	}
	before := *b
	beforeTendrils := append([]TendrilAttack(nil), b.Tendrils...)
	for i := 0; i < 100; i++ {
		b.HitTest(cp.Vector{X: float64(i * 7), Y: float64(i * 3)}, 10)
	}
	if b.Segments != before.Segments || b.Position != before.Position || b.PhaseTimer != before.PhaseTimer {
		t.Fatalf("hit test mutated the boss")
	}
	if len(b.Tendrils) != len(beforeTendrils) {
		t.Fatalf("hit test changed tendrils")
	}
	for i := range beforeTendrils {
		if b.Tendrils[i] != beforeTendrils[i] {
			t.Fatalf("hit test changed tendril %d", i)
		}
	}
}
