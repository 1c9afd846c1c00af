package serpent

import (
	"math"

	"github.com/jakecoffman/cp"
)

// HitTest reports whether a circle at point with the given radius overlaps any
// body segment or any tendril inside its hit window. It never reports a hit
// before the boss has fully spawned and has no side effects.
func (b *Boss) HitTest(point cp.Vector, radius float64) bool {
	if _, ok := b.HitSegment(point, radius); ok {
		return true
	}
	_, ok := b.HitTendril(point, radius)
	return ok
}

// HitSegment returns the index of the first body segment overlapping the
// circle.
func (b *Boss) HitSegment(point cp.Vector, radius float64) (int, bool) {
	if b == nil || !b.FullySpawned {
		return -1, false
	}
	for i := range b.Segments {
		seg := &b.Segments[i]
		if point.Distance(seg.Position) < seg.Size/2+radius {
			return i, true
		}
	}
	return -1, false
}

// HitTendril returns the first live tendril overlapping the circle. Tendrils
// only collide while their progress is strictly inside the hit window.
func (b *Boss) HitTendril(point cp.Vector, radius float64) (TendrilAttack, bool) {
	if b == nil || !b.FullySpawned {
		return TendrilAttack{}, false
	}
	for _, td := range b.Tendrils {
		if !b.tuning.inHitWindow(td.Progress) {
			continue
		}
		if distanceToSegment(point, td.Start, td.Tip()) < td.Width/2+radius {
			return td, true
		}
	}
	return TendrilAttack{}, false
}

func distanceToSegment(p, a, b cp.Vector) float64 {
	ab := b.Sub(a)
	l2 := ab.LengthSq()
	if l2 == 0 {
		return p.Distance(a)
	}
	t := math.Max(0, math.Min(1, p.Sub(a).Dot(ab)/l2))
	return p.Distance(a.Add(ab.Mult(t)))
}
