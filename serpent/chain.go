package serpent

import (
	"math"

	"github.com/jakecoffman/cp"
)

func (b *Boss) updateChain(dt float64) {
	t := &b.tuning

	head := &b.Segments[0]
	head.Target = b.Position
	toTarget := b.Position.Sub(head.Position)
	dist := toTarget.Length()
	if dist > t.HeadSnapDistance {
		step := math.Min(dist*t.HeadGain, t.HeadMaxSpeed) * dt
		if step >= dist {
			head.Position = b.Position
		} else {
			head.Position = head.Position.Add(toTarget.Mult(step / dist))
		}
		head.Rotation = toTarget.ToAngle()
	} else {
		head.Position = b.Position
	}

	// Followers ease toward a point one spacing behind their predecessor.
	// The spacing is a soft target: fast head motion stretches the body.
	for i := 1; i < SegmentCount; i++ {
		prev := b.Segments[i-1].Position
		seg := &b.Segments[i]

		delta := prev.Sub(seg.Position)
		d := delta.Length()
		if d == 0 {
			continue
		}
		anchor := prev.Sub(delta.Mult(t.SegmentSpacing / d))
		seg.Position = seg.Position.Lerp(anchor, t.FollowBlend)
		seg.Rotation = angleTo(seg.Position, prev, seg.Rotation)
	}
}

// snapChain hard-resets every segment onto pos.
func (b *Boss) snapChain(pos cp.Vector) {
	for i := range b.Segments {
		b.Segments[i].Position = pos
		b.Segments[i].Target = pos
	}
}

// angleTo returns the angle from a to b, or fallback when they coincide.
func angleTo(a, b cp.Vector, fallback float64) float64 {
	d := b.Sub(a)
	if d.X == 0 && d.Y == 0 {
		return fallback
	}
	return d.ToAngle()
}
