package serpent

import "math"

func (b *Boss) updateSpawn(dt float64) {
	b.SpawnProgress += b.tuning.SpawnRate * dt
	b.layoutSpawn()
	if b.SpawnProgress >= 1 {
		b.FullySpawned = true
	}
}

// layoutSpawn places every segment from the current progress and head
// position alone, so the layout never depends on earlier ticks.
func (b *Boss) layoutSpawn() {
	p := math.Min(b.SpawnProgress, 1)
	head := b.Segments[0].Position
	for i := range b.Segments {
		seg := &b.Segments[i]
		seg.Position = head.Add(seg.Offset.Mult(p))
	}
}
