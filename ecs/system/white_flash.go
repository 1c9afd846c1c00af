package system

import (
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
)

// WhiteFlashSystem toggles the blink state of hit entities and removes the
// flash once its frames run out.
type WhiteFlashSystem struct{}

func NewWhiteFlashSystem() *WhiteFlashSystem { return &WhiteFlashSystem{} }

func (s *WhiteFlashSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	ecs.ForEach(w, component.WhiteFlashComponent.Kind(), func(e ecs.Entity, wf *component.WhiteFlash) {
		if wf.Interval <= 0 {
			wf.Interval = 1
		}
		wf.Timer++
		if wf.Timer >= wf.Interval {
			wf.Timer = 0
			wf.On = !wf.On
			wf.Frames -= wf.Interval
		}
		if wf.Frames <= 0 {
			ecs.Remove(w, e, component.WhiteFlashComponent.Kind())
		}
	})
}

// Flash starts or extends a white flash on e.
func Flash(w *ecs.World, e ecs.Entity, frames, interval int) {
	if frames <= 0 {
		return
	}
	if wf, ok := ecs.Get(w, e, component.WhiteFlashComponent.Kind()); ok {
		if frames > wf.Frames {
			wf.Frames = frames
		}
		return
	}
	_ = ecs.Add(w, e, component.WhiteFlashComponent.Kind(), &component.WhiteFlash{Frames: frames, Interval: interval, On: true})
}
