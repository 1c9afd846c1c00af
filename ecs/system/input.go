package system

import (
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
)

// InputSource yields the current frame's input.
type InputSource interface {
	Sample() component.Input
}

// InputSystem copies one input sample per frame into every Input component.
type InputSystem struct {
	Source InputSource
}

func NewInputSystem(src InputSource) *InputSystem {
	return &InputSystem{Source: src}
}

func (i *InputSystem) Update(w *ecs.World) {
	if w == nil || i.Source == nil {
		return
	}

	sample := i.Source.Sample()
	ecs.ForEach(w, component.InputComponent.Kind(), func(_ ecs.Entity, input *component.Input) {
		*input = sample
	})
}
