package entity

import (
	"fmt"

	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"github.com/jblob-devs/rymech-sub001/prefabs"
)

func NewPlayer(w *ecs.World, spec *prefabs.PlayerSpec, x, y float64) (ecs.Entity, error) {
	if spec == nil {
		return 0, fmt.Errorf("player: nil spec")
	}

	player := ecs.CreateEntity(w)
	if err := ecs.Add(w, player, component.PlayerTagComponent.Kind(), &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent.Kind(), &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}

	speed := spec.Speed
	if speed <= 0 {
		speed = 240
	}
	radius := spec.Radius
	if radius <= 0 {
		radius = 12
	}
	if err := ecs.Add(w, player, component.PlayerComponent.Kind(), &component.Player{
		Speed:       speed,
		Radius:      radius,
		IFrames:     spec.IFrames,
		DebugDamage: spec.DebugDamage,
	}); err != nil {
		return 0, fmt.Errorf("player: add player component: %w", err)
	}

	if err := ecs.Add(w, player, component.HealthComponent.Kind(), component.NewHealth(spec.Health)); err != nil {
		return 0, fmt.Errorf("player: add health: %w", err)
	}

	return player, nil
}
