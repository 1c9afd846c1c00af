package entity

import (
	"fmt"

	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
	"github.com/jblob-devs/rymech-sub001/prefabs"
)

func NewCamera(w *ecs.World, spec prefabs.CameraSpec, x, y float64) (ecs.Entity, error) {
	camera := ecs.CreateEntity(w)
	if err := ecs.Add(w, camera, component.CameraTagComponent.Kind(), &component.CameraTag{}); err != nil {
		return 0, fmt.Errorf("camera: add camera tag: %w", err)
	}

	if err := ecs.Add(w, camera, component.TransformComponent.Kind(), &component.Transform{X: x, Y: y}); err != nil {
		return 0, fmt.Errorf("camera: add transform: %w", err)
	}

	zoom := spec.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	smooth := spec.Smoothness
	if smooth <= 0 {
		smooth = 0.15
	}
	if err := ecs.Add(w, camera, component.CameraComponent.Kind(), &component.Camera{
		Zoom:       zoom,
		Smoothness: smooth,
	}); err != nil {
		return 0, fmt.Errorf("camera: add camera component: %w", err)
	}

	return camera, nil
}
