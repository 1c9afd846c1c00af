package system

import (
	"math/rand"

	"github.com/jblob-devs/rymech-sub001/common"
	"github.com/jblob-devs/rymech-sub001/ecs"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
)

// CameraSystem eases the camera toward the player and plays shake requests.
type CameraSystem struct {
	rng *rand.Rand
}

func NewCameraSystem(seed int64) *CameraSystem {
	return &CameraSystem{rng: rand.New(rand.NewSource(seed))}
}

func (cs *CameraSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}

	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	cam, _ := ecs.Get(w, camEntity, component.CameraComponent.Kind())
	camTransform, ok := ecs.Get(w, camEntity, component.TransformComponent.Kind())
	if !ok {
		return
	}

	if player, ok := ecs.First(w, component.PlayerTagComponent.Kind()); ok {
		if target, ok := ecs.Get(w, player, component.TransformComponent.Kind()); ok {
			smooth := cam.Smoothness
			if smooth <= 0 || smooth > 1 {
				smooth = 1
			}
			camTransform.X = common.Lerp(camTransform.X, target.X, smooth)
			camTransform.Y = common.Lerp(camTransform.Y, target.Y, smooth)
		}
	}

	if req, ok := ecs.Get(w, camEntity, component.CameraShakeRequestComponent.Kind()); ok {
		if req.Frames > cam.ShakeFrames {
			cam.ShakeFrames = req.Frames
		}
		if req.Intensity > cam.ShakeIntensity {
			cam.ShakeIntensity = req.Intensity
		}
		ecs.Remove(w, camEntity, component.CameraShakeRequestComponent.Kind())
	}

	if cam.ShakeFrames <= 0 {
		cam.OffsetX, cam.OffsetY = 0, 0
		cam.ShakeIntensity = 0
		return
	}
	cam.ShakeFrames--
	cam.OffsetX = (cs.rng.Float64()*2 - 1) * cam.ShakeIntensity
	cam.OffsetY = (cs.rng.Float64()*2 - 1) * cam.ShakeIntensity
}

// RequestShake queues a camera shake. Overlapping requests in one frame keep
// the longest and strongest.
func RequestShake(w *ecs.World, frames int, intensity float64) {
	if w == nil || frames <= 0 {
		return
	}
	camEntity, ok := ecs.First(w, component.CameraComponent.Kind())
	if !ok {
		return
	}
	if req, ok := ecs.Get(w, camEntity, component.CameraShakeRequestComponent.Kind()); ok {
		if frames > req.Frames {
			req.Frames = frames
		}
		if intensity > req.Intensity {
			req.Intensity = intensity
		}
		return
	}
	_ = ecs.Add(w, camEntity, component.CameraShakeRequestComponent.Kind(), &component.CameraShakeRequest{Frames: frames, Intensity: intensity})
}
