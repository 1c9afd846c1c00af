package render

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/jblob-devs/rymech-sub001/ecs/component"
)

const stickDeadzone = 0.2

// Keyboard samples WASD or the arrow keys for movement and K for the debug
// damage action. The first gamepad's left stick overrides the keys.
type Keyboard struct{}

func (Keyboard) Sample() component.Input {
	var in component.Input
	if ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
		in.MoveX -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
		in.MoveX += 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyW) || ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
		in.MoveY -= 1
	}
	if ebiten.IsKeyPressed(ebiten.KeyS) || ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
		in.MoveY += 1
	}
	in.DamageBoss = ebiten.IsKeyPressed(ebiten.KeyK)

	if gamepads := ebiten.GamepadIDs(); len(gamepads) > 0 {
		id := gamepads[0]
		lx := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickHorizontal)
		ly := ebiten.StandardGamepadAxisValue(id, ebiten.StandardGamepadAxisLeftStickVertical)
		if math.Hypot(lx, ly) > stickDeadzone {
			in.MoveX, in.MoveY = lx, ly
		}
		in.DamageBoss = in.DamageBoss || ebiten.IsStandardGamepadButtonPressed(id, ebiten.StandardGamepadButtonRightLeft)
	}
	return in
}
