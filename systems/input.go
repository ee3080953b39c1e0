package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/shared/gamemath"
	"github.com/automoto/riposte/systems/factory"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// Reusable slice for gamepad IDs to avoid allocations
var gamepadIDs []ebiten.GamepadID

// UpdateInput polls raw input and updates the InputComponent.
// Must run BEFORE UpdatePlayer in the system order.
func UpdateInput(ecs *ecs.ECS) {
	input := getOrCreateInput(ecs)

	// Swap buffers: current becomes previous, then zero out current
	input.Previous = input.Current
	input.Current = [cfg.ActionCount]bool{}

	gamepadIDs = ebiten.AppendGamepadIDs(gamepadIDs[:0])

	for actionID, binding := range cfg.Input.Bindings {
		for _, key := range binding.Keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
		for _, btn := range binding.MouseButtons {
			if ebiten.IsMouseButtonPressed(btn) {
				input.Current[actionID] = true
			}
		}
		for _, gpID := range gamepadIDs {
			if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
				continue
			}
			for _, btn := range binding.StandardGamepadButtons {
				if ebiten.IsStandardGamepadButtonPressed(gpID, btn) {
					input.Current[actionID] = true
				}
			}
		}
	}

	// The arena has no camera, so screen space is world space.
	x, y := ebiten.CursorPosition()
	input.Cursor = gamemath.Vec2{X: float64(x), Y: float64(y)}

	left, right, aim, aiming := getStickState(gamepadIDs)
	if left {
		input.Current[cfg.ActionMoveLeft] = true
	}
	if right {
		input.Current[cfg.ActionMoveRight] = true
	}
	if aiming {
		if playerEntry, ok := components.Player.First(ecs.World); ok {
			center := components.Object.Get(playerEntry).Center()
			input.Cursor = center.Add(aim.Scale(cfg.Input.StickAimDistance))
		}
	}
}

// getStickState reads the left stick for movement and the right stick for
// aim from all gamepads.
func getStickState(gamepads []ebiten.GamepadID) (left, right bool, aim gamemath.Vec2, aiming bool) {
	deadzone := cfg.Input.AnalogDeadzone

	for _, gpID := range gamepads {
		if !ebiten.IsStandardGamepadLayoutAvailable(gpID) {
			continue
		}

		horizontal := ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisLeftStickHorizontal)
		if horizontal < -deadzone {
			left = true
		}
		if horizontal > deadzone {
			right = true
		}

		stick := gamemath.Vec2{
			X: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickHorizontal),
			Y: ebiten.StandardGamepadAxisValue(gpID, ebiten.StandardGamepadAxisRightStickVertical),
		}
		if stick.Length() > deadzone {
			aim = gamemath.Direction(gamemath.Vec2{}, stick)
			aiming = true
		}
	}

	return
}

// getOrCreateInput returns the singleton Input component, creating if needed
func getOrCreateInput(ecs *ecs.ECS) *components.InputData {
	return components.Input.Get(factory.CreateInput(ecs))
}
