package config

import "github.com/hajimehoshi/ebiten/v2"

// ActionID represents a logical game action
type ActionID int

const (
	ActionNone ActionID = iota
	ActionMoveLeft
	ActionMoveRight
	ActionAttack
	ActionBlock
	ActionUpgradeAttack
	ActionUpgradeAttackSpeed
	ActionUpgradeParryDuration
	ActionUpgradeParryMultiplier
	ActionSpawnEnemy
	ActionToggleHurtboxes
	ActionCount // Must be last - used for array sizing
)

// InputBinding represents a single key, mouse or pad binding for an action
type InputBinding struct {
	Keys                   []ebiten.Key
	MouseButtons           []ebiten.MouseButton
	StandardGamepadButtons []ebiten.StandardGamepadButton
}

// InputConfig holds all input mappings
type InputConfig struct {
	Bindings map[ActionID]InputBinding
	// Gamepad right stick aims this many pixels away from the player
	StickAimDistance float64
	AnalogDeadzone   float64
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		StickAimDistance: 64,
		AnalogDeadzone:   0.25,
		Bindings: map[ActionID]InputBinding{
			ActionMoveLeft: {
				Keys: []ebiten.Key{ebiten.KeyLeft, ebiten.KeyA},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftLeft,
				},
			},
			ActionMoveRight: {
				Keys: []ebiten.Key{ebiten.KeyRight, ebiten.KeyD},
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonLeftRight,
				},
			},
			ActionAttack: {
				Keys:         []ebiten.Key{ebiten.KeyJ},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonLeft},
				// X / Square button
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonRightLeft,
				},
			},
			ActionBlock: {
				Keys:         []ebiten.Key{ebiten.KeyK},
				MouseButtons: []ebiten.MouseButton{ebiten.MouseButtonRight},
				// Right bumper
				StandardGamepadButtons: []ebiten.StandardGamepadButton{
					ebiten.StandardGamepadButtonFrontTopRight,
				},
			},
			ActionUpgradeAttack:          {Keys: []ebiten.Key{ebiten.Key1}},
			ActionUpgradeAttackSpeed:     {Keys: []ebiten.Key{ebiten.Key2}},
			ActionUpgradeParryDuration:   {Keys: []ebiten.Key{ebiten.Key3}},
			ActionUpgradeParryMultiplier: {Keys: []ebiten.Key{ebiten.Key4}},
			ActionSpawnEnemy:             {Keys: []ebiten.Key{ebiten.KeyE}},
			ActionToggleHurtboxes:        {Keys: []ebiten.Key{ebiten.KeyF3}},
		},
	}
}
