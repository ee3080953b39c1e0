package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdatePlayer turns this frame's input into movement, aim and combat
// actions. Must run after UpdateInput.
func UpdatePlayer(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)
	for _, e := range entriesWith(ecs.World, components.Player) {
		ApplyPlayerInput(e, input)
	}
}

// ApplyPlayerInput drives one player from an input snapshot. Dead players
// ignore input; locked out players can aim and upgrade but not act.
func ApplyPlayerInput(e *donburi.Entry, input *components.InputData) {
	if e.HasComponent(components.Death) {
		return
	}
	player := components.Player.Get(e)
	player.Aim = input.Cursor

	locked := e.HasComponent(components.Lockout) && components.Lockout.Get(e).Locked()
	if !locked {
		movePlayer(e, player, input)
	}

	if e.HasComponent(components.Combat) {
		fighter := components.Combat.Get(e)
		if !locked {
			if input.Action(cfg.ActionAttack).JustPressed {
				fighter.Attack()
			} else if input.Action(cfg.ActionBlock).JustPressed {
				fighter.Block()
			}
		}
		if applyUpgrades(fighter, input) {
			SaveCombatant(e)
		}
	}
}

func movePlayer(e *donburi.Entry, player *components.PlayerData, input *components.InputData) {
	dx := 0.0
	if input.Action(cfg.ActionMoveLeft).Pressed {
		dx -= player.MoveSpeed
	}
	if input.Action(cfg.ActionMoveRight).Pressed {
		dx += player.MoveSpeed
	}
	if dx == 0 {
		return
	}
	if dx > 0 {
		player.Direction = 1
	} else {
		player.Direction = -1
	}

	obj := components.Object.Get(e)
	if check := obj.Check(dx, 0, tags.ResolvSolid); check != nil {
		return
	}
	obj.X += dx
	obj.Update()
}

func applyUpgrades(fighter *components.CombatData, input *components.InputData) bool {
	upgraded := false
	if input.Action(cfg.ActionUpgradeAttack).JustPressed {
		fighter.IncreaseAttack(cfg.Combat.AttackStep)
		upgraded = true
	}
	if input.Action(cfg.ActionUpgradeAttackSpeed).JustPressed {
		fighter.IncreaseAttackSpeed(cfg.Combat.AttackSpeedStep)
		upgraded = true
	}
	if input.Action(cfg.ActionUpgradeParryDuration).JustPressed {
		fighter.IncreaseParryBonusDuration(cfg.Combat.ParryBonusDurationStep)
		upgraded = true
	}
	if input.Action(cfg.ActionUpgradeParryMultiplier).JustPressed {
		fighter.IncreaseParryBonusMultiplier(cfg.Combat.ParryBonusMultiplierStep)
		upgraded = true
	}
	return upgraded
}
