package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/systems/binding"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func UpdateEnemies(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()

	// Get player for AI decisions
	playerEntry, _ := components.Player.First(ecs.World)
	if playerEntry != nil && playerEntry.HasComponent(components.Death) {
		playerEntry = nil
	}

	for _, e := range entriesWith(ecs.World, tags.Enemy) {
		if e.HasComponent(components.Death) {
			continue
		}
		enemy := components.Enemy.Get(e)
		enemy.AttackCooldown = countdown(enemy.AttackCooldown, dt)

		if e.HasComponent(components.HealthBar) {
			tickHealthBar(components.HealthBar.Get(e).Bar, dt)
		}

		// No AI if no player
		if playerEntry == nil || enemy.TypeConfig == nil {
			continue
		}
		if enemy.Mover != nil {
			enemy.Mover.Move(enemy.TypeConfig.ChaseSpeed)
		}
		tryContactAttack(e, enemy, playerEntry)
	}
}

func tickHealthBar(bar *components.Bar, dt float64) {
	if bar == nil || bar.TimeToLive <= 0 {
		return
	}
	bar.TimeToLive = countdown(bar.TimeToLive, dt)
	if bar.TimeToLive == 0 {
		bar.Visible = false
	}
}

// tryContactAttack hits the player when it stands within the enemy's reach.
func tryContactAttack(e *donburi.Entry, enemy *components.EnemyData, player *donburi.Entry) {
	if enemy.AttackCooldown > 0 {
		return
	}
	reachDist := enemy.TypeConfig.ContactRange
	obj := components.Object.Get(e)

	facing := 1.0
	if enemy.Mover != nil {
		facing = enemy.Mover.Facing()
	}
	check := obj.Check(facing*reachDist, 0, tags.ResolvPlayer)
	if check == nil {
		return
	}

	reach := obj.Bounds().Grow(reachDist)
	for _, o := range check.Objects {
		if o.Data != player {
			continue
		}
		target := components.Object.Get(player).Bounds()
		if !reach.Overlaps(target) {
			return
		}
		binding.AddDamage(player, enemy.TypeConfig.ContactDamage)
		enemy.AttackCooldown = enemy.TypeConfig.ContactCooldown
		return
	}
}
