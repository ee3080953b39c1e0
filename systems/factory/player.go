package factory

import (
	"github.com/automoto/riposte/archetypes"
	"github.com/automoto/riposte/combat"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/shared/gamemath"
	"github.com/automoto/riposte/systems/binding"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// PlayerSettings builds the combat tuning of the player from config.
func PlayerSettings() combat.Settings {
	s := combat.DefaultSettings()
	s.MaxComboTime = cfg.Player.MaxComboTime
	s.MaxBlockCooldown = cfg.Player.MaxBlockCooldown
	s.CenterOffset = gamemath.Vec2{X: cfg.Player.CenterOffsetX, Y: cfg.Player.CenterOffsetY}
	return s
}

// CreatePlayer spawns the player with its top-left corner at x, y. The space
// must exist already so the combat engine can query it.
func CreatePlayer(ecs *ecs.ECS, x, y float64, stats combat.Stats) *donburi.Entry {
	player := archetypes.Player.Spawn(ecs)

	obj := newBody(player, x, y, cfg.Player.CollisionWidth, cfg.Player.CollisionHeight, tags.ResolvPlayer)
	addToSpace(ecs, obj)

	center := components.ObjectData{Object: obj}.Center()
	components.Player.SetValue(player, components.PlayerData{
		Direction: 1,
		Aim:       center.Add(gamemath.Vec2{X: 1}),
		MoveSpeed: cfg.Player.MoveSpeed,
	})
	components.Health.SetValue(player, components.HealthData{
		Damageable: combat.NewHealth(cfg.Player.Health, nil),
	})

	env := binding.NewCombatEnv(ecs, player, func(p gamemath.Vec2) {
		SpawnParryText(ecs, p)
	})
	components.Combat.SetValue(player, components.CombatData{
		PlayerCombat: combat.NewPlayerCombat(cfg.Definitions(), PlayerSettings(), stats, env),
	})

	return player
}
