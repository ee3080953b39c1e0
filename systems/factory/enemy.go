package factory

import (
	"fmt"

	"github.com/automoto/riposte/ai"
	"github.com/automoto/riposte/archetypes"
	"github.com/automoto/riposte/combat"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/systems/binding"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateEnemy spawns a regular enemy of the named type. Boss types go
// through CreateBoss.
func CreateEnemy(ecs *ecs.ECS, x, y float64, enemyTypeName string) (*donburi.Entry, error) {
	enemyType, ok := cfg.EnemyType(enemyTypeName)
	if !ok {
		return nil, fmt.Errorf("unknown enemy type %q", enemyTypeName)
	}
	if enemyType.IsBoss {
		return CreateBoss(ecs, x, y, enemyTypeName)
	}

	enemy := archetypes.Enemy.Spawn(ecs, components.HealthBar)
	initEnemy(ecs, enemy, x, y, enemyType)

	bar := &components.Bar{}
	components.HealthBar.SetValue(enemy, components.HealthBarData{Bar: bar})
	components.Health.SetValue(enemy, components.HealthData{
		Damageable: combat.NewHealth(enemyType.Health, bar),
	})
	return enemy, nil
}

// CreateBoss spawns a boss and shows the boss bar for it.
func CreateBoss(ecs *ecs.ECS, x, y float64, enemyTypeName string) (*donburi.Entry, error) {
	enemyType, ok := cfg.EnemyType(enemyTypeName)
	if !ok || !enemyType.IsBoss {
		return nil, fmt.Errorf("%q is not a boss type", enemyTypeName)
	}

	boss := archetypes.Boss.Spawn(ecs)
	initEnemy(ecs, boss, x, y, enemyType)

	bar := bossBar(ecs, enemyType.Name)
	components.Health.SetValue(boss, components.HealthData{
		Damageable: combat.NewBossHealth(enemyType.Health, bar),
	})
	return boss, nil
}

func initEnemy(ecs *ecs.ECS, enemy *donburi.Entry, x, y float64, enemyType cfg.EnemyTypeConfig) {
	obj := newBody(enemy, x, y, enemyType.CollisionWidth, enemyType.CollisionHeight, tags.ResolvEnemy)
	addToSpace(ecs, obj)

	player := binding.FirstPlayer{World: ecs.World}
	body := binding.NewBody(enemy)
	var mover ai.Mover
	switch enemyType.Movement {
	case cfg.MovementSkeleton:
		mover = ai.NewSkeletonMovement(body, player, enemyType.StopDistance, cfg.Player.CollisionHeight)
	default:
		mover = ai.NewChaser(body, player)
	}

	components.Enemy.SetValue(enemy, components.EnemyData{
		TypeName:   enemyType.Name,
		TypeConfig: &enemyType,
		Mover:      mover,
	})
}

// bossBar returns the single boss bar, creating it on first use.
func bossBar(ecs *ecs.ECS, name string) *components.Bar {
	entry, ok := components.BossBar.First(ecs.World)
	if !ok {
		entry = archetypes.BossBar.Spawn(ecs)
		components.BossBar.SetValue(entry, components.BossBarData{Bar: &components.Bar{}})
	}
	data := components.BossBar.Get(entry)
	data.Name = name
	return data.Bar
}
