package systems

import (
	"log"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/systems/factory"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateSandbox handles the debug keys: respawning enemies from the arena's
// spawn points and toggling the hurtbox overlay.
func UpdateSandbox(ecs *ecs.ECS) {
	inputEntry, ok := components.Input.First(ecs.World)
	if !ok {
		return
	}
	input := components.Input.Get(inputEntry)

	if input.Action(cfg.ActionToggleHurtboxes).JustPressed {
		cfg.Debug.ShowHurtboxes = !cfg.Debug.ShowHurtboxes
	}
	if input.Action(cfg.ActionSpawnEnemy).JustPressed {
		SpawnNextEnemy(ecs)
	}
}

// SpawnNextEnemy cycles through the arena's enemy spawns. A boss spawn is
// skipped while a boss is alive.
func SpawnNextEnemy(ecs *ecs.ECS) {
	arenaEntry, ok := components.Arena.First(ecs.World)
	if !ok {
		return
	}
	arena := components.Arena.Get(arenaEntry)
	spawns := arena.Layout.EnemySpawns
	bossAlive := len(entriesWith(ecs.World, tags.Boss)) > 0

	for range spawns {
		s := spawns[arena.NextSpawn%len(spawns)]
		arena.NextSpawn++

		enemyType, ok := cfg.EnemyType(s.Kind)
		if !ok || (enemyType.IsBoss && bossAlive) {
			continue
		}
		if _, err := factory.CreateEnemy(ecs, s.X, s.Y, s.Kind); err != nil {
			log.Printf("[arena] spawn %s: %v", s.Kind, err)
		}
		return
	}
}
