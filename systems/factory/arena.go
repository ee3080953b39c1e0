package factory

import (
	"log"

	"github.com/automoto/riposte/archetypes"
	"github.com/automoto/riposte/combat"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

const cellSize = 16

// CreateArena lays out a loaded arena: the space, its walls, the player and
// every enemy spawn. It returns the player. Spawns of unknown enemy types
// are logged and skipped.
func CreateArena(ecs *ecs.ECS, layout *leveldata.Arena, stats combat.Stats) *donburi.Entry {
	w, h := layout.Width, layout.Height
	if w < cfg.C.Width {
		w = cfg.C.Width
	}
	if h < cfg.C.Height {
		h = cfg.C.Height
	}
	CreateSpace(ecs, w, h, cellSize, cellSize)

	for _, r := range layout.Walls {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	arena := archetypes.Arena.Spawn(ecs)
	components.Arena.SetValue(arena, components.ArenaData{Layout: layout})

	player := CreatePlayer(ecs, layout.PlayerSpawn.X, layout.PlayerSpawn.Y, stats)
	for _, s := range layout.EnemySpawns {
		if _, err := CreateEnemy(ecs, s.X, s.Y, s.Kind); err != nil {
			log.Printf("[arena] skipping spawn at (%.0f, %.0f): %v", s.X, s.Y, err)
		}
	}
	return player
}
