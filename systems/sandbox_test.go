package systems

import (
	"testing"

	"github.com/automoto/riposte/combat"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/shared/leveldata"
	"github.com/automoto/riposte/systems/factory"
	"github.com/automoto/riposte/tags"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func testLayout() *leveldata.Arena {
	return &leveldata.Arena{
		Width:       320,
		Height:      180,
		Walls:       []leveldata.Rect{{X: 0, Y: 160, W: 320, H: 20}},
		PlayerSpawn: &leveldata.Spawn{X: 20, Y: 120, Kind: leveldata.KindPlayer},
		EnemySpawns: []leveldata.Spawn{
			{X: 150, Y: 146, Kind: "Slime"},
			{X: 200, Y: 104, Kind: "BoneKnight"},
			{X: 250, Y: 146, Kind: "Wyvern"},
		},
	}
}

func TestCreateArena(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	player := factory.CreateArena(e, testLayout(), combat.NewStats(cfg.Player.Attack, cfg.Definitions().Block))

	require.True(t, player.Valid())
	assert.Equal(t, 20.0, components.Object.Get(player).X)
	assert.Equal(t, 1, count(e.World, tags.Wall))
	assert.Equal(t, 2, count(e.World, tags.Enemy), "unknown kinds are skipped")
	assert.Equal(t, 1, count(e.World, tags.Boss))

	spaceEntry, ok := components.Space.First(e.World)
	require.True(t, ok)
	assert.Len(t, components.Space.Get(spaceEntry).Objects(), 4)
}

func TestSpawnNextEnemy(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	factory.CreateArena(e, testLayout(), combat.NewStats(cfg.Player.Attack, cfg.Definitions().Block))
	require.Equal(t, 2, count(e.World, tags.Enemy))

	SpawnNextEnemy(e)
	assert.Equal(t, 3, count(e.World, tags.Enemy), "first spawn is the slime")

	SpawnNextEnemy(e)
	assert.Equal(t, 4, count(e.World, tags.Enemy), "boss alive, unknown kind skipped, slime again")
	assert.Equal(t, 1, count(e.World, tags.Boss))
}

func TestUpdateSandbox_ToggleHurtboxes(t *testing.T) {
	e := ecs.NewECS(donburi.NewWorld())
	in := components.Input.Get(factory.CreateInput(e))
	was := cfg.Debug.ShowHurtboxes
	t.Cleanup(func() { cfg.Debug.ShowHurtboxes = was })

	in.Current[cfg.ActionToggleHurtboxes] = true
	UpdateSandbox(e)
	assert.Equal(t, !was, cfg.Debug.ShowHurtboxes)

	in.Previous = in.Current
	UpdateSandbox(e)
	assert.Equal(t, !was, cfg.Debug.ShowHurtboxes, "held key toggles once")

	in.Current[cfg.ActionSpawnEnemy] = true
	assert.NotPanics(t, func() { UpdateSandbox(e) }, "no arena loaded")
}
