package assets

import (
	"testing"

	cfg "github.com/automoto/riposte/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedArena(t *testing.T) {
	assert.Contains(t, ArenaNames(), DefaultArena)

	arena, err := LoadArena(DefaultArena)
	require.NoError(t, err)
	assert.Equal(t, cfg.C.Width, arena.Width)
	assert.NotEmpty(t, arena.Walls)
	require.NotNil(t, arena.PlayerSpawn)
	for _, s := range arena.EnemySpawns {
		_, ok := cfg.EnemyType(s.Kind)
		assert.True(t, ok, "unknown enemy kind %q", s.Kind)
	}

	_, err = LoadArena("nope")
	assert.Error(t, err)
}
