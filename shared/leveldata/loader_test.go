package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const header = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="16" tileheight="16" infinite="0">
`

func spawn(id int, x, y, kind string) string {
	return `  <object id="` + string(rune('0'+id)) + `" x="` + x + `" y="` + y + `">
   <properties><property name="kind" value="` + kind + `"/></properties>
  </object>
`
}

func tmx(groups ...string) string {
	s := header
	for _, g := range groups {
		s += g
	}
	return s + "</map>\n"
}

func TestLoadArena(t *testing.T) {
	src := tmx(
		` <objectgroup id="1" name="Walls">
  <object id="1" x="0" y="64" width="160" height="16"/>
  <object id="2" x="10" y="10"/>
 </objectgroup>
`,
		` <objectgroup id="2" name="Spawns">
`+spawn(3, "120", "40", "Slime")+spawn(4, "16", "32", "player")+spawn(5, "60", "40", "BoneKnight")+spawn(6, "80", "32", "player")+
			` </objectgroup>
`)
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(src)}}

	arena, err := LoadArena(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 160, arena.Width)
	assert.Equal(t, 80, arena.Height)
	assert.Equal(t, []Rect{{X: 0, Y: 64, W: 160, H: 16}}, arena.Walls, "point objects are not walls")
	require.NotNil(t, arena.PlayerSpawn)
	assert.Equal(t, Spawn{X: 16, Y: 32, Kind: KindPlayer}, *arena.PlayerSpawn, "first player spawn wins")
	assert.Equal(t, []Spawn{
		{X: 60, Y: 40, Kind: "BoneKnight"},
		{X: 120, Y: 40, Kind: "Slime"},
	}, arena.EnemySpawns)
}

func TestLoadArena_Errors(t *testing.T) {
	fsys := fstest.MapFS{
		"noplayer.tmx": {Data: []byte(tmx(` <objectgroup id="1" name="Spawns">
` + spawn(1, "0", "0", "Slime") + ` </objectgroup>
`))},
		"nokind.tmx": {Data: []byte(tmx(` <objectgroup id="1" name="Spawns">
  <object id="1" x="0" y="0"/>
 </objectgroup>
`))},
	}

	_, err := LoadArena(fsys, "noplayer.tmx")
	assert.ErrorIs(t, err, ErrNoPlayerSpawn)

	_, err = LoadArena(fsys, "nokind.tmx")
	assert.ErrorContains(t, err, "no kind")

	_, err = LoadArena(fsys, "missing.tmx")
	assert.Error(t, err)
}

func TestLoadAllArenas(t *testing.T) {
	level := []byte(tmx(` <objectgroup id="1" name="Spawns">
` + spawn(1, "0", "0", "player") + ` </objectgroup>
`))
	fsys := fstest.MapFS{
		"levels/b.tmx":      {Data: level},
		"levels/a.tmx":      {Data: level},
		"levels/readme.txt": {Data: []byte("not a level")},
	}

	arenas, names, err := LoadAllArenas(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, arenas, 2)

	_, _, err = LoadAllArenas(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
