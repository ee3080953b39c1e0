package components

import (
	"github.com/automoto/riposte/shared/leveldata"
	"github.com/yohamta/donburi"
)

// ArenaData keeps the loaded layout so the sandbox can respawn enemies.
type ArenaData struct {
	Layout    *leveldata.Arena
	NextSpawn int
}

var Arena = donburi.NewComponentType[ArenaData]()
