package components

import (
	"github.com/automoto/riposte/shared/gamemath"
	"github.com/yohamta/donburi"
)

type PlayerData struct {
	Direction float64       // 1 right, -1 left
	Aim       gamemath.Vec2 // world point the player aims at
	MoveSpeed float64
}

var Player = donburi.NewComponentType[PlayerData]()
