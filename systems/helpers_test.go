package systems

import "github.com/automoto/riposte/shared/gamemath"

func vec(x, y float64) gamemath.Vec2 {
	return gamemath.Vec2{X: x, Y: y}
}
