package components

import (
	"github.com/automoto/riposte/shared/gamemath"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

// ObjectData is the entity's body in the collision space. X/Y is the top
// left corner, as resolv keeps it.
type ObjectData struct {
	*resolv.Object
}

// Center returns the middle of the body.
func (o ObjectData) Center() gamemath.Vec2 {
	return gamemath.Vec2{X: o.X + o.W/2, Y: o.Y + o.H/2}
}

// SetCenter moves the body so its middle sits at p.
func (o ObjectData) SetCenter(p gamemath.Vec2) {
	o.X = p.X - o.W/2
	o.Y = p.Y - o.H/2
}

// Bounds returns the body as a plain rectangle.
func (o ObjectData) Bounds() gamemath.Rect {
	return gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}
}

var Object = donburi.NewComponentType[ObjectData]()

var Space = donburi.NewComponentType[resolv.Space]()
