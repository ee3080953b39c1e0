package combat

import "github.com/automoto/riposte/shared/gamemath"

type aimState struct {
	center    gamemath.Vec2
	direction gamemath.Vec2
}

// updateAim recomputes the body center and the unit aim direction. Every
// action start calls it; parries reuse the aim taken when the block began.
func (c *PlayerCombat) updateAim() {
	target := c.env.Aim.TargetPosition()
	if f, ok := c.env.Aim.(Facer); ok {
		f.FaceToward(target)
	}
	c.aim.center = c.env.Aim.Position().Add(c.settings.CenterOffset)
	c.aim.direction = gamemath.Direction(c.aim.center, target)
}

func (c *PlayerCombat) hurtboxOrigin(offset gamemath.Vec2) gamemath.Vec2 {
	return c.aim.center.Add(offset.Hadamard(c.aim.direction))
}

// AimCenter returns the body center captured by the last action.
func (c *PlayerCombat) AimCenter() gamemath.Vec2 {
	return c.aim.center
}

// AimDirection returns the unit aim direction captured by the last action.
func (c *PlayerCombat) AimDirection() gamemath.Vec2 {
	return c.aim.direction
}
