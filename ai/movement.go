// Package ai holds the enemy movement brains. They only see positions, so the
// ECS layer decides what a body and a target are.
package ai

import "github.com/automoto/riposte/shared/gamemath"

// Locator reports a world position.
type Locator interface {
	Position() gamemath.Vec2
}

// Body is a Locator that can be moved.
type Body interface {
	Locator
	MoveTo(p gamemath.Vec2)
}

// Mover is an enemy movement brain, stepped once per frame.
type Mover interface {
	Move(speed float64)
	StopCriteriaFulfilled() bool
	Facing() float64
}

// Chaser walks straight at its target along the ground.
type Chaser struct {
	Self   Body
	Target Locator

	facing float64
}

var _ Mover = (*Chaser)(nil)

func NewChaser(self Body, target Locator) *Chaser {
	return &Chaser{Self: self, Target: target, facing: 1}
}

// Move steps horizontally toward the target by at most speed and turns to
// face it. It never overshoots.
func (c *Chaser) Move(speed float64) {
	if c.Self == nil || c.Target == nil {
		return
	}
	pos := c.Self.Position()
	target := c.Target.Position()
	switch {
	case target.X > pos.X:
		c.facing = 1
	case target.X < pos.X:
		c.facing = -1
	}
	pos.X = gamemath.MoveToward(pos.X, target.X, speed)
	c.Self.MoveTo(pos)
}

// StopCriteriaFulfilled is never true for a plain chaser.
func (c *Chaser) StopCriteriaFulfilled() bool {
	return false
}

// Facing is 1 when looking right, -1 when looking left.
func (c *Chaser) Facing() float64 {
	return c.facing
}
