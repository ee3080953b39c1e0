// Package gamemath holds the small geometry helpers shared by the combat core,
// the enemy AI and the ECS bindings. It has no dependencies on ebiten, donburi
// or resolv so the core stays headless.
package gamemath

import "math"

// Vec2 is a 2D point or direction in screen space (y grows downward).
type Vec2 struct {
	X float64 `yaml:"x" json:"x"`
	Y float64 `yaml:"y" json:"y"`
}

func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Scale multiplies both components by s.
func (v Vec2) Scale(s float64) Vec2 {
	return Vec2{X: v.X * s, Y: v.Y * s}
}

// Hadamard returns the component-wise product. Hurtbox offsets are projected
// onto the aim direction this way.
func (v Vec2) Hadamard(o Vec2) Vec2 {
	return Vec2{X: v.X * o.X, Y: v.Y * o.Y}
}

func (v Vec2) Length() float64 {
	return math.Hypot(v.X, v.Y)
}

// Distance returns the euclidean distance between two points.
func Distance(a, b Vec2) float64 {
	return b.Sub(a).Length()
}

// Direction returns the unit vector pointing from "from" to "to".
// Coincident points yield the zero vector.
func Direction(from, to Vec2) Vec2 {
	d := to.Sub(from)
	l := d.Length()
	if l == 0 {
		return Vec2{}
	}
	return d.Scale(1 / l)
}

// MoveToward moves current toward target by at most maxDelta without overshooting.
func MoveToward(current, target, maxDelta float64) float64 {
	if math.Abs(target-current) <= maxDelta {
		return target
	}
	if target > current {
		return current + maxDelta
	}
	return current - maxDelta
}

// ClampFloat clamps v into [lo, hi].
func ClampFloat(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
