package gamemath

// Rect is an axis-aligned rectangle anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

// CircleBounds returns the axis-aligned bounding box of a circle.
func CircleBounds(center Vec2, radius float64) Rect {
	return Rect{X: center.X - radius, Y: center.Y - radius, W: radius * 2, H: radius * 2}
}

// CircleIntersectsRect reports whether a circle touches or overlaps r.
func CircleIntersectsRect(center Vec2, radius float64, r Rect) bool {
	nearestX := ClampFloat(center.X, r.X, r.X+r.W)
	nearestY := ClampFloat(center.Y, r.Y, r.Y+r.H)
	dx := center.X - nearestX
	dy := center.Y - nearestY
	return dx*dx+dy*dy <= radius*radius
}

// Overlaps reports whether two rectangles share any area or touch.
func (r Rect) Overlaps(o Rect) bool {
	return r.X <= o.X+o.W && o.X <= r.X+r.W && r.Y <= o.Y+o.H && o.Y <= r.Y+r.H
}

// Grow returns r enlarged by d on every side.
func (r Rect) Grow(d float64) Rect {
	return Rect{X: r.X - d, Y: r.Y - d, W: r.W + 2*d, H: r.H + 2*d}
}
