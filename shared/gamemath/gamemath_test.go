package gamemath

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDirection(t *testing.T) {
	tests := []struct {
		name     string
		from, to Vec2
		want     Vec2
	}{
		{name: "right", from: Vec2{0, 0}, to: Vec2{10, 0}, want: Vec2{1, 0}},
		{name: "up", from: Vec2{5, 5}, to: Vec2{5, -5}, want: Vec2{0, -1}},
		{name: "diagonal", from: Vec2{0, 0}, to: Vec2{3, 4}, want: Vec2{0.6, 0.8}},
		{name: "coincident", from: Vec2{2, 2}, to: Vec2{2, 2}, want: Vec2{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Direction(tt.from, tt.to)
			assert.InDelta(t, tt.want.X, got.X, 1e-9)
			assert.InDelta(t, tt.want.Y, got.Y, 1e-9)
		})
	}
}

func TestDirectionIsUnitLength(t *testing.T) {
	d := Direction(Vec2{-7, 2}, Vec2{11, -40})
	assert.InDelta(t, 1.0, d.Length(), 1e-12)
}

func TestHadamard(t *testing.T) {
	got := Vec2{X: 2, Y: 3}.Hadamard(Vec2{X: -1, Y: 0.5})
	assert.Equal(t, Vec2{X: -2, Y: 1.5}, got)
}

func TestMoveToward(t *testing.T) {
	assert.Equal(t, 3.0, MoveToward(0, 10, 3))
	assert.Equal(t, -3.0, MoveToward(0, -10, 3))
	assert.Equal(t, 10.0, MoveToward(9, 10, 3), "must not overshoot")
}

func TestCircleIntersectsRect(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 10, H: 10}
	tests := []struct {
		name   string
		center Vec2
		radius float64
		want   bool
	}{
		{name: "center inside", center: Vec2{15, 15}, radius: 1, want: true},
		{name: "touching edge", center: Vec2{5, 15}, radius: 5, want: true},
		{name: "left of rect", center: Vec2{4, 15}, radius: 5, want: false},
		{name: "near corner miss", center: Vec2{6, 6}, radius: 5, want: false},
		{name: "near corner hit", center: Vec2{7, 7}, radius: 5, want: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CircleIntersectsRect(tt.center, tt.radius, r))
		})
	}
}

func TestCircleBounds(t *testing.T) {
	b := CircleBounds(Vec2{X: 10, Y: 20}, 4)
	assert.Equal(t, Rect{X: 6, Y: 16, W: 8, H: 8}, b)
	assert.False(t, math.IsNaN(b.W))
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	assert.True(t, a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}))
	assert.True(t, a.Overlaps(Rect{X: 10, Y: 0, W: 1, H: 1}), "touching counts")
	assert.False(t, a.Overlaps(Rect{X: 11, Y: 0, W: 1, H: 1}))
	assert.True(t, a.Grow(2).Overlaps(Rect{X: 11, Y: 0, W: 1, H: 1}))
	assert.Equal(t, Rect{X: -2, Y: -2, W: 14, H: 14}, a.Grow(2))
}
