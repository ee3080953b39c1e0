package components

import (
	"github.com/automoto/riposte/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

// FloatingTextData is a popup that rises and fades, e.g. the parry text.
type FloatingTextData struct {
	Text   string
	Origin gamemath.Vec2
	Rise   *gween.Tween // pixels above origin
	Fade   *gween.Tween // alpha 1 -> 0

	OffsetY float64
	Alpha   float64
}

var FloatingText = donburi.NewComponentType[FloatingTextData]()

// AutoDestroyData marks entities that should be destroyed after a duration
type AutoDestroyData struct {
	Remaining float64 // seconds
}

var AutoDestroy = donburi.NewComponentType[AutoDestroyData]()
