package binding

import (
	"github.com/automoto/riposte/ai"
	"github.com/automoto/riposte/components"
	"github.com/automoto/riposte/shared/gamemath"
	"github.com/yohamta/donburi"
)

// Body moves an entity's collision object by its center.
type Body struct {
	entry *donburi.Entry
}

var _ ai.Body = (*Body)(nil)

func NewBody(entry *donburi.Entry) *Body {
	return &Body{entry: entry}
}

func (b *Body) Position() gamemath.Vec2 {
	if !b.entry.Valid() || !b.entry.HasComponent(components.Object) {
		return gamemath.Vec2{}
	}
	return components.Object.Get(b.entry).Center()
}

func (b *Body) MoveTo(p gamemath.Vec2) {
	if !b.entry.Valid() || !b.entry.HasComponent(components.Object) {
		return
	}
	obj := components.Object.Get(b.entry)
	obj.SetCenter(p)
	obj.Update()
}

// FirstPlayer locates whichever player entity exists when asked.
type FirstPlayer struct {
	World donburi.World
}

var _ ai.Locator = FirstPlayer{}

func (f FirstPlayer) Position() gamemath.Vec2 {
	if e, ok := components.Player.First(f.World); ok && e.HasComponent(components.Object) {
		return components.Object.Get(e).Center()
	}
	return gamemath.Vec2{}
}
