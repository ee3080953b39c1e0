package systems

import (
	"github.com/automoto/riposte/components"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi/ecs"
)

// UpdateObjects keeps moving bodies inside the arena horizontally, then
// refreshes their cells in the space.
func UpdateObjects(ecs *ecs.ECS) {
	arenaWidth := 0.0
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		space := components.Space.Get(spaceEntry)
		arenaWidth = float64(space.Width() * space.CellWidth)
	}

	for e := range components.Object.Iter(ecs.World) {
		obj := components.Object.Get(e)
		if arenaWidth > 0 && !e.HasComponent(tags.Wall) {
			if obj.X < 0 {
				obj.X = 0
			}
			if right := arenaWidth - obj.W; obj.X > right {
				obj.X = right
			}
		}
		obj.Update()
	}
}
