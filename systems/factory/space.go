package factory

import (
	"github.com/automoto/riposte/archetypes"
	"github.com/automoto/riposte/components"
	"github.com/automoto/riposte/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

func CreateSpace(ecs *ecs.ECS, width, height, cellWidth, cellHeight int) *donburi.Entry {
	space := archetypes.Space.Spawn(ecs)
	components.Space.Set(space, resolv.NewSpace(width, height, cellWidth, cellHeight))
	return space
}

// addToSpace registers obj with the world's space, if there is one yet.
func addToSpace(ecs *ecs.ECS, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func newBody(entry *donburi.Entry, x, y, w, h float64, tags ...string) *resolv.Object {
	obj := resolv.NewObject(x, y, w, h, tags...)
	obj.SetShape(resolv.NewRectangle(0, 0, w, h))
	obj.Data = entry // Link for O(1) lookup
	components.Object.SetValue(entry, components.ObjectData{Object: obj})
	return obj
}

func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Wall.Spawn(ecs)
	addToSpace(ecs, newBody(wall, x, y, w, h, tags.ResolvSolid))
	return wall
}

func CreateInput(ecs *ecs.ECS) *donburi.Entry {
	if e, ok := components.Input.First(ecs.World); ok {
		return e
	}
	return archetypes.Input.Spawn(ecs)
}
