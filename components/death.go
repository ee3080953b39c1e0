package components

import "github.com/yohamta/donburi"

// DeathData marks an entity that has started its death sequence.
// Timer counts down in seconds; when it reaches 0, the entity is removed
// from the world and the space.
type DeathData struct {
	Timer float64
}

var Death = donburi.NewComponentType[DeathData]()
