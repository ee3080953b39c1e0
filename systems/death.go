package systems

import (
	"log"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateDeaths runs the death timers. Enemies are removed from the world and
// the space; the player gets back up with full health.
func UpdateDeaths(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()
	for _, e := range entriesWith(ecs.World, components.Death) {
		death := components.Death.Get(e)
		death.Timer = countdown(death.Timer, dt)
		if death.Timer > 0 {
			continue
		}
		if e.HasComponent(tags.Player) {
			revivePlayer(e)
			continue
		}
		removeEntity(ecs, e)
	}
}

func revivePlayer(e *donburi.Entry) {
	hp := components.Health.Get(e)
	hp.Heal(hp.Max())
	if e.HasComponent(components.Combat) {
		components.Combat.Get(e).InterruptCombat()
	}
	donburi.Remove[components.DeathData](e, components.Death)
	log.Printf("[arena] player revived")
}

func removeEntity(ecs *ecs.ECS, e *donburi.Entry) {
	if spaceEntry, ok := components.Space.First(ecs.World); ok && e.HasComponent(components.Object) {
		components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
	}
	ecs.World.Remove(e.Entity())
}
