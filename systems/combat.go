package systems

import (
	"log"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateLockouts counts down the time each actor is busy with its last action.
func UpdateLockouts(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()
	components.Lockout.Each(ecs.World, func(e *donburi.Entry) {
		l := components.Lockout.Get(e)
		l.Remaining = countdown(l.Remaining, dt)
	})
}

// UpdateCombatants advances every combat engine by one frame. Hits that land
// here are queued as damage events for UpdateDamage.
func UpdateCombatants(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()
	for _, e := range entriesWith(ecs.World, components.Combat) {
		components.Combat.Get(e).Tick(dt)
	}
	components.Animator.Each(ecs.World, func(e *donburi.Entry) {
		components.Animator.Get(e).Elapsed += dt
	})
}

// UpdateDamage applies this frame's queued damage. A blocking combatant gets
// a parry check first; a successful parry cancels the hit. Otherwise the hit
// staggers it.
func UpdateDamage(ecs *ecs.ECS) {
	for _, e := range entriesWith(ecs.World, components.DamageEvent) {
		dmg := *components.DamageEvent.Get(e)
		donburi.Remove[components.DamageEventData](e, components.DamageEvent)

		if e.HasComponent(components.Death) {
			continue
		}
		applyDamage(e, dmg.Amount)
	}
}

func applyDamage(e *donburi.Entry, amount float64) {
	var fighter *components.CombatData
	if e.HasComponent(components.Combat) {
		fighter = components.Combat.Get(e)
		if fighter.Blocking() && fighter.Parried() {
			return
		}
	}

	hp := components.Health.Get(e)
	hp.TakeDamage(amount)

	if e.HasComponent(components.HealthBar) {
		components.HealthBar.Get(e).Show(cfg.Combat.HealthBarDuration)
	}
	if fighter != nil {
		fighter.InterruptCombat()
		if e.HasComponent(components.Lockout) {
			l := components.Lockout.Get(e)
			if l.Remaining < cfg.Combat.InterruptLockout {
				l.Remaining = cfg.Combat.InterruptLockout
			}
		}
	}

	if hp.Dead() {
		if e.HasComponent(tags.Boss) {
			log.Printf("[arena] boss %s defeated", components.Enemy.Get(e).TypeName)
		}
		donburi.Add(e, components.Death, &components.DeathData{Timer: cfg.Combat.DeathDuration})
	}
}
