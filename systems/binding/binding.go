// Package binding connects the headless combat engine to the ECS world: it
// answers aim, lockout and animation calls from components and runs circle
// queries against the resolv space.
package binding

import (
	"github.com/automoto/riposte/combat"
	"github.com/automoto/riposte/components"
	"github.com/automoto/riposte/shared/gamemath"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// EffectFunc spawns a parry effect at a world position.
type EffectFunc func(pos gamemath.Vec2)

// Combatant adapts an entity to the per-actor combat collaborators.
type Combatant struct {
	entry *donburi.Entry
	spawn EffectFunc
}

var (
	_ combat.Aimer         = (*Combatant)(nil)
	_ combat.Facer         = (*Combatant)(nil)
	_ combat.LockoutSink   = (*Combatant)(nil)
	_ combat.Animator      = (*Combatant)(nil)
	_ combat.EffectSpawner = (*Combatant)(nil)
)

func NewCombatant(entry *donburi.Entry, spawn EffectFunc) *Combatant {
	return &Combatant{entry: entry, spawn: spawn}
}

func (c *Combatant) Position() gamemath.Vec2 {
	if !c.entry.Valid() || !c.entry.HasComponent(components.Object) {
		return gamemath.Vec2{}
	}
	return components.Object.Get(c.entry).Center()
}

// TargetPosition is the player's aim point. Entities without one aim at
// themselves, which gives a zero direction.
func (c *Combatant) TargetPosition() gamemath.Vec2 {
	if c.entry.Valid() && c.entry.HasComponent(components.Player) {
		return components.Player.Get(c.entry).Aim
	}
	return c.Position()
}

func (c *Combatant) FaceToward(target gamemath.Vec2) {
	if !c.entry.Valid() || !c.entry.HasComponent(components.Player) {
		return
	}
	p := components.Player.Get(c.entry)
	switch pos := c.Position(); {
	case target.X > pos.X:
		p.Direction = 1
	case target.X < pos.X:
		p.Direction = -1
	}
}

func (c *Combatant) SetLockout(seconds float64) {
	if c.entry.Valid() && c.entry.HasComponent(components.Lockout) {
		components.Lockout.Get(c.entry).Remaining = seconds
	}
}

func (c *Combatant) Trigger(name string) {
	if c.entry.Valid() && c.entry.HasComponent(components.Animator) {
		components.Animator.Get(c.entry).Trigger(name)
	}
}

func (c *Combatant) SetFloat(name string, v float64) {
	if c.entry.Valid() && c.entry.HasComponent(components.Animator) {
		components.Animator.Get(c.entry).SetFloat(name, v)
	}
}

func (c *Combatant) SpawnParryEffect(pos gamemath.Vec2) {
	if c.spawn != nil {
		c.spawn(pos)
	}
}

// NewCombatEnv wires every collaborator of an entity's combat engine. World
// queries go to the first space in the world; without one they hit nothing.
func NewCombatEnv(e *ecs.ECS, entry *donburi.Entry, spawn EffectFunc) combat.Env {
	actor := NewCombatant(entry, spawn)
	env := combat.Env{
		Aim:      actor,
		Lockout:  actor,
		Animator: actor,
		Effects:  actor,
	}
	if spaceEntry, ok := components.Space.First(e.World); ok {
		q := NewQuery(components.Space.Get(spaceEntry))
		env.Damage = q
		env.Overlap = q
	}
	return env
}

// AddDamage queues damage for this frame, adding to any already queued.
func AddDamage(e *donburi.Entry, amount float64) {
	if !e.Valid() || !e.HasComponent(components.Health) {
		return
	}
	if e.HasComponent(components.DamageEvent) {
		dmg := components.DamageEvent.Get(e)
		dmg.Amount += amount
		dmg.Hits++
		return
	}
	donburi.Add(e, components.DamageEvent, &components.DamageEventData{Amount: amount, Hits: 1})
}
