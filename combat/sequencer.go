package combat

import "github.com/automoto/riposte/shared/gamemath"

// Attack starts the next hit of the string. It is rejected while a previous
// hit is still winding up. The hit lands timeBeforeHit/attackSpeed later
// unless the combatant is interrupted first.
func (c *PlayerCombat) Attack() bool {
	if c.phase == PhaseWindup || len(c.defs.Attacks) == 0 {
		return false
	}
	c.interrupted = false
	c.updateAim()

	index := c.sequence
	def := c.defs.Attacks[index]
	speed := c.stats.AttackSpeed
	origin := c.hurtboxOrigin(def.HurtboxOffset)

	c.phase = PhaseWindup
	c.env.Lockout.SetLockout(def.Duration / speed)
	c.env.Animator.SetFloat(AttackSpeedParam, speed)
	c.env.Animator.Trigger(def.Name)
	c.sched.After(def.TimeBeforeHit/speed, nil, func() {
		c.resolveAttack(index, def, origin)
	})
	return true
}

func (c *PlayerCombat) resolveAttack(index int, def AttackDefinition, origin gamemath.Vec2) {
	if c.interrupted {
		c.phase = PhaseIdle
		return
	}
	// Evaluated at impact so a parry during the windup still boosts the hit.
	amount := c.stats.Attack * c.parryMultiplier * def.DamageMultiplier
	c.env.Damage.DamageCircleAll(origin, def.HurtboxRadius, c.settings.EnemyMask, amount)

	c.comboWindow.Set(c.settings.MaxComboTime)
	c.sequence = (index + 1) % len(c.defs.Attacks)
	c.phase = PhaseResolved
}
