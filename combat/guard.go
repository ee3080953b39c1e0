package combat

import "github.com/automoto/riposte/shared/gamemath"

// Block raises the guard for the block duration. It is ignored while the
// block cooldown runs or a block is already up. A block that ends without a
// parry starts the cooldown.
func (c *PlayerCombat) Block() bool {
	if c.blockCooldown.Active() || c.inBlock {
		return false
	}
	c.updateAim()

	block := c.defs.Block
	c.inBlock = true
	c.blockGen++
	gen := c.blockGen

	c.env.Lockout.SetLockout(block.BlockDuration)
	c.env.Animator.Trigger(block.Name)
	c.sched.After(block.BlockDuration,
		func() bool { return c.inBlock && c.blockGen == gen },
		func() {
			c.blockCooldown.Set(c.settings.MaxBlockCooldown)
			c.inBlock = false
		})
	return true
}

// Parried tests the parry hurtbox against enemies and enemy projectiles. It
// only succeeds while blocking; on success the block ends without cooldown
// and the damage bonus starts.
func (c *PlayerCombat) Parried() bool {
	if !c.inBlock {
		return false
	}
	block := c.defs.Block
	origin := c.hurtboxOrigin(block.HurtboxOffset)
	mask := CombineLayerMask(c.settings.EnemyMask, c.settings.ProjectileMask)
	if !c.env.Overlap.TestOverlapCircle(origin, block.HurtboxRadius, mask) {
		return false
	}

	c.env.Lockout.SetLockout(block.ParryDuration)
	c.parryBonus.Set(c.stats.ParryBonusDuration + block.ParryDuration)
	c.parryMultiplier = c.stats.ParryBonusMultiplier
	c.env.Animator.Trigger(block.ParryName)
	c.inBlock = false
	c.env.Effects.SpawnParryEffect(c.env.Aim.Position())
	return true
}

// ParryOrigin returns where the parry hurtbox sits for the current block.
func (c *PlayerCombat) ParryOrigin() gamemath.Vec2 {
	return c.hurtboxOrigin(c.defs.Block.HurtboxOffset)
}
