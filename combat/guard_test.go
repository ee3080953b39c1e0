package combat

import (
	"testing"

	"github.com/automoto/riposte/shared/gamemath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBlock_UnparriedStartsCooldown(t *testing.T) {
	r := newRecorder()
	c := newTestCombat(r)

	require.True(t, c.Block())
	assert.True(t, c.Blocking())
	assert.Equal(t, []float64{0.4}, r.lockouts)
	assert.Equal(t, []string{"Block"}, r.triggers)

	advance(c, 3, frame)
	assert.True(t, c.Blocking())
	assert.Equal(t, 0.0, c.BlockCooldownRemaining())

	c.Tick(frame)
	assert.False(t, c.Blocking())
	assert.Equal(t, 0.5, c.BlockCooldownRemaining())

	assert.False(t, c.Block(), "cooldown running")
	assert.Len(t, r.triggers, 1)
	assert.Len(t, r.lockouts, 1)

	advance(c, 4, frame)
	assert.False(t, c.Block())

	c.Tick(frame)
	assert.Equal(t, 0.0, c.BlockCooldownRemaining())
	assert.True(t, c.Block(), "cooldown over at t=0.9")
}

func TestBlock_RejectedWhileBlocking(t *testing.T) {
	r := newRecorder()
	c := newTestCombat(r)

	require.True(t, c.Block())
	c.Tick(frame)
	assert.False(t, c.Block())
	assert.Len(t, r.lockouts, 1)
}

func TestParried_NotBlocking(t *testing.T) {
	r := newRecorder()
	r.overlap = true
	c := newTestCombat(r)

	assert.False(t, c.Parried())
	assert.Empty(t, r.overlaps)
	assert.Empty(t, r.triggers)
	assert.Empty(t, r.effects)
	assert.Equal(t, 1.0, c.ParryMultiplier())
	assert.Equal(t, 0.0, c.ParryBonusRemaining())
}

func TestParried_Success(t *testing.T) {
	r := newRecorder()
	r.position = gamemath.Vec2{X: 2, Y: 3}
	r.target = gamemath.Vec2{X: 12, Y: 3}
	c := newTestCombat(r)

	require.True(t, c.Block())
	r.overlap = true
	require.True(t, c.Parried())

	require.Len(t, r.overlaps, 1)
	probe := r.overlaps[0]
	assert.Equal(t, gamemath.Vec2{X: 2.5, Y: 3}, probe.center)
	assert.Equal(t, 0.7, probe.radius)
	assert.Equal(t, LayerEnemy|LayerEnemyProjectile, probe.mask)

	assert.False(t, c.Blocking())
	assert.Equal(t, []float64{0.4, 0.25}, r.lockouts)
	assert.Equal(t, []string{"Block", "Parry"}, r.triggers)
	assert.Equal(t, []gamemath.Vec2{{X: 2, Y: 3}}, r.effects)
	assert.Equal(t, 1.5, c.ParryMultiplier())
	assert.Equal(t, 3.25, c.ParryBonusRemaining())

	advance(c, 6, frame)
	assert.Equal(t, 0.0, c.BlockCooldownRemaining(), "a parried block has no cooldown")
	assert.True(t, c.Block())
}

func TestParried_Miss(t *testing.T) {
	r := newRecorder()
	c := newTestCombat(r)

	require.True(t, c.Block())
	c.Tick(frame)
	assert.False(t, c.Parried())
	assert.Len(t, r.overlaps, 1)
	assert.True(t, c.Blocking(), "a miss keeps the guard up")
	assert.Equal(t, 1.0, c.ParryMultiplier())

	advance(c, 3, frame)
	assert.False(t, c.Blocking())
	assert.Equal(t, 0.5, c.BlockCooldownRemaining())
}

func TestParried_UsesAimFromBlockStart(t *testing.T) {
	r := newRecorder()
	c := newTestCombat(r)

	require.True(t, c.Block())
	r.target = gamemath.Vec2{X: -10}
	r.overlap = true
	require.True(t, c.Parried())

	assert.Equal(t, gamemath.Vec2{X: 0.5}, r.overlaps[0].center)
	assert.Equal(t, gamemath.Vec2{X: 0.5}, c.ParryOrigin())
}

func TestParryBonus_ExpiresExactlyOnTime(t *testing.T) {
	r := newRecorder()
	r.overlap = true
	c := newTestCombat(r)

	require.True(t, c.Block())
	require.True(t, c.Parried())

	const dt = 0.25
	advance(c, 12, dt)
	assert.Equal(t, 1.5, c.ParryMultiplier())
	assert.Equal(t, 0.25, c.ParryBonusRemaining())

	c.Tick(dt)
	assert.Equal(t, 1.0, c.ParryMultiplier())
	assert.Equal(t, 0.0, c.ParryBonusRemaining())
}

func TestParryBonus_UpgradedDurationApplies(t *testing.T) {
	r := newRecorder()
	r.overlap = true
	c := newTestCombat(r)
	c.IncreaseParryBonusDuration(1)
	c.IncreaseParryBonusMultiplier(0.5)

	c.Block()
	c.Parried()
	assert.Equal(t, 4.25, c.ParryBonusRemaining())
	assert.Equal(t, 2.0, c.ParryMultiplier())
}

func TestParryBonus_ZeroDurationExpiresNextTick(t *testing.T) {
	r := newRecorder()
	r.overlap = true
	defs := testDefinitions()
	defs.Block.ParryDuration = 0
	stats := NewStats(10, defs.Block)
	stats.ParryBonusDuration = 0
	c := NewPlayerCombat(defs, DefaultSettings(), stats, r.env())

	c.Block()
	require.True(t, c.Parried())
	assert.Equal(t, 1.5, c.ParryMultiplier())

	c.Tick(frame)
	assert.Equal(t, 1.0, c.ParryMultiplier())
}

func TestBlock_StaleCheckIgnoredAfterReblock(t *testing.T) {
	r := newRecorder()
	c := newTestCombat(r)

	require.True(t, c.Block())
	c.Tick(frame)
	r.overlap = true
	require.True(t, c.Parried())
	r.overlap = false
	c.Tick(frame)
	require.True(t, c.Block(), "second block at t=0.2")

	advance(c, 2, frame)
	assert.True(t, c.Blocking(), "first block's check must not end the second block")
	assert.Equal(t, 0.0, c.BlockCooldownRemaining())

	advance(c, 2, frame)
	assert.False(t, c.Blocking())
	assert.Equal(t, 0.5, c.BlockCooldownRemaining())
}

func TestInterrupt_DropsBlockWithoutCooldown(t *testing.T) {
	r := newRecorder()
	c := newTestCombat(r)

	c.Block()
	c.Tick(frame)
	c.InterruptCombat()
	assert.False(t, c.Blocking())

	advance(c, 5, frame)
	assert.Equal(t, 0.0, c.BlockCooldownRemaining())
	assert.True(t, c.Block())
}

func TestParry_DuringWindupBoostsPendingHit(t *testing.T) {
	r := newRecorder()
	c := newTestCombat(r)

	require.True(t, c.Attack())
	require.True(t, c.Block())
	r.overlap = true
	require.True(t, c.Parried())

	advance(c, 2, frame)
	require.Len(t, r.damage, 1)
	assert.Equal(t, 15.0, r.damage[0].amount)
}
