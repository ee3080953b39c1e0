// Package combat is the frame-driven melee timing engine: a three hit attack
// string, a timed block that can turn into a parry, and the cooldowns tying
// them together. World effects (damage, overlap tests, animation, effects) go
// through the collaborator interfaces so the package stays headless.
package combat

import "github.com/automoto/riposte/shared/gamemath"

// AttackSpeedParam is the animator parameter scaled by attack speed.
const AttackSpeedParam = "AttackSpeedMultiplier"

// Combatant is the action surface driven by a controller.
type Combatant interface {
	Attack() bool
	Block() bool
	Parried() bool
	InterruptCombat()
	Tick(dt float64)
}

// Settings are the fixed tuning values of a combatant.
type Settings struct {
	MaxComboTime     float64       // time to continue the string before it resets
	MaxBlockCooldown float64       // delay after an unparried block
	CenterOffset     gamemath.Vec2 // anchor to body center
	EnemyMask        LayerMask
	ProjectileMask   LayerMask
}

// DefaultSettings mirrors the shipped player tuning.
func DefaultSettings() Settings {
	return Settings{
		MaxComboTime:     0.5,
		MaxBlockCooldown: 0.5,
		EnemyMask:        LayerEnemy,
		ProjectileMask:   LayerEnemyProjectile,
	}
}

// AttackPhase is the state of the attack sequencer.
type AttackPhase int

const (
	PhaseIdle AttackPhase = iota
	PhaseWindup
	PhaseResolved
)

func (p AttackPhase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseWindup:
		return "windup"
	case PhaseResolved:
		return "resolved"
	}
	return "unknown"
}

// PlayerCombat owns the combo, block and parry state of one combatant. It is
// not safe for concurrent use; all calls come from the owner's frame loop.
type PlayerCombat struct {
	defs     Definitions
	settings Settings
	stats    Stats
	env      Env

	sched  Scheduler
	timers TimerBank

	sequence    int
	phase       AttackPhase
	interrupted bool
	comboWindow *Timer

	inBlock         bool
	blockGen        uint64
	blockCooldown   *Timer
	parryBonus      *Timer
	parryMultiplier float64

	aim aimState
}

var _ Combatant = (*PlayerCombat)(nil)

func NewPlayerCombat(defs Definitions, settings Settings, stats Stats, env Env) *PlayerCombat {
	c := &PlayerCombat{
		defs:            defs,
		settings:        settings,
		stats:           stats,
		env:             env.withDefaults(),
		parryMultiplier: 1,
	}
	c.comboWindow = c.timers.Add("combo", func() {
		if c.phase != PhaseWindup {
			c.sequence = 0
		}
	})
	c.blockCooldown = c.timers.Add("block-cooldown", nil)
	c.parryBonus = c.timers.Add("parry-bonus", func() {
		c.parryMultiplier = 1
	})
	return c
}

// Tick advances cooldowns first, then runs any deferred action that came due.
func (c *PlayerCombat) Tick(dt float64) {
	c.timers.Tick(dt)
	c.sched.Advance(dt)
}

// InterruptCombat staggers the combatant: a pending hit is cancelled when it
// comes due, the block is dropped and the string restarts.
func (c *PlayerCombat) InterruptCombat() {
	c.interrupted = true
	c.inBlock = false
	c.sequence = 0
}

func (c *PlayerCombat) Now() float64                  { return c.sched.Now() }
func (c *PlayerCombat) SequenceIndex() int            { return c.sequence }
func (c *PlayerCombat) Phase() AttackPhase            { return c.phase }
func (c *PlayerCombat) Interrupted() bool             { return c.interrupted }
func (c *PlayerCombat) ComboWindowRemaining() float64 { return c.comboWindow.Remaining() }
func (c *PlayerCombat) Blocking() bool                { return c.inBlock }
func (c *PlayerCombat) BlockCooldownRemaining() float64 {
	return c.blockCooldown.Remaining()
}
func (c *PlayerCombat) ParryBonusRemaining() float64 { return c.parryBonus.Remaining() }
func (c *PlayerCombat) ParryMultiplier() float64     { return c.parryMultiplier }
func (c *PlayerCombat) Definitions() Definitions     { return c.defs }
func (c *PlayerCombat) Settings() Settings           { return c.settings }
