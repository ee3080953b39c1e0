package combat

import "github.com/automoto/riposte/shared/gamemath"

// Aimer locates the combatant and the point it is aiming at.
type Aimer interface {
	// Position is the combatant's anchor in world space. The center offset
	// from Settings is added to it.
	Position() gamemath.Vec2
	// TargetPosition is the point the combatant aims at, e.g. the cursor.
	TargetPosition() gamemath.Vec2
}

// Facer is optionally implemented by an Aimer that turns its body toward the
// aim target whenever an action starts.
type Facer interface {
	FaceToward(target gamemath.Vec2)
}

// LockoutSink receives the duration during which the controller must ignore
// further action input.
type LockoutSink interface {
	SetLockout(seconds float64)
}

// Animator receives animation triggers and parameters.
type Animator interface {
	Trigger(name string)
	SetFloat(name string, value float64)
}

// DamageDispatcher applies damage to every body of mask inside a circle.
type DamageDispatcher interface {
	DamageCircleAll(center gamemath.Vec2, radius float64, mask LayerMask, amount float64)
}

// OverlapTester reports whether any body of mask overlaps a circle.
type OverlapTester interface {
	TestOverlapCircle(center gamemath.Vec2, radius float64, mask LayerMask) bool
}

// EffectSpawner shows transient visual feedback.
type EffectSpawner interface {
	SpawnParryEffect(position gamemath.Vec2)
}

// Env bundles the collaborators a PlayerCombat talks to. Nil members are
// replaced by no-op implementations.
type Env struct {
	Aim      Aimer
	Lockout  LockoutSink
	Animator Animator
	Damage   DamageDispatcher
	Overlap  OverlapTester
	Effects  EffectSpawner
}

type noop struct{}

func (noop) Position() gamemath.Vec2                                    { return gamemath.Vec2{} }
func (noop) TargetPosition() gamemath.Vec2                              { return gamemath.Vec2{} }
func (noop) SetLockout(float64)                                         {}
func (noop) Trigger(string)                                             {}
func (noop) SetFloat(string, float64)                                   {}
func (noop) DamageCircleAll(gamemath.Vec2, float64, LayerMask, float64) {}
func (noop) TestOverlapCircle(gamemath.Vec2, float64, LayerMask) bool   { return false }
func (noop) SpawnParryEffect(gamemath.Vec2)                             {}

func (e Env) withDefaults() Env {
	if e.Aim == nil {
		e.Aim = noop{}
	}
	if e.Lockout == nil {
		e.Lockout = noop{}
	}
	if e.Animator == nil {
		e.Animator = noop{}
	}
	if e.Damage == nil {
		e.Damage = noop{}
	}
	if e.Overlap == nil {
		e.Overlap = noop{}
	}
	if e.Effects == nil {
		e.Effects = noop{}
	}
	return e
}
