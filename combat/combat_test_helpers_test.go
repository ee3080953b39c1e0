package combat

import "github.com/automoto/riposte/shared/gamemath"

type damageCall struct {
	center gamemath.Vec2
	radius float64
	mask   LayerMask
	amount float64
}

type overlapCall struct {
	center gamemath.Vec2
	radius float64
	mask   LayerMask
}

// recorder implements every collaborator and remembers what it was asked.
type recorder struct {
	position gamemath.Vec2
	target   gamemath.Vec2
	facing   []gamemath.Vec2

	lockouts []float64
	triggers []string
	floats   map[string]float64

	damage   []damageCall
	overlaps []overlapCall
	overlap  bool

	effects []gamemath.Vec2
}

func newRecorder() *recorder {
	return &recorder{
		target: gamemath.Vec2{X: 10},
		floats: make(map[string]float64),
	}
}

func (r *recorder) Position() gamemath.Vec2         { return r.position }
func (r *recorder) TargetPosition() gamemath.Vec2   { return r.target }
func (r *recorder) FaceToward(target gamemath.Vec2) { r.facing = append(r.facing, target) }
func (r *recorder) SetLockout(seconds float64)      { r.lockouts = append(r.lockouts, seconds) }
func (r *recorder) Trigger(name string)             { r.triggers = append(r.triggers, name) }
func (r *recorder) SetFloat(name string, v float64) { r.floats[name] = v }
func (r *recorder) SpawnParryEffect(p gamemath.Vec2) {
	r.effects = append(r.effects, p)
}

func (r *recorder) DamageCircleAll(center gamemath.Vec2, radius float64, mask LayerMask, amount float64) {
	r.damage = append(r.damage, damageCall{center: center, radius: radius, mask: mask, amount: amount})
}

func (r *recorder) TestOverlapCircle(center gamemath.Vec2, radius float64, mask LayerMask) bool {
	r.overlaps = append(r.overlaps, overlapCall{center: center, radius: radius, mask: mask})
	return r.overlap
}

func (r *recorder) env() Env {
	return Env{Aim: r, Lockout: r, Animator: r, Damage: r, Overlap: r, Effects: r}
}

func testDefinitions() Definitions {
	return Definitions{
		Attacks: []AttackDefinition{
			{Name: "Attack1", Duration: 0.5, TimeBeforeHit: 0.2, HurtboxOffset: gamemath.Vec2{X: 1, Y: 1}, HurtboxRadius: 0.5, DamageMultiplier: 1},
			{Name: "Attack2", Duration: 0.5, TimeBeforeHit: 0.2, HurtboxOffset: gamemath.Vec2{X: 1, Y: 1}, HurtboxRadius: 0.5, DamageMultiplier: 1.2},
			{Name: "Attack3", Duration: 0.8, TimeBeforeHit: 0.4, HurtboxOffset: gamemath.Vec2{X: 1.5, Y: 1.5}, HurtboxRadius: 0.8, DamageMultiplier: 2},
		},
		Block: BlockDefinition{
			Name:                 "Block",
			ParryName:            "Parry",
			BlockDuration:        0.4,
			ParryDuration:        0.25,
			HurtboxOffset:        gamemath.Vec2{X: 0.5, Y: 0.5},
			HurtboxRadius:        0.7,
			ParryBonusMultiplier: 1.5,
		},
	}
}

func newTestCombat(r *recorder) *PlayerCombat {
	defs := testDefinitions()
	return NewPlayerCombat(defs, DefaultSettings(), NewStats(10, defs.Block), r.env())
}

// advance ticks the combatant n frames of dt seconds.
func advance(c *PlayerCombat, n int, dt float64) {
	for i := 0; i < n; i++ {
		c.Tick(dt)
	}
}
