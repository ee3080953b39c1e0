package components

import (
	"github.com/automoto/riposte/combat"
	"github.com/yohamta/donburi"
)

// CombatData holds the timing engine of an attack/block capable entity.
type CombatData struct {
	*combat.PlayerCombat
}

var Combat = donburi.NewComponentType[CombatData]()

// LockoutData blocks new actions until Remaining runs out.
type LockoutData struct {
	Remaining float64 // seconds
}

// Locked reports whether the owner is still busy with its last action.
func (l *LockoutData) Locked() bool {
	return l.Remaining > 0
}

var Lockout = donburi.NewComponentType[LockoutData]()

// AnimatorData mirrors what the combat engine asks an animation to do. The
// debug view prints it; a sprite renderer would drive frames from it.
type AnimatorData struct {
	Current string             // last trigger
	Elapsed float64            // seconds since the trigger
	Params  map[string]float64 // float parameters, e.g. attack speed
	History []string           // triggers in order, bounded
}

const animatorHistory = 8

// Trigger starts a new animation by name.
func (a *AnimatorData) Trigger(name string) {
	a.Current = name
	a.Elapsed = 0
	a.History = append(a.History, name)
	if len(a.History) > animatorHistory {
		a.History = a.History[len(a.History)-animatorHistory:]
	}
}

func (a *AnimatorData) SetFloat(name string, v float64) {
	if a.Params == nil {
		a.Params = make(map[string]float64)
	}
	a.Params[name] = v
}

var Animator = donburi.NewComponentType[AnimatorData]()
