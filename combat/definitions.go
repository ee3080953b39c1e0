package combat

import "github.com/automoto/riposte/shared/gamemath"

// AttackDefinition describes one step of the basic attack string.
type AttackDefinition struct {
	Name             string        `yaml:"name"` // animation trigger
	Duration         float64       `yaml:"duration"`
	TimeBeforeHit    float64       `yaml:"timeBeforeHit"`
	HurtboxOffset    gamemath.Vec2 `yaml:"hurtboxOffset"`
	HurtboxRadius    float64       `yaml:"hurtboxRadius"`
	DamageMultiplier float64       `yaml:"damageMultiplier"`
}

// BlockDefinition describes the block stance and the parry it can turn into.
type BlockDefinition struct {
	Name                 string        `yaml:"name"`
	ParryName            string        `yaml:"parryName"`
	BlockDuration        float64       `yaml:"blockDuration"`
	ParryDuration        float64       `yaml:"parryDuration"`
	HurtboxOffset        gamemath.Vec2 `yaml:"hurtboxOffset"`
	HurtboxRadius        float64       `yaml:"hurtboxRadius"`
	ParryBonusMultiplier float64       `yaml:"parryBonusMultiplier"`
}

// Definitions is the immutable move set of a combatant: the ordered attack
// string and its block.
type Definitions struct {
	Attacks []AttackDefinition `yaml:"attacks"`
	Block   BlockDefinition    `yaml:"block"`
}
