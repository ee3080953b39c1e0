package combat

// DefaultParryBonusDuration is how long a parry boosts damage before upgrades.
const DefaultParryBonusDuration = 3.0

// Stats are the tunable, upgradable and persisted numbers of a combatant.
type Stats struct {
	Attack               float64 `json:"attack"`
	AttackSpeed          float64 `json:"attackSpeed"`
	ParryBonusDuration   float64 `json:"parryBonusDuration"`
	ParryBonusMultiplier float64 `json:"parryBonusMultiplier"`
}

// NewStats returns starting stats for the given attack power, taking the
// parry bonus multiplier from the block definition.
func NewStats(attack float64, block BlockDefinition) Stats {
	return Stats{
		Attack:               attack,
		AttackSpeed:          1,
		ParryBonusDuration:   DefaultParryBonusDuration,
		ParryBonusMultiplier: block.ParryBonusMultiplier,
	}
}

func (c *PlayerCombat) IncreaseAttack(amount float64) {
	c.stats.Attack += amount
}

func (c *PlayerCombat) IncreaseAttackSpeed(amount float64) {
	c.stats.AttackSpeed += amount
}

func (c *PlayerCombat) IncreaseParryBonusDuration(amount float64) {
	c.stats.ParryBonusDuration += amount
}

func (c *PlayerCombat) IncreaseParryBonusMultiplier(amount float64) {
	c.stats.ParryBonusMultiplier += amount
}

// Export snapshots the persisted stats.
func (c *PlayerCombat) Export() Stats {
	return c.stats
}

// Import overwrites the persisted stats verbatim.
func (c *PlayerCombat) Import(s Stats) {
	c.stats = s
}
