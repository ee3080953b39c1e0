package combat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStats(t *testing.T) {
	s := NewStats(10, testDefinitions().Block)
	assert.Equal(t, Stats{Attack: 10, AttackSpeed: 1, ParryBonusDuration: 3, ParryBonusMultiplier: 1.5}, s)
}

func TestUpgrades_AreAdditive(t *testing.T) {
	c := newTestCombat(newRecorder())

	c.IncreaseAttack(5)
	c.IncreaseAttack(2.5)
	c.IncreaseAttackSpeed(0.5)
	c.IncreaseParryBonusDuration(-1)
	c.IncreaseParryBonusMultiplier(0.25)

	assert.Equal(t, Stats{Attack: 17.5, AttackSpeed: 1.5, ParryBonusDuration: 2, ParryBonusMultiplier: 1.75}, c.Export())
}

func TestExportImport(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
	}{
		{"defaults", NewStats(10, testDefinitions().Block)},
		{"upgraded", Stats{Attack: 42, AttackSpeed: 2.25, ParryBonusDuration: 4.5, ParryBonusMultiplier: 3}},
		{"zero", Stats{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestCombat(newRecorder())
			c.Import(tt.stats)
			assert.Equal(t, tt.stats, c.Export())

			other := newTestCombat(newRecorder())
			other.Import(c.Export())
			assert.Equal(t, c.Export(), other.Export())
		})
	}
}

func TestImport_AffectsNextAttack(t *testing.T) {
	r := newRecorder()
	c := newTestCombat(r)
	c.Import(Stats{Attack: 3, AttackSpeed: 2, ParryBonusDuration: 1, ParryBonusMultiplier: 2})

	c.Attack()
	c.Tick(frame)
	assert.Equal(t, []float64{0.25}, r.lockouts)
	assert.Equal(t, 3.0, r.damage[0].amount)
}
