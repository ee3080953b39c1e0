package config

import (
	_ "embed"
	"fmt"

	"github.com/automoto/riposte/combat"
	"gopkg.in/yaml.v3"
)

//go:embed data/combat.yaml
var combatYAML []byte

var definitions combat.Definitions

func init() {
	defs, err := LoadDefinitions(combatYAML)
	if err != nil {
		panic(fmt.Sprintf("embedded combat definitions: %v", err))
	}
	definitions = defs
}

// Definitions returns the player move set loaded at startup.
func Definitions() combat.Definitions {
	return definitions
}

// LoadDefinitions parses and validates a YAML move set.
func LoadDefinitions(data []byte) (combat.Definitions, error) {
	var defs combat.Definitions
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return combat.Definitions{}, fmt.Errorf("failed to parse combat definitions: %w", err)
	}
	if err := validateDefinitions(&defs); err != nil {
		return combat.Definitions{}, fmt.Errorf("invalid combat definitions: %w", err)
	}
	return defs, nil
}

func validateDefinitions(defs *combat.Definitions) error {
	if len(defs.Attacks) == 0 {
		return fmt.Errorf("at least one attack is required")
	}
	for i, a := range defs.Attacks {
		if a.Name == "" {
			return fmt.Errorf("attack %d: name is required", i)
		}
		if a.Duration <= 0 {
			return fmt.Errorf("attack %s: duration must be positive, got %v", a.Name, a.Duration)
		}
		if a.TimeBeforeHit < 0 || a.TimeBeforeHit > a.Duration {
			return fmt.Errorf("attack %s: timeBeforeHit must be within [0, %v], got %v", a.Name, a.Duration, a.TimeBeforeHit)
		}
		if a.HurtboxRadius <= 0 {
			return fmt.Errorf("attack %s: hurtboxRadius must be positive, got %v", a.Name, a.HurtboxRadius)
		}
	}

	b := defs.Block
	if b.Name == "" || b.ParryName == "" {
		return fmt.Errorf("block: name and parryName are required")
	}
	if b.BlockDuration <= 0 {
		return fmt.Errorf("block: blockDuration must be positive, got %v", b.BlockDuration)
	}
	if b.ParryDuration < 0 {
		return fmt.Errorf("block: parryDuration cannot be negative, got %v", b.ParryDuration)
	}
	if b.HurtboxRadius <= 0 {
		return fmt.Errorf("block: hurtboxRadius must be positive, got %v", b.HurtboxRadius)
	}
	if b.ParryBonusMultiplier < 1 {
		return fmt.Errorf("block: parryBonusMultiplier must be at least 1, got %v", b.ParryBonusMultiplier)
	}
	return nil
}

// EnemyType looks up an enemy type by name.
func EnemyType(name string) (EnemyTypeConfig, bool) {
	t, ok := Enemy.Types[name]
	return t, ok
}
