package components

import (
	"github.com/automoto/riposte/ai"
	"github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
)

type EnemyData struct {
	TypeName   string                  // "SpearSkeleton", "Slime", ...
	TypeConfig *config.EnemyTypeConfig // Cached reference to type configuration
	Mover      ai.Mover

	// Contact attack
	AttackCooldown float64 // seconds until it can hit again
}

var Enemy = donburi.NewComponentType[EnemyData]()
