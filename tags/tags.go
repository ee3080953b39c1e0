package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Enemy  = donburi.NewTag().SetName("Enemy")
	Boss   = donburi.NewTag().SetName("Boss")
	Wall   = donburi.NewTag().SetName("Wall")
	Effect = donburi.NewTag().SetName("Effect")
)

// Resolv tags for collision queries
const (
	ResolvSolid           = "solid"
	ResolvPlayer          = "Player"
	ResolvEnemy           = "Enemy"
	ResolvEnemyProjectile = "EnemyProjectile"
)
