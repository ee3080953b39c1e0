package systems

import (
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateEffects advances floating text tweens and destroys expired effects.
func UpdateEffects(ecs *ecs.ECS) {
	dt := cfg.C.DeltaTime()
	components.FloatingText.Each(ecs.World, func(e *donburi.Entry) {
		ft := components.FloatingText.Get(e)
		if ft.Rise != nil {
			v, _ := ft.Rise.Update(float32(dt))
			ft.OffsetY = float64(v)
		}
		if ft.Fade != nil {
			v, _ := ft.Fade.Update(float32(dt))
			ft.Alpha = float64(v)
		}
	})
	updateAutoDestroy(ecs, dt)
}

func updateAutoDestroy(ecs *ecs.ECS, dt float64) {
	var toDestroy []*donburi.Entry
	components.AutoDestroy.Each(ecs.World, func(e *donburi.Entry) {
		ad := components.AutoDestroy.Get(e)
		ad.Remaining = countdown(ad.Remaining, dt)
		if ad.Remaining == 0 {
			toDestroy = append(toDestroy, e)
		}
	})
	for _, e := range toDestroy {
		removeEntity(ecs, e)
	}
}
