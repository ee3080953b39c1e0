package factory

import (
	"github.com/automoto/riposte/archetypes"
	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/shared/gamemath"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SpawnParryText pops the parry text over pos. It rises and fades out.
func SpawnParryText(ecs *ecs.ECS, pos gamemath.Vec2) *donburi.Entry {
	return SpawnFloatingText(ecs, pos, cfg.Combat.ParryText, cfg.Combat.ParryTextDuration, cfg.Combat.ParryTextRise)
}

func SpawnFloatingText(ecs *ecs.ECS, pos gamemath.Vec2, text string, duration, rise float64) *donburi.Entry {
	e := archetypes.FloatingText.Spawn(ecs)
	d := float32(duration)
	components.FloatingText.SetValue(e, components.FloatingTextData{
		Text:   text,
		Origin: pos,
		Rise:   gween.New(0, float32(rise), d, ease.OutQuad),
		Fade:   gween.New(1, 0, d, ease.InQuad),
		Alpha:  1,
	})
	components.AutoDestroy.SetValue(e, components.AutoDestroyData{Remaining: duration})
	return e
}
