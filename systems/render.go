package systems

import (
	"fmt"
	"image/color"

	"github.com/automoto/riposte/components"
	cfg "github.com/automoto/riposte/config"
	"github.com/automoto/riposte/shared/gamemath"
	"github.com/automoto/riposte/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// DrawBodies draws every collision body as a filled box. Sprites are out of
// scope for the arena; the boxes are the characters.
func DrawBodies(ecs *ecs.ECS, screen *ebiten.Image) {
	components.Object.Each(ecs.World, func(e *donburi.Entry) {
		o := components.Object.Get(e)
		var c color.Color = cfg.DarkGray
		switch {
		case e.HasComponent(tags.Player):
			c = cfg.LightBlue
			if e.HasComponent(components.Combat) && components.Combat.Get(e).Blocking() {
				c = cfg.Yellow
			}
		case e.HasComponent(tags.Enemy):
			c = cfg.LightRed
			if enemy := components.Enemy.Get(e); enemy.TypeConfig != nil {
				c = enemy.TypeConfig.TintColor
			}
		}
		if e.HasComponent(components.Death) {
			c = cfg.Red
		}
		vector.DrawFilledRect(screen, float32(o.X), float32(o.Y), float32(o.W), float32(o.H), c, false)
	})
}

func DrawHealthBars(ecs *ecs.ECS, screen *ebiten.Image) {
	components.HealthBar.Each(ecs.World, func(e *donburi.Entry) {
		bar := components.HealthBar.Get(e)
		if bar.Bar == nil || !bar.Visible || !e.HasComponent(components.Object) {
			return
		}
		o := components.Object.Get(e)

		barWidth := 32.0
		barHeight := 4.0
		// Position the bar above the entity's collision box
		barX := o.X + (o.W-barWidth)/2
		barY := o.Y - barHeight - 4

		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth), float32(barHeight), cfg.Red, false)
		vector.DrawFilledRect(screen, float32(barX), float32(barY), float32(barWidth*bar.Ratio()), float32(barHeight), cfg.Green, false)
	})
}

// DrawBossBar draws the screen-wide bar while a boss is alive.
func DrawBossBar(ecs *ecs.ECS, screen *ebiten.Image) {
	entry, ok := components.BossBar.First(ecs.World)
	if !ok {
		return
	}
	bar := components.BossBar.Get(entry)
	if bar.Bar == nil || !bar.Visible {
		return
	}
	w := float64(cfg.C.Width) * 0.6
	x := (float64(cfg.C.Width) - w) / 2
	y := float64(cfg.C.Height) - 24

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), 8, cfg.Red, false)
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w*bar.Ratio()), 8, cfg.Purple, false)
	ebitenutil.DebugPrintAt(screen, bar.Name, int(x), int(y)-16)
}

func DrawFloatingText(ecs *ecs.ECS, screen *ebiten.Image) {
	components.FloatingText.Each(ecs.World, func(e *donburi.Entry) {
		ft := components.FloatingText.Get(e)
		if ft.Alpha <= 0.05 {
			return
		}
		ebitenutil.DebugPrintAt(screen, ft.Text, int(ft.Origin.X)-len(ft.Text)*3, int(ft.Origin.Y-ft.OffsetY)-24)
	})
}

// DrawHUD prints the player's combat state in the top-left corner.
func DrawHUD(ecs *ecs.ECS, screen *ebiten.Image) {
	playerEntry, ok := components.Player.First(ecs.World)
	if !ok || !playerEntry.HasComponent(components.Combat) {
		return
	}
	c := components.Combat.Get(playerEntry)
	hp := components.Health.Get(playerEntry)
	stats := c.Export()

	anim := ""
	if playerEntry.HasComponent(components.Animator) {
		anim = components.Animator.Get(playerEntry).Current
	}

	msg := fmt.Sprintf(
		"HP %.0f/%.0f  anim %s\n"+
			"combo %d (%s) window %.2f\n"+
			"block cd %.2f  parry x%.2f %.2fs\n"+
			"atk %.1f  spd %.2f  bonus %.2fs x%.2f\n"+
			"[1-4] upgrade  [E] spawn  [F3] hurtboxes",
		hp.Current(), hp.Max(), anim,
		c.SequenceIndex(), c.Phase(), c.ComboWindowRemaining(),
		c.BlockCooldownRemaining(), c.ParryMultiplier(), c.ParryBonusRemaining(),
		stats.Attack, stats.AttackSpeed, stats.ParryBonusDuration, stats.ParryBonusMultiplier,
	)
	ebitenutil.DebugPrintAt(screen, msg, 4, 4)
}

// DrawHurtboxes outlines the next attack's hurtbox and the parry circle
// along the current aim.
func DrawHurtboxes(ecs *ecs.ECS, screen *ebiten.Image) {
	if !cfg.Debug.ShowHurtboxes {
		return
	}
	components.Combat.Each(ecs.World, func(e *donburi.Entry) {
		c := components.Combat.Get(e)
		defs := c.Definitions()
		if len(defs.Attacks) == 0 || !e.HasComponent(components.Player) {
			return
		}
		center := components.Object.Get(e).Center().Add(c.Settings().CenterOffset)
		aim := components.Player.Get(e).Aim
		vector.StrokeLine(screen, float32(center.X), float32(center.Y), float32(aim.X), float32(aim.Y), 1, cfg.White, false)

		dir := gamemath.Direction(center, aim)
		attack := defs.Attacks[c.SequenceIndex()]
		hit := center.Add(attack.HurtboxOffset.Hadamard(dir))
		vector.StrokeCircle(screen, float32(hit.X), float32(hit.Y), float32(attack.HurtboxRadius), 1, cfg.Red, false)

		parry := center.Add(defs.Block.HurtboxOffset.Hadamard(dir))
		vector.StrokeCircle(screen, float32(parry.X), float32(parry.Y), float32(defs.Block.HurtboxRadius), 1, cfg.Yellow, false)
	})
}
