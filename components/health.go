package components

import (
	"github.com/automoto/riposte/combat"
	"github.com/yohamta/donburi"
)

// Bar is the display side of a health value. It lives on the heap so the
// health core can keep reporting to it while the entity changes archetype.
type Bar struct {
	Current    float64
	Max        float64
	Visible    bool
	TimeToLive float64 // seconds left for timed bars, 0 = not timed
}

func (b *Bar) SetHealth(current, max float64) {
	b.Current, b.Max = current, max
}

func (b *Bar) SetVisible(v bool) {
	b.Visible = v
}

// Show makes a timed bar visible for d seconds.
func (b *Bar) Show(d float64) {
	b.Visible = true
	b.TimeToLive = d
}

// Ratio is the filled share of the bar in [0, 1].
func (b *Bar) Ratio() float64 {
	if b.Max <= 0 {
		return 0
	}
	return b.Current / b.Max
}

var _ combat.BossHealthBar = (*Bar)(nil)

type HealthData struct {
	combat.Damageable
}

// HealthBarData is the small bar drawn over a regular enemy after a hit.
type HealthBarData struct {
	*Bar
}

// BossBarData is the screen-wide boss bar. There is at most one.
type BossBarData struct {
	Name string
	*Bar
}

var Health = donburi.NewComponentType[HealthData]()
var HealthBar = donburi.NewComponentType[HealthBarData]()
var BossBar = donburi.NewComponentType[BossBarData]()
