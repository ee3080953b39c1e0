package components

import "github.com/yohamta/donburi"

// DamageEventData is pending damage for this frame. Hits landing in the same
// frame add up.
type DamageEventData struct {
	Amount float64
	Hits   int
}

var DamageEvent = donburi.NewComponentType[DamageEventData]()
