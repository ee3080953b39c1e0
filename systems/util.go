package systems

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"
)

// entriesWith snapshots the entries holding c, so a system can change
// archetypes while it walks them.
func entriesWith(w donburi.World, c donburi.IComponentType) []*donburi.Entry {
	var out []*donburi.Entry
	donburi.NewQuery(filter.Contains(c)).Each(w, func(e *donburi.Entry) {
		out = append(out, e)
	})
	return out
}

func countdown(v, dt float64) float64 {
	v -= dt
	if v < 0 {
		return 0
	}
	return v
}
