package binding

import (
	"github.com/automoto/riposte/combat"
	"github.com/automoto/riposte/shared/gamemath"
	"github.com/automoto/riposte/tags"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

var layerTags = []struct {
	layer combat.LayerMask
	tag   string
}{
	{combat.LayerPlayer, tags.ResolvPlayer},
	{combat.LayerEnemy, tags.ResolvEnemy},
	{combat.LayerEnemyProjectile, tags.ResolvEnemyProjectile},
}

// TagsFor lists the resolv tags selected by a layer mask.
func TagsFor(mask combat.LayerMask) []string {
	var out []string
	for _, lt := range layerTags {
		if mask.Has(lt.layer) {
			out = append(out, lt.tag)
		}
	}
	return out
}

// Query runs circle queries against a resolv space: the space's cells pick
// the candidates, then each candidate's box is tested against the circle.
type Query struct {
	space *resolv.Space
}

var (
	_ combat.DamageDispatcher = (*Query)(nil)
	_ combat.OverlapTester    = (*Query)(nil)
)

func NewQuery(space *resolv.Space) *Query {
	return &Query{space: space}
}

// Circle returns the objects on the mask's layers touching the circle.
func (q *Query) Circle(center gamemath.Vec2, radius float64, mask combat.LayerMask) []*resolv.Object {
	if q == nil || q.space == nil || radius <= 0 {
		return nil
	}
	want := TagsFor(mask)
	if len(want) == 0 {
		return nil
	}

	b := gamemath.CircleBounds(center, radius)
	probe := resolv.NewObject(b.X, b.Y, b.W, b.H)
	q.space.Add(probe)
	check := probe.Check(0, 0)
	q.space.Remove(probe)
	if check == nil {
		return nil
	}

	var hits []*resolv.Object
	seen := make(map[*resolv.Object]bool, len(check.Objects))
	for _, o := range check.Objects {
		if o == probe || seen[o] || !o.HasTags(want...) {
			continue
		}
		seen[o] = true
		if gamemath.CircleIntersectsRect(center, radius, gamemath.Rect{X: o.X, Y: o.Y, W: o.W, H: o.H}) {
			hits = append(hits, o)
		}
	}
	return hits
}

// DamageCircleAll queues amount on every damageable entity in the circle.
func (q *Query) DamageCircleAll(center gamemath.Vec2, radius float64, mask combat.LayerMask, amount float64) {
	for _, o := range q.Circle(center, radius, mask) {
		if e, ok := o.Data.(*donburi.Entry); ok {
			AddDamage(e, amount)
		}
	}
}

func (q *Query) TestOverlapCircle(center gamemath.Vec2, radius float64, mask combat.LayerMask) bool {
	return len(q.Circle(center, radius, mask)) > 0
}
