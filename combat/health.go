package combat

// HealthBar displays a health value. Implementations decide how.
type HealthBar interface {
	SetHealth(current, max float64)
}

// BossHealthBar is the screen-wide bar shown only while a boss is alive.
type BossHealthBar interface {
	HealthBar
	SetVisible(visible bool)
}

// Damageable is anything that can lose and regain health.
type Damageable interface {
	TakeDamage(amount float64)
	Heal(amount float64)
	Current() float64
	Max() float64
	Dead() bool
}

// Health is the common damageable core. Values are clamped to [0, max].
type Health struct {
	current float64
	max     float64
	bar     HealthBar
}

var _ Damageable = (*Health)(nil)

// NewHealth starts at full health and pushes the value to bar (may be nil).
func NewHealth(max float64, bar HealthBar) *Health {
	h := &Health{current: max, max: max, bar: bar}
	h.refresh()
	return h
}

func (h *Health) TakeDamage(amount float64) {
	h.change(-amount)
}

func (h *Health) Heal(amount float64) {
	h.change(amount)
}

func (h *Health) Current() float64 { return h.current }
func (h *Health) Max() float64     { return h.max }
func (h *Health) Dead() bool       { return h.current <= 0 }

func (h *Health) change(amount float64) {
	h.current += amount
	if h.current < 0 {
		h.current = 0
	}
	if h.current > h.max {
		h.current = h.max
	}
	h.refresh()
}

func (h *Health) refresh() {
	if h.bar != nil {
		h.bar.SetHealth(h.current, h.max)
	}
}

// BossHealth shows the boss bar on spawn and hides it once the boss is dead.
type BossHealth struct {
	*Health
	bar BossHealthBar
}

var _ Damageable = (*BossHealth)(nil)

func NewBossHealth(max float64, bar BossHealthBar) *BossHealth {
	b := &BossHealth{bar: bar}
	if bar != nil {
		bar.SetVisible(true)
		b.Health = NewHealth(max, bar)
	} else {
		b.Health = NewHealth(max, nil)
	}
	return b
}

func (b *BossHealth) TakeDamage(amount float64) {
	b.Health.TakeDamage(amount)
	if b.current == 0 && b.bar != nil {
		b.bar.SetVisible(false)
	}
}
