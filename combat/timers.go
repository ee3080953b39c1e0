package combat

// Timer counts down once per tick and calls its expiry hook on the tick it
// reaches zero.
type Timer struct {
	name       string
	remaining  float64
	expireNext bool
	onExpire   func()
}

func (t *Timer) Name() string {
	return t.name
}

func (t *Timer) Remaining() float64 {
	return t.remaining
}

func (t *Timer) Active() bool {
	return t.remaining > 0
}

// Set restarts the countdown. A zero duration expires on the next tick.
func (t *Timer) Set(seconds float64) {
	if seconds <= timeEpsilon {
		t.remaining = 0
		t.expireNext = true
		return
	}
	t.remaining = seconds
	t.expireNext = false
}

// TimerBank holds the per-combatant cooldowns.
type TimerBank struct {
	timers []*Timer
}

// Add registers a new idle timer. onExpire may be nil.
func (b *TimerBank) Add(name string, onExpire func()) *Timer {
	t := &Timer{name: name, onExpire: onExpire}
	b.timers = append(b.timers, t)
	return t
}

// Tick decrements every running timer by dt, clamping at zero.
func (b *TimerBank) Tick(dt float64) {
	for _, t := range b.timers {
		if t.remaining <= 0 && !t.expireNext {
			continue
		}
		t.remaining -= dt
		if t.remaining > timeEpsilon && !t.expireNext {
			continue
		}
		t.remaining = 0
		t.expireNext = false
		if t.onExpire != nil {
			t.onExpire()
		}
	}
}
