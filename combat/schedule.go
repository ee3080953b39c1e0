package combat

// timeEpsilon absorbs float drift when comparing accumulated frame times.
const timeEpsilon = 1e-9

type scheduledAction struct {
	due   float64
	seq   uint64
	valid func() bool
	run   func()
}

// Scheduler runs deferred actions against a clock advanced by frame ticks.
// An action whose validity check fails when it comes due is dropped.
type Scheduler struct {
	now     float64
	seq     uint64
	pending []*scheduledAction
}

// Now returns the accumulated game time.
func (s *Scheduler) Now() float64 {
	return s.now
}

// Pending returns the number of actions not yet due.
func (s *Scheduler) Pending() int {
	return len(s.pending)
}

// After schedules run to execute delay seconds from now. A non-positive delay
// runs on the next Advance. valid may be nil.
func (s *Scheduler) After(delay float64, valid func() bool, run func()) {
	if delay < 0 {
		delay = 0
	}
	s.seq++
	s.pending = append(s.pending, &scheduledAction{
		due:   s.now + delay,
		seq:   s.seq,
		valid: valid,
		run:   run,
	})
}

// Advance moves the clock forward and runs every action that came due, in
// due-time order.
func (s *Scheduler) Advance(dt float64) {
	if dt > 0 {
		s.now += dt
	}
	for {
		next := s.popDue()
		if next == nil {
			return
		}
		if next.valid == nil || next.valid() {
			next.run()
		}
	}
}

func (s *Scheduler) popDue() *scheduledAction {
	best := -1
	for i, a := range s.pending {
		if a.due > s.now+timeEpsilon {
			continue
		}
		if best < 0 || a.due < s.pending[best].due ||
			(a.due == s.pending[best].due && a.seq < s.pending[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}
	a := s.pending[best]
	s.pending = append(s.pending[:best], s.pending[best+1:]...)
	return a
}
