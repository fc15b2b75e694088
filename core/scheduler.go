package core

// Timer represents a foreground event scheduled against the tick clock
type Timer struct {
	WakeTime Ticks
	Handler  func(*Timer) uint8
	Next     *Timer
}

const (
	SF_DONE       = 0
	SF_RESCHEDULE = 1
)

// Scheduler keeps foreground timers sorted by wake time. It is dispatched
// from the idle loop, never from interrupt context.
type Scheduler struct {
	gate      InterruptGate
	timerList *Timer
}

// NewScheduler creates an empty timer list guarded by gate
func NewScheduler(gate InterruptGate) *Scheduler {
	if gate == nil {
		gate = DefaultGate()
	}
	return &Scheduler{gate: gate}
}

// Schedule adds a timer to the schedule
func (s *Scheduler) Schedule(t *Timer) {
	Critical(s.gate, func() {
		s.insertTimer(t)
	})
}

// insertTimer inserts a timer in sorted order by WakeTime
func (s *Scheduler) insertTimer(t *Timer) {
	if s.timerList == nil || t.WakeTime < s.timerList.WakeTime {
		t.Next = s.timerList
		s.timerList = t
		return
	}

	current := s.timerList
	for current.Next != nil && current.Next.WakeTime <= t.WakeTime {
		current = current.Next
	}

	t.Next = current.Next
	current.Next = t
}

// popDue removes and returns the first timer due at now, or nil
func (s *Scheduler) popDue(now Ticks) *Timer {
	var timer *Timer
	Critical(s.gate, func() {
		if s.timerList != nil && s.timerList.WakeTime <= now {
			timer = s.timerList
			s.timerList = timer.Next
			timer.Next = nil // Clear Next pointer to avoid circular references
		}
	})
	return timer
}

// Dispatch runs every timer due at now. Handlers run with interrupts
// enabled; a handler that returns SF_RESCHEDULE must have advanced its
// WakeTime or it runs again in the same pass.
func (s *Scheduler) Dispatch(now Ticks) {
	for {
		timer := s.popDue(now)
		if timer == nil {
			return
		}
		if timer.Handler(timer) == SF_RESCHEDULE {
			s.Schedule(timer)
		}
	}
}

// Len returns the number of scheduled timers
func (s *Scheduler) Len() int {
	n := 0
	Critical(s.gate, func() {
		for t := s.timerList; t != nil; t = t.Next {
			n++
		}
	})
	return n
}

// Reset drops every scheduled timer
func (s *Scheduler) Reset() {
	Critical(s.gate, func() {
		for t := s.timerList; t != nil; {
			next := t.Next
			t.Next = nil
			t = next
		}
		s.timerList = nil
	})
}
