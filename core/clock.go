package core

import (
	"sync/atomic"
	"time"
)

// Ticks is a count of system ticks. One tick is one microsecond.
type Ticks int64

const (
	TicksPerMicrosecond = 1
	TicksPerMillisecond = 1000 * TicksPerMicrosecond
	TicksPerSecond      = 1000 * TicksPerMillisecond

	// The core timer counts at half the CPU clock.
	coreTimerDivider = 2
)

// PeriodForCPU returns the number of core timer counts in one tick for the
// given CPU frequency.
func PeriodForCPU(cpuHz uint32) uint32 {
	return cpuHz / (coreTimerDivider * TicksPerSecond)
}

// TicksFromMilliseconds converts milliseconds to ticks
func TicksFromMilliseconds(ms float64) Ticks {
	return Ticks(ms * TicksPerMillisecond)
}

// MillisecondsFromTicks converts ticks to milliseconds
func MillisecondsFromTicks(t Ticks) float64 {
	return float64(t) / TicksPerMillisecond
}

// Clock is the monotonic tick counter driven by the core timer interrupt.
//
// The counter is written by OnTick (interrupt context) and by SetTime
// (foreground, under the gate). Every other access is a read.
type Clock struct {
	timer  CoreTimer
	irq    InterruptController
	gate   InterruptGate
	period uint32
	ticks  atomic.Int64
	hooks  []func()
}

// NewClock creates a clock that fires every period core timer counts.
func NewClock(timer CoreTimer, irq InterruptController, gate InterruptGate, period uint32) *Clock {
	if gate == nil {
		gate = DefaultGate()
	}
	if period == 0 {
		period = 1
	}
	return &Clock{
		timer:  timer,
		irq:    irq,
		gate:   gate,
		period: period,
	}
}

// AddTickHook registers fn to run on every tick, in interrupt context.
// Hooks must not block or allocate. Register them before Init.
func (c *Clock) AddTickHook(fn func()) {
	c.hooks = append(c.hooks, fn)
}

// Period returns the tick period in core timer counts
func (c *Clock) Period() uint32 {
	return c.period
}

// Init zeroes the counter, arms the comparator one period ahead and
// unmasks the core timer interrupt.
func (c *Clock) Init() {
	c.ticks.Store(0)
	c.timer.SetCount(0)
	c.timer.SetCompare(c.period)
	c.irq.ClearSourceFlag(SourceCoreTimer)
	c.irq.EnableSource(SourceCoreTimer, CoreTimerPriority, 0)
}

// Now returns the current tick count
func (c *Clock) Now() Ticks {
	return Ticks(c.ticks.Load())
}

// Uptime returns the tick count as a duration
func (c *Clock) Uptime() time.Duration {
	return time.Duration(c.Now()) * (time.Second / TicksPerSecond)
}

// SetTime overwrites the tick counter and restarts the current period. A
// tick already pending is discarded.
// Anything layered on top that assumes time only moves forward will see a
// jump, so this is for rare resynchronisation only.
func (c *Clock) SetTime(t Ticks) {
	Critical(c.gate, func() {
		c.ticks.Store(int64(t))
		c.timer.SetCount(0)
		c.timer.SetCompare(c.period)
		c.irq.ClearSourceFlag(SourceCoreTimer)
	})
	RecordTiming(EvtSetTime, 0, t, 0, 0)
}

// OnTick is the core timer interrupt handler.
//
// The counter is sampled before the flag is cleared and the next deadline
// is derived from that sample, not from the previous deadline. Handler
// latency therefore delays the next tick but never shortens a period or
// accumulates.
func (c *Clock) OnTick() {
	old := c.timer.Count()
	c.ticks.Add(1)
	for _, fn := range c.hooks {
		fn()
	}
	c.irq.ClearSourceFlag(SourceCoreTimer)
	c.timer.SetCompare(old + c.period)
}
