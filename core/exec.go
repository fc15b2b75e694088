package core

import "sync/atomic"

// Exec flag bits shared between the receive interrupt, the tick interrupt
// and the interpreter.
const (
	ExecCtrlC       uint32 = 1 << 0
	ExecCtrlCWait   uint32 = 1 << 1
	ExecInterrupted uint32 = 1 << 2
)

// ExecState carries the delayed break request. A Ctrl-C first sets
// ExecCtrlC; the next tick turns it into ExecCtrlCWait and the tick after
// that into ExecInterrupted, giving the interpreter a short window to
// consume the character itself.
type ExecState struct {
	flags atomic.Uint32
}

// RequestBreak records a Ctrl-C. Safe from interrupt context.
func (e *ExecState) RequestBreak() {
	e.flags.Or(ExecCtrlC)
}

// OnTick advances the break request by one step. It runs as a clock tick
// hook.
func (e *ExecState) OnTick() {
	for {
		old := e.flags.Load()
		next := old
		if next&ExecCtrlCWait != 0 {
			next = next&^ExecCtrlCWait | ExecInterrupted
		}
		if next&ExecCtrlC != 0 {
			next = next&^ExecCtrlC | ExecCtrlCWait
		}
		if next == old || e.flags.CompareAndSwap(old, next) {
			return
		}
	}
}

// Flags returns the raw flag word
func (e *ExecState) Flags() uint32 {
	return e.flags.Load()
}

// Interrupted reports whether a break has matured
func (e *ExecState) Interrupted() bool {
	return e.flags.Load()&ExecInterrupted != 0
}

// Clear drops any pending or matured break
func (e *ExecState) Clear() {
	e.flags.And(^(ExecCtrlC | ExecCtrlCWait | ExecInterrupted))
}
