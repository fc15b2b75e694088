//go:build tinygo

package core

import "runtime/interrupt"

type platformGate struct{}

// Disable disables interrupts and returns the previous state
func (platformGate) Disable() State {
	return State(interrupt.Disable())
}

// Restore restores the interrupt state
func (platformGate) Restore(state State) {
	interrupt.Restore(interrupt.State(state))
}
