//go:build !tinygo

package core

import "sync/atomic"

// interruptsMasked tracks the mask on regular Go, where there is nothing to
// mask. Simulated hardware supplies its own gate.
var interruptsMasked atomic.Bool

const (
	stateEnabled  State = 0
	stateDisabled State = 1
)

type platformGate struct{}

// Disable records the mask (regular Go, for testing)
func (platformGate) Disable() State {
	if interruptsMasked.Swap(true) {
		return stateDisabled
	}
	return stateEnabled
}

// Restore records the restored mask (regular Go, for testing)
func (platformGate) Restore(state State) {
	interruptsMasked.Store(state == stateDisabled)
}
