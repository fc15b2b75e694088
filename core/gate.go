package core

// State is the interrupt mask state returned by InterruptGate.Disable.
// Its encoding belongs to the gate that produced it.
type State uintptr

// InterruptGate masks and unmasks interrupt delivery. It is used from
// foreground context only; handlers already run with their own source
// masked.
type InterruptGate interface {
	// Disable masks interrupts and returns the previous state.
	Disable() State
	// Restore returns the mask to a state obtained from Disable.
	Restore(state State)
}

// DefaultGate returns the gate for the platform the binary was built for.
func DefaultGate() InterruptGate {
	return platformGate{}
}

// Critical runs fn with interrupts masked. Calls may nest: an inner
// section restores the mask it found rather than unmasking outright.
func Critical(gate InterruptGate, fn func()) {
	state := gate.Disable()
	defer gate.Restore(state)
	fn()
}
