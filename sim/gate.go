package sim

import "gopruino/core"

const (
	stateEnabled  core.State = 0
	stateDisabled core.State = 1
)

// Gate is the global interrupt enable. Masking waits for a running
// handler to return; while masked, flags latch but no handler runs.
// It belongs to the foreground: handlers must not use it.
type Gate struct {
	m *Machine
}

// Disable implements core.InterruptGate
func (g *Gate) Disable() core.State {
	if g.m.masked.Load() {
		return stateDisabled
	}
	g.m.mask.Lock()
	g.m.masked.Store(true)
	return stateEnabled
}

// Restore implements core.InterruptGate
func (g *Gate) Restore(state core.State) {
	if state == stateDisabled {
		g.Disable()
		return
	}
	if g.m.masked.CompareAndSwap(true, false) {
		g.m.mask.Unlock()
	}
}

// Masked reports whether the foreground has interrupts masked
func (g *Gate) Masked() bool {
	return g.m.masked.Load()
}
