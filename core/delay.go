package core

// DelayMicroseconds spins until us ticks have elapsed. It never yields:
// the CPU is busy for the whole delay. Zero or negative delays return at
// once. Resolution is one tick, so partial ticks round up.
func (c *Clock) DelayMicroseconds(us int) {
	start := c.Now()
	if us <= 0 {
		return
	}
	deadline := start + Ticks(us)*TicksPerMicrosecond
	for c.Now() < deadline {
	}
}
