package sim

import "gopruino/core"

const numSources = 256

// Controller is the interrupt controller: one pending flag, enable bit,
// priority and vector per source.
type Controller struct {
	m        *Machine
	flags    [numSources]bool
	enabled  [numSources]bool
	priority [numSources]core.Priority
	sub      [numSources]uint8
	handlers [numSources]func()

	// level sources re-latch on clear while their condition holds
	level [numSources]func() bool
}

func newController(m *Machine) *Controller {
	return &Controller{m: m}
}

func (c *Controller) reset() {
	c.flags = [numSources]bool{}
	c.enabled = [numSources]bool{}
	c.priority = [numSources]core.Priority{}
	c.sub = [numSources]uint8{}
}

// SourceFlag implements core.InterruptController
func (c *Controller) SourceFlag(src core.Source) bool {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return c.flags[src]
}

// ClearSourceFlag implements core.InterruptController
func (c *Controller) ClearSourceFlag(src core.Source) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.flags[src] = false
	if cond := c.level[src]; cond != nil && cond() {
		c.flags[src] = true
	}
}

// EnableSource implements core.InterruptController
func (c *Controller) EnableSource(src core.Source, priority core.Priority, subPriority uint8) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.enabled[src] = true
	c.priority[src] = priority
	c.sub[src] = subPriority
}

// DisableSource masks src
func (c *Controller) DisableSource(src core.Source) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.enabled[src] = false
}

// Bind implements core.InterruptController
func (c *Controller) Bind(src core.Source, handler func()) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.handlers[src] = handler
}

// Raise sets the pending flag of src, as the peripheral would
func (c *Controller) Raise(src core.Source) {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	c.latch(src)
}

// Enabled reports whether src is unmasked
func (c *Controller) Enabled(src core.Source) bool {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return c.enabled[src]
}

// Priority returns the priority src was enabled at
func (c *Controller) Priority(src core.Source) core.Priority {
	c.m.mu.Lock()
	defer c.m.mu.Unlock()
	return c.priority[src]
}

// latch sets a flag. Called with mu held.
func (c *Controller) latch(src core.Source) {
	c.flags[src] = true
}

// next picks the highest priority enabled, pending, bound source not yet
// served. Ties go to the higher sub-priority, then the lower vector.
// Called with mu held.
func (c *Controller) next(served *[numSources]bool) (core.Source, func(), bool) {
	best := -1
	for i := 0; i < numSources; i++ {
		if served[i] || !c.flags[i] || !c.enabled[i] || c.handlers[i] == nil {
			continue
		}
		if best < 0 || c.priority[i] > c.priority[best] ||
			(c.priority[i] == c.priority[best] && c.sub[i] > c.sub[best]) {
			best = i
		}
	}
	if best < 0 {
		return 0, nil, false
	}
	return core.Source(best), c.handlers[best], true
}
