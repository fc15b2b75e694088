package sim

// coreTimer is the machine's view as the MIPS CP0 Count/Compare pair
type coreTimer Machine

func (t *coreTimer) Count() uint32 {
	m := (*Machine)(t)
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.count
}

func (t *coreTimer) SetCount(count uint32) {
	m := (*Machine)(t)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.count = count
}

func (t *coreTimer) SetCompare(compare uint32) {
	m := (*Machine)(t)
	m.mu.Lock()
	defer m.mu.Unlock()
	m.compare = compare
}

// Compare returns the armed comparator value
func (m *Machine) Compare() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.compare
}

// Count returns the core timer counter
func (m *Machine) Count() uint32 {
	return m.Timer().Count()
}
