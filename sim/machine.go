// Package sim is a cycle-level model of the parts of a PIC32MZ board the
// HAL core drives: the MIPS core timer, the interrupt controller, UART2 and
// the global interrupt mask.
//
// Time only moves when Step is called, either directly (tests) or from Run
// (real time). The goroutine calling Step is the interrupt context: bound
// handlers run on it, one at a time, highest priority first. Any other
// goroutine using the HAL is the foreground.
package sim

import (
	"context"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"gopruino/core"
)

// Config describes the simulated board
type Config struct {
	// CPUFrequency in Hz. The core timer counts at half this rate.
	CPUFrequency uint32

	// DispatchLatency is the number of core timer counts between an
	// interrupt being taken and its handler reading the hardware.
	DispatchLatency uint32

	// TxFIFODepth and RxFIFODepth size the UART hardware buffers
	TxFIFODepth int
	RxFIFODepth int
}

// DefaultConfig returns a 200 MHz board with 8-deep UART FIFOs
func DefaultConfig() Config {
	return Config{
		CPUFrequency: core.DefaultCPUFrequency,
		TxFIFODepth:  8,
		RxFIFODepth:  8,
	}
}

// Machine is the simulated board
type Machine struct {
	cfg Config

	// mu guards every register below
	mu      sync.Mutex
	count   uint32
	compare uint32
	elapsed uint64

	// mask is held while interrupts are masked by the foreground or a
	// handler is running
	mask   sync.Mutex
	masked atomic.Bool

	irq  *Controller
	uart *UART
	gate *Gate

	line   io.Writer
	lineMu sync.Mutex
	out    []byte
}

// New creates a board in its power-on state
func New(cfg Config) *Machine {
	def := DefaultConfig()
	if cfg.CPUFrequency == 0 {
		cfg.CPUFrequency = def.CPUFrequency
	}
	if cfg.TxFIFODepth <= 0 {
		cfg.TxFIFODepth = def.TxFIFODepth
	}
	if cfg.RxFIFODepth <= 0 {
		cfg.RxFIFODepth = def.RxFIFODepth
	}

	m := &Machine{cfg: cfg}
	m.irq = newController(m)
	m.uart = newUART(m)
	m.gate = &Gate{m: m}
	m.powerOn()
	return m
}

func (m *Machine) powerOn() {
	m.count = 0
	m.compare = ^uint32(0)
	m.irq.reset()
	m.uart.reset()
}

// Hardware returns the board's peripherals for core.New
func (m *Machine) Hardware() core.Hardware {
	return core.Hardware{
		Timer: m.Timer(),
		UART:  m.uart,
		IRQ:   m.irq,
		Gate:  m.gate,
	}
}

// Timer returns the core timer
func (m *Machine) Timer() core.CoreTimer {
	return (*coreTimer)(m)
}

// IRQ returns the interrupt controller
func (m *Machine) IRQ() *Controller {
	return m.irq
}

// UART returns UART2
func (m *Machine) UART() *UART {
	return m.uart
}

// Gate returns the global interrupt mask
func (m *Machine) Gate() *Gate {
	return m.gate
}

// CountsPerSecond is the core timer rate
func (m *Machine) CountsPerSecond() uint64 {
	return uint64(m.cfg.CPUFrequency) / 2
}

// Elapsed returns the total core timer counts simulated since New
func (m *Machine) Elapsed() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// Reset returns every register to its power-on state. Bound handlers are
// kept, as a software reset does not rewrite the vector table.
func (m *Machine) Reset() {
	m.mu.Lock()
	m.powerOn()
	m.mu.Unlock()

	m.lineMu.Lock()
	m.out = m.out[:0]
	m.lineMu.Unlock()
}

// SetLine connects the far end of UART2's transmit line
func (m *Machine) SetLine(w io.Writer) {
	m.lineMu.Lock()
	m.line = w
	m.lineMu.Unlock()
}

// Inject delivers a byte to UART2's receiver as if it had arrived on the
// line. It returns false if the byte was lost to an overrun or a disabled
// receiver.
func (m *Machine) Inject(b byte) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.uart.receive(b)
}

// Step advances the core timer by counts, latching the compare match
// exactly when the counter reaches it and delivering pending interrupts
// after every match. Only one goroutine may step a machine.
func (m *Machine) Step(counts uint64) {
	for counts > 0 {
		m.mu.Lock()
		chunk := uint64(m.compare - m.count)
		if chunk == 0 {
			chunk = 1 << 32
		}
		if chunk > counts {
			chunk = counts
		}
		m.advanceLocked(chunk)
		m.mu.Unlock()

		counts -= chunk
		m.flushLine()
		m.deliver()
	}
}

// StepMicroseconds advances simulated time by us microseconds
func (m *Machine) StepMicroseconds(us uint64) {
	m.Step(us * m.CountsPerSecond() / 1000000)
}

// Run steps the machine in real time until ctx is done.
func (m *Machine) Run(ctx context.Context, interval time.Duration) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := time.Now()
	rate := m.CountsPerSecond()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case now := <-ticker.C:
			elapsed := now.Sub(last)
			last = now
			m.Step(uint64(elapsed) * rate / uint64(time.Second))
		}
	}
}

// Interrupt takes the vector of src immediately, whether or not its flag
// is set, as a spurious or mis-routed interrupt would.
func (m *Machine) Interrupt(src core.Source) {
	m.mu.Lock()
	handler := m.irq.handlers[src]
	m.mu.Unlock()
	if handler == nil {
		return
	}
	m.mask.Lock()
	defer m.mask.Unlock()
	handler()
}

// advanceLocked moves the counter forward, latching a compare match that
// falls inside the step and letting the UART progress.
func (m *Machine) advanceLocked(n uint64) {
	for n > 0 {
		step := n
		if step > 1<<32-1 {
			step = 1<<32 - 1
		}
		dist := m.compare - m.count
		if dist != 0 && uint64(dist) <= step {
			m.irq.latch(core.SourceCoreTimer)
		}
		m.count += uint32(step)
		m.elapsed += step
		m.uart.advance(step)
		n -= step
	}
}

// deliver runs handlers for enabled pending sources while the mask is
// open. Each source is taken at most once per call, so a handler that
// fails to acknowledge its flag cannot wedge the simulation.
func (m *Machine) deliver() {
	var served [numSources]bool
	for {
		m.mu.Lock()
		src, handler, ok := m.irq.next(&served)
		m.mu.Unlock()
		if !ok {
			return
		}
		if !m.mask.TryLock() {
			// Masked: flags stay latched until the foreground unmasks
			return
		}
		served[src] = true
		m.runHandler(handler)
		m.flushLine()
	}
}

func (m *Machine) runHandler(handler func()) {
	defer m.mask.Unlock()
	if m.cfg.DispatchLatency > 0 {
		m.mu.Lock()
		m.advanceLocked(uint64(m.cfg.DispatchLatency))
		m.mu.Unlock()
	}
	handler()
}

// emit queues a transmitted byte for the line. Called with mu held.
func (m *Machine) emit(b byte) {
	m.lineMu.Lock()
	m.out = append(m.out, b)
	m.lineMu.Unlock()
}

func (m *Machine) flushLine() {
	m.lineMu.Lock()
	defer m.lineMu.Unlock()
	if len(m.out) == 0 {
		return
	}
	if m.line != nil {
		_, _ = m.line.Write(m.out)
	}
	m.out = m.out[:0]
}
