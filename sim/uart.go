package sim

import "gopruino/core"

// UART is the simulated UART2. Bytes written to it wait in the transmit
// FIFO and leave through the shift register at the configured baud rate.
// Received bytes wait in the receive FIFO; the receive flag stays latched
// while it is not empty.
type UART struct {
	m *Machine

	enabled bool
	cfg     core.SerialConfig

	tx         []byte
	shifting   bool
	shiftByte  byte
	shiftLeft  uint64
	perByte    uint64
	txOverruns uint32

	rx     []byte
	errors uint32
}

func newUART(m *Machine) *UART {
	u := &UART{m: m}
	m.irq.level[core.SourceUART2Receive] = func() bool { return len(u.rx) > 0 }
	return u
}

func (u *UART) reset() {
	u.enabled = false
	u.cfg = core.SerialConfig{}
	u.tx = u.tx[:0]
	u.shifting = false
	u.shiftLeft = 0
	u.perByte = 0
	u.rx = u.rx[:0]
	u.errors = 0
}

// Enable implements core.UART
func (u *UART) Enable(cfg core.SerialConfig) {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	u.enabled = true
	u.cfg = cfg
	u.perByte = 1
	if cfg.BaudRate > 0 {
		u.perByte = u.m.CountsPerSecond() * uint64(cfg.BitsPerFrame()) / uint64(cfg.BaudRate)
	}
	if u.perByte == 0 {
		u.perByte = 1
	}
}

// Enabled implements core.UART
func (u *UART) Enabled() bool {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	return u.enabled
}

// Config returns the frame format the UART was enabled with
func (u *UART) Config() core.SerialConfig {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	return u.cfg
}

// TransmitterFull implements core.UART
func (u *UART) TransmitterFull() bool {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	return len(u.tx) >= u.m.cfg.TxFIFODepth
}

// TransmitByte implements core.UART. A write to a full FIFO is lost.
func (u *UART) TransmitByte(b byte) {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	if !u.enabled {
		return
	}
	if len(u.tx) >= u.m.cfg.TxFIFODepth {
		u.txOverruns++
		return
	}
	u.tx = append(u.tx, b)
}

// ReceiverDataAvailable implements core.UART
func (u *UART) ReceiverDataAvailable() bool {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	return len(u.rx) > 0
}

// ReceiveByte implements core.UART. It returns 0 when the FIFO is empty.
func (u *UART) ReceiveByte() byte {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	if len(u.rx) == 0 {
		return 0
	}
	b := u.rx[0]
	u.rx = append(u.rx[:0], u.rx[1:]...)
	return b
}

// TakeErrors implements core.UART
func (u *UART) TakeErrors() uint32 {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	n := u.errors
	u.errors = 0
	return n
}

// TxPending returns the bytes in the transmit FIFO and shift register
func (u *UART) TxPending() int {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	n := len(u.tx)
	if u.shifting {
		n++
	}
	return n
}

// TxOverruns returns how many writes hit a full transmit FIFO
func (u *UART) TxOverruns() uint32 {
	u.m.mu.Lock()
	defer u.m.mu.Unlock()
	return u.txOverruns
}

// receive accepts a byte from the line. Called with mu held.
func (u *UART) receive(b byte) bool {
	if !u.enabled {
		return false
	}
	if len(u.rx) >= u.m.cfg.RxFIFODepth {
		u.errors++
		u.m.irq.latch(core.SourceUART2Error)
		return false
	}
	u.rx = append(u.rx, b)
	u.m.irq.latch(core.SourceUART2Receive)
	return true
}

// advance lets counts of line time pass. Called with mu held.
func (u *UART) advance(counts uint64) {
	if !u.enabled {
		return
	}
	for counts > 0 {
		if !u.shifting {
			if len(u.tx) == 0 {
				return
			}
			u.shiftByte = u.tx[0]
			u.tx = append(u.tx[:0], u.tx[1:]...)
			u.shifting = true
			u.shiftLeft = u.perByte
			if len(u.tx) == 0 {
				u.m.irq.latch(core.SourceUART2Transmit)
			}
		}
		use := counts
		if use > u.shiftLeft {
			use = u.shiftLeft
		}
		u.shiftLeft -= use
		counts -= use
		if u.shiftLeft == 0 {
			u.shifting = false
			u.m.emit(u.shiftByte)
		}
	}
}
