package core

import "sync/atomic"

// ByteSource yields bytes waiting to be sent on a device.
type ByteSource interface {
	// NextByte removes and returns the next pending byte for dev.
	NextByte(dev Device) (byte, bool)
}

// EventSink accepts bytes received on a device. PushByte is called from
// interrupt context and must not block.
type EventSink interface {
	PushByte(dev Device, b byte)
}

// Diagnostics reports recoverable configuration problems.
type Diagnostics interface {
	Report(err error)
}

// DiagnosticsFunc adapts a function to Diagnostics
type DiagnosticsFunc func(err error)

// Report calls f(err)
func (f DiagnosticsFunc) Report(err error) {
	f(err)
}

// TrapHandler is invoked when an interrupt handler finds its hardware in a
// state it cannot explain. The default handler panics.
type TrapHandler func(err *TrapError)

// SerialStats is a snapshot of the port counters
type SerialStats struct {
	Sent     uint32
	Received uint32
	Errors   uint32
	Traps    uint32
}

// SerialPort pumps bytes between the console UART and the interpreter's
// queues.
//
// Transmission is pull based and caller driven: each Kick moves at most one
// byte from the ByteSource to the UART and nothing retries on its own, so
// output only makes progress while the foreground keeps kicking.
// Reception is push based from the receive interrupt.
type SerialPort struct {
	device Device
	uart   UART
	irq    InterruptController
	clock  *Clock

	source ByteSource
	sink   EventSink
	diag   Diagnostics
	trap   TrapHandler
	banner string

	sent     atomic.Uint32
	received atomic.Uint32
	errors   atomic.Uint32
	traps    atomic.Uint32
}

// NewSerialPort creates the pump for device, the board's console UART
func NewSerialPort(device Device, uart UART, irq InterruptController) *SerialPort {
	return &SerialPort{
		device: device,
		uart:   uart,
		irq:    irq,
	}
}

// SetByteSource sets where Kick pulls outbound bytes from
func (p *SerialPort) SetByteSource(src ByteSource) {
	p.source = src
}

// SetEventSink sets where the receive interrupt pushes bytes
func (p *SerialPort) SetEventSink(sink EventSink) {
	p.sink = sink
}

// SetDiagnostics sets the reporter for configuration errors
func (p *SerialPort) SetDiagnostics(diag Diagnostics) {
	p.diag = diag
}

// SetTrapHandler replaces the default panicking trap
func (p *SerialPort) SetTrapHandler(trap TrapHandler) {
	p.trap = trap
}

// SetBanner sets the text written once when the port is enabled
func (p *SerialPort) SetBanner(banner string) {
	p.banner = banner
}

// setClock lets timing events carry a timestamp
func (p *SerialPort) setClock(c *Clock) {
	p.clock = c
}

// Device returns the device this port serves
func (p *SerialPort) Device() Device {
	return p.device
}

// Enabled reports whether the UART has been enabled
func (p *SerialPort) Enabled() bool {
	return p.uart.Enabled()
}

// Stats returns the port counters
func (p *SerialPort) Stats() SerialStats {
	return SerialStats{
		Sent:     p.sent.Load(),
		Received: p.received.Load(),
		Errors:   p.errors.Load(),
		Traps:    p.traps.Load(),
	}
}

func (p *SerialPort) now() Ticks {
	if p.clock == nil {
		return 0
	}
	return p.clock.Now()
}

// Setup configures dev. The USB device does not exist on this board and is
// ignored. Any other device than the port's own is reported through
// Diagnostics and returned without touching the hardware; the caller need
// not report it again.
func (p *SerialPort) Setup(dev Device, cfg SerialConfig) error {
	if dev == DeviceUSBSerial {
		return nil
	}
	if dev != p.device {
		err := &UnsupportedDeviceError{Device: dev}
		RecordTiming(EvtUnsupported, uint8(dev), p.now(), 0, 0)
		if p.diag != nil {
			p.diag.Report(err)
		}
		return err
	}

	p.uart.Enable(cfg)
	p.irq.ClearSourceFlag(SourceUART2Receive)
	p.irq.ClearSourceFlag(SourceUART2Error)
	p.irq.EnableSource(SourceUART2Receive, UARTPriority, 0)
	p.irq.EnableSource(SourceUART2Error, UARTPriority, 0)

	if p.banner != "" {
		p.WriteString(p.banner)
	}
	return nil
}

// WriteString writes s straight to the UART, spinning whenever the
// transmit buffer is full. It bypasses the ByteSource.
func (p *SerialPort) WriteString(s string) {
	for i := 0; i < len(s); i++ {
		p.writeByte(s[i])
	}
}

func (p *SerialPort) writeByte(b byte) {
	for p.uart.TransmitterFull() {
	}
	p.uart.TransmitByte(b)
	p.sent.Add(1)
}

// Kick sends at most one pending byte for dev. It returns at once when dev
// is not this port or nothing is pending, and otherwise spins until the
// transmitter has room. The foreground must call it whenever new output is
// queued and again after each byte goes out.
func (p *SerialPort) Kick(dev Device) {
	if dev != p.device || p.source == nil {
		return
	}
	b, ok := p.source.NextByte(dev)
	if !ok {
		return
	}
	p.writeByte(b)
	RecordTiming(EvtKick, uint8(dev), p.now(), uint32(b), 0)
}

// OnReceive is the receive interrupt handler.
func (p *SerialPort) OnReceive() {
	if !p.irq.SourceFlag(SourceUART2Receive) {
		p.raise(&TrapError{
			Source: SourceUART2Receive,
			Reason: "receive vector taken without receive flag",
		})
		return
	}

	if p.uart.ReceiverDataAvailable() {
		b := p.uart.ReceiveByte()
		p.irq.ClearSourceFlag(SourceUART2Receive)
		p.received.Add(1)
		RecordTiming(EvtReceive, uint8(p.device), p.now(), uint32(b), 0)
		if p.sink != nil {
			p.sink.PushByte(p.device, b)
		}
		return
	}
	p.irq.ClearSourceFlag(SourceUART2Receive)
}

// OnTransmit is the transmit interrupt handler. Output is driven by Kick,
// so it only acknowledges.
func (p *SerialPort) OnTransmit() {
	p.irq.ClearSourceFlag(SourceUART2Transmit)
}

// OnError is the UART fault interrupt handler. It acknowledges the fault
// and counts the receive errors the UART latched.
func (p *SerialPort) OnError() {
	p.irq.ClearSourceFlag(SourceUART2Error)
	if n := p.uart.TakeErrors(); n > 0 {
		p.errors.Add(n)
		RecordTiming(EvtUARTError, uint8(p.device), p.now(), n, 0)
	}
}

func (p *SerialPort) raise(err *TrapError) {
	p.traps.Add(1)
	RecordTiming(EvtTrap, uint8(p.device), p.now(), uint32(err.Source), 0)
	if p.trap != nil {
		p.trap(err)
		return
	}
	panic(err)
}
