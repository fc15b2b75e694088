package ioq

import "gopruino/core"

const numDevices = int(core.DeviceSerial6) + 1

// TxBuffer holds bytes the interpreter has produced but the UART has not
// yet taken, one queue per device. It is the ByteSource that
// core.SerialPort.Kick pulls from.
type TxBuffer struct {
	queues [numDevices]*Ring[byte]
}

var _ core.ByteSource = (*TxBuffer)(nil)

// NewTxBuffer creates per-device queues of the given capacity
func NewTxBuffer(capacity int) *TxBuffer {
	t := &TxBuffer{}
	for i := range t.queues {
		t.queues[i] = NewRing[byte](capacity)
	}
	return t
}

func (t *TxBuffer) queue(dev core.Device) *Ring[byte] {
	if int(dev) >= numDevices {
		return nil
	}
	return t.queues[dev]
}

// Transmit queues b for dev, returning false if the queue is full or the
// device is unknown
func (t *TxBuffer) Transmit(dev core.Device, b byte) bool {
	q := t.queue(dev)
	if q == nil {
		return false
	}
	return q.Put(b)
}

// TransmitWait queues b for dev, calling kick until there is room. It is
// how the interpreter keeps output flowing while it has no idle loop
// running. Unknown devices drop the byte.
func (t *TxBuffer) TransmitWait(dev core.Device, b byte, kick func(core.Device)) {
	q := t.queue(dev)
	if q == nil {
		return
	}
	for !q.Put(b) {
		kick(dev)
	}
}

// WriteString queues s for dev with TransmitWait
func (t *TxBuffer) WriteString(dev core.Device, s string, kick func(core.Device)) {
	for i := 0; i < len(s); i++ {
		t.TransmitWait(dev, s[i], kick)
	}
}

// NextByte implements core.ByteSource
func (t *TxBuffer) NextByte(dev core.Device) (byte, bool) {
	q := t.queue(dev)
	if q == nil {
		return 0, false
	}
	return q.Get()
}

// Pending returns the number of bytes queued for dev
func (t *TxBuffer) Pending(dev core.Device) int {
	q := t.queue(dev)
	if q == nil {
		return 0
	}
	return q.Available()
}

// Reset empties every queue
func (t *TxBuffer) Reset() {
	for _, q := range t.queues {
		q.Reset()
	}
}
