package ioq

import (
	"sync/atomic"

	"gopruino/core"
)

// BreakChar is Ctrl-C. It is not queued; it raises a break request.
const BreakChar = 0x03

// Event is one received byte tagged with the device it arrived on
type Event struct {
	Device core.Device
	Byte   byte
}

// EventQueue carries received bytes from the receive interrupt to the
// interpreter. PushByte is the only producer and never blocks: when the
// queue is full the byte is dropped and counted.
type EventQueue struct {
	ring    *Ring[Event]
	dropped atomic.Uint32
	onBreak func()
}

var _ core.EventSink = (*EventQueue)(nil)

// NewEventQueue creates a queue of the given capacity
func NewEventQueue(capacity int) *EventQueue {
	return &EventQueue{ring: NewRing[Event](capacity)}
}

// SetBreakHandler sets the function called, in interrupt context, when
// BreakChar arrives. Set it before interrupts are enabled.
func (q *EventQueue) SetBreakHandler(fn func()) {
	q.onBreak = fn
}

// PushByte implements core.EventSink
func (q *EventQueue) PushByte(dev core.Device, b byte) {
	if b == BreakChar && q.onBreak != nil {
		q.onBreak()
		return
	}
	if !q.ring.Put(Event{Device: dev, Byte: b}) {
		q.dropped.Add(1)
	}
}

// Pop removes the oldest event
func (q *EventQueue) Pop() (Event, bool) {
	return q.ring.Get()
}

// Len returns the number of queued events
func (q *EventQueue) Len() int {
	return q.ring.Available()
}

// Dropped returns how many bytes were lost to a full queue
func (q *EventQueue) Dropped() uint32 {
	return q.dropped.Load()
}
