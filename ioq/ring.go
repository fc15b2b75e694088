package ioq

import "sync/atomic"

// Ring is a fixed-capacity circular buffer with one producer and one
// consumer. The producer only moves write and the consumer only moves
// read, so the two sides may run in different contexts (an interrupt
// handler and the foreground) without a lock.
type Ring[T any] struct {
	buf   []T
	read  atomic.Uint32
	write atomic.Uint32
	size  uint32
}

// NewRing creates a ring holding up to capacity items
func NewRing[T any](capacity int) *Ring[T] {
	if capacity < 1 {
		capacity = 1
	}
	// One slot stays empty to tell full from empty
	size := uint32(capacity) + 1
	return &Ring[T]{
		buf:  make([]T, size),
		size: size,
	}
}

// Put appends v, returning false if the ring is full
func (r *Ring[T]) Put(v T) bool {
	w := r.write.Load()
	next := (w + 1) % r.size
	if next == r.read.Load() {
		// Buffer full
		return false
	}
	r.buf[w] = v
	r.write.Store(next)
	return true
}

// Get removes the oldest item
func (r *Ring[T]) Get() (T, bool) {
	var zero T
	rd := r.read.Load()
	if rd == r.write.Load() {
		// Buffer empty
		return zero, false
	}
	v := r.buf[rd]
	r.buf[rd] = zero
	r.read.Store((rd + 1) % r.size)
	return v, true
}

// Peek returns the oldest item without removing it
func (r *Ring[T]) Peek() (T, bool) {
	var zero T
	rd := r.read.Load()
	if rd == r.write.Load() {
		return zero, false
	}
	return r.buf[rd], true
}

// Write appends as many items of data as fit and returns how many did
func (r *Ring[T]) Write(data []T) int {
	written := 0
	for _, v := range data {
		if !r.Put(v) {
			break
		}
		written++
	}
	return written
}

// Read fills data with up to len(data) items and returns how many
func (r *Ring[T]) Read(data []T) int {
	read := 0
	for i := range data {
		v, ok := r.Get()
		if !ok {
			break
		}
		data[i] = v
		read++
	}
	return read
}

// Available returns the number of items waiting to be read
func (r *Ring[T]) Available() int {
	w := r.write.Load()
	rd := r.read.Load()
	if w >= rd {
		return int(w - rd)
	}
	return int(r.size - rd + w)
}

// Free returns the number of items that can still be written
func (r *Ring[T]) Free() int {
	return int(r.size) - r.Available() - 1
}

// Cap returns the capacity
func (r *Ring[T]) Cap() int {
	return int(r.size) - 1
}

// IsEmpty returns true if the buffer is empty
func (r *Ring[T]) IsEmpty() bool {
	return r.read.Load() == r.write.Load()
}

// Reset clears the buffer. Neither side may be active during a reset.
func (r *Ring[T]) Reset() {
	r.read.Store(0)
	r.write.Store(0)
}
