package core

import "sync/atomic"

// DebugWriter is a function type for writing debug messages
type DebugWriter func(string)

// TimingEvent captures a timing-relevant event for post-mortem analysis
type TimingEvent struct {
	EventType uint8  // Event type code
	Device    uint8  // Device the event concerns, 0 if none
	Clock     Ticks  // System ticks at event
	Value1    uint32 // Context-dependent value
	Value2    uint32 // Context-dependent value
}

// Event type codes
const (
	EvtSetTime     = 1 // SetTime overwrote the counter
	EvtKick        = 2 // Kick sent a byte (v1 = byte)
	EvtReceive     = 3 // Receive interrupt pushed a byte (v1 = byte)
	EvtTrap        = 4 // Interrupt source mismatch (v1 = vector)
	EvtUnsupported = 5 // Setup rejected a device
	EvtStartup     = 6 // One-shot startup hook ran
	EvtUARTError   = 7 // Error interrupt (v1 = error count)
)

const (
	TimingRingSize = 32 // Keep last 32 events for post-mortem
)

var (
	// debugPrintln is the global debug print function (can be set by platform code)
	debugPrintln DebugWriter = func(s string) {} // No-op by default

	// debugEnabled controls whether debug output is active
	debugEnabled atomic.Bool

	// Timing capture ring buffer (non-blocking, for post-mortem).
	// Slots are claimed with an atomic add so interrupt handlers and the
	// foreground can record without a lock.
	timingRing     [TimingRingSize]TimingEvent
	timingRingHead atomic.Uint32
	timingEnabled  atomic.Bool

	// Async debug output channel
	debugChan chan string
)

func init() {
	timingEnabled.Store(true)
}

// SetDebugWriter sets the platform-specific debug output function
// This allows platforms to redirect debug output to UART, a host log, etc.
func SetDebugWriter(writer DebugWriter) {
	debugPrintln = writer
}

// SetDebugEnabled enables or disables debug output
func SetDebugEnabled(enabled bool) {
	debugEnabled.Store(enabled)
}

// IsDebugEnabled returns whether debug output is enabled
func IsDebugEnabled() bool {
	return debugEnabled.Load()
}

// SetTimingEnabled turns timing capture on or off
func SetTimingEnabled(enabled bool) {
	timingEnabled.Store(enabled)
}

// InitAsyncDebug starts the async debug output goroutine
// Call this from main() after SetDebugWriter
func InitAsyncDebug() {
	debugChan = make(chan string, 16) // Buffer 16 messages
	go debugOutputWorker(debugChan)
}

// debugOutputWorker runs in background, drains debug channel
func debugOutputWorker(ch <-chan string) {
	for msg := range ch {
		if debugPrintln != nil {
			debugPrintln(msg)
		}
	}
}

// DebugPrintln writes a debug message using the platform-specific writer
// Blocks if debug is enabled (use DebugAsync for non-blocking)
func DebugPrintln(msg string) {
	if debugEnabled.Load() && debugPrintln != nil {
		debugPrintln(msg)
	}
}

// DebugAsync queues a debug message for async output (non-blocking)
// Returns immediately even if channel is full (drops message)
func DebugAsync(msg string) {
	if debugChan != nil && debugEnabled.Load() {
		select {
		case debugChan <- msg:
		default:
			// Channel full, drop message (non-blocking)
		}
	}
}

// RecordTiming captures a timing event in the ring buffer.
// Safe from interrupt context: no allocation, no lock.
func RecordTiming(eventType, device uint8, clock Ticks, value1, value2 uint32) {
	if !timingEnabled.Load() {
		return
	}
	idx := (timingRingHead.Add(1) - 1) % TimingRingSize
	timingRing[idx] = TimingEvent{
		EventType: eventType,
		Device:    device,
		Clock:     clock,
		Value1:    value1,
		Value2:    value2,
	}
}

// TimingEvents returns the captured events, oldest first
func TimingEvents() []TimingEvent {
	head := timingRingHead.Load()
	events := make([]TimingEvent, 0, TimingRingSize)
	for i := uint32(0); i < TimingRingSize; i++ {
		evt := timingRing[(head+i)%TimingRingSize]
		if evt.EventType == 0 {
			continue // Empty slot
		}
		events = append(events, evt)
	}
	return events
}

// DumpTimingRing outputs the timing ring buffer (call on shutdown/error)
func DumpTimingRing() {
	if debugPrintln == nil {
		return
	}

	debugPrintln("[TIMING] === Timing Ring Dump ===")
	for _, evt := range TimingEvents() {
		var name string
		switch evt.EventType {
		case EvtSetTime:
			name = "SET_TIME"
		case EvtKick:
			name = "KICK"
		case EvtReceive:
			name = "RECEIVE"
		case EvtTrap:
			name = "TRAP!"
		case EvtUnsupported:
			name = "UNSUPPORTED"
		case EvtStartup:
			name = "STARTUP"
		case EvtUARTError:
			name = "UART_ERROR"
		default:
			name = "UNKNOWN"
		}

		debugPrintln("[TIMING] " + name +
			" dev=" + Device(evt.Device).String() +
			" clock=" + itoa(int64(evt.Clock)) +
			" v1=" + utoa(evt.Value1) +
			" v2=" + utoa(evt.Value2))
	}
	debugPrintln("[TIMING] === End Dump ===")
}

// ClearTimingRing clears the timing buffer
func ClearTimingRing() {
	for i := range timingRing {
		timingRing[i] = TimingEvent{}
	}
	timingRingHead.Store(0)
}
