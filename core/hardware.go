package core

// Source identifies an interrupt source on the interrupt controller.
// The values follow the PIC32MZ vector numbering used by the board.
type Source uint8

const (
	SourceCoreTimer     Source = 0
	SourceUART2Error    Source = 145
	SourceUART2Receive  Source = 146
	SourceUART2Transmit Source = 147
)

// Priority is an interrupt priority level (1 lowest, 7 highest).
type Priority uint8

const (
	CoreTimerPriority Priority = 6
	UARTPriority      Priority = 1
)

// CoreTimer is the free-running core counter and its comparator.
// The counter wraps at 32 bits.
type CoreTimer interface {
	Count() uint32
	SetCount(count uint32)
	SetCompare(compare uint32)
}

// InterruptController latches per-source pending flags and routes enabled
// sources to their bound handlers.
type InterruptController interface {
	// SourceFlag reports whether src is pending.
	SourceFlag(src Source) bool
	// ClearSourceFlag acknowledges src.
	ClearSourceFlag(src Source)
	// EnableSource unmasks src at the given priority and sub-priority.
	EnableSource(src Source, priority Priority, subPriority uint8)
	// Bind attaches handler to the vector of src. Called once at init.
	Bind(src Source, handler func())
}

// UART is one hardware serial channel.
type UART interface {
	Enable(cfg SerialConfig)
	Enabled() bool
	TransmitterFull() bool
	TransmitByte(b byte)
	ReceiverDataAvailable() bool
	ReceiveByte() byte
	// TakeErrors returns and clears the count of receive errors
	// (overrun, framing, parity) latched since the last call.
	TakeErrors() uint32
}

// Hardware bundles the peripherals the core drives. A nil Gate selects the
// platform default.
type Hardware struct {
	Timer CoreTimer
	UART  UART
	IRQ   InterruptController
	Gate  InterruptGate
}
