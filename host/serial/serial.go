package serial

import (
	"io"
)

// Port is the host side of the simulated board's serial line.
// Implementations:
// - Native serial (using github.com/tarm/serial) for a real adapter
// - Console (raw-mode terminal) for the controlling tty
type Port interface {
	io.ReadWriteCloser

	// Flush flushes any buffered data
	Flush() error
}

// Config holds serial port configuration
type Config struct {
	// Device path (e.g., "/dev/ttyUSB0", "COM3")
	Device string

	// Baud rate of the host adapter
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns a configuration matching the board's 9600 baud console
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        9600,
		ReadTimeout: 100,
	}
}
