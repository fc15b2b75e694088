package core

// Device is a logical I/O channel identifier.
type Device uint8

const (
	DeviceNone Device = iota
	DeviceUSBSerial
	DeviceSerial1
	DeviceSerial2
	DeviceSerial3
	DeviceSerial4
	DeviceSerial5
	DeviceSerial6
)

func (d Device) String() string {
	switch d {
	case DeviceNone:
		return "none"
	case DeviceUSBSerial:
		return "USB"
	case DeviceSerial1, DeviceSerial2, DeviceSerial3,
		DeviceSerial4, DeviceSerial5, DeviceSerial6:
		return "Serial" + itoa(int64(d-DeviceSerial1)+1)
	default:
		return "device(" + itoa(int64(d)) + ")"
	}
}

// IsSerial reports whether d names one of the UART channels.
func (d Device) IsSerial() bool {
	return d >= DeviceSerial1 && d <= DeviceSerial6
}

// Parity setting for a serial frame.
type Parity uint8

const (
	ParityNone Parity = iota
	ParityOdd
	ParityEven
)

// SerialConfig describes the frame format of a UART.
type SerialConfig struct {
	BaudRate uint32
	ByteSize uint8
	Parity   Parity
	StopBits uint8
	XOnXOff  bool
}

// DefaultSerialConfig is 9600 8N1, the interpreter's default console format.
func DefaultSerialConfig() SerialConfig {
	return SerialConfig{
		BaudRate: 9600,
		ByteSize: 8,
		Parity:   ParityNone,
		StopBits: 1,
	}
}

// BitsPerFrame is the number of bit times one byte occupies on the line.
func (c SerialConfig) BitsPerFrame() uint32 {
	bits := uint32(1) + uint32(c.ByteSize) + uint32(c.StopBits)
	if c.Parity != ParityNone {
		bits++
	}
	return bits
}
