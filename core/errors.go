package core

// UnsupportedDeviceError is reported when a serial channel other than the
// board's console UART is configured.
type UnsupportedDeviceError struct {
	Device Device
}

func (e *UnsupportedDeviceError) Error() string {
	return "Unknown serial port device " + e.Device.String()
}

// TrapError describes an interrupt that fired without the condition its
// handler serves. It means the driver and the hardware disagree, so it is
// not recovered in place.
type TrapError struct {
	Source Source
	Reason string
}

func (e *TrapError) Error() string {
	return "trap on vector " + utoa(uint32(e.Source)) + ": " + e.Reason
}
