package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopruino/core"
	"gopruino/sim"
)

// BoardConfig describes the board, its console and the host side of the
// console line
type BoardConfig struct {
	CPUFrequency    uint32 `json:"cpu_frequency"`
	DispatchLatency uint32 `json:"dispatch_latency"`

	Console  string  `json:"console"`
	Baud     uint32  `json:"baud"`
	ByteSize uint8   `json:"byte_size"`
	Parity   string  `json:"parity"`
	StopBits uint8   `json:"stop_bits"`
	XOnXOff  bool    `json:"xon_xoff"`
	Banner   *string `json:"banner,omitempty"`

	StartupDelayMS float64 `json:"startup_delay_ms"`
	TxBuffer       int     `json:"tx_buffer"`
	RxBuffer       int     `json:"rx_buffer"`

	// HostDevice is the host serial port the console is attached to.
	// Empty means the terminal.
	HostDevice string `json:"host_device"`
}

// LoadConfig parses a JSON configuration and applies defaults
func LoadConfig(jsonData []byte) (*BoardConfig, error) {
	var config BoardConfig

	err := json.Unmarshal(jsonData, &config)
	if err != nil {
		return nil, err
	}

	// Apply defaults
	applyDefaults(&config)

	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// LoadFile reads and parses a JSON configuration file
func LoadFile(path string) (*BoardConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	config, err := LoadConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return config, nil
}

// Default returns the configuration of a stock board
func Default() *BoardConfig {
	config := &BoardConfig{}
	applyDefaults(config)
	return config
}

// applyDefaults fills in missing configuration values with sensible defaults
func applyDefaults(config *BoardConfig) {
	if config.CPUFrequency == 0 {
		config.CPUFrequency = core.DefaultCPUFrequency
	}

	// Console frame format
	if config.Console == "" {
		config.Console = "serial2"
	}
	if config.Baud == 0 {
		config.Baud = 9600
	}
	if config.ByteSize == 0 {
		config.ByteSize = 8
	}
	if config.Parity == "" {
		config.Parity = "none"
	}
	if config.StopBits == 0 {
		config.StopBits = 1
	}
	if config.Banner == nil {
		banner := core.DefaultBanner
		config.Banner = &banner
	}

	// The interpreter greets one second after reset
	if config.StartupDelayMS == 0 {
		config.StartupDelayMS = 1000
	}

	// Queue sizes
	if config.TxBuffer == 0 {
		config.TxBuffer = 128
	}
	if config.RxBuffer == 0 {
		config.RxBuffer = 128
	}
}

// Validate checks the values defaults cannot fix
func (c *BoardConfig) Validate() error {
	console, err := ParseDevice(c.Console)
	if err != nil {
		return err
	}
	if console == core.DeviceUSBSerial {
		return fmt.Errorf("console %q: the board has no USB device", c.Console)
	}
	if _, err := ParseParity(c.Parity); err != nil {
		return err
	}
	if core.PeriodForCPU(c.CPUFrequency) == 0 {
		return fmt.Errorf("cpu_frequency %d is below one tick per microsecond", c.CPUFrequency)
	}
	if period := core.PeriodForCPU(c.CPUFrequency); c.DispatchLatency >= period {
		return fmt.Errorf("dispatch_latency %d must be shorter than the tick period of %d counts", c.DispatchLatency, period)
	}
	if c.Baud == 0 {
		return fmt.Errorf("baud must be positive")
	}
	if c.ByteSize < 5 || c.ByteSize > 9 {
		return fmt.Errorf("byte_size %d out of range 5..9", c.ByteSize)
	}
	if c.StopBits < 1 || c.StopBits > 2 {
		return fmt.Errorf("stop_bits %d out of range 1..2", c.StopBits)
	}
	return nil
}

// SerialConfig returns the console frame format
func (c *BoardConfig) SerialConfig() core.SerialConfig {
	parity, _ := ParseParity(c.Parity)
	return core.SerialConfig{
		BaudRate: c.Baud,
		ByteSize: c.ByteSize,
		Parity:   parity,
		StopBits: c.StopBits,
		XOnXOff:  c.XOnXOff,
	}
}

// HALConfig returns the core configuration. Queues and hooks are left for
// the caller to fill in.
func (c *BoardConfig) HALConfig() core.Config {
	console, _ := ParseDevice(c.Console)
	banner := ""
	if c.Banner != nil {
		banner = *c.Banner
	}
	return core.Config{
		CPUFrequency: c.CPUFrequency,
		Console:      console,
		Serial:       c.SerialConfig(),
		Banner:       banner,
		StartupDelay: core.TicksFromMilliseconds(c.StartupDelayMS),
	}
}

// SimConfig returns the simulated board configuration
func (c *BoardConfig) SimConfig() sim.Config {
	cfg := sim.DefaultConfig()
	cfg.CPUFrequency = c.CPUFrequency
	cfg.DispatchLatency = c.DispatchLatency
	return cfg
}

// ParseDevice maps a device name such as "serial2" or "usb" to its id
func ParseDevice(name string) (core.Device, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	if n == "usb" {
		return core.DeviceUSBSerial, nil
	}
	if strings.HasPrefix(n, "serial") && len(n) == len("serial")+1 {
		idx := n[len("serial")] - '1'
		if idx < 6 {
			return core.DeviceSerial1 + core.Device(idx), nil
		}
	}
	return core.DeviceNone, fmt.Errorf("unknown device %q", name)
}

// ParseParity maps "none", "odd" or "even" to a parity setting
func ParseParity(name string) (core.Parity, error) {
	switch strings.ToLower(name) {
	case "none", "n":
		return core.ParityNone, nil
	case "odd", "o":
		return core.ParityOdd, nil
	case "even", "e":
		return core.ParityEven, nil
	}
	return core.ParityNone, fmt.Errorf("unknown parity %q", name)
}
