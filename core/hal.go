package core

// DefaultCPUFrequency is the PIC32MZ EF system clock
const DefaultCPUFrequency = 200000000

// DefaultBanner is written on the console once the UART is up
const DefaultBanner = "\r\n\ngopruino on PIC32MZ\r\n"

// Config selects how the HAL drives the board.
type Config struct {
	CPUFrequency uint32
	Console      Device
	Serial       SerialConfig
	Banner       string

	// StartupDelay is how long after Init the one-shot Startup hook becomes
	// due. It runs from the first Idle call at or after that time.
	StartupDelay Ticks
	Startup      func()

	Source      ByteSource
	Sink        EventSink
	Diagnostics Diagnostics
	Trap        TrapHandler
}

func (cfg *Config) applyDefaults() {
	if cfg.CPUFrequency == 0 {
		cfg.CPUFrequency = DefaultCPUFrequency
	}
	if cfg.Console == DeviceNone {
		cfg.Console = DeviceSerial2
	}
	if cfg.Serial.BaudRate == 0 {
		cfg.Serial = DefaultSerialConfig()
	}
}

// HAL is the timekeeping and serial core the interpreter runs on.
type HAL struct {
	cfg  Config
	hw   Hardware
	gate InterruptGate

	Clock  *Clock
	Serial *SerialPort
	Exec   *ExecState

	timers       *Scheduler
	startup      Timer
	offState     State
	resetHandler func()
}

// New builds the HAL over hw. Nothing touches the hardware until Init.
func New(hw Hardware, cfg Config) *HAL {
	cfg.applyDefaults()
	gate := hw.Gate
	if gate == nil {
		gate = DefaultGate()
	}

	h := &HAL{
		cfg:    cfg,
		hw:     hw,
		gate:   gate,
		Exec:   &ExecState{},
		timers: NewScheduler(gate),
	}

	h.Clock = NewClock(hw.Timer, hw.IRQ, gate, PeriodForCPU(cfg.CPUFrequency))
	h.Clock.AddTickHook(h.Exec.OnTick)

	h.Serial = NewSerialPort(cfg.Console, hw.UART, hw.IRQ)
	h.Serial.setClock(h.Clock)
	h.Serial.SetByteSource(cfg.Source)
	h.Serial.SetEventSink(cfg.Sink)
	h.Serial.SetTrapHandler(cfg.Trap)
	h.Serial.SetBanner(cfg.Banner)
	if cfg.Diagnostics != nil {
		h.Serial.SetDiagnostics(cfg.Diagnostics)
	} else {
		h.Serial.SetDiagnostics(consoleDiagnostics{port: h.Serial})
	}

	h.startup.Handler = h.runStartup
	return h
}

// Config returns the effective configuration
func (h *HAL) Config() Config {
	return h.cfg
}

// Init binds the interrupt vectors, brings up the console UART, starts the
// tick clock and arms the one-shot startup hook.
func (h *HAL) Init() {
	h.hw.IRQ.Bind(SourceCoreTimer, h.Clock.OnTick)
	h.hw.IRQ.Bind(SourceUART2Receive, h.Serial.OnReceive)
	h.hw.IRQ.Bind(SourceUART2Transmit, h.Serial.OnTransmit)
	h.hw.IRQ.Bind(SourceUART2Error, h.Serial.OnError)

	h.Exec.Clear()
	if err := h.Serial.Setup(h.cfg.Console, h.cfg.Serial); err != nil {
		DebugPrintln("[HAL] console setup failed: " + err.Error())
	}
	h.Clock.Init()
	DebugPrintln("[HAL] clock running, period " + utoa(h.Clock.Period()) + " counts")

	h.timers.Reset()
	h.startup.WakeTime = h.Clock.Now() + h.cfg.StartupDelay
	h.timers.Schedule(&h.startup)
}

func (h *HAL) runStartup(*Timer) uint8 {
	RecordTiming(EvtStartup, 0, h.Clock.Now(), 0, 0)
	if h.cfg.Startup != nil {
		h.cfg.Startup()
	}
	return SF_DONE
}

// Reset would return peripherals to their power-on state. Nothing on this
// board needs it.
func (h *HAL) Reset() {}

// SetResetHandler sets the platform-specific restart used by Kill
func (h *HAL) SetResetHandler(handler func()) {
	h.resetHandler = handler
}

// Kill restarts the system
func (h *HAL) Kill() {
	DebugPrintln("[HAL] kill")
	if h.resetHandler != nil {
		h.resetHandler()
	}
}

// Idle is called on every pass of the foreground loop. It runs due
// foreground timers, the one-shot startup hook among them, and kicks the
// console.
func (h *HAL) Idle() {
	h.timers.Dispatch(h.Clock.Now())
	h.Serial.Kick(h.cfg.Console)
}

// Schedule adds a foreground timer dispatched from Idle
func (h *HAL) Schedule(t *Timer) {
	h.timers.Schedule(t)
}

// Now returns the system time in ticks
func (h *HAL) Now() Ticks {
	return h.Clock.Now()
}

// SetTime sets the system time. See Clock.SetTime.
func (h *HAL) SetTime(t Ticks) {
	h.Clock.SetTime(t)
}

// TicksFromMilliseconds converts milliseconds to ticks
func (h *HAL) TicksFromMilliseconds(ms float64) Ticks {
	return TicksFromMilliseconds(ms)
}

// MillisecondsFromTicks converts ticks to milliseconds
func (h *HAL) MillisecondsFromTicks(t Ticks) float64 {
	return MillisecondsFromTicks(t)
}

// DelayMicroseconds busy-waits. See Clock.DelayMicroseconds.
func (h *HAL) DelayMicroseconds(us int) {
	h.Clock.DelayMicroseconds(us)
}

// InterruptsOff masks interrupts until the matching InterruptsOn.
// The pair does not nest: a second InterruptsOff before InterruptsOn
// overwrites the saved state and interrupts stay masked. Use Critical for
// sections that may nest.
func (h *HAL) InterruptsOff() {
	h.offState = h.gate.Disable()
}

// InterruptsOn restores the state saved by InterruptsOff
func (h *HAL) InterruptsOn() {
	h.gate.Restore(h.offState)
}

// Critical runs fn with interrupts masked; calls may nest
func (h *HAL) Critical(fn func()) {
	Critical(h.gate, fn)
}

// Setup configures a serial device. See SerialPort.Setup.
func (h *HAL) Setup(dev Device, cfg SerialConfig) error {
	return h.Serial.Setup(dev, cfg)
}

// Kick sends one pending byte on dev. See SerialPort.Kick.
func (h *HAL) Kick(dev Device) {
	h.Serial.Kick(dev)
}

// SerialNumber returns the chip serial number. This part exposes none.
func (h *HAL) SerialNumber() []byte {
	return nil
}

// IsUSBSerialConnected is always false: the board has no USB console
func (h *HAL) IsUSBSerialConnected() bool {
	return false
}

// consoleDiagnostics prints reports on the console once it is enabled and
// drops them before that, since the console may be what failed.
type consoleDiagnostics struct {
	port *SerialPort
}

func (d consoleDiagnostics) Report(err error) {
	if !d.port.Enabled() {
		return
	}
	d.port.WriteString("ERROR: " + err.Error() + "\r\n")
}
