package sim

import (
	"bytes"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"gopruino/core"
	"gopruino/ioq"
)

var fastLine = core.SerialConfig{BaudRate: 1000000, ByteSize: 8, StopBits: 1}

var _ = Describe("Machine", func() {
	var (
		m    *Machine
		line *bytes.Buffer
	)

	BeforeEach(func() {
		m = New(DefaultConfig())
		line = new(bytes.Buffer)
		m.SetLine(line)
	})

	Context("UART", func() {
		It("should pace transmitted bytes at the baud rate", func() {
			m.UART().Enable(fastLine)
			for _, b := range []byte("abc") {
				m.UART().TransmitByte(b)
			}

			m.Step(999)
			Expect(line.String()).To(BeEmpty())

			m.Step(1)
			Expect(line.String()).To(Equal("a"))

			m.Step(2000)
			Expect(line.String()).To(Equal("abc"))
			Expect(m.UART().TxPending()).To(BeZero())
		})

		It("should report full when the transmit FIFO is full", func() {
			m.UART().Enable(fastLine)
			for i := 0; i < 8; i++ {
				Expect(m.UART().TransmitterFull()).To(BeFalse())
				m.UART().TransmitByte('x')
			}
			Expect(m.UART().TransmitterFull()).To(BeTrue())

			m.UART().TransmitByte('y')
			Expect(m.UART().TxOverruns()).To(Equal(uint32(1)))
		})

		It("should drop bytes while disabled", func() {
			m.UART().TransmitByte('x')
			Expect(m.Inject('y')).To(BeFalse())
			m.Step(10000)
			Expect(line.Len()).To(BeZero())
		})

		It("should latch an error on receive overrun", func() {
			m.UART().Enable(fastLine)
			for i := 0; i < 8; i++ {
				Expect(m.Inject(byte('0' + i))).To(BeTrue())
			}
			Expect(m.Inject('!')).To(BeFalse())

			Expect(m.IRQ().SourceFlag(core.SourceUART2Error)).To(BeTrue())
			Expect(m.UART().TakeErrors()).To(Equal(uint32(1)))
		})

		It("should keep the receive flag latched while data waits", func() {
			m.UART().Enable(fastLine)
			m.Inject('a')
			m.Inject('b')

			m.IRQ().ClearSourceFlag(core.SourceUART2Receive)
			Expect(m.IRQ().SourceFlag(core.SourceUART2Receive)).To(BeTrue())

			m.UART().ReceiveByte()
			m.UART().ReceiveByte()
			m.IRQ().ClearSourceFlag(core.SourceUART2Receive)
			Expect(m.IRQ().SourceFlag(core.SourceUART2Receive)).To(BeFalse())
		})
	})

	Context("core timer", func() {
		It("should latch the compare match exactly when the count reaches it", func() {
			m.Timer().SetCount(0)
			m.Timer().SetCompare(100)

			m.Step(99)
			Expect(m.IRQ().SourceFlag(core.SourceCoreTimer)).To(BeFalse())

			m.Step(1)
			Expect(m.IRQ().SourceFlag(core.SourceCoreTimer)).To(BeTrue())
			Expect(m.Count()).To(Equal(uint32(100)))
		})
	})

	Context("interrupt delivery", func() {
		It("should serve higher priorities first", func() {
			var order []core.Source
			for _, src := range []core.Source{core.SourceUART2Receive, core.SourceCoreTimer} {
				src := src
				m.IRQ().Bind(src, func() {
					order = append(order, src)
					m.IRQ().ClearSourceFlag(src)
				})
			}
			m.IRQ().EnableSource(core.SourceUART2Receive, core.UARTPriority, 0)
			m.IRQ().EnableSource(core.SourceCoreTimer, core.CoreTimerPriority, 0)
			m.IRQ().Raise(core.SourceUART2Receive)
			m.IRQ().Raise(core.SourceCoreTimer)

			m.Step(1)

			Expect(order).To(Equal([]core.Source{core.SourceCoreTimer, core.SourceUART2Receive}))
		})

		It("should hold pending interrupts while masked", func() {
			calls := 0
			m.IRQ().Bind(core.SourceUART2Transmit, func() {
				calls++
				m.IRQ().ClearSourceFlag(core.SourceUART2Transmit)
			})
			m.IRQ().EnableSource(core.SourceUART2Transmit, core.UARTPriority, 0)

			state := m.Gate().Disable()
			m.IRQ().Raise(core.SourceUART2Transmit)
			m.Step(10)
			Expect(calls).To(BeZero())

			m.Gate().Restore(state)
			m.Step(1)
			Expect(calls).To(Equal(1))
		})

		It("should nest masking", func() {
			outer := m.Gate().Disable()
			inner := m.Gate().Disable()
			m.Gate().Restore(inner)
			Expect(m.Gate().Masked()).To(BeTrue())
			m.Gate().Restore(outer)
			Expect(m.Gate().Masked()).To(BeFalse())
		})
	})
})

var _ = Describe("HAL on the simulated board", func() {
	var (
		m       *Machine
		line    *bytes.Buffer
		tx      *ioq.TxBuffer
		rx      *ioq.EventQueue
		hal     *core.HAL
		startup int
		traps   []*core.TrapError
		reports []error
	)

	build := func(latency uint32) {
		cfg := DefaultConfig()
		cfg.DispatchLatency = latency
		m = New(cfg)
		line = new(bytes.Buffer)
		m.SetLine(line)

		tx = ioq.NewTxBuffer(64)
		rx = ioq.NewEventQueue(16)
		startup = 0
		traps = nil
		reports = nil

		hal = core.New(m.Hardware(), core.Config{
			Serial:       fastLine,
			StartupDelay: 50,
			Startup:      func() { startup++ },
			Source:       tx,
			Sink:         rx,
			Diagnostics:  core.DiagnosticsFunc(func(err error) { reports = append(reports, err) }),
			Trap:         func(err *core.TrapError) { traps = append(traps, err) },
		})
		rx.SetBreakHandler(hal.Exec.RequestBreak)
		hal.Init()
	}

	BeforeEach(func() {
		build(0)
	})

	It("should tick once per period", func() {
		Expect(hal.Clock.Period()).To(Equal(uint32(100)))

		m.Step(1000)

		Expect(hal.Now()).To(Equal(core.Ticks(10)))
	})

	It("should space ticks by period plus dispatch latency", func() {
		build(10)

		m.Step(100)

		Expect(hal.Now()).To(Equal(core.Ticks(1)))
		Expect(m.Count()).To(Equal(uint32(110)))
		Expect(m.Compare()).To(Equal(uint32(210)))
	})

	It("should coalesce ticks missed while masked", func() {
		hal.InterruptsOff()
		m.Step(1000)
		Expect(hal.Now()).To(Equal(core.Ticks(0)))

		hal.InterruptsOn()
		m.Step(1)
		Expect(hal.Now()).To(Equal(core.Ticks(1)))
		Expect(m.Compare()).To(Equal(m.Count() + 100))
	})

	It("should restart the period on set time", func() {
		m.Step(250)
		hal.SetTime(5000)
		Expect(hal.Now()).To(Equal(core.Ticks(5000)))

		m.Step(99)
		Expect(hal.Now()).To(Equal(core.Ticks(5000)))

		m.Step(1)
		Expect(hal.Now()).To(Equal(core.Ticks(5001)))
	})

	It("should drop a tick pending at set time", func() {
		hal.InterruptsOff()
		m.Step(100)
		hal.SetTime(5000)
		hal.InterruptsOn()

		m.Step(1)
		Expect(hal.Now()).To(Equal(core.Ticks(5000)))

		m.Step(98)
		Expect(hal.Now()).To(Equal(core.Ticks(5000)))

		m.Step(1)
		Expect(hal.Now()).To(Equal(core.Ticks(5001)))
	})

	It("should run the startup hook once when due", func() {
		hal.Idle()
		Expect(startup).To(BeZero())

		m.Step(100 * 50)
		for i := 0; i < 10; i++ {
			hal.Idle()
		}
		Expect(startup).To(Equal(1))

		m.Step(100 * 50)
		hal.Idle()
		Expect(startup).To(Equal(1))
	})

	It("should send queued output one byte per kick", func() {
		tx.WriteString(core.DeviceSerial2, "hi", hal.Kick)

		hal.Kick(core.DeviceSerial2)
		Expect(tx.Pending(core.DeviceSerial2)).To(Equal(1))
		hal.Kick(core.DeviceSerial2)
		Expect(tx.Pending(core.DeviceSerial2)).To(BeZero())

		m.Step(2000)
		Expect(line.String()).To(Equal("hi"))
		Expect(hal.Serial.Stats().Sent).To(Equal(uint32(2)))
	})

	It("should deliver one received byte per interrupt", func() {
		m.Inject('a')
		m.Inject('b')

		m.Step(1)
		Expect(rx.Len()).To(Equal(1))

		m.Step(1)
		Expect(rx.Len()).To(Equal(2))

		ev, _ := rx.Pop()
		Expect(ev).To(Equal(ioq.Event{Device: core.DeviceSerial2, Byte: 'a'}))
	})

	It("should count receive overruns", func() {
		for i := 0; i < 9; i++ {
			m.Inject('x')
		}

		m.Step(1)

		Expect(hal.Serial.Stats().Errors).To(Equal(uint32(1)))
	})

	It("should mature a Ctrl-C into an interrupt after two ticks", func() {
		m.Inject(ioq.BreakChar)
		m.Step(1)
		Expect(hal.Exec.Flags()).To(Equal(core.ExecCtrlC))
		Expect(rx.Len()).To(BeZero())

		m.Step(100)
		Expect(hal.Exec.Interrupted()).To(BeFalse())

		m.Step(100)
		Expect(hal.Exec.Interrupted()).To(BeTrue())
	})

	It("should trap a receive interrupt without its flag", func() {
		m.Interrupt(core.SourceUART2Receive)

		Expect(traps).To(HaveLen(1))
		Expect(traps[0].Source).To(Equal(core.SourceUART2Receive))
	})

	It("should reject other serial devices without touching the UART", func() {
		err := hal.Setup(core.DeviceSerial3, core.DefaultSerialConfig())

		Expect(err).To(HaveOccurred())
		Expect(reports).To(HaveLen(1))
		Expect(m.UART().Config()).To(Equal(fastLine))
	})

	It("should wait out a busy delay", func() {
		done := make(chan struct{})
		stopped := make(chan struct{})
		go func() {
			defer close(stopped)
			for {
				select {
				case <-done:
					return
				default:
					m.Step(100)
				}
			}
		}()

		start := hal.Now()
		hal.DelayMicroseconds(20)
		elapsed := hal.Now() - start
		close(done)
		<-stopped

		Expect(elapsed).To(BeNumerically(">=", 20))
	})
})
