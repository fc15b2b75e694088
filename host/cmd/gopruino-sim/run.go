package main

import (
	"context"
	"errors"
	"io"
	"log"
	"os"
	"time"

	"github.com/tebeka/atexit"

	"gopruino/config"
	"gopruino/core"
	"gopruino/host/serial"
	"gopruino/ioq"
	"gopruino/repl"
	"gopruino/sim"
)

const (
	// escapeChar (Ctrl-]) leaves the simulator; every other byte goes to
	// the board
	escapeChar = 0x1d

	// stepInterval is how often the board catches up with the wall clock
	stepInterval = time.Millisecond
)

func run(ctx context.Context, cfg *config.BoardConfig) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if verbose {
		core.SetDebugWriter(func(msg string) { log.Print(msg) })
		core.SetDebugEnabled(true)
		core.InitAsyncDebug()
		atexit.Register(core.DumpTimingRing)
	}

	line, err := openLine(cfg)
	if err != nil {
		return err
	}
	atexit.Register(func() { _ = line.Close() })

	machine := sim.New(cfg.SimConfig())
	machine.SetLine(line)

	tx := ioq.NewTxBuffer(cfg.TxBuffer)
	rx := ioq.NewEventQueue(cfg.RxBuffer)

	var interp *repl.Interpreter
	halCfg := cfg.HALConfig()
	halCfg.Source = tx
	halCfg.Sink = rx
	halCfg.Startup = func() { interp.Start() }
	halCfg.Diagnostics = core.DiagnosticsFunc(func(err error) {
		log.Print(f("board: %v", err))
	})
	halCfg.Trap = func(err *core.TrapError) {
		log.Print(f("board: %v", err))
		cancel()
	}

	hal := core.New(machine.Hardware(), halCfg)
	interp = repl.New(hal, tx, rx)
	rx.SetBreakHandler(hal.Exec.RequestBreak)
	hal.SetResetHandler(func() {
		machine.Reset()
		tx.Reset()
		interp.Reset()
		hal.Init()
	})

	// The board must be running before Init: the banner is written
	// synchronously and needs the UART to drain.
	go func() {
		_ = machine.Run(ctx, stepInterval)
	}()
	hal.Init()

	go feedLine(ctx, cancel, line, machine, cfg.SerialConfig())

	err = interp.Run(ctx)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// openLine attaches the console either to a host serial port or to this
// terminal in raw mode
func openLine(cfg *config.BoardConfig) (serial.Port, error) {
	if cfg.HostDevice != "" {
		portCfg := serial.DefaultConfig(cfg.HostDevice)
		portCfg.Baud = int(cfg.Baud)
		// A read timeout surfaces as io.EOF, which would end the session
		portCfg.ReadTimeout = 0
		return serial.Open(portCfg)
	}

	console, err := serial.OpenConsole(os.Stdin, os.Stdout)
	if err != nil {
		return nil, err
	}
	return console, nil
}

// feedLine copies host input into the board's receiver, one byte per frame
// time so the receive FIFO sees the same pacing a real line would give it
func feedLine(ctx context.Context, cancel context.CancelFunc, r io.Reader, m *sim.Machine, frame core.SerialConfig) {
	byteTime := time.Second * time.Duration(frame.BitsPerFrame()) / time.Duration(frame.BaudRate)

	buf := make([]byte, 64)
	for {
		n, err := r.Read(buf)
		for _, b := range buf[:n] {
			if b == escapeChar {
				cancel()
				return
			}
			m.Inject(b)
			time.Sleep(byteTime)
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Print(f("line: %v", err))
			}
			cancel()
			return
		}
		if ctx.Err() != nil {
			return
		}
	}
}
