// Package repl is the interactive foreground of the board: a Starlark
// read-eval-print loop fed by the inbound event queue and printing through
// the outbound queue.
package repl

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"gopruino/core"
	"gopruino/ioq"
)

const (
	prompt       = ">"
	continuation = ":"

	// idleSleep is how long the loop yields when there was nothing to do
	idleSleep = 100 * time.Microsecond

	// breakPoll is how often a running evaluation checks for Ctrl-C
	breakPoll = time.Millisecond
)

// Interpreter runs Starlark over the console
type Interpreter struct {
	hal *core.HAL
	tx  *ioq.TxBuffer
	rx  *ioq.EventQueue
	dev core.Device

	opts    *syntax.FileOptions
	globals starlark.StringDict

	line    []byte
	pending []string
}

// New creates an interpreter printing on the HAL's console device
func New(hal *core.HAL, tx *ioq.TxBuffer, rx *ioq.EventQueue) *Interpreter {
	in := &Interpreter{
		hal:  hal,
		tx:   tx,
		rx:   rx,
		dev:  hal.Config().Console,
		opts: &syntax.FileOptions{
			Set:             true,
			While:           true,
			TopLevelControl: true,
			GlobalReassign:  true,
			Recursion:       true,
		},
	}
	in.Reset()
	return in
}

// Reset forgets every global and any partial input
func (in *Interpreter) Reset() {
	in.globals = in.builtins()
	in.line = in.line[:0]
	in.pending = nil
}

// Start prints the first prompt. It is the HAL's one-shot startup hook.
func (in *Interpreter) Start() {
	in.write("\r\n" + prompt)
}

// Run is the foreground loop. It returns when ctx is done.
func (in *Interpreter) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		in.hal.Idle()

		// Ctrl-C at the prompt discards the line being typed
		if in.hal.Exec.Flags() != 0 {
			in.hal.Exec.Clear()
			in.line = in.line[:0]
			in.pending = nil
			in.write("\r\n" + prompt)
		}

		busy := in.tx.Pending(in.dev) > 0
		for {
			ev, ok := in.rx.Pop()
			if !ok {
				break
			}
			busy = true
			if ev.Device == in.dev {
				in.handleByte(ev.Byte)
			}
		}

		if !busy {
			time.Sleep(idleSleep)
		}
	}
}

// handleByte does line editing for one received byte
func (in *Interpreter) handleByte(b byte) {
	switch b {
	case '\r', '\n':
		in.write("\r\n")
		in.submit(string(in.line))
		in.line = in.line[:0]
	case 0x08, 0x7f:
		if len(in.line) > 0 {
			in.line = in.line[:len(in.line)-1]
			in.write("\b \b")
		}
	default:
		if b >= 0x20 && b < 0x7f || b == '\t' {
			in.line = append(in.line, b)
			in.tx.TransmitWait(in.dev, b, in.hal.Kick)
		}
	}
}

// submit evaluates a complete line, or collects it while a block is open.
// A block opens on a line ending in ':' and closes on an empty line.
func (in *Interpreter) submit(line string) {
	if len(in.pending) > 0 {
		if strings.TrimSpace(line) != "" {
			in.pending = append(in.pending, line)
			in.write(continuation)
			return
		}
		src := strings.Join(in.pending, "\n") + "\n"
		in.pending = nil
		in.Eval(src)
		in.write(prompt)
		return
	}

	if strings.HasSuffix(strings.TrimSpace(line), ":") {
		in.pending = []string{line}
		in.write(continuation)
		return
	}

	if strings.TrimSpace(line) != "" {
		in.Eval(line)
	}
	in.write(prompt)
}

// Eval runs src and prints its value or error. Ctrl-C cancels it.
func (in *Interpreter) Eval(src string) {
	thread := &starlark.Thread{
		Name: "repl",
		Print: func(_ *starlark.Thread, msg string) {
			in.println(msg)
		},
	}

	done := make(chan struct{})
	go in.watchBreak(thread, done)
	err := in.eval(thread, src)
	close(done)

	if in.hal.Exec.Interrupted() {
		in.hal.Exec.Clear()
		core.DebugAsync("[REPL] evaluation interrupted")
		in.println("Execution Interrupted")
		return
	}
	if err != nil {
		in.println(errorText(err))
	}
}

func (in *Interpreter) eval(thread *starlark.Thread, src string) error {
	// Expressions print their value; everything else runs as statements
	if _, err := in.opts.ParseExpr("<console>", src, 0); err == nil {
		v, err := starlark.EvalOptions(in.opts, thread, "<console>", src, in.globals)
		if err != nil {
			return err
		}
		if v != starlark.None {
			in.println("=" + v.String())
		}
		return nil
	}

	defined, err := starlark.ExecFileOptions(in.opts, thread, "<console>", src, in.globals)
	for name, v := range defined {
		in.globals[name] = v
	}
	return err
}

func (in *Interpreter) watchBreak(thread *starlark.Thread, done <-chan struct{}) {
	ticker := time.NewTicker(breakPoll)
	defer ticker.Stop()
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if in.hal.Exec.Interrupted() {
				thread.Cancel("interrupted")
				return
			}
		}
	}
}

func (in *Interpreter) write(s string) {
	in.tx.WriteString(in.dev, s, in.hal.Kick)
}

func (in *Interpreter) println(s string) {
	in.write(strings.ReplaceAll(s, "\n", "\r\n") + "\r\n")
}

func errorText(err error) string {
	var evalErr *starlark.EvalError
	if errors.As(err, &evalErr) {
		return "Uncaught " + evalErr.Msg
	}
	return "Uncaught " + err.Error()
}
