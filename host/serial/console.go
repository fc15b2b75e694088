//go:build linux || darwin

package serial

import (
	"fmt"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Console is the controlling terminal in raw mode, so every keystroke
// (Ctrl-C included) reaches the board instead of the host's line discipline.
type Console struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios

	mu  sync.Mutex
	raw bool
}

// OpenConsole switches input to raw mode. Close restores it.
func OpenConsole(input, output *os.File) (*Console, error) {
	if input == nil || output == nil {
		return nil, fmt.Errorf("console requires an input and an output file")
	}

	c := &Console{input: input, output: output}
	if err := termios.Tcgetattr(input.Fd(), &c.canAttr); err != nil {
		return nil, fmt.Errorf("reading terminal attributes: %w", err)
	}
	c.rawAttr = c.canAttr
	termios.Cfmakeraw(&c.rawAttr)

	if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &c.rawAttr); err != nil {
		return nil, fmt.Errorf("entering raw mode: %w", err)
	}
	c.raw = true
	return c, nil
}

func (c *Console) Read(b []byte) (int, error) {
	return c.input.Read(b)
}

func (c *Console) Write(b []byte) (int, error) {
	return c.output.Write(b)
}

// Flush drops unread input and waits for pending output
func (c *Console) Flush() error {
	if err := termios.Tcflush(c.input.Fd(), termios.TCIFLUSH); err != nil {
		return err
	}
	return c.output.Sync()
}

// Close puts the terminal back in canonical mode. It is safe to call twice.
func (c *Console) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.raw {
		return nil
	}
	c.raw = false
	return termios.Tcsetattr(c.input.Fd(), termios.TCIFLUSH, &c.canAttr)
}
