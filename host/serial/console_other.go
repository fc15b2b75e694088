//go:build !linux && !darwin

package serial

import (
	"errors"
	"os"
)

// Console is unavailable off unix; use a native port instead.
type Console struct{}

// OpenConsole always fails on this platform
func OpenConsole(input, output *os.File) (*Console, error) {
	return nil, errors.New("raw console is not supported on this platform")
}

func (c *Console) Read(b []byte) (int, error)  { return 0, errors.ErrUnsupported }
func (c *Console) Write(b []byte) (int, error) { return 0, errors.ErrUnsupported }
func (c *Console) Flush() error                { return nil }
func (c *Console) Close() error                { return nil }
