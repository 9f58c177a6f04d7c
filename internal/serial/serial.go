// Package serial opens a tty as a raw 8N1 serial line.
package serial

import (
	"errors"
	"fmt"
)

// DefaultBaud is the line speed the eye firmware uses.
const DefaultBaud = 115200

// ErrBaud is returned for a line speed the platform has no constant for.
var ErrBaud = errors.New("serial: unsupported baud rate")

func baudError(baud int) error {
	return fmt.Errorf("%w %d", ErrBaud, baud)
}
