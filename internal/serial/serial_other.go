//go:build !linux

package serial

import (
	"errors"
	"os"
)

// Open is only supported on Linux.
func Open(path string, baud int) (*os.File, error) {
	return nil, errors.ErrUnsupported
}
