//go:build unix

package storage

import (
	"errors"
	"syscall"
)

// isBadBlockError recognizes the POSIX errno values that correspond to
// sector-level media failure, per spec: EIO and ESPIPE.
func isBadBlockError(err error) bool {
	return errors.Is(err, syscall.EIO) || errors.Is(err, syscall.ESPIPE)
}
