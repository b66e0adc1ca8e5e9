//go:build windows

package storage

import (
	"errors"

	"golang.org/x/sys/windows"
)

// isBadBlockError recognizes the Windows error codes that correspond to
// sector-level media failure.
func isBadBlockError(err error) bool {
	switch {
	case errors.Is(err, windows.ERROR_CRC),
		errors.Is(err, windows.ERROR_SEEK),
		errors.Is(err, windows.ERROR_SECTOR_NOT_FOUND),
		errors.Is(err, windows.ERROR_READ_FAULT),
		errors.Is(err, windows.ERROR_WRITE_FAULT):
		return true
	default:
		return false
	}
}
