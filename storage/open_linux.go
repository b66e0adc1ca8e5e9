//go:build linux

package storage

import (
	"os"

	"golang.org/x/sys/unix"
)

// openDirect opens path with O_DIRECT so the kernel page cache is bypassed:
// a write followed by a read must see what was just written, not a stale
// cached page left over from a previous pass.
func openDirect(path string) (*os.File, error) {
	fd, err := unix.Open(path, unix.O_RDWR|unix.O_DIRECT, 0)
	if err != nil {
		return nil, err
	}
	return os.NewFile(uintptr(fd), path), nil
}
