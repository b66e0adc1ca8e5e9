//go:build darwin

package storage

import (
	"os"

	"golang.org/x/sys/unix"
)

// openDirect opens path normally, then asks the kernel to stop caching pages
// for this descriptor via F_NOCACHE; Darwin has no O_DIRECT open flag.
func openDirect(path string) (*os.File, error) {
	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, err
	}
	if _, err := unix.FcntlInt(f.Fd(), unix.F_NOCACHE, 1); err != nil {
		f.Close()
		return nil, err
	}
	return f, nil
}
