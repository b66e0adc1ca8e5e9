//go:build linux

package storage

import (
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// blockDeviceSize asks the kernel for a block device's total byte size via
// BLKGETSIZE64; regular files never reach here (file_unix.go's Size checks
// the mode bits first).
func blockDeviceSize(f *os.File) (uint64, error) {
	var size uint64
	_, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), unix.BLKGETSIZE64, uintptr(unsafe.Pointer(&size)))
	if errno != 0 {
		return 0, errno
	}
	return size, nil
}

func statBlockSize(info os.FileInfo) int {
	if st, ok := info.Sys().(*syscall.Stat_t); ok && st.Blksize > 0 {
		return int(st.Blksize)
	}
	return 4096
}
