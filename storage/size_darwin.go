//go:build darwin

package storage

import (
	"os"
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// Darwin exposes no Go constants for these disk ioctls; the values below are
// the standard DKIOCGETBLOCKSIZE/DKIOCGETBLOCKCOUNT _IOR encodings from
// <sys/disk.h>.
const (
	dkIOCGetBlockSize  = 0x40046418
	dkIOCGetBlockCount = 0x40086419
)

// blockDeviceSize computes a whole-disk's byte size as blockSize*blockCount,
// since Darwin has no single BLKGETSIZE64-style call.
func blockDeviceSize(f *os.File) (uint64, error) {
	var blockSize uint32
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), dkIOCGetBlockSize, uintptr(unsafe.Pointer(&blockSize))); errno != 0 {
		return 0, errno
	}
	var blockCount uint64
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, f.Fd(), dkIOCGetBlockCount, uintptr(unsafe.Pointer(&blockCount))); errno != 0 {
		return 0, errno
	}
	return uint64(blockSize) * blockCount, nil
}

func statBlockSize(info os.FileInfo) int {
	if st, ok := info.Sys().(*syscall.Stat_t); ok && st.Blksize > 0 {
		return int(st.Blksize)
	}
	return 4096
}
