//go:build unix && !linux && !darwin

package storage

import "os"

func blockDeviceSize(f *os.File) (uint64, error) {
	info, err := f.Stat()
	if err != nil {
		return 0, err
	}
	return uint64(info.Size()), nil
}

func statBlockSize(info os.FileInfo) int {
	return 4096
}
