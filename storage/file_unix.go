//go:build unix

package storage

import (
	"io"
	"os"
)

// FileAccess is the POSIX file-backed Access implementation: a device or
// regular file opened with direct-I/O flags so reads observe exactly what
// was just written (see open_*.go for the per-OS flag dance).
type FileAccess struct {
	file *os.File
}

// OpenFile opens path for direct, unbuffered read/write access.
func OpenFile(path string) (*FileAccess, error) {
	f, err := openDirect(path)
	if err != nil {
		return nil, classify(err)
	}
	return &FileAccess{file: f}, nil
}

// Size returns the device's or file's total addressable byte range.
func (a *FileAccess) Size() (uint64, error) {
	info, err := a.file.Stat()
	if err != nil {
		return 0, classify(err)
	}
	if info.Mode()&(os.ModeDevice|os.ModeCharDevice) == 0 {
		return uint64(info.Size()), nil
	}
	size, err := blockDeviceSize(a.file)
	if err != nil {
		return 0, classify(err)
	}
	return size, nil
}

// BlockSize returns the filesystem's/device's preferred I/O block size as
// reported by stat. The wipe command does not use it; its block size comes
// from --blocksize.
func (a *FileAccess) BlockSize() (int, error) {
	info, err := a.file.Stat()
	if err != nil {
		return 0, classify(err)
	}
	return statBlockSize(info), nil
}

func (a *FileAccess) Position() (uint64, error) {
	pos, err := a.file.Seek(0, io.SeekCurrent)
	return uint64(pos), classify(err)
}

func (a *FileAccess) Seek(position uint64) (uint64, error) {
	pos, err := a.file.Seek(int64(position), io.SeekStart)
	return uint64(pos), classify(err)
}

func (a *FileAccess) Read(buf []byte) (int, error) {
	n, err := a.file.Read(buf)
	if err != nil && err != io.EOF {
		return n, classify(err)
	}
	return n, err
}

func (a *FileAccess) Write(data []byte) error {
	_, err := a.file.Write(data)
	return classify(err)
}

func (a *FileAccess) Flush() error {
	return classify(a.file.Sync())
}

// Close releases the underlying file descriptor.
func (a *FileAccess) Close() error {
	return a.file.Close()
}
