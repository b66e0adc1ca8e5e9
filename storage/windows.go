//go:build windows

package storage

import (
	"strings"

	"golang.org/x/sys/windows"
)

// DeviceAccess is the Windows handle-backed Access implementation, grounded
// on the original DeviceFile: a raw handle opened with no buffering and
// write-through so the wipe engine's reads observe exactly what it wrote,
// with the target volume locked for the duration of the write.
type DeviceAccess struct {
	handle windows.Handle
	locked bool
}

// OpenDevice opens path (an NT device path or drive letter) for direct
// read/write access, locking the underlying volume if writeAccess is set.
func OpenDevice(path string, writeAccess bool) (*DeviceAccess, error) {
	filePath := path
	if !strings.HasPrefix(path, `\\`) {
		filePath = `\\.\GLOBALROOT` + path
	}

	access := uint32(windows.GENERIC_READ)
	if writeAccess {
		access |= windows.GENERIC_WRITE
	}

	p, err := windows.UTF16PtrFromString(filePath)
	if err != nil {
		return nil, err
	}

	handle, err := windows.CreateFile(
		p,
		access,
		windows.FILE_SHARE_READ|windows.FILE_SHARE_WRITE,
		nil,
		windows.OPEN_EXISTING,
		windows.FILE_ATTRIBUTE_NORMAL|windows.FILE_FLAG_NO_BUFFERING|windows.FILE_FLAG_WRITE_THROUGH|windows.FILE_FLAG_SEQUENTIAL_SCAN,
		0,
	)
	if err != nil {
		return nil, classify(err)
	}

	d := &DeviceAccess{handle: handle}
	if writeAccess {
		var returned uint32
		if err := windows.DeviceIoControl(handle, windows.FSCTL_LOCK_VOLUME, nil, 0, nil, 0, &returned, nil); err != nil {
			windows.CloseHandle(handle)
			return nil, classify(err)
		}
		d.locked = true
	}
	return d, nil
}

func (d *DeviceAccess) Position() (uint64, error) {
	high := int32(0)
	low, err := windows.SetFilePointer(d.handle, 0, &high, windows.FILE_CURRENT)
	if err != nil {
		return 0, classify(err)
	}
	return uint64(high)<<32 | uint64(low), nil
}

func (d *DeviceAccess) Seek(position uint64) (uint64, error) {
	high := int32(position >> 32)
	low, err := windows.SetFilePointer(d.handle, int32(position), &high, windows.FILE_BEGIN)
	if err != nil {
		return 0, classify(err)
	}
	return uint64(high)<<32 | uint64(low), nil
}

func (d *DeviceAccess) Read(buf []byte) (int, error) {
	var read uint32
	err := windows.ReadFile(d.handle, buf, &read, nil)
	if err != nil {
		return int(read), classify(err)
	}
	return int(read), nil
}

func (d *DeviceAccess) Write(data []byte) error {
	var written uint32
	if err := windows.WriteFile(d.handle, data, &written, nil); err != nil {
		return classify(err)
	}
	if int(written) != len(data) {
		return classify(windows.ERROR_WRITE_FAULT)
	}
	return nil
}

func (d *DeviceAccess) Flush() error {
	return classify(windows.FlushFileBuffers(d.handle))
}

// Close unlocks the volume (if locked) and closes the handle, mirroring the
// original's Drop impl.
func (d *DeviceAccess) Close() error {
	if d.locked {
		var returned uint32
		windows.DeviceIoControl(d.handle, windows.FSCTL_UNLOCK_VOLUME, nil, 0, nil, 0, &returned, nil)
	}
	return windows.CloseHandle(d.handle)
}

// Size reports the device's total byte length via GetFileSizeEx.
func (d *DeviceAccess) Size() (uint64, error) {
	var size int64
	if err := windows.GetFileSizeEx(d.handle, &size); err != nil {
		return 0, classify(err)
	}
	return uint64(size), nil
}
