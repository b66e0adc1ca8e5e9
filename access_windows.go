//go:build windows

package main

import (
	"github.com/Kostassoid/lethe/storage"
)

// target bundles an opened storage.Access with its size and a close func,
// so the wipe command doesn't need to know which OS-specific backend
// produced it.
type target struct {
	access storage.Access
	size   uint64
	close  func() error
}

func openTarget(path string) (*target, error) {
	d, err := storage.OpenDevice(path, true)
	if err != nil {
		return nil, err
	}
	size, err := d.Size()
	if err != nil {
		d.Close()
		return nil, err
	}
	return &target{access: d, size: size, close: d.Close}, nil
}
