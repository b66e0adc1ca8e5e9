//go:build unix

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
	f, err := storage.OpenFile(path)
	if err != nil {
		return nil, err
	}
	size, err := f.Size()
	if err != nil {
		f.Close()
		return nil, err
	}
	return &target{access: f, size: size, close: f.Close}, nil
}
