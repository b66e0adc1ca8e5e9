//go:build windows

package main

import (
	"errors"

	"github.com/Kostassoid/lethe/storage"
)

// Windows device discovery (PhysicalDrive*/partition enumeration via
// SetupDi* APIs) is an explicit non-core collaborator per spec.md §1; this
// build offers wipe against an explicit path only.
func listDevices() ([]storage.Device, error) {
	return nil, errors.New("device enumeration is not implemented on windows; pass a device path directly to wipe")
}
