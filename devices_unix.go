//go:build unix

package main

import "github.com/Kostassoid/lethe/storage"

func listDevices() ([]storage.Device, error) {
	return storage.Enumerate("/dev")
}
