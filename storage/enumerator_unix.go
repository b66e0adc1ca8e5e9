//go:build unix

package storage

import (
	"os"
	"path/filepath"
)

// Enumerate lists the entries directly under root (e.g. /dev) as candidate
// wipe targets, statting each to fill in its size and block size. Entries
// that can't be stat'd are skipped rather than failing the whole listing.
func Enumerate(root string) ([]Device, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	devices := make([]Device, 0, len(entries))
	for _, entry := range entries {
		path := filepath.Join(root, entry.Name())
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		devices = append(devices, Device{
			ID:        path,
			Size:      uint64(info.Size()),
			BlockSize: statBlockSize(info),
		})
	}
	return devices, nil
}
