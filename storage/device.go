package storage

// Device describes a candidate wipe target discovered by Enumerate.
type Device struct {
	ID        string
	Size      uint64
	BlockSize int
}
