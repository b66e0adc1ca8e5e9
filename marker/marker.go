// Package marker tracks which device blocks have been observed bad during a
// wipe, in a structure that stays small whether zero blocks or every block
// on a multi-terabyte device turns out to be bad.
package marker

import "github.com/RoaringBitmap/roaring"

// BlockMarker is the set-of-bad-block-indices contract the wipe engine
// depends on. It is kept as an interface so a test double (or a dense
// bitmap, for very small devices) can stand in for the default compressed
// implementation.
type BlockMarker interface {
	Mark(index uint32)
	IsMarked(index uint32) bool
	TotalMarked() uint32
}

// RoaringMarker is a BlockMarker backed by a Roaring bitmap: sublinear in
// memory for sparse bad-block sets and still cheap when every block on the
// device is bad.
type RoaringMarker struct {
	bitmap *roaring.Bitmap
}

// NewRoaringMarker returns an empty marker.
func NewRoaringMarker() *RoaringMarker {
	return &RoaringMarker{bitmap: roaring.NewBitmap()}
}

// Mark records index as bad. Idempotent: marking the same index twice has
// no further effect.
func (m *RoaringMarker) Mark(index uint32) {
	m.bitmap.Add(index)
}

// IsMarked reports whether index has previously been marked bad.
func (m *RoaringMarker) IsMarked(index uint32) bool {
	return m.bitmap.Contains(index)
}

// TotalMarked returns the number of distinct marked indices.
func (m *RoaringMarker) TotalMarked() uint32 {
	return uint32(m.bitmap.GetCardinality())
}
