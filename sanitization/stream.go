package sanitization

// Stream is a lazy, finite, single-use byte sequence produced by
// Stage.Stream. There is no rewind: to re-read from a different offset,
// build a new Stream.
//
// Next follows the streaming-iterator shape rather than returning a fresh
// copy per call: the returned slice aliases the stream's internal buffer
// and is only valid until the next call to Next.
type Stream struct {
	totalSize uint64
	blockSize int
	position  uint64
	buf       *AlignedBuffer
	gen       *randomGenerator // nil for constant stages
}

// Next returns the next chunk and true, or nil and false once the stream is
// exhausted. All chunks have length blockSize except possibly the last.
func (s *Stream) Next() ([]byte, bool) {
	if s.position >= s.totalSize {
		return nil, false
	}

	remaining := s.totalSize - s.position
	chunkSize := uint64(s.blockSize)
	if remaining < chunkSize {
		chunkSize = remaining
	}

	chunk := s.buf.Bytes()[:chunkSize]
	if s.gen != nil {
		s.gen.fill(chunk)
	}

	s.position += chunkSize

	return chunk, true
}
