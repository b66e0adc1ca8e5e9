package storage

import (
	"bytes"
	"errors"
	"io"
	"sort"
)

// Memory is an in-memory Access double for exercising the wipe engine
// without a real device. Tests can arrange it to fail partway through a
// pass via FailAfter (a non-bad-block failure, for the engine's retry path)
// or at fixed offsets via FailAtOffset (for the bad-block path).
type Memory struct {
	buf        *bytes.Reader
	data       []byte
	size       int
	totalRead  int
	totalWrite int
	failAfter  []int
	badBlocks  map[int]bool
}

// NewMemory creates an in-memory device of size bytes, initialized to 0xff
// so a wipe's effect (zeroing/overwriting) is visible in assertions.
func NewMemory(size int) *Memory {
	data := make([]byte, size)
	for i := range data {
		data[i] = 0xff
	}
	return &Memory{
		buf:  bytes.NewReader(data),
		data: data,
		size: size,
	}
}

// FailAfter arranges for the next read or write that would cross the
// amount-byte mark (counting combined reads and writes since creation) to
// fail with an Other-classified (not BadBlock) error.
func (m *Memory) FailAfter(amount int) {
	m.failAfter = append(m.failAfter, amount)
	sort.Ints(m.failAfter)
}

// Data returns the current backing bytes, for assertions on what a wipe
// pass actually wrote.
func (m *Memory) Data() []byte {
	return m.data
}

// FailAtOffset arranges for any write landing exactly at byteOffset to fail
// with a BadBlock-classified error, every time, to simulate a persistently
// bad sector at a known offset.
func (m *Memory) FailAtOffset(byteOffset int) {
	if m.badBlocks == nil {
		m.badBlocks = make(map[int]bool)
	}
	m.badBlocks[byteOffset] = true
}

func (m *Memory) checkAndFail(amountRead, amountWritten int) error {
	oldTotal := m.totalRead + m.totalWrite
	m.totalRead += amountRead
	m.totalWrite += amountWritten

	for _, threshold := range m.failAfter {
		if threshold < oldTotal {
			continue
		}
		if oldTotal+amountRead+amountWritten > threshold {
			return classify(errors.New("mocked storage failure"))
		}
		break
	}
	return nil
}

func (m *Memory) Position() (uint64, error) {
	pos, err := m.buf.Seek(0, io.SeekCurrent)
	return uint64(pos), err
}

func (m *Memory) Seek(position uint64) (uint64, error) {
	pos, err := m.buf.Seek(int64(position), io.SeekStart)
	return uint64(pos), err
}

func (m *Memory) Read(buffer []byte) (int, error) {
	if err := m.checkAndFail(len(buffer), 0); err != nil {
		return 0, err
	}
	n, err := m.buf.Read(buffer)
	if err == io.EOF {
		return n, err
	}
	return n, err
}

func (m *Memory) Write(data []byte) error {
	pos, err := m.buf.Seek(0, io.SeekCurrent)
	if err != nil {
		return err
	}
	if m.badBlocks[int(pos)] {
		return NewBadBlockError(errors.New("simulated bad block"))
	}
	if err := m.checkAndFail(0, len(data)); err != nil {
		return err
	}
	n := copy(m.data[pos:], data)
	if n != len(data) {
		return classify(io.ErrShortWrite)
	}
	_, err = m.buf.Seek(int64(n), io.SeekCurrent)
	return err
}

func (m *Memory) Flush() error {
	return nil
}

// Size returns the device's fixed byte length.
func (m *Memory) Size() (uint64, error) {
	return uint64(m.size), nil
}
