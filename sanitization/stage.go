package sanitization

import (
	crand "crypto/rand"
	"fmt"
)

// RandomSeedSize is the size, in bytes, of a random stage's seed.
const RandomSeedSize = 32

type stageKind int

const (
	kindConstant stageKind = iota
	kindRandom
)

// Stage describes one overwrite pattern: either a constant byte repeated
// across the range, or a seeded random fill. It is a closed sum type —
// callers switch on Kind rather than relying on dynamic dispatch.
type Stage struct {
	kind  stageKind
	value byte
	seed  [RandomSeedSize]byte
}

// Constant builds a stage that fills the range with value.
func Constant(value byte) Stage {
	return Stage{kind: kindConstant, value: value}
}

// Zero is Constant(0x00).
func Zero() Stage { return Constant(0x00) }

// One is Constant(0xFF).
func One() Stage { return Constant(0xFF) }

// RandomWithSeed builds a deterministic random stage. The same seed always
// produces the same byte sequence, regardless of where a stream over it is
// restarted (see Stream).
func RandomWithSeed(seed [RandomSeedSize]byte) Stage {
	return Stage{kind: kindRandom, seed: seed}
}

// Random builds a random stage seeded from a cryptographically secure
// source.
func Random() Stage {
	var seed [RandomSeedSize]byte
	if _, err := crand.Read(seed[:]); err != nil {
		panic("sanitization: failed to read entropy for random stage: " + err.Error())
	}
	return RandomWithSeed(seed)
}

// IsRandom reports whether the stage is a random fill.
func (s Stage) IsRandom() bool { return s.kind == kindRandom }

// Value returns the fill byte of a constant stage. Only meaningful when
// !IsRandom().
func (s Stage) Value() byte { return s.value }

// Seed returns the seed of a random stage. Only meaningful when IsRandom().
func (s Stage) Seed() [RandomSeedSize]byte { return s.seed }

func (s Stage) String() string {
	switch s.kind {
	case kindConstant:
		return fmt.Sprintf("fill with 0x%02X", s.value)
	case kindRandom:
		return "random fill"
	default:
		return "unknown stage"
	}
}

// Stream produces a lazy, finite, single-use sequence of byte slices
// covering [startFrom, totalSize) in chunks of blockSize, except possibly a
// shorter final chunk.
func (s Stage) Stream(totalSize uint64, blockSize int, startFrom uint64) *Stream {
	buf := NewAlignedBuffer(blockSize, blockSize)

	st := &Stream{
		totalSize: totalSize,
		blockSize: blockSize,
		position:  startFrom,
		buf:       buf,
	}

	switch s.kind {
	case kindConstant:
		buf.Fill(s.value)
	case kindRandom:
		st.gen = newRandomGenerator(s.seed, startFrom)
	}

	return st
}
