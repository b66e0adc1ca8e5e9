package sanitization

import (
	"encoding/binary"

	"golang.org/x/crypto/chacha20"
)

// wordsPerBlock is the number of 4-byte words in one chacha20 block (the
// cipher's XORKeyStream granularity).
const wordsPerBlock = chacha20.BlockSize / 4

// windowBytes is the number of bytes one chacha20.Cipher can address before
// its 32-bit block counter would overflow: 2^32 blocks * 64 bytes/block.
// Offsets at or beyond this (256 GiB) roll over into the next window, each
// backed by its own cipher keyed off the same seed with the window index
// folded into the nonce, so SetCounter is never handed a value that
// doesn't fit in uint32.
const windowBytes = uint64(1) << 32 * chacha20.BlockSize

// randomGenerator produces the byte sequence for a random stage. It wraps a
// counter-mode CSPRNG (chacha20) whose block counter can be positioned
// directly, which is what makes Stream restartable at arbitrary
// offsets: the byte at absolute offset o depends only on the seed and o,
// never on how the stream was constructed. A generator spans an unbounded
// byte range by re-keying per windowBytes-sized window rather than letting
// a single cipher's block counter wrap.
type randomGenerator struct {
	seed     [RandomSeedSize]byte
	position uint64
	cipher   *chacha20.Cipher
}

// cipherForWindow derives the cipher for window index w of seed: the same
// seed and window always produce the same keystream, independent of how
// the generator got there.
func cipherForWindow(seed [RandomSeedSize]byte, window uint64) *chacha20.Cipher {
	nonce := make([]byte, chacha20.NonceSize)
	binary.LittleEndian.PutUint64(nonce[:8], window)

	cipher, err := chacha20.NewUnauthenticatedCipher(seed[:], nonce)
	if err != nil {
		panic("sanitization: chacha20 init: " + err.Error())
	}
	return cipher
}

// newRandomGenerator builds a generator already positioned so that the next
// call to fill produces the bytes starting at byte offset startFrom.
func newRandomGenerator(seed [RandomSeedSize]byte, startFrom uint64) *randomGenerator {
	g := &randomGenerator{seed: seed}
	g.seekTo(startFrom)
	return g
}

// seekTo repositions the generator to byte offset pos, re-keying the
// underlying cipher for the window pos falls in and advancing its block
// counter (plus a sub-block word discard) to the exact position within
// that window.
func (g *randomGenerator) seekTo(pos uint64) {
	window := pos / windowBytes
	local := pos % windowBytes

	g.cipher = cipherForWindow(g.seed, window)
	g.position = pos

	wordPos := local / 4
	block := wordPos / wordsPerBlock
	remainder := wordPos % wordsPerBlock

	g.cipher.SetCounter(uint32(block))

	if remainder > 0 {
		var discard [chacha20.BlockSize]byte
		n := int(remainder) * 4
		g.cipher.XORKeyStream(discard[:n], discard[:n])
	}
}

// fill overwrites dst with the next len(dst) bytes of the keystream,
// re-keying at each windowBytes boundary crossed along the way.
func (g *randomGenerator) fill(dst []byte) {
	clear(dst)
	for len(dst) > 0 {
		avail := windowBytes - g.position%windowBytes
		n := uint64(len(dst))
		if n > avail {
			n = avail
		}

		g.cipher.XORKeyStream(dst[:n], dst[:n])
		g.position += n
		dst = dst[n:]

		if len(dst) > 0 {
			g.seekTo(g.position)
		}
	}
}
