package sanitization

import (
	"bytes"
	"testing"
)

func TestStreamChunking(t *testing.T) {
	stage := Zero()
	stream := stage.Stream(100000, 32768, 0)

	var got []int
	for {
		chunk, ok := stream.Next()
		if !ok {
			break
		}
		got = append(got, len(chunk))
	}

	want := []int{32768, 32768, 32768, 100000 - 3*32768}
	if len(got) != len(want) {
		t.Fatalf("expected %d chunks, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("chunk %d: expected len %d, got %d", i, want[i], got[i])
		}
	}
}

func TestStreamEmptyRange(t *testing.T) {
	stream := Zero().Stream(0, 4096, 0)
	if _, ok := stream.Next(); ok {
		t.Fatal("expected no chunks for a zero-length range")
	}
}

func TestRandomStreamRestartIsPositional(t *testing.T) {
	var seed [RandomSeedSize]byte
	for i := range seed {
		seed[i] = 7
	}
	stage := RandomWithSeed(seed)

	const total = 1 << 20
	const block = 4096

	full := drain2(stage, total, block, 0)

	for _, offset := range []uint64{4, 4096, 4100, 65536, 1 << 19} {
		partial := drain2(stage, total, block, offset)
		if !bytes.Equal(full[offset:], partial) {
			t.Fatalf("restart at offset %d diverged from the full stream", offset)
		}
	}
}

func drain2(stage Stage, total uint64, block int, start uint64) []byte {
	stream := stage.Stream(total, block, start)
	out := make([]byte, 0, total-start)
	for {
		chunk, ok := stream.Next()
		if !ok {
			break
		}
		out = append(out, chunk...)
	}
	return out
}
