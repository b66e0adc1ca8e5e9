package storage

import "testing"

func TestMemoryInitializedToAllOnes(t *testing.T) {
	m := NewMemory(16)
	for i, b := range m.Data() {
		if b != 0xff {
			t.Fatalf("byte %d = %#x, want 0xff", i, b)
		}
	}
}

func TestMemoryWriteThenReadRoundtrip(t *testing.T) {
	m := NewMemory(16)

	if _, err := m.Seek(4); err != nil {
		t.Fatal(err)
	}
	if err := m.Write([]byte{1, 2, 3, 4}); err != nil {
		t.Fatal(err)
	}

	if _, err := m.Seek(4); err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 4)
	n, err := m.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Fatalf("read %d bytes, want 4", n)
	}
	want := []byte{1, 2, 3, 4}
	for i := range want {
		if buf[i] != want[i] {
			t.Fatalf("byte %d = %d, want %d", i, buf[i], want[i])
		}
	}
}

func TestMemoryFailAfterTriggersOnCrossingThreshold(t *testing.T) {
	m := NewMemory(100000)
	m.FailAfter(50000)

	buf := make([]byte, 32768)
	if err := m.Write(buf); err != nil {
		t.Fatalf("first write should succeed, got %v", err)
	}
	if err := m.Write(buf); err == nil {
		t.Fatal("expected second write crossing the 50000 threshold to fail")
	} else if IsBadBlock(err) {
		t.Fatalf("expected an Other-classified error (not bad-block), got %v", err)
	}
}

func TestMemoryFailAfterBeyondTotalNeverTriggers(t *testing.T) {
	m := NewMemory(100000)
	m.FailAfter(150000)

	buf := make([]byte, 32768)
	for i := 0; i < 3; i++ {
		if err := m.Write(buf); err != nil {
			t.Fatalf("write %d: unexpected failure %v", i, err)
		}
	}
}

func TestMemorySize(t *testing.T) {
	m := NewMemory(4096)
	size, err := m.Size()
	if err != nil {
		t.Fatal(err)
	}
	if size != 4096 {
		t.Fatalf("size = %d, want 4096", size)
	}
}
