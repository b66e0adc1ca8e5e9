package main

import "testing"

func TestParseBlockSizeAcceptsDigitsAndUnits(t *testing.T) {
	cases := map[string]int{
		"4096": 4096,
		"1k":   1024,
		"1K":   1024,
		"1m":   1024 * 1024,
		"1M":   1024 * 1024,
		"512":  512,
	}
	for in, want := range cases {
		got, err := parseBlockSize(in)
		if err != nil {
			t.Fatalf("parseBlockSize(%q): unexpected error %v", in, err)
		}
		if got != want {
			t.Fatalf("parseBlockSize(%q) = %d, want %d", in, got, want)
		}
	}
}

func TestParseBlockSizeRejectsNonPowerOfTwo(t *testing.T) {
	for _, in := range []string{"3", "1000", "5m"} {
		if _, err := parseBlockSize(in); err == nil {
			t.Fatalf("parseBlockSize(%q): expected an error for a non-power-of-two size", in)
		}
	}
}

func TestParseBlockSizeRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "abc", "1g", "-4096", "4096x"} {
		if _, err := parseBlockSize(in); err == nil {
			t.Fatalf("parseBlockSize(%q): expected an error", in)
		}
	}
}

func TestParseBlockSizeRejectsZero(t *testing.T) {
	if _, err := parseBlockSize("0"); err == nil {
		t.Fatal("parseBlockSize(\"0\"): expected an error, 0 is not a valid block size")
	}
}
