package main

import (
	"fmt"
	"regexp"
	"strconv"
)

// blockSizePattern matches a decimal byte count optionally suffixed with a
// 1024-based unit, per spec.md §6.3: \d+ optionally followed by k|K|m|M.
var blockSizePattern = regexp.MustCompile(`^(\d+)([kKmM]?)$`)

// parseBlockSize parses a --blocksize argument like "1m" or "4096" into a
// byte count, rejecting anything whose resulting byte total isn't a power
// of two (the engine itself tolerates any nonzero block size, but the CLI
// enforces the stricter rule so device alignment always works out).
func parseBlockSize(s string) (int, error) {
	m := blockSizePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid block size %q: expected digits optionally followed by k, K, m or M", s)
	}

	n, err := strconv.ParseUint(m[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid block size %q: %w", s, err)
	}

	switch m[2] {
	case "k", "K":
		n *= 1024
	case "m", "M":
		n *= 1024 * 1024
	}

	if n == 0 || n&(n-1) != 0 {
		return 0, fmt.Errorf("invalid block size %q: %d bytes is not a power of two", s, n)
	}
	if n > uint64(^uint(0)>>1) {
		return 0, fmt.Errorf("invalid block size %q: too large", s)
	}

	return int(n), nil
}
