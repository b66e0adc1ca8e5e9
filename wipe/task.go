// Package wipe drives the overwrite/verify state machine: it takes a Task
// (scheme, verify policy, device geometry), a storage.Access, and a State,
// and pushes lifecycle Events to a caller-supplied EventReceiver.
package wipe

import (
	"errors"
	"fmt"

	"github.com/Kostassoid/lethe/sanitization"
)

// Verify governs which stages are re-read and compared after their fill.
type Verify int

const (
	VerifyNo Verify = iota
	VerifyLast
	VerifyAll
)

func (v Verify) String() string {
	switch v {
	case VerifyNo:
		return "no"
	case VerifyLast:
		return "last"
	case VerifyAll:
		return "all"
	default:
		return "unknown"
	}
}

// maxBlockCount is 2^32: a bad-block index is stored as a uint32, so a task
// spanning more blocks than this cannot be represented.
const maxBlockCount = uint64(1) << 32

// ErrTaskInvalid is returned by NewTask when total_size/block_size exceeds
// the range a 32-bit bad-block index can address.
var ErrTaskInvalid = errors.New("wipe: total_size/block_size exceeds 2^32, increase block size")

// Task describes one wipe run: which scheme to apply, whether and how to
// verify, and the geometry of the target.
type Task struct {
	Scheme    sanitization.Scheme
	Verify    Verify
	TotalSize uint64
	BlockSize int
}

// NewTask validates and constructs a Task. block_size must be positive;
// total_size/block_size must not exceed 2^32.
func NewTask(scheme sanitization.Scheme, verify Verify, totalSize uint64, blockSize int) (*Task, error) {
	if blockSize <= 0 {
		return nil, fmt.Errorf("wipe: block size must be positive, got %d", blockSize)
	}
	if totalSize/uint64(blockSize) > maxBlockCount {
		return nil, ErrTaskInvalid
	}
	return &Task{Scheme: scheme, Verify: verify, TotalSize: totalSize, BlockSize: blockSize}, nil
}

// HaveToVerify reports whether stage index i (0-based, of stageCount total)
// must be verified under this task's Verify policy.
func (t *Task) HaveToVerify(i, stageCount int) bool {
	switch t.Verify {
	case VerifyAll:
		return true
	case VerifyLast:
		return i+1 == stageCount
	default:
		return false
	}
}
