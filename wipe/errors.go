package wipe

import "errors"

// ErrVerificationMismatch is returned (never as a storage.Error, so
// storage.IsBadBlock is always false for it) when a verify-phase read
// returns bytes that don't match what the stage wrote.
var ErrVerificationMismatch = errors.New("wipe: verification failed, device contents do not match the pattern written")
