package wipe

import (
	"bytes"

	"github.com/Kostassoid/lethe/sanitization"
	"github.com/Kostassoid/lethe/storage"
)

// Run drives task against access, mutating state and pushing lifecycle
// events to receiver. It returns true on a fully successful wipe.
func Run(task *Task, access storage.Access, state *State, receiver EventReceiver) bool {
	receiver.Handle(task, state, newEvent(Started))

	stages := task.Scheme.Stages
	var wipeErr error

	for i, stage := range stages {
		haveToVerify := task.HaveToVerify(i, len(stages))

		state.Stage = i
		state.Position = 0
		state.AtVerification = false

		if err := runStageAttempts(task, access, state, stage, haveToVerify, receiver); err != nil {
			wipeErr = err
			break
		}
	}

	receiver.Handle(task, state, newOutcome(Completed, wipeErr))
	return wipeErr == nil
}

// runStageAttempts implements the per-stage attempt loop of §4.6.2: fill,
// optionally verify, retry from the stage watermark on failure of either
// phase while retries remain.
func runStageAttempts(task *Task, access storage.Access, state *State, stage sanitization.Stage, haveToVerify bool, receiver EventReceiver) error {
	watermark := state.Position

	for {
		if err := fill(task, access, state, stage, receiver); err != nil {
			if state.RetriesLeft > 0 {
				state.RetriesLeft--
				receiver.Handle(task, state, newEvent(Retrying))
				state.Position = watermark
				continue
			}
			return err
		}

		if !haveToVerify {
			return nil
		}

		state.Position = watermark
		state.AtVerification = true

		if err := verify(task, access, state, stage, receiver); err != nil {
			if state.RetriesLeft > 0 {
				state.RetriesLeft--
				state.AtVerification = false
				receiver.Handle(task, state, newEvent(Retrying))
				state.Position = watermark
				continue
			}
			return err
		}

		return nil
	}
}

// seekToSafePosition implements the seek-to-next-safe-position step shared
// by Fill and Verify: skip over any block already known bad, advancing by
// block_size at a time. Returns done=true if this walks state.Position past
// total_size (nothing left to process this attempt).
func seekToSafePosition(task *Task, access storage.Access, state *State) (done bool, err error) {
	for {
		if state.Position >= task.TotalSize {
			return true, nil
		}
		blockIndex := uint32(state.Position / uint64(task.BlockSize))
		if state.BadBlocks.IsMarked(blockIndex) {
			state.Position += uint64(task.BlockSize)
			continue
		}
		if _, serr := access.Seek(state.Position); serr != nil {
			if storage.IsBadBlock(serr) {
				state.Position += uint64(task.BlockSize)
				continue
			}
			return false, serr
		}
		return false, nil
	}
}

// fill is §4.6.3: the write phase of a stage attempt.
func fill(task *Task, access storage.Access, state *State, stage sanitization.Stage, receiver EventReceiver) error {
	receiver.Handle(task, state, newEvent(StageStarted))

	done, err := seekToSafePosition(task, access, state)
	if err != nil {
		receiver.Handle(task, state, newOutcome(StageCompleted, err))
		return err
	}
	if done {
		receiver.Handle(task, state, newOutcome(StageCompleted, nil))
		return nil
	}

	stream := stage.Stream(task.TotalSize, task.BlockSize, state.Position)
	blockSize := uint64(task.BlockSize)
	skipNext := false

	for {
		chunk, ok := stream.Next()
		if !ok {
			break
		}

		if skipNext {
			state.Position += uint64(len(chunk))
			receiver.Handle(task, state, newProgress(state.Position))
			skipNext, err = reseekAfterBadWrite(access, state)
			if err != nil {
				receiver.Handle(task, state, newOutcome(StageCompleted, err))
				return err
			}
			continue
		}

		werr := access.Write(chunk)
		if werr == nil {
			state.Position += uint64(len(chunk))
			receiver.Handle(task, state, newProgress(state.Position))
			continue
		}

		if storage.IsBadBlock(werr) {
			blockStart := (state.Position / blockSize) * blockSize
			state.BadBlocks.Mark(uint32(state.Position / blockSize))
			receiver.Handle(task, state, newMarkBlockAsBad(blockStart))

			state.Position += uint64(len(chunk))
			receiver.Handle(task, state, newProgress(state.Position))

			skipNext, err = reseekAfterBadWrite(access, state)
			if err != nil {
				receiver.Handle(task, state, newOutcome(StageCompleted, err))
				return err
			}
			continue
		}

		receiver.Handle(task, state, newOutcome(StageCompleted, werr))
		return werr
	}

	if err := access.Flush(); err != nil {
		receiver.Handle(task, state, newOutcome(StageCompleted, err))
		return err
	}

	receiver.Handle(task, state, newOutcome(StageCompleted, nil))
	return nil
}

// reseekAfterBadWrite attempts to seek to the position a bad write just
// advanced past. If that seek itself fails with BadBlock, the next emitted
// chunk must be consumed and discarded rather than written (skipNext=true).
// Any non-BadBlock seek error is terminal.
func reseekAfterBadWrite(access storage.Access, state *State) (skipNext bool, err error) {
	_, serr := access.Seek(state.Position)
	if serr == nil {
		return false, nil
	}
	if storage.IsBadBlock(serr) {
		return true, nil
	}
	return false, serr
}

// verify is §4.6.4: the read-and-compare phase of a stage attempt.
func verify(task *Task, access storage.Access, state *State, stage sanitization.Stage, receiver EventReceiver) error {
	receiver.Handle(task, state, newEvent(StageStarted))

	done, err := seekToSafePosition(task, access, state)
	if err != nil {
		receiver.Handle(task, state, newOutcome(StageCompleted, err))
		return err
	}
	if done {
		receiver.Handle(task, state, newOutcome(StageCompleted, nil))
		return nil
	}

	stream := stage.Stream(task.TotalSize, task.BlockSize, state.Position)
	blockSize := uint64(task.BlockSize)
	buf := sanitization.NewAlignedBuffer(task.BlockSize, task.BlockSize)

	for {
		chunk, ok := stream.Next()
		if !ok {
			break
		}

		blockIndex := uint32(state.Position / blockSize)
		if state.BadBlocks.IsMarked(blockIndex) {
			state.Position += uint64(len(chunk))
			receiver.Handle(task, state, newProgress(state.Position))
			if _, serr := access.Seek(state.Position); serr != nil && !storage.IsBadBlock(serr) {
				receiver.Handle(task, state, newOutcome(StageCompleted, serr))
				return serr
			}
			continue
		}

		readBuf := buf.Bytes()[:len(chunk)]
		if _, rerr := access.Read(readBuf); rerr != nil {
			receiver.Handle(task, state, newOutcome(StageCompleted, rerr))
			return rerr
		}

		if !bytes.Equal(readBuf, chunk) {
			receiver.Handle(task, state, newOutcome(StageCompleted, ErrVerificationMismatch))
			return ErrVerificationMismatch
		}

		state.Position += uint64(len(chunk))
		receiver.Handle(task, state, newProgress(state.Position))
	}

	receiver.Handle(task, state, newOutcome(StageCompleted, nil))
	return nil
}
