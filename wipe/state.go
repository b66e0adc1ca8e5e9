package wipe

import "github.com/Kostassoid/lethe/marker"

// State is the engine's mutable run state: owned by the caller, passed by
// pointer into Run so the caller can inspect post-run statistics (retries
// consumed, blocks marked bad).
type State struct {
	Stage          int
	AtVerification bool
	Position       uint64
	RetriesLeft    uint32
	BadBlocks      marker.BlockMarker
}

// NewState returns a fresh State with retries available attempts for the
// whole run (the budget is shared by all stages, not reset per stage) and an
// empty bad-block marker.
func NewState(retries uint32) *State {
	return &State{
		RetriesLeft: retries,
		BadBlocks:   marker.NewRoaringMarker(),
	}
}

// Snapshot returns a copy of the state's scalar fields, safe to retain
// across calls (the BlockMarker is still shared, since receivers are only
// ever expected to read its counts, never to own it).
func (s *State) Snapshot() State {
	return *s
}
