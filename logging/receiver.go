// Package logging adapts wipe.EventReceiver to structured logging, the way
// a deployment would observe a running wipe without the engine itself
// depending on any logging package.
package logging

import (
	"github.com/sirupsen/logrus"

	"github.com/Kostassoid/lethe/wipe"
)

// Receiver wraps a *logrus.Logger and forwards every wipe.Event to it as a
// structured log entry.
type Receiver struct {
	Log *logrus.Logger

	// RunID, when set, is attached to every log entry so multiple wipes
	// logged to the same sink can be correlated.
	RunID string
}

// NewReceiver returns a Receiver logging through log. A nil log falls back
// to logrus.StandardLogger().
func NewReceiver(log *logrus.Logger) *Receiver {
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &Receiver{Log: log}
}

// Handle implements wipe.EventReceiver.
func (r *Receiver) Handle(task *wipe.Task, state *wipe.State, event wipe.Event) {
	fields := logrus.Fields{
		"event":           event.Kind().String(),
		"stage":           state.Stage,
		"at_verification": state.AtVerification,
		"retries_left":    state.RetriesLeft,
	}
	if r.RunID != "" {
		fields["run_id"] = r.RunID
	}

	switch event.Kind() {
	case wipe.Progress, wipe.MarkBlockAsBad:
		fields["position"] = event.Position()
	case wipe.StageCompleted, wipe.Completed, wipe.Fatal:
		if err := event.Err(); err != nil {
			fields["error"] = err.Error()
		}
	}

	entry := r.Log.WithFields(fields)

	switch event.Kind() {
	case wipe.Fatal:
		entry.Error("wipe: fatal error before the run could start")
	case wipe.MarkBlockAsBad:
		entry.Warn("wipe: block marked bad")
	case wipe.Retrying:
		entry.Warn("wipe: retrying stage")
	case wipe.StageCompleted:
		if event.Err() != nil {
			entry.Error("wipe: stage failed")
		} else {
			entry.Info("wipe: stage completed")
		}
	case wipe.Completed:
		if event.Err() != nil {
			entry.Error("wipe: run failed")
		} else {
			entry.Info("wipe: run completed")
		}
	case wipe.Progress:
		entry.Debug("wipe: progress")
	default:
		entry.Debug("wipe: lifecycle event")
	}
}
