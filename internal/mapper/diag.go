package mapper

import (
	"fmt"

	"github.com/google/uuid"
)

// Stage identifies which phase of the mapping state machine emitted an
// event.
type Stage string

const (
	StageDetect  Stage = "detect"
	StageExtract Stage = "extract"
	StageResolve Stage = "resolve"
	StageMapRows Stage = "map-rows"
	StageRetry   Stage = "retry"
	StageDone    Stage = "done"
)

// Event is one diagnostic record: which stage, and what happened. Events
// replace ad-hoc logging so behavior is observable without coupling the
// engine to a logging mechanism.
type Event struct {
	Stage   Stage
	Message string
}

// Recorder collects diagnostic events for one run. A nil *Recorder is valid
// and discards everything, so callers that don't care pass nil.
type Recorder struct {
	runID  string
	events []Event
}

// NewRecorder creates a recorder tagged with a fresh run ID.
func NewRecorder() *Recorder {
	return &Recorder{runID: uuid.New().String()}
}

// RunID returns the unique ID for this run. Empty for a nil recorder.
func (r *Recorder) RunID() string {
	if r == nil {
		return ""
	}
	return r.runID
}

// Record appends a formatted event. Safe on a nil receiver.
func (r *Recorder) Record(stage Stage, format string, args ...any) {
	if r == nil {
		return
	}
	r.events = append(r.events, Event{Stage: stage, Message: fmt.Sprintf(format, args...)})
}

// Events returns a copy of the collected events.
func (r *Recorder) Events() []Event {
	if r == nil {
		return nil
	}
	return append([]Event(nil), r.events...)
}
