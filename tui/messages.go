package tui

import (
	"github.com/katalvlaran/algostep/engine"
	"github.com/katalvlaran/algostep/step"
)

// StepMsg carries one event and its drawn snapshot into the Bubble Tea loop.
// The model closes ack once the event is applied.
type StepMsg struct {
	Event step.Event
	View  string
	ack   chan struct{}
}

// ResetMsg clears the display.
type ResetMsg struct{}

// DoneMsg reports that a run has finished.
type DoneMsg struct {
	Session engine.Session
	Err     error

	// run tags the restart generation the notice belongs to.
	run int
}

// controlErrMsg reports a failed asynchronous control call.
type controlErrMsg struct{ err error }
