package engine

import (
	"context"
	"sync"

	"github.com/katalvlaran/algostep/step"
)

// Renderer presents events. OnStep returns once the visual effect of ev has
// settled; the engine does not pull the next event before that.
// snap is only valid for the duration of the call.
type Renderer interface {
	OnStep(ctx context.Context, ev step.Event, snap step.Snapshot) error
	OnReset()
}

type discard struct{}

func (discard) OnStep(context.Context, step.Event, step.Snapshot) error { return nil }
func (discard) OnReset()                                                {}

// Discard is a Renderer that drops everything.
var Discard Renderer = discard{}

// Recorder is an in-memory Renderer. It keeps every event, the rendered
// snapshot next to it and the number of resets.
type Recorder struct {
	// Hook, if set, runs inside OnStep after the event is recorded. Its error
	// is returned from OnStep.
	Hook func(ctx context.Context, ev step.Event) error

	mu        sync.Mutex
	events    []step.Event
	snapshots []string
	resets    int
}

// OnStep implements Renderer.
func (r *Recorder) OnStep(ctx context.Context, ev step.Event, snap step.Snapshot) error {
	r.mu.Lock()
	r.events = append(r.events, ev)
	r.snapshots = append(r.snapshots, snap.String())
	hook := r.Hook
	r.mu.Unlock()
	if hook != nil {
		return hook(ctx, ev)
	}
	return nil
}

// OnReset implements Renderer.
func (r *Recorder) OnReset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resets++
}

// Events returns a copy of the recorded events.
func (r *Recorder) Events() []step.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]step.Event(nil), r.events...)
}

// Snapshots returns the rendered snapshots, one per event.
func (r *Recorder) Snapshots() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.snapshots...)
}

// Len returns the number of recorded events.
func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.events)
}

// Resets returns how many times OnReset was called.
func (r *Recorder) Resets() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resets
}
