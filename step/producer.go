package step

import (
	"fmt"
	"iter"
)

// Producer is a lazy, finite, restartable source of Events.
type Producer interface {
	// Name identifies the algorithm, e.g. "bubble" or "dijkstra".
	Name() string
	// Steps returns the event sequence. Every call replays from the initial input.
	Steps() iter.Seq[Event]
	// Snapshot returns the container as of the most recently yielded event.
	// The value is only valid until the next event is pulled.
	Snapshot() Snapshot
}

// State is a container a Runner can replay: it renders itself and clones deeply.
type State[S any] interface {
	Snapshot
	Clone() S
}

// Emitter numbers events and forwards them to the consumer. Once the consumer
// stops pulling, Emit returns false and every later call is a no-op, so
// recursive algorithms can unwind without yielding again.
type Emitter struct {
	yield   func(Event) bool
	seq     int
	stopped bool
}

// NewEmitter wraps a yield function. Runner builds one per run; it is exported
// for producers that do not fit the Runner shape.
func NewEmitter(yield func(Event) bool) *Emitter {
	return &Emitter{yield: yield}
}

// Emit yields the next event. It reports whether the consumer wants more.
func (e *Emitter) Emit(kind Kind, p Payload, note string) bool {
	if e.stopped {
		return false
	}
	if p == nil {
		p = Empty{}
	}
	e.seq++
	if !e.yield(Event{Seq: e.seq, Kind: kind, Payload: p, Note: note}) {
		e.stopped = true
		return false
	}
	return true
}

// Emitf is Emit with a formatted note.
func (e *Emitter) Emitf(kind Kind, p Payload, format string, args ...any) bool {
	if e.stopped {
		return false
	}
	return e.Emit(kind, p, fmt.Sprintf(format, args...))
}

// Stopped reports whether the consumer has stopped pulling.
func (e *Emitter) Stopped() bool { return e.stopped }

// Count returns the number of events emitted so far.
func (e *Emitter) Count() int { return e.seq }

// Runner is the generic Producer. The run function receives a fresh clone of
// the initial state on every call to Steps.
type Runner[S State[S]] struct {
	name    string
	initial S
	current S
	run     func(S, *Emitter)
}

// NewRunner returns a Runner named name that replays run over clones of initial.
func NewRunner[S State[S]](name string, initial S, run func(S, *Emitter)) *Runner[S] {
	return &Runner[S]{name: name, initial: initial, current: initial, run: run}
}

// Name implements Producer.
func (r *Runner[S]) Name() string { return r.name }

// Steps implements Producer.
func (r *Runner[S]) Steps() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		st := r.initial.Clone()
		r.current = st
		r.run(st, NewEmitter(yield))
	}
}

// Snapshot implements Producer.
func (r *Runner[S]) Snapshot() Snapshot { return r.current }

// State returns the typed container of the current (or last) run.
func (r *Runner[S]) State() S { return r.current }

// Collect drains a fresh run of p into a slice.
func Collect(p Producer) []Event {
	var out []Event
	for ev := range p.Steps() {
		out = append(out, ev)
	}
	return out
}

// Filter returns the events of the given kinds, preserving order.
func Filter(events []Event, kinds ...Kind) []Event {
	var out []Event
	for _, ev := range events {
		for _, k := range kinds {
			if ev.Kind == k {
				out = append(out, ev)
				break
			}
		}
	}
	return out
}

// Count returns how many events have kind k.
func Count(events []Event, k Kind) int {
	n := 0
	for _, ev := range events {
		if ev.Kind == k {
			n++
		}
	}
	return n
}
