// Package step defines the event model shared by every algorithm producer in
// algostep.
//
// What:
//
//   - Event is one atomic, observable action of an algorithm (a comparison, a swap,
//     a cell visit, a table write, a rotation, a disc move) together with its
//     1-based sequence position and a human readable note.
//   - Producer is a lazy, finite, restartable source of Events. Each call to
//     Steps starts over from the producer's initial input.
//   - Runner is the generic Producer used by every algorithm package: it clones
//     the initial container on each run and hands an Emitter to the algorithm body.
//
// Why:
//
//   - An algorithm written once as straight-line (or recursive) code can be
//     replayed, paused and cancelled by a consumer pulling one event at a time,
//     with no goroutine of its own and no sleeping inside the algorithm.
//
// Ordering:
//
//   - A producer applies a mutation to its container before yielding the event
//     that describes it, so Snapshot always reflects the most recent event.
//   - Events are never reordered or batched; Seq grows by exactly one per event.
//   - Every non-empty run ends with exactly one KindDone event.
//
// Errors:
//
//   - ErrInvalidInput marks every input validation failure raised by producer
//     constructors; test with errors.Is.
//   - ErrStructuralViolation marks an attempt to put a container into an
//     illegal state. Producers guard against it with preconditions.
package step
