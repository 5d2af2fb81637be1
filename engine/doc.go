// Package engine paces a step.Producer: it pulls one event at a time, hands it
// to a Renderer, waits for the Renderer to settle and then waits the
// configured interval before pulling the next event.
//
// What:
//
//	Engine owns a single run session with the lifecycle
//	Idle → Running ⇄ Paused → {Completed | Cancelled} → Idle.
//	At most one run is active; Start on a busy engine fails with
//	ErrAlreadyRunning.
//
// Control:
//
//   - Pause takes effect at the next step boundary. The event being rendered
//     when Pause is called is delivered in full; Resume continues with the
//     next unconsumed event, so nothing is skipped or repeated.
//   - Cancel discards the rest of the sequence, lets the in-flight OnStep
//     return and leaves the engine Idle with the step counter frozen.
//   - Reset is Cancel plus a zeroed counter and Renderer.OnReset.
//   - Restart replays the last producer from its initial input.
//   - SetInterval (50ms to 1s) applies to the next scheduled wait.
//
// Concurrency:
//
//	The run loop is one goroutine. Control methods may be called from any
//	goroutine, but a Renderer must not call Cancel, Reset or Restart from
//	inside OnStep: those block until OnStep returns.
//
// Observability:
//
//	Runs are logged through log/slog, counted with Prometheus collectors
//	(see NewMetrics) and wrapped in an OpenTelemetry span named "engine.Run".
package engine
