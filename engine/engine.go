package engine

import (
	"context"
	"iter"
	"log/slog"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/algostep/step"
)

const tracerName = "github.com/katalvlaran/algostep/engine"

// run is the handle of one active run loop.
type run struct {
	cancel context.CancelFunc
	wake   chan struct{}
	done   chan struct{}
}

// Engine schedules one producer at a time. The zero value is not usable;
// call New.
type Engine struct {
	renderer Renderer
	logger   *slog.Logger
	metrics  *Metrics
	tracer   trace.Tracer
	wait     WaitFunc

	mu      sync.Mutex
	session Session
	last    step.Producer
	run     *run
	lastErr error
}

// New returns an idle engine delivering events to r (Discard when nil).
// Returns ErrIntervalRange for an invalid WithInterval.
func New(r Renderer, opts ...Option) (*Engine, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if r == nil {
		r = Discard
	}
	return &Engine{
		renderer: r,
		logger:   o.Logger,
		metrics:  o.Metrics,
		tracer:   o.Tracer,
		wait:     o.Wait,
		session:  Session{State: StateIdle, Interval: o.Interval},
	}, nil
}

// Session returns a copy of the run session.
func (e *Engine) Session() Session {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session
}

// Interval returns the current step interval.
func (e *Engine) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session.Interval
}

// SetInterval changes the step interval. It is legal in every state and
// applies to the next scheduled wait.
func (e *Engine) SetInterval(d time.Duration) error {
	if err := checkInterval(d); err != nil {
		return err
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	e.session.Interval = d
	return nil
}

// Start begins a new run of p. The run is bound to ctx: cancelling ctx
// cancels the run.
func (e *Engine) Start(ctx context.Context, p step.Producer) error {
	if p == nil {
		return ErrNoProducer
	}
	e.mu.Lock()
	defer e.mu.Unlock()

	// A Cancelled session with a live loop is still tearing down.
	if e.session.State.Active() || e.run != nil {
		return errors.Wrapf(ErrAlreadyRunning, "%s is %s", e.session.Algorithm, e.session.State)
	}

	runCtx, cancel := context.WithCancel(ctx)
	r := &run{
		cancel: cancel,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}
	e.run = r
	e.last = p
	e.lastErr = nil
	e.session = Session{
		ID:        uuid.New(),
		Algorithm: p.Name(),
		State:     StateRunning,
		Interval:  e.session.Interval,
		StartedAt: time.Now(),
	}
	e.metrics.runStarted()
	go e.loop(runCtx, r, p, e.session)
	return nil
}

// Pause suspends the run at the next step boundary.
func (e *Engine) Pause() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session.State != StateRunning {
		return errors.Wrapf(ErrNotRunning, "engine is %s", e.session.State)
	}
	e.session.State = StatePaused
	e.logger.Debug("run paused", slog.String("run_id", e.session.ID.String()), slog.Int("steps", e.session.Steps))
	return nil
}

// Resume continues a paused run with the next unconsumed event.
func (e *Engine) Resume() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.session.State != StatePaused {
		return errors.Wrapf(ErrNotPaused, "engine is %s", e.session.State)
	}
	e.session.State = StateRunning
	select {
	case e.run.wake <- struct{}{}:
	default:
	}
	e.logger.Debug("run resumed", slog.String("run_id", e.session.ID.String()))
	return nil
}

// Cancel discards the rest of the run, waits for the in-flight step to
// settle and leaves the engine Idle with the step counter frozen.
func (e *Engine) Cancel() error { return e.stop(false) }

// Reset is Cancel followed by a zeroed step counter and Renderer.OnReset.
func (e *Engine) Reset() error { return e.stop(true) }

func (e *Engine) stop(reset bool) error {
	// 1) Flip to Cancelled so the loop stops pulling.
	e.mu.Lock()
	if e.session.State == StateIdle {
		e.mu.Unlock()
		return ErrIdle
	}
	e.session.State = StateCancelled
	r := e.run
	id := e.session.ID
	e.mu.Unlock()

	// 2) Let the in-flight OnStep return, then wait for the loop to exit.
	if r != nil {
		r.cancel()
		<-r.done
	}

	// 3) Settle to Idle unless a new run started meanwhile.
	e.mu.Lock()
	if e.run == nil && e.session.State == StateCancelled {
		e.session.State = StateIdle
		if reset {
			e.session.Steps = 0
		}
	}
	steps := e.session.Steps
	e.mu.Unlock()

	if reset {
		e.renderer.OnReset()
	}
	e.logger.Info("run stopped", slog.String("run_id", id.String()), slog.Bool("reset", reset), slog.Int("steps", steps))
	return nil
}

// Restart resets the engine if needed and starts the last producer again.
func (e *Engine) Restart(ctx context.Context) error {
	e.mu.Lock()
	p, st := e.last, e.session.State
	e.mu.Unlock()
	if p == nil {
		return ErrNoProducer
	}
	if st != StateIdle {
		if err := e.Reset(); err != nil && !errors.Is(err, ErrIdle) {
			return err
		}
	}
	return e.Start(ctx, p)
}

// Wait blocks until the active run, if any, has finished. It returns the
// session and the renderer error that ended the run, if one did.
func (e *Engine) Wait(ctx context.Context) (Session, error) {
	e.mu.Lock()
	r := e.run
	e.mu.Unlock()
	if r != nil {
		select {
		case <-r.done:
		case <-ctx.Done():
			return e.Session(), ctx.Err()
		}
	}
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.session, e.lastErr
}

func (e *Engine) loop(ctx context.Context, r *run, p step.Producer, s Session) {
	defer close(r.done)
	defer r.cancel()

	log := e.logger.With(slog.String("run_id", s.ID.String()), slog.String("algorithm", s.Algorithm))
	ctx, span := e.tracer.Start(ctx, "engine.Run", trace.WithAttributes(
		attribute.String("algostep.algorithm", s.Algorithm),
		attribute.String("algostep.run_id", s.ID.String()),
	))
	defer span.End()
	log.InfoContext(ctx, "run started", slog.Duration("interval", s.Interval))

	steps, outcome, err := e.drive(ctx, r, p, log)

	span.SetAttributes(
		attribute.Int("algostep.steps", steps),
		attribute.String("algostep.outcome", outcome),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		log.ErrorContext(ctx, "run failed", slog.Int("steps", steps), slog.Any("error", err))
	} else {
		log.InfoContext(ctx, "run finished", slog.Int("steps", steps), slog.String("outcome", outcome))
	}
	e.finish(r, outcome, err)
	e.metrics.runFinished(s.Algorithm, outcome)
}

// drive pulls, counts, renders and paces events until the sequence ends,
// the run is cancelled or the renderer fails.
func (e *Engine) drive(ctx context.Context, r *run, p step.Producer, log *slog.Logger) (int, string, error) {
	next, stop := iter.Pull(p.Steps())
	defer stop()

	steps := 0
	for {
		// 1) Block while paused.
		if !e.awaitTurn(ctx, r) {
			return steps, OutcomeCancelled, nil
		}

		// 2) Pull and count one event.
		ev, ok := next()
		if !ok {
			return steps, OutcomeCompleted, nil
		}
		if !e.count(r) {
			return steps, OutcomeCancelled, nil
		}
		steps++
		log.DebugContext(ctx, "step", slog.Int("seq", ev.Seq), slog.String("kind", ev.Kind.String()))

		// 3) Hand it to the renderer and wait until it settles.
		began := time.Now()
		if err := e.renderer.OnStep(context.WithoutCancel(ctx), ev, p.Snapshot()); err != nil {
			return steps, OutcomeFailed, errors.Wrapf(err, "render step %d", ev.Seq)
		}
		e.metrics.stepRendered(p.Name(), ev.Kind, time.Since(began))
		if ev.Kind == step.KindDone {
			return steps, OutcomeCompleted, nil
		}

		// 4) Pace.
		if err := e.wait(ctx, e.Interval()); err != nil {
			return steps, OutcomeCancelled, nil
		}
	}
}

// awaitTurn reports whether the loop may pull the next event, blocking while
// the session is paused.
func (e *Engine) awaitTurn(ctx context.Context, r *run) bool {
	for {
		e.mu.Lock()
		st := e.session.State
		e.mu.Unlock()

		switch st {
		case StateRunning:
			return ctx.Err() == nil
		case StatePaused:
			select {
			case <-r.wake:
			case <-ctx.Done():
				return false
			}
		default:
			return false
		}
	}
}

// count increments the step counter unless the run was cancelled while the
// event was being pulled.
func (e *Engine) count(r *run) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run != r || e.session.State == StateCancelled {
		return false
	}
	e.session.Steps++
	return true
}

func (e *Engine) finish(r *run, outcome string, err error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.run != r {
		return
	}
	e.run = nil
	e.lastErr = err
	if e.session.State == StateCancelled {
		// Cancel or Reset completes the transition to Idle.
		return
	}
	if outcome == OutcomeCompleted {
		e.session.State = StateCompleted
	} else {
		e.session.State = StateIdle
	}
}
