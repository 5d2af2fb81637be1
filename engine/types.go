package engine

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	"github.com/katalvlaran/algostep/step"
)

// Interval bounds.
const (
	MinInterval     = 50 * time.Millisecond
	MaxInterval     = time.Second
	DefaultInterval = 500 * time.Millisecond
)

// Sentinel errors for lifecycle violations.
var (
	// ErrAlreadyRunning indicates Start while a run is Running or Paused.
	ErrAlreadyRunning = errors.New("engine: a run is already active")

	// ErrNotRunning indicates Pause outside the Running state.
	ErrNotRunning = errors.New("engine: no running run to pause")

	// ErrNotPaused indicates Resume outside the Paused state.
	ErrNotPaused = errors.New("engine: run is not paused")

	// ErrIdle indicates Cancel or Reset on an idle engine.
	ErrIdle = errors.New("engine: engine is idle")

	// ErrNoProducer indicates Start with a nil producer, or Restart before
	// any Start.
	ErrNoProducer = errors.New("engine: no producer")

	// ErrIntervalRange indicates a step interval outside [MinInterval, MaxInterval].
	ErrIntervalRange = step.InvalidInput("engine: step interval out of range")
)

// State is the lifecycle state of the run session.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateCompleted
	StateCancelled
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Active reports whether a run is Running or Paused.
func (s State) Active() bool { return s == StateRunning || s == StatePaused }

// Session is a copy of the engine's run session.
type Session struct {
	ID        uuid.UUID
	Algorithm string
	State     State
	// Steps counts events pulled in the current (or last) run.
	Steps     int
	Interval  time.Duration
	StartedAt time.Time
}

// Config is the host-facing engine configuration.
type Config struct {
	StepInterval time.Duration `mapstructure:"step_interval"`
}

// DefaultConfig returns a Config with DefaultInterval.
func DefaultConfig() Config {
	return Config{StepInterval: DefaultInterval}
}

// Validate checks the interval bounds.
func (c Config) Validate() error {
	return checkInterval(c.StepInterval)
}

func checkInterval(d time.Duration) error {
	if d < MinInterval || d > MaxInterval {
		return errors.Wrapf(ErrIntervalRange, "%s not in [%s, %s]", d, MinInterval, MaxInterval)
	}
	return nil
}

// WaitFunc blocks for d or until ctx is done.
type WaitFunc func(ctx context.Context, d time.Duration) error

// Sleep is the default WaitFunc.
func Sleep(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// Option configures Options.
type Option func(*Options)

// Options holds the engine collaborators.
type Options struct {
	Interval time.Duration
	Logger   *slog.Logger
	Metrics  *Metrics
	Tracer   trace.Tracer
	Wait     WaitFunc

	err error
}

// DefaultOptions returns Options with the default interval, slog.Default,
// no metrics, the global tracer and Sleep.
func DefaultOptions() Options {
	return Options{
		Interval: DefaultInterval,
		Logger:   slog.Default(),
		Tracer:   otel.Tracer(tracerName),
		Wait:     Sleep,
	}
}

// WithConfig applies a host Config.
func WithConfig(c Config) Option {
	return WithInterval(c.StepInterval)
}

// WithInterval sets the initial step interval.
func WithInterval(d time.Duration) Option {
	return func(o *Options) {
		if err := checkInterval(d); err != nil {
			o.err = err
			return
		}
		o.Interval = d
	}
}

// WithLogger sets the logger; nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithMetrics records runs into m.
func WithMetrics(m *Metrics) Option {
	return func(o *Options) { o.Metrics = m }
}

// WithTracer sets the tracer; nil is ignored.
func WithTracer(t trace.Tracer) Option {
	return func(o *Options) {
		if t != nil {
			o.Tracer = t
		}
	}
}

// WithWait replaces the inter-step wait, e.g. with a no-op in tests.
func WithWait(w WaitFunc) Option {
	return func(o *Options) {
		if w != nil {
			o.Wait = w
		}
	}
}
