package engine_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/engine"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
)

const waitFor = 2 * time.Second

func noWait(ctx context.Context, _ time.Duration) error { return ctx.Err() }

func newEngine(t *testing.T, r engine.Renderer, opts ...engine.Option) *engine.Engine {
	t.Helper()
	e, err := engine.New(r, append([]engine.Option{engine.WithWait(noWait)}, opts...)...)
	require.NoError(t, err)
	return e
}

func bubble(t *testing.T, values ...int) step.Producer {
	t.Helper()
	p, err := sorting.Bubble(values)
	require.NoError(t, err)
	return p
}

func TestEngine_RunToCompletion(t *testing.T) {
	ctx := context.Background()
	p := bubble(t, 3, 1, 2)
	want := step.Collect(p)

	rec := &engine.Recorder{}
	e := newEngine(t, rec)
	require.NoError(t, e.Start(ctx, p))
	s, err := e.Wait(ctx)
	require.NoError(t, err)

	assert.Equal(t, want, rec.Events())
	assert.Equal(t, engine.StateCompleted, s.State)
	assert.Equal(t, len(want), s.Steps)
	assert.Equal(t, sorting.NameBubble, s.Algorithm)
	snaps := rec.Snapshots()
	assert.Equal(t, "[1 2 3]", snaps[len(snaps)-1])
}

func TestEngine_PauseResumeKeepsOrder(t *testing.T) {
	ctx := context.Background()
	p := bubble(t, 5, 4, 3, 2, 1)
	want := step.Collect(p)

	rec := &engine.Recorder{}
	e := newEngine(t, rec)
	paused := make(chan struct{})
	rec.Hook = func(_ context.Context, ev step.Event) error {
		if ev.Seq == 4 {
			assert.NoError(t, e.Pause())
			close(paused)
		}
		return nil
	}

	require.NoError(t, e.Start(ctx, p))
	<-paused
	assert.Equal(t, engine.StatePaused, e.Session().State)
	assert.Never(t, func() bool { return rec.Len() > 4 }, 50*time.Millisecond, 5*time.Millisecond)
	assert.Equal(t, 4, e.Session().Steps)

	assert.ErrorIs(t, e.Pause(), engine.ErrNotRunning)
	require.NoError(t, e.Resume())
	assert.ErrorIs(t, e.Resume(), engine.ErrNotPaused)

	s, err := e.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, want, rec.Events())
	assert.Equal(t, len(want), s.Steps)
	assert.Equal(t, engine.StateCompleted, s.State)
}

// blockAt makes the recorder hold OnStep at event seq until release is closed.
func blockAt(rec *engine.Recorder, seq int) (reached, release chan struct{}, ctxErr chan error) {
	reached = make(chan struct{})
	release = make(chan struct{})
	ctxErr = make(chan error, 1)
	rec.Hook = func(ctx context.Context, ev step.Event) error {
		if ev.Seq == seq {
			close(reached)
			<-release
			ctxErr <- ctx.Err()
		}
		return nil
	}
	return reached, release, ctxErr
}

func TestEngine_CancelSettlesInFlightStep(t *testing.T) {
	ctx := context.Background()
	rec := &engine.Recorder{}
	e := newEngine(t, rec)
	reached, release, ctxErr := blockAt(rec, 3)

	require.NoError(t, e.Start(ctx, bubble(t, 5, 4, 3, 2, 1)))
	<-reached

	errc := make(chan error, 1)
	go func() { errc <- e.Cancel() }()
	require.Eventually(t, func() bool {
		return e.Session().State == engine.StateCancelled
	}, waitFor, time.Millisecond)

	close(release)
	require.NoError(t, <-errc)
	require.NoError(t, <-ctxErr, "OnStep context must outlive the cancel")

	s := e.Session()
	assert.Equal(t, engine.StateIdle, s.State)
	assert.Equal(t, 3, s.Steps)
	assert.Equal(t, 3, rec.Len())
	assert.Zero(t, rec.Resets())

	assert.ErrorIs(t, e.Cancel(), engine.ErrIdle)
	assert.ErrorIs(t, e.Reset(), engine.ErrIdle)
}

func TestEngine_ResetZeroesCounter(t *testing.T) {
	ctx := context.Background()
	rec := &engine.Recorder{}
	e := newEngine(t, rec)
	reached, release, _ := blockAt(rec, 2)

	require.NoError(t, e.Start(ctx, bubble(t, 4, 3, 2, 1)))
	<-reached
	errc := make(chan error, 1)
	go func() { errc <- e.Reset() }()
	require.Eventually(t, func() bool {
		return e.Session().State == engine.StateCancelled
	}, waitFor, time.Millisecond)
	close(release)
	require.NoError(t, <-errc)

	s := e.Session()
	assert.Equal(t, engine.StateIdle, s.State)
	assert.Zero(t, s.Steps)
	assert.Equal(t, 1, rec.Resets())
	assert.Equal(t, 2, rec.Len())
}

func TestEngine_SingleActiveRun(t *testing.T) {
	ctx := context.Background()
	rec := &engine.Recorder{}
	e := newEngine(t, rec)
	reached, release, _ := blockAt(rec, 1)

	p := bubble(t, 2, 1)
	require.NoError(t, e.Start(ctx, p))
	<-reached
	assert.ErrorIs(t, e.Start(ctx, p), engine.ErrAlreadyRunning)
	require.NoError(t, e.Pause())
	assert.ErrorIs(t, e.Start(ctx, p), engine.ErrAlreadyRunning)
	require.NoError(t, e.Resume())
	close(release)

	_, err := e.Wait(ctx)
	require.NoError(t, err)
	first := rec.Len()

	// A completed engine accepts a new run, replayed from the first event.
	rec.Hook = nil
	require.NoError(t, e.Start(ctx, p))
	s, err := e.Wait(ctx)
	require.NoError(t, err)
	assert.Equal(t, engine.StateCompleted, s.State)
	require.Equal(t, 2*first, rec.Len())
	assert.Equal(t, 1, rec.Events()[first].Seq)
}

func TestEngine_Restart(t *testing.T) {
	ctx := context.Background()
	rec := &engine.Recorder{}
	e := newEngine(t, rec)
	assert.ErrorIs(t, e.Restart(ctx), engine.ErrNoProducer)
	assert.ErrorIs(t, e.Start(ctx, nil), engine.ErrNoProducer)

	p := bubble(t, 3, 2, 1)
	want := step.Collect(p)
	require.NoError(t, e.Start(ctx, p))
	first, err := e.Wait(ctx)
	require.NoError(t, err)

	require.NoError(t, e.Restart(ctx))
	second, err := e.Wait(ctx)
	require.NoError(t, err)

	assert.NotEqual(t, first.ID, second.ID)
	assert.Equal(t, len(want), second.Steps)
	assert.Equal(t, 1, rec.Resets())
	assert.Equal(t, append(append([]step.Event(nil), want...), want...), rec.Events())
}

func TestEngine_Interval(t *testing.T) {
	ctx := context.Background()
	var (
		mu    sync.Mutex
		waits []time.Duration
	)
	record := func(ctx context.Context, d time.Duration) error {
		mu.Lock()
		defer mu.Unlock()
		waits = append(waits, d)
		return ctx.Err()
	}

	rec := &engine.Recorder{}
	e := newEngine(t, rec, engine.WithWait(record))
	assert.Equal(t, engine.DefaultInterval, e.Interval())
	rec.Hook = func(_ context.Context, ev step.Event) error {
		if ev.Seq == 2 {
			assert.NoError(t, e.SetInterval(100*time.Millisecond))
		}
		return nil
	}

	require.NoError(t, e.Start(ctx, bubble(t, 2, 1)))
	_, err := e.Wait(ctx)
	require.NoError(t, err)

	// compare, swap, done: no wait after done.
	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []time.Duration{engine.DefaultInterval, 100 * time.Millisecond}, waits)

	for _, bad := range []time.Duration{0, 49 * time.Millisecond, 1001 * time.Millisecond} {
		err := e.SetInterval(bad)
		assert.ErrorIs(t, err, engine.ErrIntervalRange)
		assert.True(t, errors.Is(err, step.ErrInvalidInput))
	}
	require.NoError(t, e.SetInterval(engine.MinInterval))
	require.NoError(t, e.SetInterval(engine.MaxInterval))

	_, err = engine.New(nil, engine.WithInterval(10*time.Millisecond))
	assert.ErrorIs(t, err, engine.ErrIntervalRange)
	assert.ErrorIs(t, engine.Config{StepInterval: 2 * time.Second}.Validate(), engine.ErrIntervalRange)
	assert.NoError(t, engine.DefaultConfig().Validate())
}

func TestEngine_ContextCancelEndsRun(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	rec := &engine.Recorder{}
	e := newEngine(t, rec)
	rec.Hook = func(_ context.Context, ev step.Event) error {
		if ev.Seq == 2 {
			cancel()
		}
		return nil
	}

	require.NoError(t, e.Start(ctx, bubble(t, 3, 2, 1)))
	s, err := e.Wait(context.Background())
	require.NoError(t, err)
	assert.Equal(t, engine.StateIdle, s.State)
	assert.Equal(t, 2, s.Steps)
}

func TestEngine_RendererFailure(t *testing.T) {
	ctx := context.Background()
	boom := errors.New("boom")
	rec := &engine.Recorder{Hook: func(_ context.Context, ev step.Event) error {
		if ev.Seq == 2 {
			return boom
		}
		return nil
	}}
	e := newEngine(t, rec)

	require.NoError(t, e.Start(ctx, bubble(t, 3, 2, 1)))
	s, err := e.Wait(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, engine.StateIdle, s.State)
	assert.Equal(t, 2, s.Steps)
}

func TestEngine_Metrics(t *testing.T) {
	ctx := context.Background()
	reg := prometheus.NewRegistry()
	p := bubble(t, 3, 1, 2)
	want := step.Collect(p)

	e := newEngine(t, engine.Discard, engine.WithMetrics(engine.NewMetrics(reg)))
	require.NoError(t, e.Start(ctx, p))
	_, err := e.Wait(ctx)
	require.NoError(t, err)

	expected := `
# HELP algostep_active_runs Runs currently running or paused.
# TYPE algostep_active_runs gauge
algostep_active_runs 0
# HELP algostep_runs_total Finished runs, by algorithm and outcome.
# TYPE algostep_runs_total counter
algostep_runs_total{algorithm="bubble",outcome="completed"} 1
`
	require.NoError(t, testutil.GatherAndCompare(reg, strings.NewReader(expected),
		"algostep_active_runs", "algostep_runs_total"))

	families, err := reg.Gather()
	require.NoError(t, err)
	total := 0.0
	for _, mf := range families {
		if mf.GetName() != "algostep_steps_total" {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	assert.Equal(t, float64(len(want)), total)
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "paused", engine.StatePaused.String())
	assert.True(t, engine.StatePaused.Active())
	assert.False(t, engine.StateCompleted.Active())
	assert.Equal(t, "state(9)", engine.State(9).String())
}
