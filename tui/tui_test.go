package tui_test

import (
	"context"
	"strings"
	"sync"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/avl"
	"github.com/katalvlaran/algostep/engine"
	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
	"github.com/katalvlaran/algostep/tui"
)

type fakeController struct {
	mu        sync.Mutex
	state     engine.State
	interval  time.Duration
	restarted int
	waited    int
}

func (f *fakeController) Pause() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != engine.StateRunning {
		return engine.ErrNotRunning
	}
	f.state = engine.StatePaused
	return nil
}

func (f *fakeController) Resume() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.state != engine.StatePaused {
		return engine.ErrNotPaused
	}
	f.state = engine.StateRunning
	return nil
}

func (f *fakeController) Restart(context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.restarted++
	return nil
}

func (f *fakeController) SetInterval(d time.Duration) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.interval = d
	return nil
}

func (f *fakeController) Interval() time.Duration {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.interval
}

func (f *fakeController) Session() engine.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	return engine.Session{State: f.state, Interval: f.interval}
}

func (f *fakeController) Wait(context.Context) (engine.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.waited++
	return engine.Session{State: engine.StateCompleted, Steps: 3, Interval: f.interval}, nil
}

func key(s string) tea.KeyMsg {
	if s == " " {
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m tea.Model, msg tea.Msg) (tui.Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(tui.Model)
	require.True(t, ok)
	return model, cmd
}

func TestModel_Keys(t *testing.T) {
	ctl := &fakeController{state: engine.StateRunning, interval: engine.DefaultInterval}
	m := tui.NewModel(context.Background(), ctl, "bubble", "values [3 1 2]")

	m, _ = update(t, m, key(" "))
	assert.Equal(t, engine.StatePaused, ctl.Session().State)
	m, _ = update(t, m, key(" "))
	assert.Equal(t, engine.StateRunning, ctl.Session().State)

	m, _ = update(t, m, key("+"))
	assert.Equal(t, engine.DefaultInterval-tui.SpeedStep, ctl.Interval())
	m, _ = update(t, m, key("-"))
	m, _ = update(t, m, key("-"))
	assert.Equal(t, engine.DefaultInterval+tui.SpeedStep, ctl.Interval())

	ctl.interval = engine.MinInterval
	m, _ = update(t, m, key("+"))
	assert.Equal(t, engine.MinInterval, ctl.Interval())

	m, cmd := update(t, m, key("r"))
	require.NotNil(t, cmd)
	assert.Zero(t, ctl.restarted, "restart runs off the update loop")
	assert.IsType(t, tui.DoneMsg{}, cmd())
	assert.Equal(t, 1, ctl.restarted)

	_, cmd = update(t, m, key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestModel_StepAndView(t *testing.T) {
	ctl := &fakeController{state: engine.StateRunning, interval: engine.DefaultInterval}
	m := tui.NewModel(context.Background(), ctl, "bubble", "")
	assert.Contains(t, m.View(), "waiting for the first step")

	for i := 1; i <= 10; i++ {
		m, _ = update(t, m, tui.StepMsg{
			Event: step.Event{Seq: i, Kind: step.KindCompare, Payload: step.Pair{I: 0, J: 1}, Note: "compare #" + string(rune('0'+i%10))},
			View:  "[1 2 3]",
		})
	}
	v := m.View()
	assert.Contains(t, v, "algostep | bubble")
	assert.Contains(t, v, "[1 2 3]")
	assert.Contains(t, v, "compare #0")
	assert.NotContains(t, v, "compare #2", "log keeps the last lines only")
	assert.Contains(t, v, "running")

	m, _ = update(t, m, tui.DoneMsg{})
	assert.Contains(t, m.View(), "finished")
	m, _ = update(t, m, tui.ResetMsg{})
	assert.Contains(t, m.View(), "waiting for the first step")
}

func TestModel_RestartReportsEachRun(t *testing.T) {
	ctl := &fakeController{state: engine.StateRunning, interval: engine.DefaultInterval}
	m := tui.NewModel(context.Background(), ctl, "bubble", "")

	first := m.Init()
	require.NotNil(t, first)
	m, _ = update(t, m, first())
	assert.Contains(t, m.View(), "finished")

	// The first run's notice arrives after a restart and is ignored.
	m, restart := update(t, m, key("r"))
	require.NotNil(t, restart)
	assert.NotContains(t, m.View(), "finished")
	m, _ = update(t, m, first())
	assert.NotContains(t, m.View(), "finished")

	msg := restart()
	assert.IsType(t, tui.DoneMsg{}, msg)
	m, _ = update(t, m, msg)
	assert.Contains(t, m.View(), "finished")
	assert.Equal(t, 1, ctl.restarted)
	assert.Equal(t, 3, ctl.waited)
}

func TestModel_WaitAfterCancel(t *testing.T) {
	ctl := &fakeController{state: engine.StateRunning, interval: engine.DefaultInterval}
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	m := tui.NewModel(ctx, ctl, "bubble", "")
	assert.Nil(t, m.Init()())
}

func TestBridge_WaitsForModel(t *testing.T) {
	ctl := &fakeController{state: engine.StateRunning, interval: engine.DefaultInterval}
	msgs := make(chan tea.Msg, 1)
	b := tui.NewBridge(func(msg tea.Msg) { msgs <- msg })

	p, err := sorting.Bubble([]int{2, 1})
	require.NoError(t, err)
	next := p.Steps()

	done := make(chan error, 1)
	go func() {
		for ev := range next {
			if err := b.OnStep(context.Background(), ev, p.Snapshot()); err != nil {
				done <- err
				return
			}
		}
		done <- nil
	}()

	var m tea.Model = tui.NewModel(context.Background(), ctl, "bubble", "")
	for i := 0; i < 3; i++ {
		msg := <-msgs
		m, _ = m.Update(msg)
	}
	require.NoError(t, <-done)
	assert.Contains(t, m.View(), "sorted")
}

func TestBridge_Close(t *testing.T) {
	b := tui.NewBridge(func(tea.Msg) {})
	errc := make(chan error, 1)
	go func() {
		errc <- b.OnStep(context.Background(), step.Event{Seq: 1, Kind: step.KindDone, Payload: step.Empty{}}, nil)
	}()
	b.Close()
	assert.ErrorIs(t, <-errc, tui.ErrClosed)
	b.Close()
	assert.ErrorIs(t, b.OnStep(context.Background(), step.Event{}, nil), tui.ErrClosed)
}

func TestView_Containers(t *testing.T) {
	tr := &avl.Tree{}
	assert.Equal(t, "(empty)", tui.View(tr))

	r, err := avl.Insert([]int{5, 6, 7})
	require.NoError(t, err)
	step.Collect(r)
	v := tui.View(r.State())
	for _, s := range []string{"6", "5", "7"} {
		assert.Contains(t, v, s)
	}
	assert.True(t, strings.HasPrefix(v, "6"), v)

	g, err := gridgraph.Parse([]string{"S#", ".E"})
	require.NoError(t, err)
	lines := strings.Split(tui.View(gridgraph.NewSearch(g)), "\n")
	assert.Len(t, lines, 2)
	assert.Contains(t, lines[0], "S")
	assert.Contains(t, lines[1], "E")

	arr := sorting.NewArray([]int{10, 40})
	bars := strings.Split(tui.View(arr), "\n")
	require.Len(t, bars, 2)
	assert.Equal(t, 10, strings.Count(bars[0], "█"))
	assert.Equal(t, 40, strings.Count(bars[1], "█"))
}
