// Package tui is an interactive Bubble Tea front end for the engine. Bridge
// feeds events into the program; Model draws them and maps keys to engine
// controls.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/algostep/engine"
	"github.com/katalvlaran/algostep/step"
)

// SpeedStep is how much one + or - changes the step interval.
const SpeedStep = 50 * time.Millisecond

const logLines = 8

// Controller is the subset of *engine.Engine the model drives.
type Controller interface {
	Pause() error
	Resume() error
	Restart(ctx context.Context) error
	SetInterval(d time.Duration) error
	Interval() time.Duration
	Session() engine.Session
	Wait(ctx context.Context) (engine.Session, error)
}

// Model is the Bubble Tea model.
type Model struct {
	ctx   context.Context
	ctl   Controller
	title string
	about string

	view string
	log  []step.Event
	done bool
	err  error
	// run counts restarts; DoneMsg from an earlier run is dropped.
	run int
}

// NewModel returns a model driving ctl. title names the algorithm and about
// describes its input.
func NewModel(ctx context.Context, ctl Controller, title, about string) Model {
	return Model{ctx: ctx, ctl: ctl, title: title, about: about}
}

// Init implements tea.Model. It waits for the run started before the
// program.
func (m Model) Init() tea.Cmd { return m.wait(m.run) }

// wait blocks until the current run ends and reports it as a DoneMsg tagged
// with run. Nothing is reported once ctx is done.
func (m Model) wait(run int) tea.Cmd {
	ctx, ctl := m.ctx, m.ctl
	return func() tea.Msg {
		s, err := ctl.Wait(ctx)
		if ctx.Err() != nil {
			return nil
		}
		return DoneMsg{Session: s, Err: err, run: run}
	}
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case StepMsg:
		return m.handleStep(msg)
	case ResetMsg:
		m.view, m.log, m.done, m.err = "", nil, false, nil
		return m, nil
	case DoneMsg:
		if msg.run != m.run {
			return m, nil
		}
		m.done, m.err = true, msg.Err
		return m, nil
	case controlErrMsg:
		m.err = msg.err
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleStep(msg StepMsg) (tea.Model, tea.Cmd) {
	m.view = msg.View
	m.log = append(m.log, msg.Event)
	if len(m.log) > logLines {
		m.log = m.log[len(m.log)-logLines:]
	}
	if msg.ack != nil {
		close(msg.ack)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	case " ", "p":
		var err error
		if m.ctl.Session().State == engine.StatePaused {
			err = m.ctl.Resume()
		} else {
			err = m.ctl.Pause()
		}
		m.err = err
	case "+", "=":
		m.err = m.ctl.SetInterval(max(m.ctl.Interval()-SpeedStep, engine.MinInterval))
	case "-", "_":
		m.err = m.ctl.SetInterval(min(m.ctl.Interval()+SpeedStep, engine.MaxInterval))
	case "r":
		// Restart waits for the in-flight step, which waits for this loop.
		m.done, m.err = false, nil
		m.run++
		ctx, ctl, wait := m.ctx, m.ctl, m.wait(m.run)
		return m, func() tea.Msg {
			if err := ctl.Restart(ctx); err != nil {
				return controlErrMsg{err: err}
			}
			return wait()
		}
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render("algostep | "+m.title) + "\n")
	if m.about != "" {
		b.WriteString(SubtitleStyle.Render(m.about) + "\n")
	}

	body := m.view
	if body == "" {
		body = SubtitleStyle.Render("waiting for the first step")
	}
	b.WriteString(BorderStyle.Render(body) + "\n")

	for i, ev := range m.log {
		line := fmt.Sprintf("%s %s", StyleForKind(ev.Kind).Render(fmt.Sprintf("%-12s", ev.Kind)), ev.Note)
		if i == len(m.log)-1 {
			line = CurrentStyle.Render("> ") + line
		} else {
			line = LogStyle.Render("  ") + line
		}
		b.WriteString(line + "\n")
	}
	if m.err != nil {
		b.WriteString(ErrorStyle.Render(m.err.Error()) + "\n")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, StatusBarStyle.Render(m.status()), " ",
		HelpStyle.Render("space pause/resume | +/- speed | r restart | q quit")))
	return b.String()
}

func (m Model) status() string {
	s := m.ctl.Session()
	state := s.State.String()
	if m.done {
		state = "finished"
	}
	return fmt.Sprintf("%s | step %d | %s", state, s.Steps, s.Interval)
}
