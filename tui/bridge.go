package tui

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/katalvlaran/algostep/step"
)

// ErrClosed is returned by OnStep once the bridge is closed.
var ErrClosed = errors.New("tui: bridge closed")

// Bridge is an engine.Renderer that forwards events into a tea.Program and
// waits for the model to apply each one.
type Bridge struct {
	send   func(tea.Msg)
	closed chan struct{}
	once   sync.Once
}

// NewBridge returns a Bridge sending through send, typically program.Send.
func NewBridge(send func(tea.Msg)) *Bridge {
	return &Bridge{send: send, closed: make(chan struct{})}
}

// OnStep implements engine.Renderer. The snapshot is drawn before sending
// since it is only valid for the duration of the call.
func (b *Bridge) OnStep(ctx context.Context, ev step.Event, snap step.Snapshot) error {
	ack := make(chan struct{})
	select {
	case <-b.closed:
		return ErrClosed
	default:
	}
	b.send(StepMsg{Event: ev, View: View(snap), ack: ack})
	select {
	case <-ack:
		return nil
	case <-b.closed:
		return ErrClosed
	case <-ctx.Done():
		return ctx.Err()
	}
}

// OnReset implements engine.Renderer.
func (b *Bridge) OnReset() {
	select {
	case <-b.closed:
	default:
		b.send(ResetMsg{})
	}
}

// Close releases a pending OnStep; call it once the program has exited.
func (b *Bridge) Close() {
	b.once.Do(func() { close(b.closed) })
}
