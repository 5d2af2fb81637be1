// Package render writes step events to a terminal or any io.Writer.
package render

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fatih/color"

	"github.com/katalvlaran/algostep/step"
)

// palette colours each event kind's label.
var palette = map[step.Kind][]color.Attribute{
	step.KindCompare:     {color.FgYellow},
	step.KindSwap:        {color.FgRed},
	step.KindAssign:      {color.FgMagenta},
	step.KindVisit:       {color.FgCyan},
	step.KindBacktrack:   {color.FgHiBlack},
	step.KindTableUpdate: {color.FgBlue},
	step.KindSelect:      {color.FgGreen},
	step.KindRotate:      {color.FgMagenta, color.Bold},
	step.KindMove:        {color.FgCyan},
	step.KindFound:       {color.FgGreen, color.Bold},
	step.KindNotFound:    {color.FgRed, color.Bold},
	step.KindDone:        {color.Bold},
}

// Options configures Text.
type Options struct {
	// Color enables ANSI colours. When true, fatih/color still disables them
	// for non-terminal output unless color.NoColor is cleared.
	Color bool
	// Snapshots prints the container after every event.
	Snapshots bool
}

// Option configures Options.
type Option func(*Options)

// WithColor toggles colours.
func WithColor(on bool) Option { return func(o *Options) { o.Color = on } }

// WithSnapshots toggles container snapshots.
func WithSnapshots(on bool) Option { return func(o *Options) { o.Snapshots = on } }

// Text is an engine.Renderer printing one line per event:
//
//	#3 swap      (0,1): swap 5 and 1
type Text struct {
	opts   Options
	colors map[step.Kind]*color.Color

	mu sync.Mutex
	w  io.Writer
}

// NewText returns a Text renderer writing to w. Colours are on by default.
func NewText(w io.Writer, opts ...Option) *Text {
	o := Options{Color: true}
	for _, opt := range opts {
		opt(&o)
	}
	colors := make(map[step.Kind]*color.Color, len(palette))
	for k, attrs := range palette {
		c := color.New(attrs...)
		if !o.Color {
			c.DisableColor()
		}
		colors[k] = c
	}
	return &Text{opts: o, colors: colors, w: w}
}

// OnStep implements engine.Renderer.
func (t *Text) OnStep(_ context.Context, ev step.Event, snap step.Snapshot) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, err := io.WriteString(t.w, t.Format(ev)+"\n"); err != nil {
		return err
	}
	if !t.opts.Snapshots || snap == nil {
		return nil
	}
	_, err := io.WriteString(t.w, indent(snap.String(), "    ")+"\n")
	return err
}

// OnReset implements engine.Renderer.
func (t *Text) OnReset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, _ = io.WriteString(t.w, "-- reset --\n")
}

// Format renders ev as one line with a padded, coloured kind label.
func (t *Text) Format(ev step.Event) string {
	label := fmt.Sprintf("%-12s", ev.Kind)
	if c, ok := t.colors[ev.Kind]; ok {
		label = c.Sprint(label)
	}
	var b strings.Builder
	fmt.Fprintf(&b, "#%-4d %s", ev.Seq, label)
	if s := ev.Payload.String(); s != "" {
		b.WriteString(s)
	}
	if ev.Note != "" {
		b.WriteString(": ")
		b.WriteString(ev.Note)
	}
	return strings.TrimRight(b.String(), " ")
}

func indent(s, prefix string) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	for i, l := range lines {
		lines[i] = prefix + l
	}
	return strings.Join(lines, "\n")
}
