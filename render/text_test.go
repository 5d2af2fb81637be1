package render_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/hanoi"
	"github.com/katalvlaran/algostep/render"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
)

func drive(t *testing.T, r *render.Text, p step.Producer) {
	t.Helper()
	for ev := range p.Steps() {
		require.NoError(t, r.OnStep(context.Background(), ev, p.Snapshot()))
	}
}

func TestText_Lines(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewText(&buf, render.WithColor(false))
	p, err := sorting.Bubble([]int{2, 1})
	require.NoError(t, err)
	drive(t, r, p)

	assert.Equal(t, ""+
		"#1    compare     (0,1): compare 2 and 1\n"+
		"#2    swap        (0,1): swap 2 and 1\n"+
		"#3    done        [1 2]: sorted\n", buf.String())
}

func TestText_Snapshots(t *testing.T) {
	var buf bytes.Buffer
	r := render.NewText(&buf, render.WithColor(false), render.WithSnapshots(true))
	p, err := hanoi.Solve(1)
	require.NoError(t, err)
	drive(t, r, p)
	r.OnReset()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Contains(t, lines[0], "move")
	assert.True(t, strings.HasPrefix(lines[1], "    "), lines[1])
	assert.Equal(t, "-- reset --", lines[len(lines)-1])
}

func TestText_Color(t *testing.T) {
	r := render.NewText(&bytes.Buffer{}, render.WithColor(false))
	line := r.Format(step.Event{Seq: 9, Kind: step.KindFound, Payload: step.Outcome{Index: 4}, Note: "hit"})
	assert.Equal(t, "#9    found       index 4: hit", line)
	assert.NotContains(t, line, "\x1b[")
}
