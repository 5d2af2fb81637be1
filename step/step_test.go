package step_test

import (
	"fmt"
	"iter"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/step"
)

// counter is a minimal container used to exercise Runner.
type counter struct{ n int }

func (c *counter) Clone() *counter { return &counter{n: c.n} }
func (c *counter) String() string  { return fmt.Sprint(c.n) }

func countTo(limit int) *step.Runner[*counter] {
	return step.NewRunner("count", &counter{}, func(c *counter, em *step.Emitter) {
		for i := 0; i < limit; i++ {
			c.n++
			if !em.Emit(step.KindAssign, step.Slot{Pos: i, Value: c.n}, "") {
				return
			}
		}
		em.Emit(step.KindDone, nil, "done")
	})
}

func TestRunner_SequenceNumbers(t *testing.T) {
	events := step.Collect(countTo(4))
	require.Len(t, events, 5)
	for i, ev := range events {
		assert.Equal(t, i+1, ev.Seq)
	}
	assert.Equal(t, step.KindDone, events[len(events)-1].Kind)
	assert.Equal(t, step.Empty{}, events[4].Payload)
}

func TestRunner_Restartable(t *testing.T) {
	r := countTo(3)
	first := step.Collect(r)
	assert.Equal(t, "3", r.Snapshot().String())
	second := step.Collect(r)
	assert.Equal(t, first, second)
	assert.Equal(t, 3, r.State().n)
}

func TestRunner_SnapshotFollowsPull(t *testing.T) {
	r := countTo(3)
	next, stop := iter.Pull(r.Steps())
	defer stop()

	ev, ok := next()
	require.True(t, ok)
	assert.Equal(t, 1, ev.Seq)
	assert.Equal(t, "1", r.Snapshot().String())

	_, ok = next()
	require.True(t, ok)
	assert.Equal(t, "2", r.Snapshot().String())
}

func TestEmitter_StopsAfterConsumerBreaks(t *testing.T) {
	var yields int
	em := step.NewEmitter(func(step.Event) bool {
		yields++
		return yields < 2
	})
	assert.True(t, em.Emit(step.KindCompare, step.Pair{I: 0, J: 1}, ""))
	assert.False(t, em.Emit(step.KindSwap, step.Pair{I: 0, J: 1}, ""))
	assert.True(t, em.Stopped())
	assert.False(t, em.Emitf(step.KindDone, nil, "%d", 1))
	assert.Equal(t, 2, yields)
	assert.Equal(t, 2, em.Count())
}

func TestKind_String(t *testing.T) {
	assert.Equal(t, "compare", step.KindCompare.String())
	assert.Equal(t, "table-update", step.KindTableUpdate.String())
	assert.Equal(t, "done", step.KindDone.String())
	assert.Equal(t, "kind(99)", step.Kind(99).String())
	assert.Len(t, step.Kinds(), 12)
}

func TestEvent_String(t *testing.T) {
	ev := step.Event{Seq: 3, Kind: step.KindSwap, Payload: step.Pair{I: 0, J: 1}, Note: "swap 5 and 1"}
	assert.Equal(t, "#3 swap (0,1): swap 5 and 1", ev.String())
	ev = step.Event{Seq: 9, Kind: step.KindDone, Payload: step.Values{Values: []int{1, 2}}}
	assert.Equal(t, "#9 done [1 2]", ev.String())
}

func TestFilterAndCount(t *testing.T) {
	events := step.Collect(countTo(3))
	assert.Len(t, step.Filter(events, step.KindAssign), 3)
	assert.Len(t, step.Filter(events, step.KindAssign, step.KindDone), 4)
	assert.Equal(t, 1, step.Count(events, step.KindDone))
	assert.Zero(t, step.Count(events, step.KindSwap))
}

func TestInvalidInputMark(t *testing.T) {
	err := step.InvalidInput("sorting: empty")
	assert.True(t, errors.Is(err, step.ErrInvalidInput))
	wrapped := errors.Wrap(err, "build")
	assert.True(t, errors.Is(wrapped, step.ErrInvalidInput))
	assert.False(t, errors.Is(wrapped, step.ErrStructuralViolation))
}
