package hanoi_test

import (
	"iter"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/hanoi"
	"github.com/katalvlaran/algostep/step"
)

// TestSolve_ThreeDiscs pulls one event at a time and checks the peg
// invariant after every move.
func TestSolve_ThreeDiscs(t *testing.T) {
	r, err := hanoi.Solve(3)
	require.NoError(t, err)

	next, stop := iter.Pull(r.Steps())
	defer stop()
	moves := 0
	for {
		ev, ok := next()
		if !ok {
			break
		}
		if ev.Kind == step.KindMove {
			moves++
			assert.True(t, r.State().Valid(), "after %s", ev)
		}
	}
	assert.Equal(t, 7, moves)
	assert.Equal(t, []int{3, 2, 1}, r.State().Pegs[hanoi.Target])
	assert.Empty(t, r.State().Pegs[hanoi.Source])
}

func TestSolve_MoveCounts(t *testing.T) {
	for n := 1; n <= 8; n++ {
		r, err := hanoi.Solve(n)
		require.NoError(t, err)
		events := step.Collect(r)
		assert.Equal(t, 1<<n-1, step.Count(events, step.KindMove), "n=%d", n)
		assert.Zero(t, step.Count(events, step.KindCompare))
		assert.Equal(t, step.KindDone, events[len(events)-1].Kind)
	}
}

func TestSolve_FirstMoves(t *testing.T) {
	r, err := hanoi.Solve(2)
	require.NoError(t, err)
	events := step.Collect(r)
	require.Len(t, events, 4)
	assert.Equal(t, step.DiscMove{Disc: 1, From: hanoi.Source, To: hanoi.Auxiliary}, events[0].Payload)
	assert.Equal(t, step.DiscMove{Disc: 2, From: hanoi.Source, To: hanoi.Target}, events[1].Payload)
	assert.Equal(t, step.DiscMove{Disc: 1, From: hanoi.Auxiliary, To: hanoi.Target}, events[2].Payload)
	assert.Equal(t, "move disc 1 from Source to Auxiliary", events[0].Note)
}

func TestSolve_DiscCount(t *testing.T) {
	for _, n := range []int{0, -1, hanoi.MaxDiscs + 1} {
		_, err := hanoi.Solve(n)
		assert.ErrorIs(t, err, hanoi.ErrDiscCount)
		assert.True(t, errors.Is(err, step.ErrInvalidInput))
	}
}

func TestPegs_IllegalMoves(t *testing.T) {
	p := hanoi.NewPegs(2)
	_, err := p.Move(hanoi.Target, hanoi.Source)
	assert.True(t, errors.Is(err, hanoi.ErrIllegalMove))
	assert.True(t, errors.Is(err, step.ErrStructuralViolation))

	disc, err := p.Move(hanoi.Source, hanoi.Target)
	require.NoError(t, err)
	assert.Equal(t, 1, disc)
	_, err = p.Move(hanoi.Source, hanoi.Target)
	assert.True(t, errors.Is(err, hanoi.ErrIllegalMove))
	_, err = p.Move(hanoi.Source, hanoi.Source)
	assert.True(t, errors.Is(err, hanoi.ErrIllegalMove))

	assert.True(t, p.Valid())
	assert.Equal(t, 1, p.Moves)
	assert.Equal(t, "Source    | 2\nAuxiliary |\nTarget    | 1", p.String())
}
