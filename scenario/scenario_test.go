package scenario_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/knapsack"
	"github.com/katalvlaran/algostep/linear"
	"github.com/katalvlaran/algostep/scenario"
	"github.com/katalvlaran/algostep/step"
)

func TestParseInts(t *testing.T) {
	got, err := scenario.ParseInts("64, 34,25 12\t22")
	require.NoError(t, err)
	assert.Equal(t, []int{64, 34, 25, 12, 22}, got)

	got, err = scenario.ParseInts("  ")
	require.NoError(t, err)
	assert.Empty(t, got)

	_, err = scenario.ParseInts("1, two, 3")
	assert.ErrorIs(t, err, scenario.ErrBadNumber)
	assert.True(t, errors.Is(err, step.ErrInvalidInput))
}

func TestParse_ValuesForms(t *testing.T) {
	seq, err := scenario.Parse([]byte("algorithm: bubble\nvalues: [3, 1, 2]\n"))
	require.NoError(t, err)
	text, err := scenario.Parse([]byte("algorithm: bubble\nvalues: 3, 1, 2\n"))
	require.NoError(t, err)
	assert.Equal(t, scenario.IntList{3, 1, 2}, seq.Values)
	assert.Equal(t, seq.Values, text.Values)

	_, err = scenario.Parse([]byte("algorithm: bubble\nvalues: 3, x\n"))
	assert.ErrorIs(t, err, scenario.ErrBadNumber)
}

func TestParse_Rejects(t *testing.T) {
	_, err := scenario.Parse([]byte("values: [1]\n"))
	assert.ErrorIs(t, err, scenario.ErrNoAlgorithm)

	_, err = scenario.Parse([]byte("algorithm: bubble\ncolour: red\n"))
	assert.ErrorIs(t, err, scenario.ErrMalformed)

	_, err = scenario.Parse([]byte("algorithm: [\n"))
	assert.True(t, errors.Is(err, step.ErrInvalidInput))
}

func TestResolve_OverlaysDefaults(t *testing.T) {
	f, err := scenario.Parse([]byte(`
algorithm: binary-search
target: 8
`))
	require.NoError(t, err)
	a, in, err := f.Resolve()
	require.NoError(t, err)
	assert.Equal(t, "binary-search", a.Name)
	assert.Equal(t, []int{2, 5, 8, 12, 16, 23, 38}, in.Values)
	assert.Equal(t, 8, in.Target)

	p, err := a.Build(in)
	require.NoError(t, err)
	found := step.Filter(step.Collect(p), step.KindFound)
	require.Len(t, found, 1)
	assert.Equal(t, step.Outcome{Index: 2}, found[0].Payload)
}

func TestResolve_AllFields(t *testing.T) {
	f, err := scenario.Parse([]byte(`
algorithm: knapsack
items:
  - {weight: 1, value: 1}
  - {weight: 2, value: 5}
capacity: 2
`))
	require.NoError(t, err)
	_, in, err := f.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []knapsack.Item{{Weight: 1, Value: 1}, {Weight: 2, Value: 5}}, in.Items)
	assert.Equal(t, 2, in.Capacity)

	f, err = scenario.Parse([]byte(`
algorithm: bfs
grid:
  - "S.#"
  - "..E"
limit: 4
`))
	require.NoError(t, err)
	a, in, err := f.Resolve()
	require.NoError(t, err)
	assert.Equal(t, 3, in.Grid.Width)
	assert.Equal(t, 4, in.Limit)
	p, err := a.Build(in)
	require.NoError(t, err)
	assert.Equal(t, "shortest path length 3", step.Collect(p)[len(step.Collect(p))-1].Note)

	f, err = scenario.Parse([]byte("algorithm: queue\ncapacity: 1\nops: [enqueue 1, enqueue 2, dequeue]\n"))
	require.NoError(t, err)
	_, in, err = f.Resolve()
	require.NoError(t, err)
	assert.Equal(t, []linear.Op{
		{Code: linear.OpEnqueue, Value: 1}, {Code: linear.OpEnqueue, Value: 2}, {Code: linear.OpDequeue},
	}, in.Ops)
}

func TestResolve_Errors(t *testing.T) {
	_, _, err := (&scenario.File{Algorithm: "bogo"}).Resolve()
	assert.ErrorIs(t, err, catalog.ErrUnknownAlgorithm)

	_, _, err = (&scenario.File{Algorithm: "dfs", Grid: []string{"S.", "."}}).Resolve()
	assert.True(t, errors.Is(err, step.ErrInvalidInput))

	_, _, err = (&scenario.File{Algorithm: "stack", Ops: []string{"jump"}}).Resolve()
	assert.ErrorIs(t, err, linear.ErrBadOp)
}

func TestLoad_RoundTrip(t *testing.T) {
	discs := 4
	f := &scenario.File{Algorithm: "hanoi", Discs: &discs}
	data, err := f.Marshal()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "hanoi.yaml")
	require.NoError(t, os.WriteFile(path, data, 0o600))
	got, err := scenario.Load(path)
	require.NoError(t, err)
	assert.Equal(t, f, got)

	_, err = scenario.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
