package catalog_test

import (
	"math/rand/v2"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/algostep/catalog"
	"github.com/katalvlaran/algostep/step"
)

func lastKind(events []step.Event) step.Kind {
	return events[len(events)-1].Kind
}

func TestCatalog_Names(t *testing.T) {
	assert.Equal(t, []string{
		"bubble", "selection", "insertion", "merge", "quick", "heap",
		"binary-search", "kmp",
		"dijkstra", "bfs", "dfs",
		"knapsack", "hanoi", "avl", "stack", "queue",
	}, catalog.Names())
	assert.Len(t, catalog.All(), 16)
}

func TestCatalog_DefaultsRunToDone(t *testing.T) {
	for _, a := range catalog.All() {
		t.Run(a.Name, func(t *testing.T) {
			p, err := a.Build(a.Default())
			require.NoError(t, err)
			assert.Equal(t, a.Name, p.Name())

			events := step.Collect(p)
			require.NotEmpty(t, events)
			assert.Equal(t, step.KindDone, lastKind(events))
			assert.NotEmpty(t, a.Describe(a.Default()))
		})
	}
}

func TestCatalog_RandomInputsBuild(t *testing.T) {
	for _, a := range catalog.All() {
		t.Run(a.Name, func(t *testing.T) {
			for seed := range uint64(20) {
				rng := rand.New(rand.NewPCG(seed, 7))
				in := a.Random(rng)
				p, err := a.Build(in)
				require.NoError(t, err, "seed %d: %s", seed, a.Describe(in))
				assert.Equal(t, step.KindDone, lastKind(step.Collect(p)))
			}
		})
	}
}

func TestCatalog_DefaultOutcomes(t *testing.T) {
	run := func(name string) []step.Event {
		a, err := catalog.Lookup(name)
		require.NoError(t, err)
		p, err := a.Build(a.Default())
		require.NoError(t, err)
		return step.Collect(p)
	}

	found := step.Filter(run("binary-search"), step.KindFound)
	require.Len(t, found, 1)
	assert.Equal(t, step.Outcome{Index: 5}, found[0].Payload)

	found = step.Filter(run("kmp"), step.KindFound)
	require.Len(t, found, 1)
	assert.Equal(t, step.Outcome{Index: 10}, found[0].Payload)

	assert.Equal(t, "shortest path length 36", run("dijkstra")[len(run("dijkstra"))-1].Note)
	assert.Equal(t, step.Values{Values: []int{59}}, run("dfs")[len(run("dfs"))-1].Payload)
	assert.Equal(t, 7, step.Count(run("hanoi"), step.KindMove))
}

func TestCatalog_Errors(t *testing.T) {
	_, err := catalog.Lookup("bogo")
	assert.ErrorIs(t, err, catalog.ErrUnknownAlgorithm)
	assert.True(t, errors.Is(err, step.ErrInvalidInput))

	a, err := catalog.Lookup("dijkstra")
	require.NoError(t, err)
	p, err := a.Build(catalog.Input{})
	assert.ErrorIs(t, err, catalog.ErrMissingGrid)
	assert.Nil(t, p)

	a, err = catalog.Lookup("bubble")
	require.NoError(t, err)
	p, err = a.Build(catalog.Input{})
	assert.True(t, errors.Is(err, step.ErrInvalidInput))
	assert.Nil(t, p)
}
