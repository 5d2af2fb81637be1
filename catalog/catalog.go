// Package catalog names every algorithm the stepper can run, together with
// its family, default input, random input generator and producer factory.
package catalog

import (
	"fmt"
	"math/rand/v2"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/knapsack"
	"github.com/katalvlaran/algostep/linear"
	"github.com/katalvlaran/algostep/step"
)

// Family groups related algorithms.
type Family string

const (
	FamilySorting   Family = "sorting"
	FamilySearch    Family = "search"
	FamilyGraph     Family = "graph"
	FamilyDP        Family = "dynamic-programming"
	FamilyRecursion Family = "recursion"
	FamilyTree      Family = "tree"
	FamilyLinear    Family = "linear"
)

var (
	// ErrUnknownAlgorithm indicates a name that is not registered.
	ErrUnknownAlgorithm = step.InvalidInput("catalog: unknown algorithm")

	// ErrMissingGrid indicates a grid algorithm built without a grid.
	ErrMissingGrid = step.InvalidInput("catalog: grid algorithm needs a grid")
)

// Input is the union of every algorithm's input. Each algorithm reads only
// the fields it needs.
type Input struct {
	Values []int // sorting, binary-search, avl
	Target int   // binary-search

	Text    string // kmp
	Pattern string

	Grid          *gridgraph.Grid // dijkstra, bfs, dfs
	Limit         int             // distance or depth cap for grid searches; 0 means none
	FullTraversal bool            // dfs

	Items    []knapsack.Item
	Capacity int // knapsack capacity, or stack/queue bound (0 means linear.DefaultCapacity)

	Discs int // hanoi

	Ops []linear.Op // stack, queue
}

// Algorithm is one catalog entry.
type Algorithm struct {
	Name        string
	Family      Family
	Description string

	defaults func() Input
	random   func(rng *rand.Rand) Input
	build    func(in Input) (step.Producer, error)
	describe func(in Input) string
}

// Default returns the built-in input.
func (a Algorithm) Default() Input { return a.defaults() }

// Random returns a generated input drawn from rng.
func (a Algorithm) Random(rng *rand.Rand) Input { return a.random(rng) }

// Build validates in and returns a producer over it.
func (a Algorithm) Build(in Input) (step.Producer, error) {
	p, err := a.build(in)
	if err != nil {
		return nil, errors.Wrapf(err, "build %s", a.Name)
	}
	return p, nil
}

// Describe summarises the fields of in that a reads.
func (a Algorithm) Describe(in Input) string { return a.describe(in) }

// String returns the name.
func (a Algorithm) String() string { return a.Name }

var index = func() map[string]int {
	m := make(map[string]int, len(algorithms))
	for i, a := range algorithms {
		if _, dup := m[a.Name]; dup {
			panic(fmt.Sprintf("catalog: duplicate algorithm %q", a.Name))
		}
		m[a.Name] = i
	}
	return m
}()

// Lookup returns the algorithm called name.
func Lookup(name string) (Algorithm, error) {
	i, ok := index[name]
	if !ok {
		return Algorithm{}, errors.Wrapf(ErrUnknownAlgorithm, "%q", name)
	}
	return algorithms[i], nil
}

// All returns every algorithm grouped by family.
func All() []Algorithm {
	return append([]Algorithm(nil), algorithms...)
}

// Names returns every algorithm name in catalog order.
func Names() []string {
	out := make([]string, len(algorithms))
	for i, a := range algorithms {
		out[i] = a.Name
	}
	return out
}
