package catalog

import (
	"fmt"
	"math/rand/v2"

	"github.com/katalvlaran/algostep/avl"
	"github.com/katalvlaran/algostep/bfs"
	"github.com/katalvlaran/algostep/dfs"
	"github.com/katalvlaran/algostep/dijkstra"
	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/hanoi"
	"github.com/katalvlaran/algostep/knapsack"
	"github.com/katalvlaran/algostep/linear"
	"github.com/katalvlaran/algostep/search"
	"github.com/katalvlaran/algostep/sorting"
	"github.com/katalvlaran/algostep/step"
)

var algorithms = []Algorithm{
	sortEntry(sorting.NameBubble, "Repeatedly swaps adjacent out-of-order pairs."),
	sortEntry(sorting.NameSelection, "Selects the minimum of the unsorted suffix on each pass."),
	sortEntry(sorting.NameInsertion, "Sinks each element left into the sorted prefix."),
	sortEntry(sorting.NameMerge, "Splits recursively and merges sorted halves."),
	sortEntry(sorting.NameQuick, "Lomuto partitioning around the last element."),
	sortEntry(sorting.NameHeap, "Builds a max-heap and extracts the maximum repeatedly."),
	{
		Name:        search.NameBinary,
		Family:      FamilySearch,
		Description: "Halves a sorted window until the target is found or the window is empty.",
		defaults: func() Input {
			return Input{Values: []int{2, 5, 8, 12, 16, 23, 38}, Target: 23}
		},
		random: randomBinary,
		build: func(in Input) (step.Producer, error) {
			return producer(search.Binary(in.Values, in.Target))
		},
		describe: func(in Input) string { return fmt.Sprintf("values %v, target %d", in.Values, in.Target) },
	},
	{
		Name:        search.NameKMP,
		Family:      FamilySearch,
		Description: "Knuth-Morris-Pratt matching with a longest-prefix-suffix table.",
		defaults: func() Input {
			return Input{Text: "ABABDABACDABABCABAB", Pattern: "ABABCABAB"}
		},
		random: randomKMP,
		build: func(in Input) (step.Producer, error) {
			return producer(search.KMP(in.Text, in.Pattern))
		},
		describe: func(in Input) string { return fmt.Sprintf("text %q, pattern %q", in.Text, in.Pattern) },
	},
	{
		Name:        dijkstra.Name,
		Family:      FamilyGraph,
		Description: "Shortest path on a grid with unit weights.",
		defaults:    func() Input { return Input{Grid: mustGrid(mazeRows)} },
		random:      randomMaze,
		build: func(in Input) (step.Producer, error) {
			if in.Grid == nil {
				return nil, ErrMissingGrid
			}
			var opts []dijkstra.Option
			if in.Limit > 0 {
				opts = append(opts, dijkstra.WithMaxDistance(in.Limit))
			}
			return producer(dijkstra.New(in.Grid, opts...))
		},
		describe: describeGrid,
	},
	{
		Name:        bfs.Name,
		Family:      FamilyGraph,
		Description: "Breadth-first search on a grid, level by level.",
		defaults:    func() Input { return Input{Grid: mustGrid(mazeRows)} },
		random:      randomMaze,
		build: func(in Input) (step.Producer, error) {
			if in.Grid == nil {
				return nil, ErrMissingGrid
			}
			var opts []bfs.Option
			if in.Limit > 0 {
				opts = append(opts, bfs.WithMaxDepth(in.Limit))
			}
			return producer(bfs.New(in.Grid, opts...))
		},
		describe: describeGrid,
	},
	{
		Name:        dfs.Name,
		Family:      FamilyGraph,
		Description: "Depth-first flood of a grid from the start cell.",
		defaults:    func() Input { return Input{Grid: mustGrid(caveRows)} },
		random:      randomCave,
		build: func(in Input) (step.Producer, error) {
			if in.Grid == nil {
				return nil, ErrMissingGrid
			}
			var opts []dfs.Option
			if in.Limit > 0 {
				opts = append(opts, dfs.WithMaxDepth(in.Limit))
			}
			if in.FullTraversal {
				opts = append(opts, dfs.WithFullTraversal())
			}
			return producer(dfs.New(in.Grid, opts...))
		},
		describe: describeGrid,
	},
	{
		Name:        knapsack.Name,
		Family:      FamilyDP,
		Description: "0/1 knapsack by table filling and backtracking.",
		defaults: func() Input {
			return Input{
				Items:    []knapsack.Item{{Weight: 2, Value: 3}, {Weight: 3, Value: 4}, {Weight: 4, Value: 5}, {Weight: 5, Value: 6}},
				Capacity: 10,
			}
		},
		random: randomKnapsack,
		build: func(in Input) (step.Producer, error) {
			return producer(knapsack.New(in.Items, in.Capacity))
		},
		describe: func(in Input) string {
			return fmt.Sprintf("%d items %v, capacity %d", len(in.Items), in.Items, in.Capacity)
		},
	},
	{
		Name:        hanoi.Name,
		Family:      FamilyRecursion,
		Description: "Tower of Hanoi, 2^n-1 moves.",
		defaults:    func() Input { return Input{Discs: 3} },
		random:      func(rng *rand.Rand) Input { return Input{Discs: 3 + rng.IntN(5)} },
		build: func(in Input) (step.Producer, error) {
			return producer(hanoi.Solve(in.Discs))
		},
		describe: func(in Input) string { return fmt.Sprintf("%d discs", in.Discs) },
	},
	{
		Name:        avl.Name,
		Family:      FamilyTree,
		Description: "AVL insertion with single and double rotations.",
		defaults:    func() Input { return Input{Values: []int{10, 20, 30, 40, 50, 25}} },
		random: func(rng *rand.Rand) Input {
			return Input{Values: randomInts(rng, 5, 1, 100)}
		},
		build: func(in Input) (step.Producer, error) {
			return producer(avl.Insert(in.Values))
		},
		describe: func(in Input) string { return fmt.Sprintf("insert %v", in.Values) },
	},
	{
		Name:        linear.NameStack,
		Family:      FamilyLinear,
		Description: "Bounded LIFO stack: push, pop and peek.",
		defaults: func() Input {
			return Input{Ops: mustOps("push 42", "push 17", "push 8", "peek", "pop", "push 99", "pop", "pop")}
		},
		random: func(rng *rand.Rand) Input { return Input{Ops: randomOps(rng, linear.OpPush, linear.OpPop)} },
		build: func(in Input) (step.Producer, error) {
			return producer(linear.RunStack(capacity(in), in.Ops))
		},
		describe: describeOps,
	},
	{
		Name:        linear.NameQueue,
		Family:      FamilyLinear,
		Description: "Bounded FIFO queue on a ring buffer: enqueue, dequeue and peek.",
		defaults: func() Input {
			return Input{Ops: mustOps("enqueue 42", "enqueue 17", "enqueue 8", "peek", "dequeue", "enqueue 99", "dequeue")}
		},
		random: func(rng *rand.Rand) Input { return Input{Ops: randomOps(rng, linear.OpEnqueue, linear.OpDequeue)} },
		build: func(in Input) (step.Producer, error) {
			return producer(linear.RunQueue(capacity(in), in.Ops))
		},
		describe: describeOps,
	},
}

func sortEntry(name, desc string) Algorithm {
	fn := sorting.All[name]
	return Algorithm{
		Name:        name,
		Family:      FamilySorting,
		Description: desc,
		defaults:    func() Input { return Input{Values: []int{64, 34, 25, 12, 22, 11, 90}} },
		random: func(rng *rand.Rand) Input {
			return Input{Values: randomInts(rng, 10, 1, 100)}
		},
		build: func(in Input) (step.Producer, error) {
			return producer(fn(in.Values))
		},
		describe: func(in Input) string { return fmt.Sprintf("values %v", in.Values) },
	}
}

// producer keeps a failed constructor from yielding a typed-nil Producer.
func producer[S step.State[S]](r *step.Runner[S], err error) (step.Producer, error) {
	if err != nil {
		return nil, err
	}
	return r, nil
}

func capacity(in Input) int {
	if in.Capacity == 0 {
		return linear.DefaultCapacity
	}
	return in.Capacity
}

func describeGrid(in Input) string {
	if in.Grid == nil {
		return "no grid"
	}
	g := in.Grid
	desc := fmt.Sprintf("%dx%d grid, %d walls", g.Width, g.Height, g.Count(gridgraph.Wall))
	start, okS := g.Start()
	end, okE := g.End()
	if okS && okE && !g.Connected(start, end) {
		desc += ", end unreachable"
	}
	return desc
}

func describeOps(in Input) string {
	return fmt.Sprintf("%d ops %v, capacity %d", len(in.Ops), in.Ops, capacity(in))
}
