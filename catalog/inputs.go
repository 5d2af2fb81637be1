package catalog

import (
	"math/rand/v2"

	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/knapsack"
	"github.com/katalvlaran/algostep/linear"
)

// mazeRows is the default shortest-path grid: 15x15, path length 36.
var mazeRows = []string{
	"S..............",
	".#####.#######.",
	".....#.#.......",
	"####.#.#.#####.",
	".....#...#.....",
	".#########.####",
	"...............",
	"##########.###.",
	"...#.......#...",
	".#.#.#######.#.",
	".#...#.......#.",
	".#####.#######.",
	".#.....#.....#.",
	".#.#####.###.#.",
	"...#.......#..E",
}

// caveRows is the default DFS grid: 10x10, 59 open cells, one region.
var caveRows = []string{
	"S...#.....",
	".##.#.###.",
	".#..#...#.",
	".#.####.#.",
	".#......#.",
	".######.#.",
	"......#.#.",
	".####.#.##",
	"....#.#...",
	"###...#.#.",
}

const (
	mazeSize    = 15
	mazeDensity = 0.3
	caveSize    = 10
	caveDensity = 0.2
)

func mustGrid(rows []string) *gridgraph.Grid {
	g, err := gridgraph.Parse(rows)
	if err != nil {
		panic(err)
	}
	return g
}

func mustOps(lines ...string) []linear.Op {
	ops, err := linear.ParseOps(lines)
	if err != nil {
		panic(err)
	}
	return ops
}

// randomInts returns n values in [lo, hi].
func randomInts(rng *rand.Rand, n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = lo + rng.IntN(hi-lo+1)
	}
	return out
}

// randomBinary spaces seven values ten apart with jitter and targets one of them.
func randomBinary(rng *rand.Rand) Input {
	values := make([]int, 7)
	for i := range values {
		values[i] = i*10 + rng.IntN(5)
	}
	return Input{Values: values, Target: values[rng.IntN(len(values))]}
}

// randomKMP draws 20 capital letters and cuts a 5 to 9 letter pattern out of them.
func randomKMP(rng *rand.Rand) Input {
	text := make([]byte, 20)
	for i := range text {
		text[i] = byte('A' + rng.IntN(26))
	}
	n := 5 + rng.IntN(5)
	at := rng.IntN(len(text) - n)
	return Input{Text: string(text), Pattern: string(text[at : at+n])}
}

func randomMaze(rng *rand.Rand) Input {
	g := openGrid(mazeSize)
	_ = g.SetEnd(gridgraph.Coord{Row: mazeSize - 1, Col: mazeSize - 1})
	g.ScatterWalls(rng, mazeDensity)
	return Input{Grid: g}
}

func randomCave(rng *rand.Rand) Input {
	g := openGrid(caveSize)
	g.FillWalls(rng, caveDensity)
	return Input{Grid: g}
}

// openGrid returns an empty n x n grid with the start in the top-left corner.
func openGrid(n int) *gridgraph.Grid {
	g, err := gridgraph.NewGrid(n, n)
	if err != nil {
		panic(err)
	}
	_ = g.SetStart(gridgraph.Coord{})
	return g
}

func randomKnapsack(rng *rand.Rand) Input {
	items := make([]knapsack.Item, 4)
	for i := range items {
		items[i] = knapsack.Item{Weight: 2 + rng.IntN(5), Value: 3 + rng.IntN(5)}
	}
	return Input{Items: items, Capacity: 10 + rng.IntN(11)}
}

// randomOps pushes 3 to 7 values in 10..99, peeks, then removes two.
func randomOps(rng *rand.Rand, add, remove linear.OpCode) []linear.Op {
	n := 3 + rng.IntN(5)
	ops := make([]linear.Op, 0, n+3)
	for range n {
		ops = append(ops, linear.Op{Code: add, Value: 10 + rng.IntN(90)})
	}
	ops = append(ops, linear.Op{Code: linear.OpPeek}, linear.Op{Code: remove}, linear.Op{Code: remove})
	return ops
}
