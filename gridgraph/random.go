package gridgraph

import "math/rand/v2"

// ScatterWalls makes floor(W·H·density) random placement attempts, turning
// each chosen Empty cell into a wall. Start and End are never covered and a
// cell drawn twice is simply skipped, so the final wall count may be lower.
// Returns the number of walls added.
func (g *Grid) ScatterWalls(rng *rand.Rand, density float64) int {
	attempts := int(float64(len(g.cells)) * density)
	added := 0
	for range attempts {
		i := rng.IntN(len(g.cells))
		if g.cells[i] == Empty {
			g.cells[i] = Wall
			added++
		}
	}
	return added
}

// FillWalls turns every Empty cell into a wall with independent probability p.
func (g *Grid) FillWalls(rng *rand.Rand, p float64) int {
	added := 0
	for i, s := range g.cells {
		if s == Empty && rng.Float64() < p {
			g.cells[i] = Wall
			added++
		}
	}
	return added
}
