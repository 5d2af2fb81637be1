package gridgraph

// ConnectedComponents finds all contiguous regions of open (non-wall) cells.
// Each component is a slice of row-major indices in BFS order; components are
// ordered by their lowest index.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func (g *Grid) ConnectedComponents() [][]int {
	seen := make([]bool, len(g.cells))
	var comps [][]int
	for i, s := range g.cells {
		if s == Wall || seen[i] {
			continue
		}
		comps = append(comps, g.flood(i, seen))
	}
	return comps
}

// Reachable returns the open cells reachable from c, c included, in BFS order.
// Returns nil if c is a wall or out of bounds.
func (g *Grid) Reachable(c Coord) []Coord {
	if !g.Open(c) {
		return nil
	}
	idx := g.flood(g.Index(c), make([]bool, len(g.cells)))
	out := make([]Coord, len(idx))
	for i, v := range idx {
		out[i] = g.Coordinate(v)
	}
	return out
}

// Connected reports whether a path of open cells joins a and b.
func (g *Grid) Connected(a, b Coord) bool {
	if !g.Open(a) || !g.Open(b) {
		return false
	}
	for _, c := range g.Reachable(a) {
		if c == b {
			return true
		}
	}
	return false
}

// flood collects the component containing index i0 and marks it in seen.
func (g *Grid) flood(i0 int, seen []bool) []int {
	queue := []int{i0}
	seen[i0] = true
	for qi := 0; qi < len(queue); qi++ {
		for _, n := range g.Neighbors(g.Coordinate(queue[qi])) {
			ni := g.Index(n)
			if !seen[ni] {
				seen[ni] = true
				queue = append(queue, ni)
			}
		}
	}
	return queue
}
