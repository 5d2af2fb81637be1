package gridgraph

import (
	"math"
	"strconv"
	"strings"
)

// Infinity is the distance of a cell not reached yet.
const Infinity = math.MaxInt

// Search is the container shared by the grid search producers: the grid being
// marked plus a per-cell distance (or depth) and predecessor table.
type Search struct {
	Grid *Grid
	// Dist holds the best known distance per row-major index.
	Dist []int
	// Prev holds the predecessor index per cell, -1 when none.
	Prev []int
	// Order lists cells in the order they were finalized (visited).
	Order []Coord
	// Path is the reconstructed start→end path, endpoints included.
	Path []Coord
}

// NewSearch wraps g with a fresh distance table. g is not copied.
func NewSearch(g *Grid) *Search {
	s := &Search{Grid: g, Dist: make([]int, g.Len()), Prev: make([]int, g.Len())}
	for i := range s.Dist {
		s.Dist[i] = Infinity
		s.Prev[i] = -1
	}
	return s
}

// Clone implements step.State.
func (s *Search) Clone() *Search {
	return &Search{
		Grid:  s.Grid.Clone(),
		Dist:  append([]int(nil), s.Dist...),
		Prev:  append([]int(nil), s.Prev...),
		Order: append([]Coord(nil), s.Order...),
		Path:  append([]Coord(nil), s.Path...),
	}
}

// Distance returns the recorded distance of c.
func (s *Search) Distance(c Coord) int { return s.Dist[s.Grid.Index(c)] }

// Relax records d as the distance of c via from if it is strictly shorter.
// It reports whether the table changed; distances never increase.
func (s *Search) Relax(c, from Coord, d int) bool {
	i := s.Grid.Index(c)
	if d >= s.Dist[i] {
		return false
	}
	s.Dist[i] = d
	s.Prev[i] = s.Grid.Index(from)
	return true
}

// Trace walks the predecessor chain back from c and returns the path in
// start→c order. The walk is bounded by the grid size, so a corrupt chain
// cannot loop.
func (s *Search) Trace(c Coord) []Coord {
	var rev []Coord
	for i := s.Grid.Index(c); i >= 0 && len(rev) <= s.Grid.Len(); i = s.Prev[i] {
		rev = append(rev, s.Grid.Coordinate(i))
	}
	out := make([]Coord, len(rev))
	for i, c := range rev {
		out[len(rev)-1-i] = c
	}
	return out
}

// String renders the grid followed by a summary line.
func (s *Search) String() string {
	var b strings.Builder
	b.WriteString(s.Grid.String())
	if len(s.Path) > 0 {
		b.WriteString("\npath length ")
		b.WriteString(strconv.Itoa(len(s.Path) - 1))
	}
	return b.String()
}
