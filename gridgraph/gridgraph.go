package gridgraph

import (
	"strings"

	"github.com/cockroachdb/errors"
)

// NewGrid returns an empty grid of the given size.
// Returns ErrEmptyGrid if either dimension is not positive.
func NewGrid(width, height int) (*Grid, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	return &Grid{Width: width, Height: height, cells: make([]CellState, width*height)}, nil
}

// Parse builds a grid from text rows. '.' is empty, '#' a wall, 'S' the start
// and 'E' the end. Start and End may each appear at most once.
// Complexity: O(W×H).
func Parse(rows []string) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	width := len([]rune(rows[0]))
	g, err := NewGrid(width, len(rows))
	if err != nil {
		return nil, err
	}
	for r, line := range rows {
		runes := []rune(line)
		if len(runes) != width {
			return nil, errors.Wrapf(ErrNonRectangular, "row %d has %d cells, want %d", r, len(runes), width)
		}
		for c, ch := range runes {
			at := Coord{Row: r, Col: c}
			switch ch {
			case '.':
			case '#':
				g.cells[g.Index(at)] = Wall
			case 'S':
				if _, dup := g.Start(); dup {
					return nil, errors.Wrapf(ErrDuplicateMarker, "second start at %s", at)
				}
				if err := g.SetStart(at); err != nil {
					return nil, err
				}
			case 'E':
				if _, dup := g.End(); dup {
					return nil, errors.Wrapf(ErrDuplicateMarker, "second end at %s", at)
				}
				if err := g.SetEnd(at); err != nil {
					return nil, err
				}
			default:
				return nil, errors.Wrapf(ErrBadCell, "%q at %s", ch, at)
			}
		}
	}
	return g, nil
}

// InBounds reports whether c lies within the grid.
func (g *Grid) InBounds(c Coord) bool {
	return c.Row >= 0 && c.Row < g.Height && c.Col >= 0 && c.Col < g.Width
}

// Index returns the row-major index of c.
func (g *Grid) Index(c Coord) int { return c.Row*g.Width + c.Col }

// Coordinate converts a row-major index back to a Coord.
func (g *Grid) Coordinate(idx int) Coord {
	return Coord{Row: idx / g.Width, Col: idx % g.Width}
}

// Len returns Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// At returns the state of c. c must be in bounds.
func (g *Grid) At(c Coord) CellState { return g.cells[g.Index(c)] }

// Open reports whether c is in bounds and not a wall.
func (g *Grid) Open(c Coord) bool { return g.InBounds(c) && g.At(c) != Wall }

// Start returns the start cell, if one is set.
func (g *Grid) Start() (Coord, bool) { return g.start, g.hasStart }

// End returns the end cell, if one is set.
func (g *Grid) End() (Coord, bool) { return g.end, g.hasEnd }

// SetStart places the start marker at c, moving it if already set.
func (g *Grid) SetStart(c Coord) error {
	if !g.InBounds(c) {
		return errors.Wrapf(ErrOutOfBounds, "start %s", c)
	}
	if g.hasEnd && g.end == c {
		return errors.Wrapf(ErrDuplicateMarker, "start %s overlaps end", c)
	}
	if g.hasStart && g.start != c {
		if g.cells[g.Index(g.start)] == Start {
			g.cells[g.Index(g.start)] = Empty
		}
	}
	g.start, g.hasStart = c, true
	g.cells[g.Index(c)] = Start
	return nil
}

// SetEnd places the end marker at c, moving it if already set.
func (g *Grid) SetEnd(c Coord) error {
	if !g.InBounds(c) {
		return errors.Wrapf(ErrOutOfBounds, "end %s", c)
	}
	if g.hasStart && g.start == c {
		return errors.Wrapf(ErrDuplicateMarker, "end %s overlaps start", c)
	}
	if g.hasEnd && g.end != c {
		if g.cells[g.Index(g.end)] == End {
			g.cells[g.Index(g.end)] = Empty
		}
	}
	g.end, g.hasEnd = c, true
	g.cells[g.Index(c)] = End
	return nil
}

// ToggleWall flips c between Empty and Wall. Start and End cells are left as is.
func (g *Grid) ToggleWall(c Coord) error {
	if !g.InBounds(c) {
		return errors.Wrapf(ErrOutOfBounds, "wall %s", c)
	}
	switch i := g.Index(c); g.cells[i] {
	case Empty, Visited, Path:
		g.cells[i] = Wall
	case Wall:
		g.cells[i] = Empty
	}
	return nil
}

// Mark records Visited or Path on c. Start and End keep their state;
// Path is never downgraded back to Visited.
// Returns ErrMarkWall for walls.
func (g *Grid) Mark(c Coord, s CellState) error {
	if !g.InBounds(c) {
		return errors.Wrapf(ErrOutOfBounds, "mark %s", c)
	}
	if s != Visited && s != Path {
		return errors.AssertionFailedf("gridgraph: cannot mark %s as %s", c, s)
	}
	i := g.Index(c)
	switch g.cells[i] {
	case Wall:
		return errors.Wrapf(ErrMarkWall, "%s", c)
	case Start, End, Path:
		return nil
	}
	g.cells[i] = s
	return nil
}

// Neighbors returns the open neighbours of c in the order up, right, down, left.
func (g *Grid) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Conn4))
	for _, d := range Conn4 {
		n := Coord{Row: c.Row + d[0], Col: c.Col + d[1]}
		if g.Open(n) {
			out = append(out, n)
		}
	}
	return out
}

// Reset clears all Visited and Path marks.
func (g *Grid) Reset() {
	for i, s := range g.cells {
		if s == Visited || s == Path {
			g.cells[i] = Empty
		}
	}
}

// Count returns how many cells are in state s.
func (g *Grid) Count(s CellState) int {
	n := 0
	for _, x := range g.cells {
		if x == s {
			n++
		}
	}
	return n
}

// Clone returns a deep copy of g.
func (g *Grid) Clone() *Grid {
	c := *g
	c.cells = append([]CellState(nil), g.cells...)
	return &c
}

// Rows renders the grid as one string per row.
func (g *Grid) Rows() []string {
	rows := make([]string, g.Height)
	var b strings.Builder
	for r := 0; r < g.Height; r++ {
		b.Reset()
		for _, s := range g.cells[r*g.Width : (r+1)*g.Width] {
			b.WriteRune(s.Rune())
		}
		rows[r] = b.String()
	}
	return rows
}

// String renders the grid, one line per row.
func (g *Grid) String() string { return strings.Join(g.Rows(), "\n") }
