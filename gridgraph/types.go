package gridgraph

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/step"
)

// Sentinel errors for gridgraph operations.
var (
	// ErrEmptyGrid indicates input grid has no rows or no columns.
	ErrEmptyGrid = step.InvalidInput("gridgraph: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = step.InvalidInput("gridgraph: all rows must have the same length")
	// ErrBadCell indicates an unknown cell character.
	ErrBadCell = step.InvalidInput("gridgraph: unknown cell character")
	// ErrDuplicateMarker indicates a second start or end cell.
	ErrDuplicateMarker = step.InvalidInput("gridgraph: start and end may appear at most once")
	// ErrOutOfBounds indicates a coordinate outside the grid.
	ErrOutOfBounds = step.InvalidInput("gridgraph: coordinate out of bounds")
	// ErrMarkWall indicates an attempt to mark a wall cell.
	ErrMarkWall = errors.Mark(errors.New("gridgraph: walls cannot be marked"), step.ErrStructuralViolation)
)

// CellState is the content of one grid cell.
type CellState uint8

const (
	Empty CellState = iota
	Wall
	Start
	End
	Visited
	Path
)

var cellRunes = [...]rune{Empty: '.', Wall: '#', Start: 'S', End: 'E', Visited: 'o', Path: '*'}

// Rune returns the single-character rendering of s.
func (s CellState) Rune() rune {
	if int(s) < len(cellRunes) {
		return cellRunes[s]
	}
	return '?'
}

// String returns the rune of s as a string.
func (s CellState) String() string { return string(s.Rune()) }

// Coord addresses a cell by row and column.
type Coord struct {
	Row, Col int
}

// String renders c as "(row,col)".
func (c Coord) String() string { return fmt.Sprintf("(%d,%d)", c.Row, c.Col) }

// Cell converts c into an event payload.
func (c Coord) Cell() step.Cell { return step.Cell{Row: c.Row, Col: c.Col} }

// Conn4 lists the 4-neighbourhood offsets as {dRow, dCol} in the order
// up, right, down, left.
var Conn4 = [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}}

// Grid is a Width×Height cell grid. Build it with NewGrid or Parse.
type Grid struct {
	Width, Height int
	cells         []CellState
	start, end    Coord
	hasStart      bool
	hasEnd        bool
}
