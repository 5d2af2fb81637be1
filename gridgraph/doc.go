// Package gridgraph models a rectangular grid of cells as an implicit graph
// for the grid search producers (dijkstra, bfs, dfs).
//
// What:
//
//   - Grid stores Width×Height cells in row-major order. Each cell is Empty,
//     Wall, Start, End, Visited or Path.
//   - Neighbors follow the 4-neighbourhood in the fixed order up, right,
//     down, left, skipping walls and cells outside the grid.
//   - Parse builds a grid from text rows ('.' empty, '#' wall, 'S' start,
//     'E' end); String renders it back with 'o' for visited and '*' for path.
//   - ConnectedComponents and Reachable flood-fill open cells.
//   - ScatterWalls drops random walls the way the interactive demo does.
//
// Marking:
//
//   - Mark only ever adds Visited or Path to open cells. Start, End and Wall
//     are never overwritten; marking a wall is a structural violation.
//     Reset clears all marks.
//
// Complexity:
//
//   - Neighbors, Mark, At: O(1).
//   - ConnectedComponents, Reachable: O(W×H), Memory: O(W×H).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrBadCell: unknown character in Parse input.
//   - ErrDuplicateMarker: more than one Start or End.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrMarkWall: attempt to mark a wall as visited or path.
package gridgraph
