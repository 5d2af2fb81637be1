// Package dijkstra implements Dijkstra's shortest-path algorithm on a
// gridgraph.Grid as a step producer.
//
// Every open cell is a vertex and every pair of open 4-neighbours is joined by
// an edge of weight 1. The producer finalizes cells in increasing distance
// order using a min-heap keyed on (distance, row-major index), so among cells
// at equal distance the one with the lowest coordinate is finalized first.
//
// Events:
//
//   - Visit: a cell is finalized (the start cell included).
//   - TableUpdate: a neighbour's tentative distance strictly decreased.
//   - Found: the end cell was finalized. The predecessor chain is then walked
//     and each intermediate path cell emits Select.
//   - NotFound: the reachable cells were exhausted without reaching the end.
//   - Done: always last.
//
// Complexity:
//
//   - Time:  O(V log V) with V = W×H; each cell has at most four edges.
//   - Space: O(V) for the distance table and the lazy heap.
//
// Options:
//
//   - WithMaxDistance(d): cells farther than d are never finalized.
//
// Errors (sentinel):
//
//   - ErrNoStart, ErrNoEnd: the grid lacks a start or end marker.
//   - ErrBadMaxDistance: negative distance cap.
package dijkstra
