// Package bfs provides breadth-first shortest-path search over a
// gridgraph.Grid as a step producer.
//
// BFS is the unweighted counterpart of the dijkstra producer: cells are
// discovered level by level in neighbour order (up, right, down, left), so
// the first path found to the end cell is a shortest one.
//
// Events: Visit per dequeued cell, TableUpdate when a cell is discovered
// (carrying its depth), Found when the end is dequeued followed by Select
// per intermediate path cell, NotFound when the queue drains, Done last.
//
// Options: WithMaxDepth limits discovery depth; WithFilterNeighbor skips
// neighbours for which the predicate returns false.
package bfs
