// Package algostep is an algorithm stepper: classic algorithms broken down
// into lazy sequences of step events and played back one event at a time.
//
// What is in the box?
//
//	step/       - event model, Producer contract and the generic Runner
//	sorting/    - bubble, selection, insertion, merge, quick and heap sort
//	search/     - binary search and Knuth-Morris-Pratt
//	gridgraph/  - W×H grid with walls, start/end markers and search tables
//	dijkstra/   - shortest path on a grid
//	bfs/, dfs/  - grid traversals
//	knapsack/   - 0/1 knapsack table fill and backtrack
//	hanoi/      - Tower of Hanoi
//	avl/        - AVL insertion with rotations
//	linear/     - bounded stack and ring-buffer queue
//	engine/     - paced playback with pause, resume, cancel, reset and restart
//	catalog/    - algorithm registry with default and random inputs
//	scenario/   - YAML and comma-separated input files
//	config/     - viper-backed host configuration
//	render/     - coloured text renderer
//	tui/        - Bubble Tea renderer and controls
//
// The algostep command (cmd/algostep) wires them together: list, trace and run.
//
// Producers never sleep or perform I/O. They mutate their container, then
// yield the event describing the mutation; the engine decides when to pull
// the next one.
package algostep
