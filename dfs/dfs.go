// Package dfs implements recursive depth-first search on a gridgraph.Grid as
// a step producer.
//
// The traversal starts at the grid's start cell, or at (0,0) when none is
// set, and tries the neighbours of every cell in the fixed order up, right,
// down, left. Walls, out-of-bounds and already visited cells are skipped
// without an event.
//
// Events:
//
//   - Visit: a cell is entered (pre-order).
//   - Backtrack: the walk leaves a cell from which no new cell was reached.
//   - Done: always last, carrying the number of visited cells.
//
// Complexity:
//
//   - Time:   O(W×H).
//   - Memory: O(W×H) for the visited flags and the recursion stack.
//
// Options:
//
//   - WithMaxDepth(limit)       stops recursion beyond the given depth (>=0).
//   - WithFilterNeighbor(fn)    filters neighbours; return false to skip.
//   - WithFullTraversal()       restarts from every unvisited open cell.
//
// Errors:
//
//   - ErrBlockedStart           if the root cell is a wall.
//   - ErrOptionViolation        for a negative MaxDepth.
package dfs

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/step"
)

// dfsWalker encapsulates state during one DFS run.
type dfsWalker struct {
	s    *gridgraph.Search // grid, depth table (Dist) and parent table (Prev)
	em   *step.Emitter
	opts DFSOptions
	seen []bool
}

// New returns a DFS producer over a copy of g.
func New(g *gridgraph.Grid, opts ...Option) (*step.Runner[*gridgraph.Search], error) {
	// 1. Apply options
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 2. Resolve the root cell
	root, ok := g.Start()
	if !ok {
		root = gridgraph.Coord{}
	}
	if g.At(root) == gridgraph.Wall {
		return nil, errors.Wrapf(ErrBlockedStart, "%s", root)
	}

	grid := g.Clone()
	grid.Reset()
	return step.NewRunner(Name, gridgraph.NewSearch(grid), func(s *gridgraph.Search, em *step.Emitter) {
		w := &dfsWalker{s: s, em: em, opts: o, seen: make([]bool, s.Grid.Len())}

		// 3. Traverse: single tree or forest
		if !w.traverse(root, root, 0) {
			return
		}
		if o.FullTraversal {
			for i := range w.seen {
				c := s.Grid.Coordinate(i)
				if w.seen[i] || !s.Grid.Open(c) {
					continue
				}
				if !w.traverse(c, c, 0) {
					return
				}
			}
		}
		em.Emit(step.KindDone, step.Values{Values: []int{len(s.Order)}},
			fmt.Sprintf("visited %d cells", len(s.Order)))
	}), nil
}

// traverse enters c at the given depth and recurses into its neighbours.
// It reports false once the consumer stops pulling.
func (w *dfsWalker) traverse(c, parent gridgraph.Coord, depth int) bool {
	g := w.s.Grid
	i := g.Index(c)

	// 1. Mark and announce entry
	w.seen[i] = true
	w.s.Dist[i] = depth
	if c != parent {
		w.s.Prev[i] = g.Index(parent)
	}
	if err := g.Mark(c, gridgraph.Visited); err != nil {
		panic(errors.WithAssertionFailure(err))
	}
	w.s.Order = append(w.s.Order, c)
	if !w.em.Emitf(step.KindVisit, c.Cell(), "enter %s at depth %d", c, depth) {
		return false
	}

	// 2. Explore neighbours in up, right, down, left order
	discovered := false
	if w.opts.MaxDepth < 0 || depth < w.opts.MaxDepth {
		for _, n := range g.Neighbors(c) {
			if w.seen[g.Index(n)] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(n) {
				continue
			}
			discovered = true
			if !w.traverse(n, c, depth+1) {
				return false
			}
		}
	}

	// 3. A dead end is announced on the way out
	if !discovered {
		return w.em.Emitf(step.KindBacktrack, c.Cell(), "dead end at %s", c)
	}
	return true
}
