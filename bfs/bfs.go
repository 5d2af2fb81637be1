package bfs

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/step"
)

// walker encapsulates mutable BFS state for one run.
type walker struct {
	s     *gridgraph.Search
	em    *step.Emitter
	opts  BFSOptions
	queue []gridgraph.Coord
	seen  []bool
}

// New returns a BFS producer over a copy of g.
// Returns ErrNoStart, ErrNoEnd or ErrOptionViolation for invalid input.
func New(g *gridgraph.Grid, opts ...Option) (*step.Runner[*gridgraph.Search], error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if _, ok := g.Start(); !ok {
		return nil, ErrNoStart
	}
	if _, ok := g.End(); !ok {
		return nil, ErrNoEnd
	}

	grid := g.Clone()
	grid.Reset()
	return step.NewRunner(Name, gridgraph.NewSearch(grid), func(s *gridgraph.Search, em *step.Emitter) {
		w := &walker{s: s, em: em, opts: o, seen: make([]bool, s.Grid.Len())}
		found, ok := w.loop()
		if !ok {
			return
		}
		note := "no path"
		if found {
			note = fmt.Sprintf("shortest path length %d", len(s.Path)-1)
		}
		em.Emit(step.KindDone, step.Empty{}, note)
	}), nil
}

// enqueue discovers c at depth d via from.
func (w *walker) enqueue(c, from gridgraph.Coord, d int) bool {
	w.seen[w.s.Grid.Index(c)] = true
	w.s.Relax(c, from, d)
	w.queue = append(w.queue, c)
	return w.em.Emitf(step.KindTableUpdate, step.TableCell{Row: c.Row, Col: c.Col, Value: d},
		"discover %s at depth %d", c, d)
}

// loop drains the queue. It returns whether the end was found and whether
// the consumer is still pulling.
func (w *walker) loop() (found, ok bool) {
	g := w.s.Grid
	start, _ := g.Start()
	end, _ := g.End()

	w.seen[g.Index(start)] = true
	w.s.Dist[g.Index(start)] = 0
	w.queue = append(w.queue, start)

	for len(w.queue) > 0 {
		// 1) Dequeue the oldest discovered cell.
		u := w.queue[0]
		w.queue = w.queue[1:]
		depth := w.s.Distance(u)

		// 2) The end finishes the search.
		if u == end {
			if !w.em.Emitf(step.KindFound, u.Cell(), "reached end %s at depth %d", u, depth) {
				return true, false
			}
			return true, w.visitPath(end)
		}

		// 3) Visit u.
		w.mark(u, gridgraph.Visited)
		w.s.Order = append(w.s.Order, u)
		if !w.em.Emitf(step.KindVisit, u.Cell(), "visit %s at depth %d", u, depth) {
			return false, false
		}

		// 4) Discover unseen neighbours within the depth limit.
		if w.opts.MaxDepth > 0 && depth >= w.opts.MaxDepth {
			continue
		}
		for _, v := range g.Neighbors(u) {
			if w.seen[g.Index(v)] {
				continue
			}
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(u, v) {
				continue
			}
			if !w.enqueue(v, u, depth+1) {
				return false, false
			}
		}
	}
	return false, w.em.Emit(step.KindNotFound, step.Outcome{Index: -1}, "end is unreachable")
}

func (w *walker) visitPath(end gridgraph.Coord) bool {
	w.s.Path = w.s.Trace(end)
	for _, c := range w.s.Path[1 : len(w.s.Path)-1] {
		w.mark(c, gridgraph.Path)
		if !w.em.Emitf(step.KindSelect, c.Cell(), "path through %s", c) {
			return false
		}
	}
	return true
}

func (w *walker) mark(c gridgraph.Coord, st gridgraph.CellState) {
	if err := w.s.Grid.Mark(c, st); err != nil {
		panic(errors.WithAssertionFailure(err))
	}
}
