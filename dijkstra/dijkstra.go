package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/step"
)

// New returns a Dijkstra producer over a copy of g from its start to its end cell.
//
// Preconditions and validation (in order):
//  1. g must have a start cell (ErrNoStart).
//  2. g must have an end cell (ErrNoEnd).
//  3. MaxDistance must be ≥ 0 (ErrBadMaxDistance).
func New(g *gridgraph.Grid, opts ...Option) (*step.Runner[*gridgraph.Search], error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if _, ok := g.Start(); !ok {
		return nil, ErrNoStart
	}
	if _, ok := g.End(); !ok {
		return nil, ErrNoEnd
	}
	if cfg.MaxDistance < 0 {
		return nil, ErrBadMaxDistance
	}

	grid := g.Clone()
	grid.Reset()
	return step.NewRunner(Name, gridgraph.NewSearch(grid), func(s *gridgraph.Search, em *step.Emitter) {
		r := &runner{s: s, em: em, options: cfg, done: make([]bool, s.Grid.Len())}
		r.init()
		if r.process() {
			em.Emit(step.KindDone, step.Empty{}, r.summary())
		}
	}), nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	s       *gridgraph.Search
	em      *step.Emitter
	options Options
	done    []bool // finalized cells
	pq      nodePQ
	found   bool
}

// init sets the start distance to zero and seeds the heap.
func (r *runner) init() {
	start, _ := r.s.Grid.Start()
	idx := r.s.Grid.Index(start)
	r.s.Dist[idx] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{idx: idx, dist: 0})
}

// process finalizes cells until the end is reached or the heap drains.
// It reports false if the consumer stopped pulling.
func (r *runner) process() bool {
	g := r.s.Grid
	end, _ := g.End()
	for r.pq.Len() > 0 {
		// 1) Pop the closest cell; skip stale heap entries.
		item := heap.Pop(&r.pq).(*nodeItem)
		if r.done[item.idx] {
			continue
		}
		// 2) Stop once the distance cap is exceeded.
		if item.dist > r.options.MaxDistance {
			break
		}
		r.done[item.idx] = true
		u := g.Coordinate(item.idx)

		// 3) Reaching the end finishes the search.
		if u == end {
			r.found = true
			if !r.em.Emitf(step.KindFound, u.Cell(), "reached end %s at distance %d", u, item.dist) {
				return false
			}
			return r.tracePath(end)
		}

		// 4) Finalize u.
		r.mark(u, gridgraph.Visited)
		r.s.Order = append(r.s.Order, u)
		if !r.em.Emitf(step.KindVisit, u.Cell(), "finalize %s at distance %d", u, item.dist) {
			return false
		}

		// 5) Relax every open neighbour with a strictly shorter distance.
		for _, v := range g.Neighbors(u) {
			vi := g.Index(v)
			if r.done[vi] {
				continue
			}
			nd := item.dist + 1
			if !r.s.Relax(v, u, nd) {
				continue
			}
			heap.Push(&r.pq, &nodeItem{idx: vi, dist: nd})
			if !r.em.Emitf(step.KindTableUpdate, step.TableCell{Row: v.Row, Col: v.Col, Value: nd},
				"distance of %s is now %d", v, nd) {
				return false
			}
		}
	}
	return r.em.Emit(step.KindNotFound, step.Outcome{Index: -1}, "end is unreachable")
}

// tracePath marks the intermediate cells of the shortest path and emits Select for each.
func (r *runner) tracePath(end gridgraph.Coord) bool {
	r.s.Path = r.s.Trace(end)
	for _, c := range r.s.Path[1 : len(r.s.Path)-1] {
		r.mark(c, gridgraph.Path)
		if !r.em.Emitf(step.KindSelect, c.Cell(), "path through %s", c) {
			return false
		}
	}
	return true
}

func (r *runner) mark(c gridgraph.Coord, st gridgraph.CellState) {
	if err := r.s.Grid.Mark(c, st); err != nil {
		panic(errors.WithAssertionFailure(err))
	}
}

func (r *runner) summary() string {
	if !r.found {
		return "no path"
	}
	return fmt.Sprintf("shortest path length %d", len(r.s.Path)-1)
}

// nodeItem is a heap entry: a cell index and its tentative distance.
type nodeItem struct {
	idx  int
	dist int
}

// nodePQ is a min-heap ordered by distance, then row-major index.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}
	return pq[i].idx < pq[j].idx
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]
	return item
}
