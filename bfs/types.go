package bfs

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/step"
)

// Name is the producer name.
const Name = "bfs"

// Sentinel errors for BFS.
var (
	// ErrNoStart indicates the grid has no start cell.
	ErrNoStart = step.InvalidInput("bfs: grid has no start cell")

	// ErrNoEnd indicates the grid has no end cell.
	ErrNoEnd = step.InvalidInput("bfs: grid has no end cell")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = step.InvalidInput("bfs: invalid option supplied")
)

// Option configures BFSOptions.
type Option func(*BFSOptions)

// BFSOptions holds the optional search limits.
type BFSOptions struct {
	// MaxDepth limits discovery to cells at depth <= MaxDepth; 0 means unlimited.
	MaxDepth int

	// FilterNeighbor, if set, must return true for a neighbour to be explored.
	FilterNeighbor func(curr, neighbor gridgraph.Coord) bool

	err error
}

// DefaultOptions returns BFSOptions with no limits.
func DefaultOptions() BFSOptions {
	return BFSOptions{}
}

// WithMaxDepth stops discovery beyond depth d.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *BFSOptions) {
		if d < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor(fn func(curr, neighbor gridgraph.Coord) bool) Option {
	return func(o *BFSOptions) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}
