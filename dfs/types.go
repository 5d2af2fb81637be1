package dfs

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/algostep/gridgraph"
	"github.com/katalvlaran/algostep/step"
)

// Name is the producer name.
const Name = "dfs"

// Sentinel errors for DFS.
var (
	// ErrBlockedStart indicates the traversal root is a wall.
	ErrBlockedStart = step.InvalidInput("dfs: start cell is a wall")

	// ErrOptionViolation indicates an invalid option value.
	ErrOptionViolation = step.InvalidInput("dfs: invalid option supplied")
)

// Option configures optional behavior of DFS traversal.
type Option func(*DFSOptions)

// DFSOptions holds configurable parameters for DFS traversal.
type DFSOptions struct {
	// MaxDepth, if non-negative, limits recursion to the given depth.
	// A depth of 0 visits only the start cell. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each neighbour before recursing.
	// Return true to traverse into that neighbour, false to skip it silently.
	FilterNeighbor func(c gridgraph.Coord) bool

	// FullTraversal, if true, restarts from every unvisited open cell in
	// row-major order once the start's region is exhausted.
	FullTraversal bool

	err error
}

// DefaultOptions returns DFSOptions with no depth limit, no filter and
// single-source traversal.
func DefaultOptions() DFSOptions {
	return DFSOptions{MaxDepth: -1}
}

// WithMaxDepth stops recursion below the given depth (limit >= 0).
func WithMaxDepth(limit int) Option {
	return func(o *DFSOptions) {
		if limit < 0 {
			o.err = errors.Wrapf(ErrOptionViolation, "MaxDepth cannot be negative (%d)", limit)
			return
		}
		o.MaxDepth = limit
	}
}

// WithFilterNeighbor skips neighbours when fn returns false.
func WithFilterNeighbor(fn func(c gridgraph.Coord) bool) Option {
	return func(o *DFSOptions) {
		o.FilterNeighbor = fn
	}
}

// WithFullTraversal visits every open cell, one region after another.
func WithFullTraversal() Option {
	return func(o *DFSOptions) {
		o.FullTraversal = true
	}
}
