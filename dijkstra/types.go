package dijkstra

import (
	"math"

	"github.com/katalvlaran/algostep/step"
)

// Name is the producer name.
const Name = "dijkstra"

// Sentinel errors returned by New.
var (
	// ErrNoStart indicates the grid has no start cell.
	ErrNoStart = step.InvalidInput("dijkstra: grid has no start cell")

	// ErrNoEnd indicates the grid has no end cell.
	ErrNoEnd = step.InvalidInput("dijkstra: grid has no end cell")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = step.InvalidInput("dijkstra: MaxDistance must be non-negative")
)

// Options configures the producer.
//
// MaxDistance – cells whose shortest distance exceeds this value are not
// finalized. Default math.MaxInt (no cap).
type Options struct {
	MaxDistance int
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithMaxDistance caps the explored distance.
func WithMaxDistance(d int) Option {
	return func(o *Options) {
		o.MaxDistance = d
	}
}

// DefaultOptions returns Options with no distance cap.
func DefaultOptions() Options {
	return Options{MaxDistance: math.MaxInt}
}
