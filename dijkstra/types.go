// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted
// core graphs with non-negative integer weights.
//
// It processes vertices in order of increasing distance using a min-heap
// priority queue with lazy decrease-key: improved distances are pushed again
// and stale heap entries are skipped on pop.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
//
// Options:
//
//   - Source:          ID of the starting vertex (required).
//   - WithReturnPath:  also return the predecessor map.
//   - WithMaxDistance: do not settle vertices farther than the cap.
//   - WithTarget:      stop as soon as the given vertex is settled.
//
// Errors (sentinel):
//
//   - ErrEmptySource     if no source ID was provided.
//   - ErrNilGraph        if the graph pointer is nil.
//   - ErrUnweightedGraph if the graph was not created WithWeighted.
//   - ErrVertexNotFound  if the source or target vertex does not exist.
//   - ErrNegativeWeight  if any edge weight is negative.
//   - ErrBadMaxDistance  if WithMaxDistance received a negative value.
package dijkstra

import (
	"errors"
	"math"
)

// Sentinel errors returned by Dijkstra.
var (
	// ErrEmptySource indicates that the provided source vertex ID is empty.
	ErrEmptySource = errors.New("dijkstra: source vertex ID is empty")

	// ErrNilGraph indicates that a nil *core.Graph was passed to Dijkstra.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrUnweightedGraph indicates that the graph was not marked as weighted.
	ErrUnweightedGraph = errors.New("dijkstra: graph must be weighted")

	// ErrVertexNotFound indicates that the source or target is not in the graph.
	ErrVertexNotFound = errors.New("dijkstra: vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrBadMaxDistance indicates that MaxDistance was set to a negative value.
	ErrBadMaxDistance = errors.New("dijkstra: MaxDistance must be non-negative")
)

// Infinity is the distance reported for unreachable vertices.
const Infinity int64 = math.MaxInt64

// Options configures the behavior of the Dijkstra algorithm.
type Options struct {
	Source      string // ID of the source vertex
	Target      string // optional early-exit vertex
	ReturnPath  bool   // whether to return the predecessor map
	MaxDistance int64  // maximum distance to settle

	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// Source sets the starting vertex ID.
func Source(id string) Option {
	return func(o *Options) {
		o.Source = id
	}
}

// WithTarget stops the search once id has been settled. Distances of
// vertices not settled by then are left at their tentative values.
func WithTarget(id string) Option {
	return func(o *Options) {
		o.Target = id
	}
}

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance caps exploration; vertices whose shortest distance would
// exceed max stay at Infinity. A negative max makes Dijkstra fail with
// ErrBadMaxDistance.
func WithMaxDistance(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = ErrBadMaxDistance
			return
		}
		o.MaxDistance = max
	}
}

// DefaultOptions returns Options for source with no distance cap.
func DefaultOptions(source string) Options {
	return Options{
		Source:      source,
		MaxDistance: Infinity,
	}
}
