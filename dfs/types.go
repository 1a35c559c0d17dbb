// Package dfs provides depth-first algorithms on a core.Graph: topological
// ordering of directed graphs and longest simple paths, the search behind
// "longest hike" style grid puzzles once corridors are contracted.
//
// Both algorithms drive an explicit stack rather than recursion, so depth is
// bounded by memory and not by the goroutine stack.
//
// Complexity:
//
//   - TopologicalSort: O(V + E) time, O(V) memory.
//   - LongestPath on a DAG: O(V + E).
//   - LongestPath with cycles: exponential in V (exhaustive backtracking);
//     intended for contracted graphs with a few dozen vertices.
package dfs

import (
	"context"
	"errors"
)

// Vertex visitation states.
const (
	White = iota // not visited yet
	Gray         // on the current stack
	Black        // fully explored
)

var (
	// ErrGraphNil is returned when a nil *core.Graph is passed.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrVertexNotFound indicates that an endpoint does not exist in the graph.
	ErrVertexNotFound = errors.New("dfs: vertex not found")

	// ErrUndirectedGraph indicates TopologicalSort was called on an undirected graph.
	ErrUndirectedGraph = errors.New("dfs: topological sort requires directed graph")

	// ErrCycleDetected indicates that a cycle was encountered during TopologicalSort.
	ErrCycleDetected = errors.New("dfs: cycle detected")

	// ErrNoPath indicates the target is unreachable from the source.
	ErrNoPath = errors.New("dfs: no path between vertices")
)

// TopoOption configures optional behavior for TopologicalSort and LongestPath.
type TopoOption func(*topoOptions)

// topoOptions holds settings shared by the traversals, currently only cancellation.
type topoOptions struct {
	ctx context.Context
}

func defaultTopoOptions() topoOptions {
	return topoOptions{ctx: context.Background()}
}

// WithCancelContext returns a TopoOption that sets the cancellation context.
// Passing a nil context has no effect.
func WithCancelContext(ctx context.Context) TopoOption {
	return func(o *topoOptions) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}
