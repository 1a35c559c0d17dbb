package dfs

import (
	"github.com/katalvlaran/aoc2023/core"
)

// topoFrame is one entry of the explicit DFS stack.
type topoFrame struct {
	id    string
	edges []*core.Edge
	next  int
}

// TopologicalSort computes an ordering of all vertices of the directed graph
// g such that every edge u→v has u before v. Roots are tried in sorted ID
// order, so the result is deterministic.
//
// Errors: ErrGraphNil, ErrUndirectedGraph, ErrCycleDetected, or the context
// error when cancelled.
func TopologicalSort(g *core.Graph, options ...TopoOption) ([]string, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.Directed() {
		return nil, ErrUndirectedGraph
	}
	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	verts := g.Vertices()
	state := make(map[string]int, len(verts))
	order := make([]string, 0, len(verts))

	for _, root := range verts {
		if state[root] != White {
			continue
		}
		if err := opts.ctx.Err(); err != nil {
			return nil, err
		}
		edges, err := g.Neighbors(root)
		if err != nil {
			return nil, err
		}
		state[root] = Gray
		stack := []topoFrame{{id: root, edges: edges}}
		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			if top.next == len(top.edges) {
				state[top.id] = Black
				order = append(order, top.id)
				stack = stack[:len(stack)-1]
				continue
			}
			e := top.edges[top.next]
			top.next++
			switch state[e.To] {
			case Gray:
				return nil, ErrCycleDetected
			case Black:
				continue
			}
			next, err := g.Neighbors(e.To)
			if err != nil {
				return nil, err
			}
			state[e.To] = Gray
			stack = append(stack, topoFrame{id: e.To, edges: next})
		}
	}

	// Reverse post-order.
	for i, j := 0, len(order)-1; i < j; i, j = i+1, j-1 {
		order[i], order[j] = order[j], order[i]
	}

	return order, nil
}
