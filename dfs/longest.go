package dfs

import (
	"errors"
	"math"

	"github.com/katalvlaran/aoc2023/core"
)

// cancelCheckEvery bounds how often backtracking polls the context.
const cancelCheckEvery = 1 << 14

// LongestPath returns the largest total edge weight over simple paths
// from → to.
//
// Directed acyclic graphs are solved by dynamic programming over the
// topological order. Undirected graphs, and directed graphs where
// TopologicalSort reports a cycle, fall back to exhaustive backtracking.
//
// Errors: ErrGraphNil, ErrVertexNotFound, ErrNoPath, or the context error.
func LongestPath(g *core.Graph, from, to string, options ...TopoOption) (int64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	if !g.HasVertex(from) || !g.HasVertex(to) {
		return 0, ErrVertexNotFound
	}
	if g.Directed() {
		order, err := TopologicalSort(g, options...)
		switch {
		case err == nil:
			return longestInDAG(g, order, from, to)
		case !errors.Is(err, ErrCycleDetected):
			return 0, err
		}
	}

	opts := defaultTopoOptions()
	for _, opt := range options {
		opt(&opts)
	}

	return backtrack(g, from, to, opts)
}

func longestInDAG(g *core.Graph, order []string, from, to string) (int64, error) {
	const unreached = math.MinInt64
	best := make(map[string]int64, len(order))
	for _, id := range order {
		best[id] = unreached
	}
	best[from] = 0
	for _, u := range order {
		if best[u] == unreached {
			continue
		}
		edges, err := g.Neighbors(u)
		if err != nil {
			return 0, err
		}
		for _, e := range edges {
			if d := best[u] + e.Weight; d > best[e.To] {
				best[e.To] = d
			}
		}
	}
	if best[to] == unreached {
		return 0, ErrNoPath
	}

	return best[to], nil
}

type arc struct {
	to     int
	weight int64
}

type pathFrame struct {
	v    int
	next int
	dist int64
}

// backtrack enumerates every simple path with an explicit stack over an
// index-compressed adjacency list.
func backtrack(g *core.Graph, from, to string, opts topoOptions) (int64, error) {
	verts := g.Vertices()
	index := make(map[string]int, len(verts))
	for i, id := range verts {
		index[id] = i
	}
	adj := make([][]arc, len(verts))
	for i, id := range verts {
		edges, err := g.Neighbors(id)
		if err != nil {
			return 0, err
		}
		for _, e := range edges {
			adj[i] = append(adj[i], arc{to: index[e.Other(id)], weight: e.Weight})
		}
	}

	src, dst := index[from], index[to]
	visited := make([]bool, len(verts))
	visited[src] = true
	stack := []pathFrame{{v: src}}
	best := int64(-1)
	steps := 0

	for len(stack) > 0 {
		if steps++; steps%cancelCheckEvery == 0 {
			if err := opts.ctx.Err(); err != nil {
				return 0, err
			}
		}
		top := &stack[len(stack)-1]
		if top.v == dst || top.next == len(adj[top.v]) {
			if top.v == dst && top.dist > best {
				best = top.dist
			}
			visited[top.v] = false
			stack = stack[:len(stack)-1]
			continue
		}
		a := adj[top.v][top.next]
		top.next++
		if visited[a.to] {
			continue
		}
		visited[a.to] = true
		stack = append(stack, pathFrame{v: a.to, dist: top.dist + a.weight})
	}
	if best < 0 {
		return 0, ErrNoPath
	}

	return best, nil
}
