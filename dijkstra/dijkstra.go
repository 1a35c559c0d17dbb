package dijkstra

import (
	"container/heap"
	"fmt"

	"github.com/katalvlaran/aoc2023/core"
)

// Dijkstra computes shortest distances from Options.Source to every vertex
// of the weighted graph g.
//
// Returns:
//
//   - dist: vertex ID → minimum distance (Infinity if unreachable).
//   - prev: predecessor map when WithReturnPath was given, nil otherwise.
//     prev[v] == u means the shortest path to v arrives from u.
//   - err:  validation failure, see package documentation.
//
// Validation order: ErrEmptySource, ErrNilGraph, ErrUnweightedGraph,
// ErrBadMaxDistance, ErrVertexNotFound, ErrNegativeWeight.
func Dijkstra(g *core.Graph, opts ...Option) (map[string]int64, map[string]string, error) {
	options := DefaultOptions("")
	for _, opt := range opts {
		opt(&options)
	}
	if options.Source == "" {
		return nil, nil, ErrEmptySource
	}
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	if !g.Weighted() {
		return nil, nil, ErrUnweightedGraph
	}
	if options.err != nil {
		return nil, nil, options.err
	}
	if !g.HasVertex(options.Source) {
		return nil, nil, fmt.Errorf("%w: source %q", ErrVertexNotFound, options.Source)
	}
	if options.Target != "" && !g.HasVertex(options.Target) {
		return nil, nil, fmt.Errorf("%w: target %q", ErrVertexNotFound, options.Target)
	}
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, nil, fmt.Errorf("%w: edge %s→%s weight=%d", ErrNegativeWeight, e.From, e.To, e.Weight)
		}
	}

	r := newRunner(g, options)
	if err := r.run(); err != nil {
		return nil, nil, err
	}

	return r.dist, r.prev, nil
}

// runner holds the state of one Dijkstra execution.
type runner struct {
	g       *core.Graph
	options Options
	dist    map[string]int64
	prev    map[string]string
	visited map[string]bool
	pq      nodePQ
}

func newRunner(g *core.Graph, options Options) *runner {
	verts := g.Vertices()
	r := &runner{
		g:       g,
		options: options,
		dist:    make(map[string]int64, len(verts)),
		visited: make(map[string]bool, len(verts)),
		pq:      make(nodePQ, 0, len(verts)),
	}
	for _, id := range verts {
		r.dist[id] = Infinity
	}
	if options.ReturnPath {
		r.prev = make(map[string]string, len(verts))
		for _, id := range verts {
			r.prev[id] = ""
		}
	}
	r.dist[options.Source] = 0
	heap.Push(&r.pq, &nodeItem{id: options.Source, dist: 0})

	return r
}

func (r *runner) run() error {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(*nodeItem)
		u := item.id
		if r.visited[u] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			return nil
		}
		r.visited[u] = true
		if u == r.options.Target {
			return nil
		}
		if err := r.relax(u); err != nil {
			return err
		}
	}

	return nil
}

// relax pushes improved distances for every edge leaving u.
func (r *runner) relax(u string) error {
	neighbors, err := r.g.Neighbors(u)
	if err != nil {
		return err
	}
	for _, e := range neighbors {
		if e.Directed && e.From != u {
			continue
		}
		v := e.Other(u)
		newDist := r.dist[u] + e.Weight
		if newDist > r.options.MaxDistance || newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, &nodeItem{id: v, dist: newDist})
	}

	return nil
}

// nodeItem is a vertex with its tentative distance from the source.
type nodeItem struct {
	id   string
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int            { return len(pq) }
func (pq nodePQ) Less(i, j int) bool  { return pq[i].dist < pq[j].dist }
func (pq nodePQ) Swap(i, j int)       { pq[i], pq[j] = pq[j], pq[i] }
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

// PathTo rebuilds the vertex sequence source → dest from a predecessor map
// returned by Dijkstra. It returns nil when dest was not reached.
func PathTo(prev map[string]string, source, dest string) []string {
	if dest == source {
		return []string{source}
	}
	if prev[dest] == "" {
		return nil
	}
	var rev []string
	for at := dest; at != ""; at = prev[at] {
		rev = append(rev, at)
		if at == source {
			break
		}
	}
	if rev[len(rev)-1] != source {
		return nil
	}
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev
}
