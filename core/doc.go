// Package core provides the thread-safe in-memory Graph that the grid
// algorithms build on: gridgraph emits it, and bfs, dfs and dijkstra walk it.
//
// The Graph G = (V,E) supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Parallel edges (WithMultiEdges)
//   - Self-loops (WithLoops)
//   - Stable edge IDs ("e1", "e2", …) in insertion order
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj)
//
// Determinism:
//
//   - Vertices() is sorted by ID.
//   - Edges() and Neighbors() follow edge insertion order, so graphs built
//     by walking a grid in Direction order expand in that order too.
//
// Complexity:
//
//   - AddVertex, HasVertex, HasEdge: O(1).
//   - AddEdge: O(1) amortized.
//   - Neighbors: O(deg(v)).
//   - Vertices: O(V log V); Edges: O(E).
//
// Errors:
//
//	ErrEmptyVertexID        - vertex ID is the empty string.
//	ErrVertexNotFound       - requested vertex does not exist.
//	ErrBadWeight            - non-zero weight provided to an unweighted graph.
//	ErrLoopNotAllowed       - self-loop when loops are disabled.
//	ErrMultiEdgeNotAllowed  - parallel edge when multi-edges are disabled.
package core
