// Package aoc2023 is a toolkit for 2D grid puzzles and the Advent of Code
// 2023 solvers built on it.
//
// The module is organized as:
//
//	grid/       - Vector, Direction, Position, SignedPosition, Grid[T], Actor
//	core/       - thread-safe in-memory graph of string-keyed vertices
//	bfs/        - breadth-first search with depth limits and hooks
//	dfs/        - topological order and longest simple paths
//	dijkstra/   - single-source shortest paths on non-negative weights
//	gridgraph/  - grids as graphs: components, conversion, corridor contraction
//	internal/   - input plumbing, config, logging, and one package per day
//	cmd/dayNN/  - binaries reading a puzzle on stdin
//
// Quick example:
//
//	g := grid.New([][]byte{[]byte("..#"), []byte("#..")})
//	p, _ := grid.Position{X: 1}.Add(grid.South.UnitVector())
//	v, _ := g.Get(p) // '.'
//	w := g.Wrapped(grid.SignedPosition{X: -1, Y: -1}) // (2,1)
package aoc2023
