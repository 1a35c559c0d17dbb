package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/bfs"
	"github.com/katalvlaran/aoc2023/core"
)

// TestBFS_Errors verifies that invalid inputs and options are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, "missing")
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	gW := core.NewGraph(core.WithWeighted())
	require.NoError(t, gW.AddVertex("A"))
	_, err = bfs.BFS(gW, "A")
	assert.ErrorIs(t, err, bfs.ErrWeightedGraph)

	require.NoError(t, g.AddVertex("A"))
	_, err = bfs.BFS(g, "A", bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// chain builds A–B–C–D–E.
func chain(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	ids := []string{"A", "B", "C", "D", "E"}
	for i := 1; i < len(ids); i++ {
		_, err := g.AddEdge(ids[i-1], ids[i], 0)
		require.NoError(t, err)
	}
	return g
}

// TestBFS_CycleAndDepths covers a simple cycle and checks depths.
func TestBFS_CycleAndDepths(t *testing.T) {
	g := core.NewGraph()
	for _, e := range [][2]string{{"A", "B"}, {"B", "C"}, {"C", "D"}, {"D", "A"}} {
		_, err := g.AddEdge(e[0], e[1], 0)
		require.NoError(t, err)
	}

	res, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "D", "C"}, res.Order)
	assert.Equal(t, map[string]int{"A": 0, "B": 1, "D": 1, "C": 2}, res.Depth)

	path, err := res.PathTo("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, path)
}

// TestBFS_MaxDepthAndParity limits the frontier and counts parity matches.
func TestBFS_MaxDepthAndParity(t *testing.T) {
	g := chain(t)
	res, err := bfs.BFS(g, "A", bfs.WithMaxDepth(2))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, res.Order)

	_, err = res.PathTo("E")
	assert.Error(t, err)

	full, err := bfs.BFS(g, "A")
	require.NoError(t, err)
	assert.Equal(t, 2, full.CountWithin(2), "A and C")
	assert.Equal(t, 2, full.CountWithin(3), "B and D")
	assert.Equal(t, 3, full.CountWithin(4), "A, C and E")
}

// TestBFS_FilterAndHook skips a vertex and aborts on a hook error.
func TestBFS_FilterAndHook(t *testing.T) {
	g := chain(t)
	res, err := bfs.BFS(g, "A", bfs.WithFilterNeighbor(func(_, nb string) bool { return nb != "C" }))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B"}, res.Order)

	stop := errors.New("stop")
	_, err = bfs.BFS(g, "A", bfs.WithOnVisit(func(id string, _ int) error {
		if id == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = bfs.BFS(g, "A", bfs.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
}
