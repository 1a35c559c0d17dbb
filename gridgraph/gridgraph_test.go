package gridgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/gridgraph"
)

func charGrid(lines ...string) *grid.Grid[byte] {
	rows := make([][]byte, len(lines))
	for i, l := range lines {
		rows[i] = []byte(l)
	}

	return grid.New(rows)
}

func notWall(b byte) bool { return b != '#' }

func pos(x, y int) grid.Position { return grid.Position{X: x, Y: y} }

// maze has junctions at (1,1) and (3,3) joined by two corridors of 4 steps.
var maze = []string{
	"#.###",
	"#...#",
	"#.#.#",
	"#...#",
	"###.#",
}

func TestNewGridGraph_Errors(t *testing.T) {
	cases := []struct {
		name string
		grid *grid.Grid[byte]
		err  error
	}{
		{"Nil", nil, gridgraph.ErrEmptyGrid},
		{"EmptyRows", grid.New[byte](nil), gridgraph.ErrEmptyGrid},
		{"EmptyCols", charGrid(""), gridgraph.ErrEmptyGrid},
		{"NonRectangular", charGrid("..", "."), gridgraph.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridgraph.NewGridGraph(tc.grid, gridgraph.GridOptions[byte]{})
			assert.ErrorIs(t, err, tc.err)
		})
	}
}

func TestNeighbors(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(charGrid(maze...), gridgraph.GridOptions[byte]{Open: notWall})
	require.NoError(t, err)

	assert.True(t, gg.InBounds(pos(4, 4)))
	assert.False(t, gg.InBounds(pos(5, 0)))
	assert.False(t, gg.IsOpen(pos(0, 0)))
	assert.True(t, gg.IsOpen(pos(1, 0)))

	// N, S, E, W order; (0,1) is a wall.
	assert.Equal(t, []grid.Position{pos(1, 0), pos(1, 2), pos(2, 1)}, gg.Neighbors(pos(1, 1)))
	assert.Equal(t, []grid.Position{pos(1, 1)}, gg.Neighbors(pos(1, 0)))
}

func TestConnectedComponents(t *testing.T) {
	g := charGrid(
		".#.",
		"#.#",
	)
	gg4, err := gridgraph.NewGridGraph(g, gridgraph.GridOptions[byte]{Open: notWall})
	require.NoError(t, err)
	assert.Equal(t, [][]grid.Position{{pos(0, 0)}, {pos(2, 0)}, {pos(1, 1)}}, gg4.ConnectedComponents())

	gg8, err := gridgraph.NewGridGraph(g, gridgraph.GridOptions[byte]{Open: notWall, Conn: gridgraph.Conn8})
	require.NoError(t, err)
	assert.Equal(t, [][]grid.Position{{pos(0, 0), pos(1, 1), pos(2, 0)}}, gg8.ConnectedComponents())
}

func TestToCoreGraph(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(charGrid(maze...), gridgraph.GridOptions[byte]{Open: notWall})
	require.NoError(t, err)

	g := gg.ToCoreGraph()
	assert.False(t, g.Directed())
	assert.False(t, g.Weighted())
	assert.Equal(t, 10, g.VertexCount())
	assert.Equal(t, 10, g.EdgeCount())
	assert.True(t, g.HasEdge("1,0", "1,1"))
	assert.True(t, g.HasEdge("1,1", "1,0"))
	assert.False(t, g.HasVertex("0,0"))

	v, err := g.Vertex("3,4")
	require.NoError(t, err)
	assert.Equal(t, 3, v.Metadata["x"])
	assert.Equal(t, 4, v.Metadata["y"])
}

func TestVertexID(t *testing.T) {
	p := pos(12, 7)
	assert.Equal(t, "12,7", gridgraph.VertexID(p))

	got, err := gridgraph.ParseVertexID("12,7")
	require.NoError(t, err)
	assert.Equal(t, p, got)

	for _, bad := range []string{"", "12", "a,1", "1,-1"} {
		_, err := gridgraph.ParseVertexID(bad)
		assert.ErrorIs(t, err, gridgraph.ErrBadVertexID, bad)
	}
}

func TestContract(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(charGrid(maze...), gridgraph.GridOptions[byte]{Open: notWall})
	require.NoError(t, err)
	keep := []grid.Position{pos(1, 0), pos(3, 4)}

	g := gg.Contract(gridgraph.ContractOptions{Keep: keep})
	assert.True(t, g.Directed())
	assert.Equal(t, []string{"1,0", "1,1", "3,3", "3,4"}, g.Vertices())
	assert.Equal(t, 8, g.EdgeCount())

	weights := map[[2]string][]int64{}
	for _, e := range g.Edges() {
		k := [2]string{e.From, e.To}
		weights[k] = append(weights[k], e.Weight)
	}
	assert.Equal(t, []int64{1}, weights[[2]string{"1,0", "1,1"}])
	assert.Equal(t, []int64{4, 4}, weights[[2]string{"1,1", "3,3"}])
	assert.Equal(t, []int64{1}, weights[[2]string{"3,3", "3,4"}])
}

func TestContract_CanStep(t *testing.T) {
	gg, err := gridgraph.NewGridGraph(charGrid(maze...), gridgraph.GridOptions[byte]{Open: notWall})
	require.NoError(t, err)

	noNorth := func(_ grid.Position, d grid.Direction) bool { return d != grid.North }
	g := gg.Contract(gridgraph.ContractOptions{
		CanStep: noNorth,
		Keep:    []grid.Position{pos(1, 0), pos(3, 4)},
	})
	assert.Equal(t, 4, g.EdgeCount())
	for _, e := range g.Edges() {
		from, err := gridgraph.ParseVertexID(e.From)
		require.NoError(t, err)
		to, err := gridgraph.ParseVertexID(e.To)
		require.NoError(t, err)
		assert.True(t, from.Less(to), "%s→%s goes backwards", e.From, e.To)
	}
}
