package day16_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/grid"
	"github.com/katalvlaran/aoc2023/internal/day16"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `.|...\....
|.-.\.....
.....|-...
........|.
..........
.........\
..../.\\..
.-.-/..|..
.|....-|.\
..//.|....
`

func parse(t *testing.T, s string) *grid.Grid[byte] {
	t.Helper()
	lines, err := puzzle.ReadLines(strings.NewReader(s))
	require.NoError(t, err)
	g, err := puzzle.CharGrid(lines, 1, nil)
	require.NoError(t, err)

	return g
}

func TestSolve(t *testing.T) {
	res, err := day16.Solve(strings.NewReader(sample), day16.Options{})
	require.NoError(t, err)
	assert.Equal(t, int64(46), res.Part1)
	assert.Equal(t, int64(51), res.Part2)
}

func TestEnergized_Mirrors(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		lit, dim grid.Position
	}{
		// (0,1) → (1,1) hits the mirror and leaves through (1,0).
		{"slash turns east beam north", "...\n./.\n...\n", grid.Position{X: 1}, grid.Position{X: 1, Y: 2}},
		// (0,1) → (1,1) hits the mirror and leaves through (1,2).
		{"backslash turns east beam south", "...\n.\\.\n...\n", grid.Position{X: 1, Y: 2}, grid.Position{X: 1}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			lit, err := day16.Energized(parse(t, tc.input), grid.NewActor(grid.Position{Y: 1}, grid.East))
			require.NoError(t, err)
			assert.Equal(t, 3, lit.Count(func(on bool) bool { return on }))
			on, _ := lit.Get(tc.lit)
			assert.True(t, on, "%v should be energized", tc.lit)
			on, _ = lit.Get(tc.dim)
			assert.False(t, on, "%v should stay dark", tc.dim)
			on, _ = lit.Get(grid.Position{X: 2, Y: 1})
			assert.False(t, on, "beam should not pass the mirror")
		})
	}
}

func TestEnergize_Splitters(t *testing.T) {
	cases := []struct {
		name  string
		input string
		start grid.Actor
		want  int
	}{
		{"pipe splits horizontal beam", "...\n.|.\n...\n", grid.NewActor(grid.Position{Y: 1}, grid.East), 4},
		{"pipe passes vertical beam", "...\n.|.\n...\n", grid.NewActor(grid.Position{X: 1}, grid.South), 3},
		{"dash splits vertical beam", "...\n.-.\n...\n", grid.NewActor(grid.Position{X: 1}, grid.South), 4},
		{"loop terminates", "/\\\n\\/\n", grid.NewActor(grid.Position{Y: 1}, grid.West), 4},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := day16.Energize(parse(t, tc.input), tc.start)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestEnergize_NonCardinalStart(t *testing.T) {
	g := parse(t, "...\n...\n")
	for name, start := range map[string]grid.Actor{
		"zero":     {},
		"diagonal": {Vector: grid.Vector{DX: 1, DY: 1}},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := day16.Energize(g, start)
			assert.ErrorIs(t, err, grid.ErrNonCardinal)
		})
	}
}

func TestSolve_Malformed(t *testing.T) {
	_, err := day16.Solve(strings.NewReader("..\n.#\n"), day16.Options{})
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
