package day11_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/day11"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `...#......
.......#..
#.........
..........
......#...
.#........
.........#
..........
.......#..
#...#.....
`

func TestSolve(t *testing.T) {
	res, err := day11.Solve(strings.NewReader(sample), day11.Options{Factor1: 2, Factor2: 10})
	require.NoError(t, err)
	assert.Equal(t, int64(374), res.Part1)
	assert.Equal(t, int64(1030), res.Part2)

	res, err = day11.Solve(strings.NewReader(sample), day11.Options{Factor1: 1, Factor2: 100})
	require.NoError(t, err)
	assert.Equal(t, int64(8410), res.Part2)
}

func TestSolve_Defaults(t *testing.T) {
	res, err := day11.Solve(strings.NewReader(sample), day11.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(374), res.Part1)
	assert.Equal(t, int64(82000210), res.Part2)
}

func TestSolve_Errors(t *testing.T) {
	_, err := day11.Solve(strings.NewReader(sample), day11.Options{Factor1: 0, Factor2: 2})
	assert.ErrorIs(t, err, day11.ErrBadFactor)

	_, err = day11.Solve(strings.NewReader("..#\n.x.\n"), day11.DefaultOptions())
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
