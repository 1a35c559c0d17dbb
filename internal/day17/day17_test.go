package day17_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/day17"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

const sample = `2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

func TestSolve(t *testing.T) {
	res, err := day17.Solve(strings.NewReader(sample), day17.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(102), res.Part1)
	assert.Equal(t, int64(94), res.Part2)
}

func TestSolve_UltraNeedsLongRuns(t *testing.T) {
	input := `111111111111
999999999991
999999999991
999999999991
999999999991
`
	res, err := day17.Solve(strings.NewReader(input), day17.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, int64(71), res.Part2)
}

func TestSolve_Errors(t *testing.T) {
	opts := day17.DefaultOptions()
	opts.UltraCrucible = day17.Run{Min: 5, Max: 4}
	_, err := day17.Solve(strings.NewReader(sample), opts)
	assert.ErrorIs(t, err, day17.ErrBadRun)

	_, err = day17.Solve(strings.NewReader("12\n3a\n"), day17.DefaultOptions())
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)

	// A 1×3 strip cannot fit a four-block run.
	_, err = day17.Solve(strings.NewReader("123\n"), day17.DefaultOptions())
	assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
}
