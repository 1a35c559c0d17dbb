package day10_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/aoc2023/internal/day10"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func TestSolve(t *testing.T) {
	cases := []struct {
		name         string
		input        string
		part1, part2 int64
	}{
		{
			name: "square loop with noise",
			input: `-L|F7
7S-7|
L|7||
-L-J|
L|-JF
`,
			part1: 4, part2: 1,
		},
		{
			name: "complex loop",
			input: `..F7.
.FJ|.
SJ.L7
|F--J
LJ...
`,
			part1: 8, part2: 1,
		},
		{
			name: "open channel",
			input: `...........
.S-------7.
.|F-----7|.
.||.....||.
.||.....||.
.|L-7.F-J|.
.|..|.|..|.
.L--J.L--J.
...........
`,
			part1: 23, part2: 4,
		},
		{
			name: "squeeze between pipes",
			input: `..........
.S------7.
.|F----7|.
.||....||.
.||....||.
.|L-7F-J|.
.|..||..|.
.L--JL--J.
..........
`,
			part1: 22, part2: 4,
		},
		{
			name: "junk everywhere",
			input: `FF7FSF7F7F7F7F7F---7
L|LJ||||||||||||F--J
FL-7LJLJ||||||LJL-77
F--JF--7||LJLJ7F7FJ-
L---JF-JLJ.||-FJLJJ7
|F|F-JF---7F7-L7L|7|
|FFJF7L7F-JF7|JL---7
7-L-JL7||F7|L7F-7F7|
L.L7LFJ|||||FJL7||LJ
L7JLJL-JLJLJL--JLJ.L
`,
			part1: 80, part2: 10,
		},
		{
			name:  "stray pipe west of start",
			input: "-S-7\n.|.|\n.L-J\n",
			part1: 4, part2: 1,
		},
		{
			name:  "stray pipe tried first",
			input: ".|..\n.S-7\n.|.|\n.L-J\n",
			part1: 4, part2: 1,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := day10.Solve(strings.NewReader(tc.input), day10.Options{})
			require.NoError(t, err)
			assert.Equal(t, tc.part1, res.Part1, "part 1")
			assert.Equal(t, tc.part2, res.Part2, "part 2")
		})
	}
}

func TestSolve_Malformed(t *testing.T) {
	for name, input := range map[string]string{
		"no start":     ".|.\n.|.\n",
		"two starts":   "S-S\n...\n",
		"dead end":     ".S-\n.|.\n...\n",
		"bad glyph":    "S-7\n|x|\nL-J\n",
		"ragged":       "S-7\n|.|\nL-\n",
		"lonely start": "...\n.S.\n...\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := day10.Solve(strings.NewReader(input), day10.Options{})
			assert.ErrorIs(t, err, puzzle.ErrMalformedInput)
		})
	}
}
