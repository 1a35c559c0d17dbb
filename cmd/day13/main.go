// Command day13 reads a puzzle input on stdin and prints both answers.
package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/day13"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func main() {
	cli.Main("day13", func(r io.Reader, _ *config.Config, logger *zap.Logger) (puzzle.Result, error) {
		return day13.Solve(r, day13.Options{Logger: logger})
	})
}
