// Command day14 reads a puzzle input on stdin and prints both answers.
package main

import (
	"io"

	"go.uber.org/zap"

	"github.com/katalvlaran/aoc2023/internal/cli"
	"github.com/katalvlaran/aoc2023/internal/config"
	"github.com/katalvlaran/aoc2023/internal/day14"
	"github.com/katalvlaran/aoc2023/internal/puzzle"
)

func main() {
	cli.Main("day14", func(r io.Reader, cfg *config.Config, logger *zap.Logger) (puzzle.Result, error) {
		opts := cfg.Day14
		opts.Logger = logger
		return day14.Solve(r, opts)
	})
}
