// Package config loads the optional YAML file that tunes the solvers and
// the command-line logging.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/aoc2023/internal/day11"
	"github.com/katalvlaran/aoc2023/internal/day14"
	"github.com/katalvlaran/aoc2023/internal/day17"
	"github.com/katalvlaran/aoc2023/internal/day21"
	"github.com/katalvlaran/aoc2023/internal/logging"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid configuration")

// Log selects the logger level and encoding.
type Log struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Config holds every tunable. Days without tunables have no section.
type Config struct {
	Log   Log           `yaml:"log"`
	Day11 day11.Options `yaml:"day11"`
	Day14 day14.Options `yaml:"day14"`
	Day17 day17.Options `yaml:"day17"`
	Day21 day21.Options `yaml:"day21"`
}

// Default returns the configuration that reproduces the puzzles as
// published, logging warnings and errors only.
func Default() *Config {
	return &Config{
		Log:   Log{Level: "warn", Format: logging.FormatConsole},
		Day11: day11.DefaultOptions(),
		Day14: day14.DefaultOptions(),
		Day17: day17.DefaultOptions(),
		Day21: day21.DefaultOptions(),
	}
}

// LoadYAML decodes r over the defaults, so a document only needs the keys
// it changes. An empty document yields Default().
func LoadYAML(r io.Reader) (*Config, error) {
	c := Default()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("config: decode: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Load reads the YAML file at path.
func Load(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	defer f.Close()

	return LoadYAML(f)
}

// Validate checks the values the solvers cannot reject on their own terms.
func (c *Config) Validate() error {
	switch c.Log.Format {
	case logging.FormatJSON, logging.FormatConsole:
	default:
		return fmt.Errorf("%w: log.format %q", ErrInvalid, c.Log.Format)
	}
	if c.Day21.ExactLimit < 0 {
		return fmt.Errorf("%w: day21.exact_limit %d", ErrInvalid, c.Day21.ExactLimit)
	}

	return nil
}
