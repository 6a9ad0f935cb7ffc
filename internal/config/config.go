// Package config loads settings for the treap command.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"slices"
)

// Output formats for tree dumps.
const (
	FormatIndent = "indent"
	FormatTree   = "tree"
)

// Defaults.
const (
	DefaultSeed     uint64 = 0
	DefaultFormat          = FormatIndent
	DefaultColor           = true
	DefaultLogLevel        = "info"
)

var (
	// ErrFormat is returned by Validate for an unknown dump format.
	ErrFormat = errors.New("unknown format")
	// ErrLogLevel is returned by Validate for an unparsable log level.
	ErrLogLevel = errors.New("invalid log level")
)

// Config is the top-level configuration of the treap command.
// Field tags use mapstructure for viper unmarshalling.
type Config struct {
	// Seed of the priority source, 0 picks a random one.
	Seed     uint64 `mapstructure:"seed"`
	Format   string `mapstructure:"format"`
	Color    bool   `mapstructure:"color"`
	LogLevel string `mapstructure:"log_level"`
}

// Validate checks every field.
func (c *Config) Validate() error {
	if !slices.Contains([]string{FormatIndent, FormatTree}, c.Format) {
		return fmt.Errorf("%w %q", ErrFormat, c.Format)
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return l, fmt.Errorf("%w %q", ErrLogLevel, c.LogLevel)
	}
	return l, nil
}
