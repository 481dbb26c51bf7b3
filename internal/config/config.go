// Package config provides configuration and global state for the chess engine.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chess-engine-go/internal/errors"
)

// MaxDepth bounds the search depth. A full-width search beyond this is
// impractically slow.
const MaxDepth = 8

// DefaultCacheSize is the default number of memoized move lists.
const DefaultCacheSize = 1 << 16

// Config holds all engine configuration.
type Config struct {
	// Verbosity gates diagnostics written to LogFile (0 = silent).
	Verbosity int

	Search SearchConfig
	Rules  RulesConfig

	// CacheSize bounds the move-list cache of each position (0 disables it).
	CacheSize int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// GlobalConfig is the global configuration instance. Rules code that has
// no Config at hand (move construction) reports diagnostics through it.
var GlobalConfig *Config

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		Search:     NewSearchConfig(),
		Rules:      NewRulesConfig(),
		CacheSize:  DefaultCacheSize,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Search.Depth < 0 || c.Search.Depth > MaxDepth {
		return fmt.Errorf("depth %d out of range 0..%d: %w", c.Search.Depth, MaxDepth, errors.ErrInvalidConfig)
	}
	if c.Search.Workers < 1 {
		return fmt.Errorf("workers %d must be at least 1: %w", c.Search.Workers, errors.ErrInvalidConfig)
	}
	if c.CacheSize < 0 {
		return fmt.Errorf("cache size %d must not be negative: %w", c.CacheSize, errors.ErrInvalidConfig)
	}
	return nil
}

// Logf writes a diagnostic line when verbosity is at least level.
func (c *Config) Logf(level int, format string, args ...interface{}) {
	if c == nil || c.LogFile == nil || c.Verbosity < level {
		return
	}
	fmt.Fprintf(c.LogFile, format+"\n", args...)
}

// Init initializes the global configuration.
func Init() {
	GlobalConfig = NewConfig()
}

func init() {
	Init()
}
