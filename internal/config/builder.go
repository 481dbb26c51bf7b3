package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithSeed sets the tie-breaking seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Search.Seed = seed
	return b
}

// WithWorkers sets the number of root-splitting workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Search.Workers = n
	return b
}

// WithCacheSize sets the move-list cache bound (0 disables caching).
func (b *ConfigBuilder) WithCacheSize(size int) *ConfigBuilder {
	b.cfg.CacheSize = size
	return b
}

// WithFullFEN enables applying every FEN field.
func (b *ConfigBuilder) WithFullFEN(enabled bool) *ConfigBuilder {
	b.cfg.Rules.FullFEN = enabled
	return b
}

// WithCastleThroughCheck allows castling out of or through attacked squares.
func (b *ConfigBuilder) WithCastleThroughCheck(enabled bool) *ConfigBuilder {
	b.cfg.Rules.CastleThroughCheck = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the diagnostics writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
