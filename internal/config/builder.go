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

// Build validates and returns the built Config.
func (b *ConfigBuilder) Build() (*Config, error) {
	if err := b.cfg.Validate(); err != nil {
		return nil, err
	}
	return b.cfg, nil
}

// WithDepth sets the search depth.
func (b *ConfigBuilder) WithDepth(depth int) *ConfigBuilder {
	b.cfg.Search.Depth = depth
	return b
}

// WithParallel enables the root-split search on the given number of
// workers; 0 uses every CPU.
func (b *ConfigBuilder) WithParallel(enabled bool, workers int) *ConfigBuilder {
	b.cfg.Search.Parallel = enabled
	b.cfg.Search.Workers = workers
	return b
}

// WithEvaluator sets the evaluator by name.
func (b *ConfigBuilder) WithEvaluator(name string) *ConfigBuilder {
	b.cfg.Search.Evaluator = name
	return b
}

// WithHeuristic sets the move ordering by name.
func (b *ConfigBuilder) WithHeuristic(name string) *ConfigBuilder {
	b.cfg.Search.Heuristic = name
	return b
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.Game.FEN = fen
	return b
}

// WithWhiteAtBottom sets the board orientation.
func (b *ConfigBuilder) WithWhiteAtBottom(whiteAtBottom bool) *ConfigBuilder {
	b.cfg.Game.WhiteAtBottom = whiteAtBottom
	return b
}

// WithAutomated sets the side the engine plays.
func (b *ConfigBuilder) WithAutomated(side string) *ConfigBuilder {
	b.cfg.Game.Automated = side
	return b
}

// WithColour controls terminal colours.
func (b *ConfigBuilder) WithColour(enabled bool) *ConfigBuilder {
	b.cfg.Output.Colour = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
