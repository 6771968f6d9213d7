// Package config holds the settings of one engine run.
package config

import (
	"io"
	"log"
	"os"
)

// Verbosity levels.
const (
	Quiet      = 0 // errors only
	Normal     = 1 // results
	Commentary = 2 // search progress on the log
)

// Config holds all program configuration.
type Config struct {
	Search *SearchConfig
	Game   *GameConfig
	Output *OutputConfig

	Verbosity int

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Search:     NewSearchConfig(),
		Game:       NewGameConfig(),
		Output:     NewOutputConfig(),
		Verbosity:  Normal,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if err := c.Search.Validate(); err != nil {
		return err
	}
	return c.Game.Validate()
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Logger returns a logger over LogFile that is silent below Commentary.
func (c *Config) Logger() *log.Logger {
	if c.Verbosity < Commentary || c.LogFile == nil {
		return log.New(io.Discard, "", 0)
	}
	return log.New(c.LogFile, "alphabeta: ", log.Ltime|log.Lmicroseconds)
}
