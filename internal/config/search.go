package config

import (
	"fmt"
	"log"

	"github.com/lgbarn/alphabeta-chess/internal/errors"
	"github.com/lgbarn/alphabeta-chess/internal/eval"
	"github.com/lgbarn/alphabeta-chess/internal/ordering"
	"github.com/lgbarn/alphabeta-chess/internal/search"
)

// Search depth limits in plies.
const (
	MinDepth     = 1
	MaxDepth     = 6
	DefaultDepth = 2
)

// SearchConfig holds settings for the move search.
type SearchConfig struct {
	// Depth is the fixed search depth in plies
	Depth int

	// Parallel splits the search at the root across a worker pool
	Parallel bool

	// Workers is the pool size; 0 uses every CPU
	Workers int

	// Evaluator names the position evaluator (see eval.Names)
	Evaluator string

	// Heuristic names the move ordering (see ordering.Names)
	Heuristic string
}

// NewSearchConfig creates a SearchConfig with default values.
func NewSearchConfig() *SearchConfig {
	return &SearchConfig{
		Depth:     DefaultDepth,
		Evaluator: "simple",
		Heuristic: "capture",
	}
}

// Validate checks that the search configuration is valid.
func (s *SearchConfig) Validate() error {
	if s.Depth < MinDepth || s.Depth > MaxDepth {
		return fmt.Errorf("depth %d outside %d..%d: %w", s.Depth, MinDepth, MaxDepth, errors.ErrInvalidConfig)
	}
	if s.Workers < 0 {
		return fmt.Errorf("workers %d: %w", s.Workers, errors.ErrInvalidConfig)
	}
	if _, err := eval.ByName(s.Evaluator); err != nil {
		return err
	}
	_, err := ordering.ByName(s.Heuristic)
	return err
}

// Options resolves the named collaborators into search options.
func (s *SearchConfig) Options(logger *log.Logger) (search.Options, error) {
	if err := s.Validate(); err != nil {
		return search.Options{}, err
	}
	evaluator, _ := eval.ByName(s.Evaluator)
	heuristic, _ := ordering.ByName(s.Heuristic)
	return search.Options{
		Depth:     s.Depth,
		Parallel:  s.Parallel,
		Workers:   s.Workers,
		Evaluator: evaluator,
		Heuristic: heuristic,
		Logger:    logger,
	}, nil
}
