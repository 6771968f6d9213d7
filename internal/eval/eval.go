// Package eval scores positions for the search. Scores are from the point of
// view of the side seated at the top of the board, which is the automated side.
package eval

import (
	"fmt"
	"sort"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/errors"
)

// Evaluator scores a position. Implementations must be stateless and safe
// for concurrent use: the parallel search shares one across workers.
type Evaluator interface {
	Evaluate(pos *chess.Position) float64
}

var registry = map[string]Evaluator{
	"simple":   Simple{},
	"material": Material{},
}

// ByName returns the registered evaluator with the given name.
func ByName(name string) (Evaluator, error) {
	if e, ok := registry[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("evaluator %q (have %v): %w", name, Names(), errors.ErrInvalidConfig)
}

// Names lists the registered evaluator names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// sign returns +1 for pieces of the top side and -1 otherwise.
func sign(pos *chess.Position, p *chess.Piece) float64 {
	if p.Colour == pos.TopColour() {
		return 1
	}
	return -1
}
