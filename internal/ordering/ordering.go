// Package ordering decides the order in which the search expands moves.
package ordering

import (
	"fmt"
	"sort"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/engine"
	"github.com/lgbarn/alphabeta-chess/internal/errors"
)

// Heuristic lists the legal moves of the given pieces in the order they
// should be searched. Implementations must be stateless.
type Heuristic interface {
	Order(pos *chess.Position, pieces []*chess.Piece) []chess.Move
}

var registry = map[string]Heuristic{
	"capture": CaptureValue{},
	"none":    NoOp{},
}

// ByName returns the registered heuristic with the given name.
func ByName(name string) (Heuristic, error) {
	if h, ok := registry[name]; ok {
		return h, nil
	}
	return nil, fmt.Errorf("heuristic %q (have %v): %w", name, Names(), errors.ErrInvalidConfig)
}

// Names lists the registered heuristic names in sorted order.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// NoOp keeps enumeration order: pieces as given, destinations as generated.
type NoOp struct{}

// Order implements Heuristic.
func (NoOp) Order(pos *chess.Position, pieces []*chess.Piece) []chess.Move {
	var moves []chess.Move
	for _, p := range pieces {
		for _, to := range engine.LegalMoves(pos, p) {
			moves = append(moves, chess.NewMove(p, to))
		}
	}
	return moves
}

// CaptureValue puts captures of the most valuable pieces first. Moves with
// equal victim value keep their enumeration order.
type CaptureValue struct{}

// Order implements Heuristic.
func (CaptureValue) Order(pos *chess.Position, pieces []*chess.Piece) []chess.Move {
	moves := NoOp{}.Order(pos, pieces)
	sort.SliceStable(moves, func(i, j int) bool {
		return victimValue(pos, moves[i]) > victimValue(pos, moves[j])
	})
	return moves
}

// victimValue is the value of the piece on the destination, 0 if empty.
func victimValue(pos *chess.Position, m chess.Move) int {
	if v := pos.Board.Get(m.To); v != nil {
		return v.Value()
	}
	return 0
}
