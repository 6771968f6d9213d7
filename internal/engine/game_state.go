package engine

import (
	"fmt"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/errors"
)

// Status is the terminal classification of a position for one colour.
type Status int

const (
	Normal Status = iota
	Checkmate
	Stalemate
)

// String returns the string representation of a status.
func (s Status) String() string {
	switch s {
	case Checkmate:
		return "Checkmate"
	case Stalemate:
		return "Stalemate"
	}
	return "Normal"
}

// Classify reports whether colour is checkmated, stalemated or neither.
// A position without that colour's king is an error.
func Classify(pos *chess.Position, colour chess.Colour) (Status, error) {
	if pos.Board.King(colour) == nil {
		return Normal, fmt.Errorf("no %s king: %w", colour, errors.ErrAmbiguousGameState)
	}
	if HasLegalMoves(pos, colour) {
		return Normal, nil
	}
	if InCheck(pos, colour) {
		return Checkmate, nil
	}
	return Stalemate, nil
}

// IsCheckmate returns true if the side to move is checkmated.
func IsCheckmate(pos *chess.Position) bool {
	colour := pos.SideToMove()
	return InCheck(pos, colour) && !HasLegalMoves(pos, colour)
}

// IsStalemate returns true if the side to move is stalemated.
func IsStalemate(pos *chess.Position) bool {
	colour := pos.SideToMove()
	return !InCheck(pos, colour) && !HasLegalMoves(pos, colour)
}
