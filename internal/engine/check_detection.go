package engine

import "github.com/lgbarn/alphabeta-chess/internal/chess"

// CountAttackers returns how many pieces of colour by attack sq.
func CountAttackers(pos *chess.Position, sq chess.Coordinate, by chess.Colour) int {
	n := 0
	for _, p := range pos.Board.PiecesOf(by) {
		for _, a := range Attacks(pos, p) {
			if a == sq {
				n++
				break
			}
		}
	}
	return n
}

// InCheck returns true if the colour's king is attacked. A position without
// that king is never in check.
func InCheck(pos *chess.Position, colour chess.Colour) bool {
	king := pos.Board.King(colour)
	if king == nil {
		return false
	}
	return CountAttackers(pos, king.Coord, colour.Opposite()) > 0
}
