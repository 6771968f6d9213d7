package eval

import (
	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/engine"
)

// OpeningMoves is the last full move scored with opening weights.
const OpeningMoves = 8

// Simple weighs material, king safety and piece activity, with separate
// weights for the opening and the middlegame.
//
// Opening: material x150, castled king +50, pawn on a centre square +10,
// knight and bishop attacked squares x5.
// Middlegame: material x100, castled king +100, attacked squares x10 for
// every piece other than pawns and the king.
type Simple struct{}

// Evaluate implements Evaluator.
func (Simple) Evaluate(pos *chess.Position) float64 {
	opening := pos.MoveNumber <= OpeningMoves
	var score float64
	for r := 0; r < chess.BoardSize; r++ {
		for f := 0; f < chess.BoardSize; f++ {
			p := pos.Board[r][f]
			if p == nil {
				continue
			}
			if opening {
				score += sign(pos, p) * openingTerm(pos, p)
			} else {
				score += sign(pos, p) * middlegameTerm(pos, p)
			}
		}
	}
	return score
}

func openingTerm(pos *chess.Position, p *chess.Piece) float64 {
	v := float64(p.Value() * 150)
	switch p.Kind {
	case chess.King:
		if p.Castled {
			v += 50
		}
	case chess.Pawn:
		if isCentre(p.Coord) {
			v += 10
		}
	case chess.Knight, chess.Bishop:
		v += float64(len(engine.Attacks(pos, p)) * 5)
	}
	return v
}

func middlegameTerm(pos *chess.Position, p *chess.Piece) float64 {
	v := float64(p.Value() * 100)
	switch p.Kind {
	case chess.King:
		if p.Castled {
			v += 100
		}
	case chess.Pawn:
	default:
		v += float64(len(engine.Attacks(pos, p)) * 10)
	}
	return v
}

// isCentre reports whether c is one of d4, e4, d5, e5 in either orientation.
func isCentre(c chess.Coordinate) bool {
	return (c.Rank == 3 || c.Rank == 4) && (c.File == 3 || c.File == 4)
}
