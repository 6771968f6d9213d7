// Package engine provides the movement rules: attack sets, legal move
// generation, move application, check detection and terminal classification.
package engine

import "github.com/lgbarn/alphabeta-chess/internal/chess"

// rule is the behaviour of one piece kind.
type rule struct {
	// attacks returns the squares the piece threatens, excluding squares
	// occupied by its own side.
	attacks func(pos *chess.Position, p *chess.Piece) []chess.Coordinate

	// candidates returns pseudo-legal destinations, before king safety.
	candidates func(pos *chess.Position, p *chess.Piece) []chess.Coordinate

	// apply moves the piece and handles its special effects.
	apply func(pos *chess.Position, p *chess.Piece, to chess.Coordinate, promotion chess.Kind)
}

// rules is indexed by chess.Kind. Assigned in init because the king's
// candidates consult attacker counts, which consult this table.
var rules [chess.NumKinds]rule

func init() {
	rules = [chess.NumKinds]rule{
		chess.Pawn:   {attacks: pawnAttacks, candidates: pawnCandidates, apply: applyPawn},
		chess.Knight: {attacks: knightAttacks, candidates: knightAttacks, apply: applyPlain},
		chess.Bishop: {attacks: bishopAttacks, candidates: bishopAttacks, apply: applyPlain},
		chess.Rook:   {attacks: rookAttacks, candidates: rookAttacks, apply: applyPlain},
		chess.Queen:  {attacks: queenAttacks, candidates: queenAttacks, apply: applyPlain},
		chess.King:   {attacks: kingAttacks, candidates: kingCandidates, apply: applyKing},
	}
}

// Attacks returns the squares p attacks in pos.
func Attacks(pos *chess.Position, p *chess.Piece) []chess.Coordinate {
	return rules[p.Kind].attacks(pos, p)
}

var (
	knightOffsets = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets   = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonals     = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	orthogonals   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
)

// stepAttacks collects single-step destinations not held by p's own side.
func stepAttacks(pos *chess.Position, p *chess.Piece, offsets [][2]int) []chess.Coordinate {
	squares := make([]chess.Coordinate, 0, len(offsets))
	for _, o := range offsets {
		to, ok := p.Coord.Offset(o[0], o[1])
		if !ok {
			continue
		}
		if occ := pos.Board.Get(to); occ != nil && occ.Colour == p.Colour {
			continue
		}
		squares = append(squares, to)
	}
	return squares
}

// rayAttacks walks each direction until the edge or the first occupied
// square, which is included only when it holds an enemy piece.
func rayAttacks(pos *chess.Position, p *chess.Piece, dirs ...[][2]int) []chess.Coordinate {
	var squares []chess.Coordinate
	for _, set := range dirs {
		for _, d := range set {
			at := p.Coord
			for {
				next, ok := at.Offset(d[0], d[1])
				if !ok {
					break
				}
				occ := pos.Board.Get(next)
				if occ == nil {
					squares = append(squares, next)
					at = next
					continue
				}
				if occ.Colour != p.Colour {
					squares = append(squares, next)
				}
				break
			}
		}
	}
	return squares
}

func knightAttacks(pos *chess.Position, p *chess.Piece) []chess.Coordinate {
	return stepAttacks(pos, p, knightOffsets)
}

func bishopAttacks(pos *chess.Position, p *chess.Piece) []chess.Coordinate {
	return rayAttacks(pos, p, diagonals)
}

func rookAttacks(pos *chess.Position, p *chess.Piece) []chess.Coordinate {
	return rayAttacks(pos, p, orthogonals)
}

func queenAttacks(pos *chess.Position, p *chess.Piece) []chess.Coordinate {
	return rayAttacks(pos, p, orthogonals, diagonals)
}

func kingAttacks(pos *chess.Position, p *chess.Piece) []chess.Coordinate {
	return stepAttacks(pos, p, kingOffsets)
}

// applyPlain moves a knight, bishop, rook or queen, capturing any occupant.
func applyPlain(pos *chess.Position, p *chess.Piece, to chess.Coordinate, _ chess.Kind) {
	pos.EnPassant.Allowed = false
	pos.Board.Remove(p.Coord)
	pos.Board.Put(to, p)
	if p.Kind == chess.Rook {
		p.Moved++
	}
}
