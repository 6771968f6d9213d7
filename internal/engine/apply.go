package engine

import "github.com/lgbarn/alphabeta-chess/internal/chess"

// PromotionChooser picks the piece a pawn of the colour becomes.
type PromotionChooser func(colour chess.Colour) chess.Kind

// Recorder observes a move just before it is made, with the position still
// in its pre-move state.
type Recorder func(pos *chess.Position, m chess.Move, promotion chess.Kind)

// MoveContext carries the optional collaborators of an interactive move.
// The zero value promotes to a queen and records nothing.
type MoveContext struct {
	Promotion PromotionChooser
	Record    Recorder
}

// promotion returns the chosen kind, falling back to a queen for a missing
// chooser or an impossible choice.
func (mc MoveContext) promotion(colour chess.Colour) chess.Kind {
	if mc.Promotion == nil {
		return chess.Queen
	}
	switch k := mc.Promotion(colour); k {
	case chess.Knight, chess.Bishop, chess.Rook, chess.Queen:
		return k
	}
	return chess.Queen
}

// Make plays p to to without checking legality and returns the snapshot
// that undoes it via pos.UndoMove(snap, p, from).
func Make(pos *chess.Position, p *chess.Piece, to chess.Coordinate, promotion chess.Kind) chess.Snapshot {
	snap := pos.Snapshot()
	rules[p.Kind].apply(pos, p, to, promotion)
	if p.Colour == chess.Black {
		pos.MoveNumber++
	}
	pos.WhiteToMove = p.Colour == chess.Black
	return snap
}

// FastApply plays a move already known to be legal, promoting to a queen.
// The search uses it on positions it owns.
func FastApply(pos *chess.Position, p *chess.Piece, to chess.Coordinate) {
	Make(pos, p, to, chess.Queen)
}

// Apply plays p to to if the move is legal and reports whether it did.
// An illegal move leaves pos untouched.
func Apply(mc MoveContext, pos *chess.Position, p *chess.Piece, to chess.Coordinate) bool {
	if p == nil || pos.Board.Get(p.Coord) != p || !IsLegal(pos, p, to) {
		return false
	}

	promotion := chess.Queen
	if p.Kind == chess.Pawn && to.Rank == pos.PromotionRank(p.Colour) {
		promotion = mc.promotion(p.Colour)
	}
	if mc.Record != nil {
		mc.Record(pos, chess.NewMove(p, to), promotion)
	}
	Make(pos, p, to, promotion)
	return true
}
