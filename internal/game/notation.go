package game

import (
	"fmt"
	"strings"

	nchess "github.com/notnil/chess"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/engine"
)

// Entry is one recorded half-move.
type Entry struct {
	Number int          // full-move number the half-move belongs to
	Colour chess.Colour // side that moved
	SAN    string       // standard algebraic notation, or UCI if SAN failed
	UCI    string
}

// Notation records the moves of a game in standard algebraic notation.
// Its Record method satisfies engine.Recorder.
type Notation struct {
	entries []Entry
	result  string
}

// SAN renders m in standard algebraic notation for the pre-move position pos,
// e.g. "Nf3", "exd5", "O-O" or "e8=Q+". It returns the UCI form when pos
// cannot be expressed for the notation library.
func SAN(pos *chess.Position, m chess.Move, promotion chess.Kind) string {
	uci := m.UCI(pos, promotion)
	opt, err := nchess.FEN(pos.FEN())
	if err != nil {
		return uci
	}
	game := nchess.NewGame(opt)
	for _, vm := range game.ValidMoves() {
		if vm.String() == uci {
			return nchess.AlgebraicNotation{}.Encode(game.Position(), vm)
		}
	}
	return uci
}

// Record appends m, played from pos, to the move list.
func (n *Notation) Record(pos *chess.Position, m chess.Move, promotion chess.Kind) {
	n.entries = append(n.entries, Entry{
		Number: pos.MoveNumber,
		Colour: m.Piece.Colour,
		SAN:    SAN(pos, m, promotion),
		UCI:    m.UCI(pos, promotion),
	})
}

// Finish sets the result marker from a terminal outcome.
func (n *Notation) Finish(o Outcome) {
	n.result = o.Result()
}

// Entries returns a copy of the recorded half-moves.
func (n *Notation) Entries() []Entry {
	return append([]Entry(nil), n.entries...)
}

// Len returns the number of recorded half-moves.
func (n *Notation) Len() int {
	return len(n.entries)
}

// String renders the move list, e.g. "1. f3 e5 2. g4 Qh4# 0-1".
func (n *Notation) String() string {
	var sb strings.Builder
	for i, e := range n.entries {
		if i > 0 {
			sb.WriteByte(' ')
		}
		switch {
		case e.Colour == chess.White:
			fmt.Fprintf(&sb, "%d. ", e.Number)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", e.Number)
		}
		sb.WriteString(e.SAN)
	}
	if n.result != "" {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(n.result)
	}
	return sb.String()
}

// Outcome describes the position after a move from the next mover's side.
type Outcome struct {
	Status engine.Status
	Loser  chess.Colour // the checkmated side; meaningless otherwise
}

// Over reports whether the game has ended.
func (o Outcome) Over() bool {
	return o.Status != engine.Normal
}

// Result returns the PGN result token, or "" while the game goes on.
func (o Outcome) Result() string {
	switch o.Status {
	case engine.Checkmate:
		if o.Loser == chess.White {
			return "0-1"
		}
		return "1-0"
	case engine.Stalemate:
		return "1/2-1/2"
	}
	return ""
}

// String describes the outcome for display.
func (o Outcome) String() string {
	switch o.Status {
	case engine.Checkmate:
		return fmt.Sprintf("%s is checkmated", o.Loser)
	case engine.Stalemate:
		return "stalemate"
	}
	return "in progress"
}
