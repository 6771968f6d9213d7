package game

import (
	"testing"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/engine"
	"github.com/lgbarn/alphabeta-chess/internal/testutil"
)

func TestSAN(t *testing.T) {
	tests := []struct {
		name     string
		fen      string
		from, to string
		want     string
	}{
		{"pawn push", chess.InitialFEN, "e2", "e4", "e4"},
		{"knight", chess.InitialFEN, "g1", "f3", "Nf3"},
		{"pawn capture", "4k3/8/8/3p4/4P3/8/8/4K3 w - - 0 1", "e4", "d5", "exd5"},
		{"kingside castle", "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1", "e1", "g1", "O-O"},
		{"queenside castle", "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1", "e8", "c8", "O-O-O"},
		{"mate", testutil.MateInOneFEN, "a1", "a8", "Ra8#"},
	}

	for _, tt := range tests {
		for _, whiteAtBottom := range []bool{true, false} {
			t.Run(tt.name, func(t *testing.T) {
				pos := testutil.MustPositionOriented(t, tt.fen, whiteAtBottom)
				p := testutil.PieceAt(t, pos, tt.from)
				m := chess.NewMove(p, testutil.Square(t, pos, tt.to))
				if got := SAN(pos, m, chess.Queen); got != tt.want {
					t.Errorf("SAN(%s%s, whiteAtBottom=%v) = %q, want %q", tt.from, tt.to, whiteAtBottom, got, tt.want)
				}
			})
		}
	}
}

func TestSAN_FallsBackToUCI(t *testing.T) {
	// A move the rules reject has no SAN form.
	pos := chess.NewGame(true)
	p := testutil.PieceAt(t, pos, "e2")
	m := chess.NewMove(p, testutil.Square(t, pos, "e5"))
	testutil.AssertEqual(t, SAN(pos, m, chess.Queen), "e2e5")
}

func TestNotation_BlackMovesFirst(t *testing.T) {
	pos := testutil.MustPosition(t, "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1")
	var n Notation
	mc := engine.MoveContext{Record: n.Record}

	for _, mv := range [][2]string{{"e7", "e5"}, {"g1", "f3"}} {
		p := testutil.PieceAt(t, pos, mv[0])
		if !engine.Apply(mc, pos, p, testutil.Square(t, pos, mv[1])) {
			t.Fatalf("%s-%s rejected", mv[0], mv[1])
		}
	}
	testutil.AssertEqual(t, n.String(), "1... e5 2. Nf3")
	testutil.AssertEqual(t, n.Len(), 2)
}

func TestOutcome(t *testing.T) {
	tests := []struct {
		outcome Outcome
		over    bool
		result  string
		text    string
	}{
		{Outcome{}, false, "", "in progress"},
		{Outcome{Status: engine.Checkmate, Loser: chess.White}, true, "0-1", "White is checkmated"},
		{Outcome{Status: engine.Checkmate, Loser: chess.Black}, true, "1-0", "Black is checkmated"},
		{Outcome{Status: engine.Stalemate, Loser: chess.Black}, true, "1/2-1/2", "stalemate"},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			testutil.AssertEqual(t, tt.outcome.Over(), tt.over)
			testutil.AssertEqual(t, tt.outcome.Result(), tt.result)
			testutil.AssertEqual(t, tt.outcome.String(), tt.text)
		})
	}
}
