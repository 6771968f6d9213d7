package eval

import (
	"testing"

	"github.com/lgbarn/alphabeta-chess/internal/chess"
	"github.com/lgbarn/alphabeta-chess/internal/errors"
	"github.com/lgbarn/alphabeta-chess/internal/testutil"
)

func TestStartPositionIsBalanced(t *testing.T) {
	for _, name := range Names() {
		e, err := ByName(name)
		testutil.AssertNoError(t, err)
		for _, whiteAtBottom := range []bool{true, false} {
			if got := e.Evaluate(chess.NewGame(whiteAtBottom)); got != 0 {
				t.Errorf("%s.Evaluate(start, whiteAtBottom=%v) = %v, want 0", name, whiteAtBottom, got)
			}
		}
	}
}

func TestMaterial(t *testing.T) {
	const noWhiteQueen = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNB1KBNR w KQkq - 0 1"
	tests := []struct {
		name          string
		whiteAtBottom bool
		want          float64
	}{
		{"black at top is ahead", true, 900},
		{"white at top is behind", false, -900},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPositionOriented(t, noWhiteQueen, tt.whiteAtBottom)
			if got := (Material{}).Evaluate(pos); got != tt.want {
				t.Errorf("Material.Evaluate() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSimpleTerms(t *testing.T) {
	tests := []struct {
		name string
		a    string
		b    string
		diff float64 // Evaluate(b) - Evaluate(a)
	}{
		{
			name: "central pawn in the opening",
			a:    "4k3/8/4p3/8/8/8/8/4K3 w - - 0 1",
			b:    "4k3/8/8/4p3/8/8/8/4K3 w - - 0 1",
			diff: 10,
		},
		{
			name: "central pawn ignored in the middlegame",
			a:    "4k3/8/4p3/8/8/8/8/4K3 w - - 0 20",
			b:    "4k3/8/8/4p3/8/8/8/4K3 w - - 0 20",
			diff: 0,
		},
		{
			name: "knight activity in the opening",
			a:    "n3k3/8/8/8/8/8/8/4K3 w - - 0 1",
			b:    "4k3/8/8/3n4/8/8/8/4K3 w - - 0 1",
			diff: (8 - 2) * 5,
		},
		{
			name: "rook activity only counts in the middlegame",
			a:    "r3k3/8/8/8/8/8/8/4K3 w - - 0 1",
			b:    "r3k3/8/8/8/8/8/8/4K3 w - - 0 9",
			diff: (5*100 + 10*10) - 5*150,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := testutil.MustPosition(t, tt.a)
			b := testutil.MustPosition(t, tt.b)
			if got := (Simple{}).Evaluate(b) - (Simple{}).Evaluate(a); got != tt.diff {
				t.Errorf("Evaluate(b) - Evaluate(a) = %v, want %v", got, tt.diff)
			}
		})
	}
}

func TestSimpleCastledKing(t *testing.T) {
	tests := []struct {
		name       string
		moveNumber int
		bonus      float64
	}{
		{"opening", 1, 50},
		{"middlegame", 30, 100},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := testutil.MustPosition(t, "6k1/8/8/8/8/8/8/4K3 w - - 0 1")
			pos.MoveNumber = tt.moveNumber
			before := (Simple{}).Evaluate(pos)

			king := pos.Board.King(chess.Black)
			king.Castled = true
			if got := (Simple{}).Evaluate(pos) - before; got != tt.bonus {
				t.Errorf("castled bonus = %v, want %v", got, tt.bonus)
			}

			pos.Board.King(chess.White).Castled = true
			if got := (Simple{}).Evaluate(pos); got != before {
				t.Errorf("both castled = %v, want %v", got, before)
			}
		})
	}
}

func TestByName(t *testing.T) {
	if _, err := ByName("simple"); err != nil {
		t.Errorf("ByName(simple) unexpected error: %v", err)
	}
	_, err := ByName("neural")
	testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
	testutil.AssertEqual(t, Names(), []string{"material", "simple"})
}
