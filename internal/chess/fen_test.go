package chess

import (
	"errors"
	"testing"

	chesserrors "github.com/lgbarn/alphabeta-chess/internal/errors"
)

func TestParseFEN(t *testing.T) {
	tests := []struct {
		name    string
		fen     string
		checkFn func(*Position) bool
	}{
		{
			name: "initial position",
			fen:  InitialFEN,
			checkFn: func(p *Position) bool {
				k := p.Board.Get(Coord(7, 4))
				return k != nil && k.Kind == King && k.Colour == White && k.Moved == 0 &&
					p.WhiteToMove && p.MoveNumber == 1 && !p.EnPassant.Allowed
			},
		},
		{
			name: "after 1.e4",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			checkFn: func(p *Position) bool {
				return !p.WhiteToMove && p.EnPassant.Allowed && p.EnPassant.Square == Coord(4, 4) &&
					p.Board.Empty(Coord(6, 4))
			},
		},
		{
			name: "no castling rights",
			fen:  "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w - - 0 1",
			checkFn: func(p *Position) bool {
				return p.Board.Get(Coord(7, 4)).Moved == 1 && p.Board.Get(Coord(7, 0)).Moved == 1 &&
					p.Board.Get(Coord(0, 7)).Moved == 1
			},
		},
		{
			name: "kingside only for white",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 12",
			checkFn: func(p *Position) bool {
				return p.CanStillCastle(White, Kingside) && !p.CanStillCastle(White, Queenside) &&
					p.CanStillCastle(Black, Queenside) && !p.CanStillCastle(Black, Kingside) &&
					p.MoveNumber == 12
			},
		},
		{
			name: "en passant target without a capturable pawn is ignored",
			fen:  "4k3/8/8/8/8/8/8/4K3 w - e6 0 1",
			checkFn: func(p *Position) bool {
				return !p.EnPassant.Allowed
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos, err := ParseFEN(tt.fen, true)
			if err != nil {
				t.Fatalf("ParseFEN() unexpected error: %v", err)
			}
			if !tt.checkFn(pos) {
				t.Errorf("ParseFEN(%q) produced unexpected position %q", tt.fen, pos.FEN())
			}
		})
	}
}

func TestParseFENInvalid(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"seven ranks", "8/8/8/8/8/8/8 w - - 0 1"},
		{"bad piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNX w KQkq - 0 1"},
		{"non-ASCII piece", "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNŒ w KQkq - 0 1"},
		{"rank too long", "rnbqkbnr/ppppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"rank too short", "rnbqkbnr/ppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w Kx - 0 1"},
		{"bad en passant", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1"},
		{"bad move number", "4k3/8/8/8/8/8/8/4K3 w - - 0 zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseFEN(tt.fen, true)
			if !errors.Is(err, chesserrors.ErrInvalidFEN) {
				t.Errorf("ParseFEN(%q) error = %v, want ErrInvalidFEN", tt.fen, err)
			}
		})
	}
}

func TestFENRoundTrip(t *testing.T) {
	fens := []string{
		InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 12",
	}

	for _, fen := range fens {
		for _, whiteAtBottom := range []bool{true, false} {
			pos, err := ParseFEN(fen, whiteAtBottom)
			if err != nil {
				t.Fatalf("ParseFEN(%q) unexpected error: %v", fen, err)
			}
			if got := pos.FEN(); got != fen {
				t.Errorf("FEN() = %q, want %q (whiteAtBottom=%v)", got, fen, whiteAtBottom)
			}
		}
	}
}

func TestNewGameMatchesInitialFEN(t *testing.T) {
	for _, whiteAtBottom := range []bool{true, false} {
		if got := NewGame(whiteAtBottom).FEN(); got != InitialFEN {
			t.Errorf("NewGame(%v).FEN() = %q, want %q", whiteAtBottom, got, InitialFEN)
		}
	}
}
