package chess

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/alphabeta-chess/internal/errors"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// ParseFEN builds a position from a FEN string. Castling availability is
// carried by move counts: a rook or king without the matching right is
// marked as having moved. The halfmove clock is read but not kept.
func ParseFEN(fen string, whiteAtBottom bool) (*Position, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	pos := NewEmptyPosition(whiteAtBottom)

	if err := parsePlacement(pos, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(pos, parts); err != nil {
		return nil, err
	}
	if err := parseCastling(pos, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(pos, parts); err != nil {
		return nil, err
	}
	if err := parseMoveNumber(pos, parts); err != nil {
		return nil, err
	}
	return pos, nil
}

// MustParseFEN is ParseFEN for known-good constants; it panics on error.
func MustParseFEN(fen string, whiteAtBottom bool) *Position {
	pos, err := ParseFEN(fen, whiteAtBottom)
	if err != nil {
		panic(err)
	}
	return pos
}

// parsePlacement parses the piece placement field.
func parsePlacement(pos *Position, placement string) error {
	ranks := strings.Split(placement, "/")
	if len(ranks) != BoardSize {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Index: 1,
			Expected: "8 ranks", Got: placement}
	}

	for i, row := range ranks {
		rank := BoardSize - 1 - i
		file := 0
		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				file += int(c - '0')
			default:
				var kind Kind
				ok := false
				if c <= unicode.MaxASCII {
					kind, ok = KindFromLetter(byte(c))
				}
				if !ok {
					return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Index: 1,
						Expected: "piece letter", Got: string(c)}
				}
				if file >= BoardSize {
					return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Index: 1,
						Expected: "8 files", Got: row}
				}
				colour := White
				if unicode.IsLower(c) {
					colour = Black
				}
				pos.place(kind, colour, file, rank)
				file++
			}
		}
		if file != BoardSize {
			return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "placement", Index: 1,
				Expected: "8 files", Got: row}
		}
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(pos *Position, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		pos.WhiteToMove = true
	case "b":
		pos.WhiteToMove = false
	default:
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "side to move", Index: 2,
			Expected: "w or b", Got: parts[1]}
	}
	return nil
}

// castleRight ties a FEN castling letter to the king and rook squares it needs.
type castleRight struct {
	letter byte
	colour Colour
	side   CastleSide
}

var castleRights = []castleRight{
	{'K', White, Kingside},
	{'Q', White, Queenside},
	{'k', Black, Kingside},
	{'q', Black, Queenside},
}

// parseCastling maps the castling field onto king and rook move counts.
func parseCastling(pos *Position, parts []string) error {
	field := "-"
	if len(parts) >= 3 {
		field = parts[2]
	}
	if field != "-" {
		for i := 0; i < len(field); i++ {
			if !strings.ContainsRune("KQkq", rune(field[i])) {
				return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "castling", Index: 3,
					Expected: "KQkq or -", Got: field}
			}
		}
	}

	for _, colour := range []Colour{White, Black} {
		for _, p := range pos.Board.PiecesOf(colour) {
			if p.Kind == King || p.Kind == Rook {
				p.Moved = 1
			}
		}
	}

	for _, cr := range castleRights {
		if !strings.ContainsRune(field, rune(cr.letter)) {
			continue
		}
		g := pos.Castling(cr.colour, cr.side)
		king, rook := pos.Board.Get(g.KingFrom), pos.Board.Get(g.RookFrom)
		if king == nil || king.Kind != King || king.Colour != cr.colour ||
			rook == nil || rook.Kind != Rook || rook.Colour != cr.colour {
			continue
		}
		king.Moved = 0
		rook.Moved = 0
	}
	return nil
}

// parseEnPassant parses the en passant target square. The target is the
// square passed over; the position records the pawn itself.
func parseEnPassant(pos *Position, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}
	target, err := ParseSquare(parts[3], pos.WhiteAtBottom)
	if err != nil {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Index: 4,
			Expected: "square or -", Got: parts[3]}
	}
	pusher := pos.SideToMove().Opposite()
	sq, ok := target.Offset(pos.Forward(pusher), 0)
	if !ok {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "en passant", Index: 4,
			Expected: "square on rank 3 or 6", Got: parts[3]}
	}
	if p := pos.Board.Get(sq); p != nil && p.Kind == Pawn && p.Colour == pusher {
		pos.EnPassant = EnPassant{Square: sq, Allowed: true}
	}
	return nil
}

// parseMoveNumber parses the fullmove number; the halfmove clock is skipped.
func parseMoveNumber(pos *Position, parts []string) error {
	if len(parts) < 6 {
		return nil
	}
	n, err := strconv.Atoi(parts[5])
	if err != nil || n < 1 {
		return &errors.ParseError{Err: errors.ErrInvalidFEN, Field: "fullmove number", Index: 6,
			Expected: "positive integer", Got: parts[5]}
	}
	pos.MoveNumber = n
	return nil
}

// FEN converts the position to a FEN string. The halfmove clock is always 0.
func (p *Position) FEN() string {
	var sb strings.Builder

	p.writePlacement(&sb)
	if p.WhiteToMove {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}
	p.writeCastling(&sb)
	sb.WriteByte(' ')
	p.writeEnPassant(&sb)
	fmt.Fprintf(&sb, " 0 %d", p.MoveNumber)

	return sb.String()
}

// writePlacement writes the piece placement from rank 8 down.
func (p *Position) writePlacement(sb *strings.Builder) {
	for rank := BoardSize - 1; rank >= 0; rank-- {
		empty := 0
		for file := 0; file < BoardSize; file++ {
			pc := p.Board.Get(SquareCoord(file, rank, p.WhiteAtBottom))
			if pc == nil {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pc.FENLetter())
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > 0 {
			sb.WriteByte('/')
		}
	}
}

// writeCastling writes the rights implied by king and rook move counts.
func (p *Position) writeCastling(sb *strings.Builder) {
	written := false
	for _, cr := range castleRights {
		if p.CanStillCastle(cr.colour, cr.side) {
			sb.WriteByte(cr.letter)
			written = true
		}
	}
	if !written {
		sb.WriteByte('-')
	}
}

// CanStillCastle reports whether the king and rook for the given castling
// move are on their home squares and have never moved. It says nothing about
// whether castling is legal right now.
func (p *Position) CanStillCastle(colour Colour, side CastleSide) bool {
	g := p.Castling(colour, side)
	king, rook := p.Board.Get(g.KingFrom), p.Board.Get(g.RookFrom)
	return king != nil && king.Kind == King && king.Colour == colour && king.Moved == 0 &&
		rook != nil && rook.Kind == Rook && rook.Colour == colour && rook.Moved == 0
}

// writeEnPassant writes the square behind a pawn that may be taken en passant.
func (p *Position) writeEnPassant(sb *strings.Builder) {
	pawn := p.Board.Get(p.EnPassant.Square)
	if !p.EnPassant.Allowed || pawn == nil {
		sb.WriteByte('-')
		return
	}
	target, ok := p.EnPassant.Square.Offset(-p.Forward(pawn.Colour), 0)
	if !ok {
		sb.WriteByte('-')
		return
	}
	sb.WriteString(target.Algebraic(p.WhiteAtBottom))
}
