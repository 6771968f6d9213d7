package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestSentinelErrors_Distinct(t *testing.T) {
	sentinels := map[string]error{
		"ErrInvalidCoordinate":  ErrInvalidCoordinate,
		"ErrIllegalMove":        ErrIllegalMove,
		"ErrAmbiguousGameState": ErrAmbiguousGameState,
		"ErrInvalidFEN":         ErrInvalidFEN,
		"ErrInvalidConfig":      ErrInvalidConfig,
		"ErrSearchFailed":       ErrSearchFailed,
		"ErrGameOver":           ErrGameOver,
	}

	for name, err := range sentinels {
		for other, otherErr := range sentinels {
			if name == other {
				continue
			}
			if errors.Is(err, otherErr) {
				t.Errorf("errors.Is(%s, %s) = true, want false", name, other)
			}
		}
	}
}

func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading start position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:   ErrIllegalMove,
				Piece: "white knight",
				From:  "g1",
				To:    "g3",
				Ply:   7,
			},
			contains: []string{"ply 7", "white knight", "g1-g3", "illegal move"},
		},
		{
			name:     "destination only",
			err:      &MoveError{Err: ErrAmbiguousGameState, To: "e4"},
			contains: []string{"to e4", "ambiguous game state"},
		},
		{
			name:     "no context",
			err:      &MoveError{Err: ErrGameOver},
			contains: []string{"game is over"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, From: "e1", To: "g1", Ply: 9}
	wrapped := fmt.Errorf("player input: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 9 {
		t.Errorf("extracted.Ply = %d, want 9", extracted.Ply)
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

func TestParseError_Error(t *testing.T) {
	err := &ParseError{
		Err:      ErrInvalidFEN,
		Field:    "side to move",
		Index:    2,
		Expected: "w or b",
		Got:      "x",
	}

	msg := err.Error()
	for _, s := range []string{"side to move", "field 2", "w or b", `"x"`, "invalid FEN"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("ParseError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInvalidFEN) {
		t.Error("errors.Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

func TestWrap(t *testing.T) {
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}

	wrapped := Wrap(ErrSearchFailed, "root move e2e4")
	if !errors.Is(wrapped, ErrSearchFailed) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "root move e2e4") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
}

func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrInvalidConfig, "depth %d", 9)

	if !errors.Is(wrapped, ErrInvalidConfig) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "depth 9") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

func TestIsAndAs(t *testing.T) {
	err := Wrap(&MoveError{Err: ErrIllegalMove, Piece: "white rook", From: "a1", To: "b2"}, "play")
	if !Is(err, ErrIllegalMove) {
		t.Error("Is(err, ErrIllegalMove) = false, want true")
	}
	if Is(err, ErrGameOver) {
		t.Error("Is(err, ErrGameOver) = true, want false")
	}
	var moveErr *MoveError
	if !As(err, &moveErr) || moveErr.To != "b2" {
		t.Errorf("As() = %+v, want MoveError to b2", moveErr)
	}
}
