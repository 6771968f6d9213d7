package testutil

import (
	"errors"
	"fmt"
	"testing"
)

// Failures cannot be observed without mocking *testing.T, so these cover the
// passing paths and the message formatting.

func TestAssertEqual_Success(t *testing.T) {
	AssertEqual(t, "e4", "e4")
	AssertEqual(t, 20, 20)
	AssertEqual(t, []string{"e2e4", "d2d4"}, []string{"e2e4", "d2d4"})
	AssertEqual(t, nil, nil)
	AssertEqual(t, 400, 400, "perft(%d)", 2)
}

func TestAssertErrors_Success(t *testing.T) {
	sentinel := errors.New("sentinel")
	AssertNoError(t, nil)
	AssertError(t, sentinel, "expected error from %s", "operation")
	AssertErrorIs(t, fmt.Errorf("wrapped: %w", sentinel), sentinel)
}

func TestAssertStrings_Success(t *testing.T) {
	AssertContains(t, "1. e4 e5", "e5")
	AssertContains(t, "test", "")
	AssertNotContains(t, "1. e4 e5", "Nf3")
}

func TestAssertBools_Success(t *testing.T) {
	AssertTrue(t, len("e4") == 2)
	AssertFalse(t, 1 == 2)
}

func TestAssertNil_Success(t *testing.T) {
	var p *int
	AssertNil(t, p)
	AssertNil(t, nil)

	x := 42
	AssertNotNil(t, &x)
	AssertNotNil(t, []int{1})
}

func TestFormatMessage(t *testing.T) {
	tests := []struct {
		name string
		args []interface{}
		want string
	}{
		{"no args", nil, ""},
		{"single string", []interface{}{"hello"}, "hello"},
		{"single int", []interface{}{42}, "42"},
		{"format string", []interface{}{"depth %d", 3}, "depth 3"},
		{"format multiple", []interface{}{"%s %d %s", "ply", 4, "e2e4"}, "ply 4 e2e4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatMessage(tt.args...); got != tt.want {
				t.Errorf("formatMessage(%v) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}
