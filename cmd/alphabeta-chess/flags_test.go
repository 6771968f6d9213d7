package main

import (
	"testing"

	"github.com/lgbarn/alphabeta-chess/internal/config"
	"github.com/lgbarn/alphabeta-chess/internal/testutil"
)

// saveRestoreBool sets a bool flag and returns a func restoring it.
// Usage: defer saveRestoreBool(parallel, true)()
func saveRestoreBool(ptr *bool, val bool) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreInt(ptr *int, val int) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func saveRestoreString(ptr *string, val string) func() {
	old := *ptr
	*ptr = val
	return func() { *ptr = old }
}

func TestApplyGameFlags(t *testing.T) {
	defer saveRestoreString(fenString, testutil.KiwipeteFEN)()
	defer saveRestoreBool(blackBottom, true)()
	defer saveRestoreString(side, "white")()

	cfg := config.NewConfig()
	applyGameFlags(cfg)

	testutil.AssertEqual(t, cfg.Game.FEN, testutil.KiwipeteFEN)
	testutil.AssertFalse(t, cfg.Game.WhiteAtBottom, "WhiteAtBottom with -black-bottom")
	testutil.AssertEqual(t, cfg.Game.Automated, "white")
}

func TestApplySearchFlags(t *testing.T) {
	defer saveRestoreInt(depth, 4)()
	defer saveRestoreBool(parallel, true)()
	defer saveRestoreInt(workers, 3)()
	defer saveRestoreString(evaluator, "material")()
	defer saveRestoreString(heuristic, "none")()

	cfg := config.NewConfig()
	applySearchFlags(cfg)

	want := config.SearchConfig{Depth: 4, Parallel: true, Workers: 3, Evaluator: "material", Heuristic: "none"}
	testutil.AssertEqual(t, *cfg.Search, want)
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyOutputFlags(t *testing.T) {
	tests := []struct {
		name           string
		noColour       bool
		noBoard        bool
		quiet          bool
		candidates     bool
		wantColour     bool
		wantBoard      bool
		wantCandidates bool
	}{
		{"defaults", false, false, false, false, true, true, false},
		{"no colour", true, false, false, false, false, true, false},
		{"no board", false, true, false, false, true, false, false},
		{"quiet hides board", false, false, true, false, true, false, false},
		{"candidates", false, false, false, true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(noColour, tt.noColour)()
			defer saveRestoreBool(noBoard, tt.noBoard)()
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(candidates, tt.candidates)()

			cfg := config.NewConfig()
			applyOutputFlags(cfg)

			testutil.AssertEqual(t, cfg.Output.Colour, tt.wantColour, "Colour")
			testutil.AssertEqual(t, cfg.Output.ShowBoard, tt.wantBoard, "ShowBoard")
			testutil.AssertEqual(t, cfg.Output.ShowCandidates, tt.wantCandidates, "ShowCandidates")
		})
	}
}

func TestApplyFlagsVerbosity(t *testing.T) {
	tests := []struct {
		name    string
		quiet   bool
		verbose bool
		want    int
	}{
		{"default", false, false, config.Normal},
		{"verbose", false, true, config.Commentary},
		{"quiet", true, false, config.Quiet},
		{"quiet wins", true, true, config.Quiet},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer saveRestoreBool(quiet, tt.quiet)()
			defer saveRestoreBool(verbose, tt.verbose)()

			cfg := config.NewConfig()
			applyFlags(cfg)
			testutil.AssertEqual(t, cfg.Verbosity, tt.want)
		})
	}
}
