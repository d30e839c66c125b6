package main

import (
	"strings"
	"testing"

	"github.com/vovakirdan/flippy/internal/config"
	"github.com/vovakirdan/flippy/internal/games/flippy"
	"github.com/vovakirdan/flippy/internal/logging"
)

func TestSimulateFreeFall(t *testing.T) {
	game := flippy.NewSeeded(config.Default(), 1)
	r := simulate(game, 0, 60, 1.0/60, false, logging.Discard())

	if r.Phase != flippy.PhaseGameOver {
		t.Fatalf("phase = %v, expected game-over", r.Phase)
	}
	if r.Crash != flippy.KindGround {
		t.Errorf("crash = %v, expected ground", r.Crash)
	}
	if r.Score != 0 {
		t.Errorf("score = %d, expected 0", r.Score)
	}
	if r.Elapsed > 1 {
		t.Errorf("a falling bird should crash within a second, elapsed = %v", r.Elapsed)
	}
}

func TestSimulateAutopilot(t *testing.T) {
	for level := 0; level < flippy.NumLevels; level++ {
		game := flippy.NewSeeded(config.Default(), 42)
		r := simulate(game, level, 10, 1.0/60, true, logging.Discard())

		if r.Phase != flippy.PhasePlaying {
			t.Errorf("level %d: autopilot crashed into %v after %v", level+1, r.Crash, r.Elapsed)
		}
		if r.Steps != 600 {
			t.Errorf("level %d: steps = %d, expected 600", level+1, r.Steps)
		}
		if r.Score == 0 {
			t.Errorf("level %d: autopilot should clear gates in 10s", level+1)
		}
	}
}

func TestSimResultString(t *testing.T) {
	r := simResult{Level: "Level 2", Score: 7, Phase: flippy.PhaseGameOver, Crash: flippy.KindPipeSegment, Elapsed: 12.5, Steps: 750}
	got := r.String()
	expected := `level="Level 2" score=7 phase=game-over crash=pipe elapsed=12.5s steps=750`
	if got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
	if !strings.Contains(got, "crash=pipe") {
		t.Error("summary should name the crash")
	}
}

func TestCheckLevel(t *testing.T) {
	tests := []struct {
		level     int
		allowMenu bool
		ok        bool
	}{
		{0, true, true},
		{0, false, false},
		{1, false, true},
		{5, true, true},
		{6, true, false},
		{-1, true, false},
	}

	for _, tc := range tests {
		err := checkLevel(tc.level, tc.allowMenu)
		if (err == nil) != tc.ok {
			t.Errorf("checkLevel(%d, %v) error = %v, expected ok=%v", tc.level, tc.allowMenu, err, tc.ok)
		}
	}
}
