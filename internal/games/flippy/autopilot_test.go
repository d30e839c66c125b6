package flippy

import (
	"testing"

	"github.com/vovakirdan/flippy/internal/config"
)

func TestAutopilotTarget(t *testing.T) {
	pilot := Autopilot{Margin: 10}
	s := Snapshot{
		Phase: PhasePlaying,
		Field: Field{Width: 400, Height: 700, FloorY: 80},
		Bird:  Bird{X: 140, Y: 300, Radius: 14},
	}

	if got := pilot.Target(s); got != 380 {
		t.Errorf("Target with no obstacles = %v, expected mid-field minus margin 380", got)
	}

	s.Obstacles = []Obstacle{
		{X: 90, Width: 60, GapCenter: 500},  // trailing edge 120, behind the bird
		{X: 300, Width: 60, GapCenter: 250}, // next gap
		{X: 560, Width: 60, GapCenter: 600},
	}
	if got := pilot.Target(s); got != 240 {
		t.Errorf("Target = %v, expected the next gap minus margin 240", got)
	}
}

func TestAutopilotShouldFlap(t *testing.T) {
	pilot := DefaultAutopilot()
	s := Snapshot{
		Phase: PhasePlaying,
		Field: Field{Width: 400, Height: 700, FloorY: 80},
		Bird:  Bird{X: 140, Y: 300, Radius: 14},
	}

	if !pilot.ShouldFlap(s) {
		t.Error("bird below target should flap")
	}
	s.Bird.Y = 500
	if pilot.ShouldFlap(s) {
		t.Error("bird above target should not flap")
	}
	s.Bird.Y = 100
	s.Phase = PhaseGameOver
	if pilot.ShouldFlap(s) {
		t.Error("autopilot should not flap outside play")
	}
}

func TestAutopilotDrivesGame(t *testing.T) {
	g := NewSeeded(config.Default(), 2024)
	g.SelectLevel(0)
	runAutopilot(g, 45)

	s := g.Snapshot()
	if s.GameOver {
		t.Fatalf("autopilot crashed into %v after %.2fs", s.Crash, s.Elapsed)
	}
	if s.Score < 15 {
		t.Errorf("score after 45s = %d, expected at least 15", s.Score)
	}
	if s.Level < 1 {
		t.Errorf("auto policy should have promoted past level 1, got index %d", s.Level)
	}
}
