package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/flippy/internal/config"
	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
)

var testField = flippy.Field{Width: 400, Height: 700, FloorY: 80}

func TestViewportProjection(t *testing.T) {
	vp := newViewport(testField, 40, 22, 1, 0)

	if vp.rows != 19 || vp.cols != 21 {
		t.Fatalf("viewport = %dx%d, expected 21x19", vp.cols, vp.rows)
	}
	if vp.x0 != 9 || vp.y0 != 2 {
		t.Errorf("origin = (%d, %d), expected (9, 2)", vp.x0, vp.y0)
	}

	tests := []struct {
		name     string
		y        float64
		expected int
	}{
		{"ceiling", 700, 2},
		{"mid field", 350, 2 + 9},
		{"bottom edge", 0, 2 + 18},
		{"below the field clamps", -50, 2 + 18},
	}
	for _, tc := range tests {
		if got := vp.row(tc.y); got != tc.expected {
			t.Errorf("%s: row(%v) = %d, expected %d", tc.name, tc.y, got, tc.expected)
		}
	}

	if vp.col(0) != 9 || vp.col(200) != 9+10 {
		t.Errorf("col(0) = %d, col(200) = %d", vp.col(0), vp.col(200))
	}
	if vp.inside(vp.col(400), 5) {
		t.Error("the right edge of the field should be outside the viewport")
	}
}

func TestViewportNarrowScreen(t *testing.T) {
	vp := newViewport(testField, 12, 40, 1, 0)
	if vp.cols != 10 {
		t.Errorf("cols = %d, expected the screen width minus the frame", vp.cols)
	}
}

func TestDrawGame(t *testing.T) {
	g := flippy.NewSeeded(config.Default(), 1)
	g.SelectLevel(0)
	g.Advance(0.016)

	screen := core.NewScreen(60, 30)
	DrawGame(screen, g.Snapshot(), false)
	out := screen.String()

	if !strings.Contains(out, "Score: 0") || !strings.Contains(out, "Level 1") {
		t.Errorf("HUD missing:\n%s", out)
	}
	if !strings.ContainsRune(out, BirdChar) {
		t.Errorf("bird missing:\n%s", out)
	}
	if !strings.ContainsRune(out, GroundEdgeChar) {
		t.Errorf("ground missing:\n%s", out)
	}
}

func TestDrawGamePipesAndOverlays(t *testing.T) {
	s := flippy.Snapshot{
		Phase:     flippy.PhasePlaying,
		Field:     testField,
		LevelName: "Level 2",
		Bird:      flippy.Bird{X: 140, Y: 420, VY: 100, Radius: 14},
		Obstacles: []flippy.Obstacle{{X: 300, Width: 60, Top: 220, Bottom: 220, GapCenter: 390}},
		Elapsed:   1,
	}

	screen := core.NewScreen(60, 30)
	DrawGame(screen, s, false)
	out := screen.String()
	for _, r := range []rune{PipeChar, PipeCapTop, PipeCapBottom, BirdRiseChar} {
		if !strings.ContainsRune(out, r) {
			t.Errorf("expected %q in:\n%s", r, out)
		}
	}

	DrawGame(screen, s, true)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay missing")
	}

	s.Phase = flippy.PhaseGameOver
	s.GameOver = true
	s.Crash = flippy.KindGround
	DrawGame(screen, s, false)
	if out := screen.String(); !strings.Contains(out, "GAME OVER") || !strings.Contains(out, "hit the ground") {
		t.Errorf("game over overlay missing:\n%s", out)
	}
}

func TestRenderScreen(t *testing.T) {
	screen := core.NewScreen(6, 2)
	screen.DrawText(0, 0, "ab", core.ColorBird)
	screen.DrawText(2, 0, "cd", core.ColorPipe)
	screen.DrawText(0, 1, "xyz", core.Color(200))

	out := RenderScreen(screen)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d", len(lines))
	}
	for _, want := range []string{"ab", "cd", "xyz"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}

func TestFrameDelta(t *testing.T) {
	base := time.Unix(1000, 0)

	tests := []struct {
		name      string
		prev, now time.Time
		expected  float64
	}{
		{"first frame", time.Time{}, base, 1.0 / 50},
		{"regular frame", base, base.Add(20 * time.Millisecond), 0.02},
		{"hitch clamps", base, base.Add(2 * time.Second), 0.05},
		{"clock going back", base, base.Add(-time.Second), 0},
	}
	for _, tc := range tests {
		if got := frameDelta(tc.prev, tc.now, 1.0/50, 0.05); got != tc.expected {
			t.Errorf("%s: frameDelta = %v, expected %v", tc.name, got, tc.expected)
		}
	}
}
