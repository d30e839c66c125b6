package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flippy/internal/config"
	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
)

func newTestModel(t *testing.T, cfg config.FlippyConfig, startLevel int) Model {
	t.Helper()
	g := flippy.NewSeeded(cfg, 7)
	return NewModel(g, Options{
		Runtime:    core.RuntimeConfig{ScreenW: 80, ScreenH: 30, TickRate: 60},
		StartLevel: startLevel,
	})
}

func send(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T, expected Model", next)
	}
	return model, cmd
}

// ticks sends n ticks spaced step apart, starting after at.
func ticks(t *testing.T, m Model, at time.Time, n int, step time.Duration) (Model, time.Time) {
	t.Helper()
	for i := 0; i < n; i++ {
		at = at.Add(step)
		m, _ = send(t, m, TickMsg(at))
	}
	return m, at
}

func TestModelStartsOnMenu(t *testing.T) {
	m := newTestModel(t, config.Default(), 0)
	if m.game.Phase() != flippy.PhaseMenu {
		t.Fatalf("phase = %v, expected menu", m.game.Phase())
	}
	if m.Init() == nil {
		t.Error("Init should start the tick loop")
	}
	if m.View() == "" {
		t.Error("menu view should not be empty")
	}

	m, _ = ticks(t, m, time.Unix(0, 0), 10, 20*time.Millisecond)
	if s := m.game.Snapshot(); s.Elapsed != 0 {
		t.Errorf("ticks on the menu should not advance the game, elapsed = %v", s.Elapsed)
	}
}

func TestModelSelectsLevel(t *testing.T) {
	m := newTestModel(t, config.Default(), 0)

	m, _ = send(t, m, runeKey('3'))
	if m.game.Phase() != flippy.PhasePlaying || m.game.LevelIndex() != 2 {
		t.Errorf("digit 3 should start level index 2, got phase %v level %d", m.game.Phase(), m.game.LevelIndex())
	}
}

func TestModelMenuCursor(t *testing.T) {
	m := newTestModel(t, config.Default(), 0)

	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = send(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.game.Phase() != flippy.PhasePlaying || m.game.LevelIndex() != 2 {
		t.Errorf("down, down, enter should start level index 2, got %d", m.game.LevelIndex())
	}
}

func TestModelStartLevelOption(t *testing.T) {
	m := newTestModel(t, config.Default(), 5)
	if m.game.Phase() != flippy.PhasePlaying || m.game.LevelIndex() != 4 {
		t.Errorf("StartLevel 5 should start level index 4, got phase %v level %d", m.game.Phase(), m.game.LevelIndex())
	}
}

func TestModelFlapAppliesOnTick(t *testing.T) {
	m := newTestModel(t, config.Default(), 1)
	start := time.Unix(0, 0)
	m, at := ticks(t, m, start, 5, 20*time.Millisecond)

	m, _ = send(t, m, spaceKey)
	if vy := m.game.Snapshot().Bird.VY; vy >= 0 {
		t.Fatalf("flap should wait for the next tick, VY = %v", vy)
	}

	m, _ = ticks(t, m, at, 1, 20*time.Millisecond)
	if vy := m.game.Snapshot().Bird.VY; vy <= 0 {
		t.Errorf("VY after flap tick = %v, expected upward", vy)
	}
	if m.inputFrame.Has(core.ActionFlap) {
		t.Error("queued input should be cleared after the tick")
	}
}

func TestModelFirstTickUsesNominalStep(t *testing.T) {
	m := newTestModel(t, config.Default(), 1)
	m, _ = send(t, m, TickMsg(time.Unix(0, 0)))

	if got := m.game.Snapshot().Elapsed; got != 1.0/60 {
		t.Errorf("elapsed after first tick = %v, expected 1/60", got)
	}
}

func TestModelPause(t *testing.T) {
	m := newTestModel(t, config.Default(), 1)
	at := time.Unix(0, 0)
	m, at = ticks(t, m, at, 3, 20*time.Millisecond)

	m, _ = send(t, m, runeKey('p'))
	if !m.Paused() {
		t.Fatal("p should pause")
	}
	before := m.game.Snapshot().Elapsed
	m, at = ticks(t, m, at, 10, 20*time.Millisecond)
	if after := m.game.Snapshot().Elapsed; after != before {
		t.Errorf("paused ticks advanced the game from %v to %v", before, after)
	}

	m, _ = send(t, m, runeKey('p'))
	m, _ = ticks(t, m, at, 1, 20*time.Millisecond)
	if after := m.game.Snapshot().Elapsed; after <= before {
		t.Error("unpaused tick should advance the game")
	}
}

func crash(t *testing.T, m Model) Model {
	t.Helper()
	m, _ = ticks(t, m, time.Unix(0, 0), 60, 50*time.Millisecond)
	if m.game.Phase() != flippy.PhaseGameOver {
		t.Fatalf("bird should have fallen to the ground, phase = %v", m.game.Phase())
	}
	return m
}

func TestModelRestartToMenu(t *testing.T) {
	m := crash(t, newTestModel(t, config.Default(), 2))

	m, _ = send(t, m, runeKey('r'))
	if m.game.Phase() != flippy.PhaseMenu {
		t.Errorf("restart mode menu should return to the menu, got %v", m.game.Phase())
	}
	if m.table.Cursor() != 1 {
		t.Errorf("menu cursor = %d, expected the last level index 1", m.table.Cursor())
	}
}

func TestModelRestartLevel(t *testing.T) {
	cfg := config.Default()
	cfg.Runtime.Restart = config.RestartLevel
	m := crash(t, newTestModel(t, cfg, 2))

	m, _ = send(t, m, spaceKey)
	if m.game.Phase() != flippy.PhasePlaying || m.game.LevelIndex() != 1 {
		t.Errorf("restart mode level should replay index 1, got phase %v level %d", m.game.Phase(), m.game.LevelIndex())
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(t, config.Default(), 1)

	m, cmd := send(t, m, runeKey('q'))
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should quit the program")
	}
	if m.View() != "" {
		t.Error("view should be empty once quitting")
	}
}

func TestModelResizeAndHelp(t *testing.T) {
	m := newTestModel(t, config.Default(), 1)

	m, _ = send(t, m, tea.WindowSizeMsg{Width: 100, Height: 40})
	if m.screen.Width() != 100 || m.screen.Height() != 40-helpRows {
		t.Errorf("screen = %dx%d, expected 100x%d", m.screen.Width(), m.screen.Height(), 40-helpRows)
	}

	m, _ = send(t, m, runeKey('?'))
	if !m.help.ShowAll {
		t.Error("? should expand the help")
	}
	if m.View() == "" {
		t.Error("game view should not be empty")
	}
}
