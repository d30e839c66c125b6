package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flippy/internal/config"
	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
	"github.com/vovakirdan/flippy/internal/logging"
)

// helpRows is the space kept below the field for the help line.
const helpRows = 1

// Options configures the terminal host.
type Options struct {
	Runtime    core.RuntimeConfig // Initial screen size and tick rate
	Logger     *log.Logger
	StartLevel int // 1-based level to start on; 0 shows the menu
}

// Model is the Bubble Tea model hosting one game.
type Model struct {
	game       *flippy.Game
	cfg        config.FlippyConfig
	logger     *log.Logger
	screen     *core.Screen
	table      table.Model
	help       help.Model
	keys       KeyMap
	inputFrame core.InputFrame
	tickRate   int
	nominalDt  float64 // Step used for the first tick
	lastTick   time.Time
	width      int
	height     int
	paused     bool
	quitting   bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game *flippy.Game, opts Options) Model {
	cfg := game.Config()
	rt := opts.Runtime
	if rt.TickRate <= 0 {
		rt.TickRate = cfg.Runtime.TickRate
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	if opts.StartLevel > 0 {
		game.SelectLevel(opts.StartLevel - 1)
	}

	return Model{
		game:       game,
		cfg:        cfg,
		logger:     logger,
		screen:     core.NewScreen(rt.ScreenW, rt.ScreenH-helpRows),
		table:      newLevelTable(game.LevelIndex()),
		help:       help.New(),
		keys:       DefaultKeyMap(),
		inputFrame: core.NewInputFrame(),
		tickRate:   rt.TickRate,
		nominalDt:  rt.FrameDelta(),
		width:      rt.ScreenW,
		height:     rt.ScreenH,
	}
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.tickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.screen.Resize(msg.Width, msg.Height-helpRows)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input. Flaps are queued for the next tick; everything
// else applies immediately.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	phase := m.game.Phase()
	var frame core.InputFrame
	if m.keys.MapKeyToFrame(msg, phase, &frame) {
		m.quitting = true
		return m, tea.Quit
	}

	if frame.Has(core.ActionHelp) {
		m.help.ShowAll = !m.help.ShowAll
	}

	switch phase {
	case flippy.PhaseMenu:
		switch {
		case frame.Level > 0:
			m.startLevel(frame.Level - 1)
		case frame.Has(core.ActionConfirm):
			m.startLevel(m.table.Cursor())
		case frame.Has(core.ActionUp), frame.Has(core.ActionDown):
			var cmd tea.Cmd
			m.table, cmd = m.table.Update(msg)
			return m, cmd
		}

	case flippy.PhasePlaying:
		switch {
		case frame.Has(core.ActionPause):
			m.paused = !m.paused
			m.logger.Debug("pause toggled", "paused", m.paused)
		case frame.Has(core.ActionMenu):
			m.toMenu()
		case frame.Has(core.ActionFlap) && !m.paused:
			m.inputFrame.Set(core.ActionFlap)
		}

	case flippy.PhaseGameOver:
		switch {
		case frame.Has(core.ActionRestart):
			m.restart()
		case frame.Has(core.ActionMenu):
			m.toMenu()
		}
	}
	return m, nil
}

// handleTick runs one simulation frame.
func (m Model) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	dt := frameDelta(m.lastTick, now, m.nominalDt, m.cfg.Runtime.MaxDelta)
	m.lastTick = now

	if m.game.Phase() == flippy.PhasePlaying && !m.paused {
		if m.inputFrame.Has(core.ActionFlap) {
			m.game.Flap()
		}
		rep := m.game.Advance(dt)
		logging.LogReport(m.logger, rep, m.game.Snapshot().Elapsed)
	}
	m.inputFrame.Clear()

	return m, tickCmd(m.tickRate)
}

func (m *Model) startLevel(index int) {
	m.game.SelectLevel(index)
	m.paused = false
	m.inputFrame.Clear()
	lvl := m.game.Level()
	m.logger.Info("level selected", "preset", lvl.Name, "policy", m.cfg.Progression.Policy)
}

func (m *Model) restart() {
	if m.cfg.Runtime.Restart == config.RestartLevel {
		m.game.Restart()
		m.logger.Info("level restarted", "preset", m.game.Level().Name)
		return
	}
	m.toMenu()
}

func (m *Model) toMenu() {
	score := m.game.Score()
	m.game.ReturnToMenu()
	m.paused = false
	m.inputFrame.Clear()
	m.table.SetCursor(m.game.LevelIndex())
	m.logger.Debug("returned to menu", "score", score)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.game.Phase() == flippy.PhaseMenu {
		return m.menuView()
	}

	DrawGame(m.screen, m.game.Snapshot(), m.paused)
	helpLine := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241")).
		Render(m.help.View(m.keys.ForPhase(m.game.Phase())))
	return RenderScreen(m.screen) + "\n" + helpLine
}

// Paused reports whether the host is holding the simulation.
func (m Model) Paused() bool {
	return m.paused
}

// Run starts the Bubble Tea program for the given game.
func Run(game *flippy.Game, opts Options) error {
	model := NewModel(game, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
