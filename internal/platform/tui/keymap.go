package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/games/flippy"
)

// KeyMap defines the key bindings for every phase.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Select  key.Binding
	Level   key.Binding
	Flap    key.Binding
	Pause   key.Binding
	Restart key.Binding
	Menu    key.Binding
	Help    key.Binding
	Quit    key.Binding

	phase flippy.Phase
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Level: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5"),
			key.WithHelp("1-5", "pick level"),
		),
		Flap: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space", "flap"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r", " ", "enter"),
			key.WithHelp("r", "restart"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m", "esc"),
			key.WithHelp("m", "menu"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ForPhase returns a copy whose help lists only the bindings active in phase.
func (k KeyMap) ForPhase(p flippy.Phase) KeyMap {
	k.phase = p
	return k
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	switch k.phase {
	case flippy.PhasePlaying:
		return []key.Binding{k.Flap, k.Pause, k.Menu, k.Quit}
	case flippy.PhaseGameOver:
		return []key.Binding{k.Restart, k.Menu, k.Quit}
	default:
		return []key.Binding{k.Select, k.Level, k.Quit}
	}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Level},
		{k.Flap, k.Pause, k.Restart, k.Menu},
		{k.Help, k.Quit},
	}
}

// MapKeyToFrame translates a key message into actions for the given phase.
// Returns true if the key was a quit request.
func (k KeyMap) MapKeyToFrame(msg tea.KeyMsg, phase flippy.Phase, frame *core.InputFrame) bool {
	switch {
	case key.Matches(msg, k.Quit):
		frame.Set(core.ActionQuit)
		return true
	case key.Matches(msg, k.Help):
		frame.Set(core.ActionHelp)
		return false
	}

	switch phase {
	case flippy.PhaseMenu:
		switch {
		case key.Matches(msg, k.Level):
			frame.SelectLevel(int(msg.String()[0] - '0'))
		case key.Matches(msg, k.Select):
			frame.Set(core.ActionConfirm)
		case key.Matches(msg, k.Up):
			frame.Set(core.ActionUp)
		case key.Matches(msg, k.Down):
			frame.Set(core.ActionDown)
		}

	case flippy.PhasePlaying:
		switch {
		case key.Matches(msg, k.Flap):
			frame.Set(core.ActionFlap)
		case key.Matches(msg, k.Pause):
			frame.Set(core.ActionPause)
		case key.Matches(msg, k.Menu):
			frame.Set(core.ActionMenu)
		}

	case flippy.PhaseGameOver:
		switch {
		case key.Matches(msg, k.Restart):
			frame.Set(core.ActionRestart)
		case key.Matches(msg, k.Menu):
			frame.Set(core.ActionMenu)
		}
	}
	return false
}
