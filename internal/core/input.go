package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the simulation hosts to work with intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionFlap           // Space, Up, click - give the bird upward velocity
	ActionUp             // Up arrow, K - move the menu cursor up
	ActionDown           // Down arrow, J - move the menu cursor down
	ActionConfirm        // Enter - confirm the highlighted level
	ActionRestart        // R - restart after game over
	ActionMenu           // M, Escape - return to the level menu
	ActionPause          // P - pause/unpause
	ActionHelp           // ? - toggle the help line
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionRestart:
		return "Restart"
	case ActionMenu:
		return "Menu"
	case ActionPause:
		return "Pause"
	case ActionHelp:
		return "Help"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame collects the input of one host frame.
// Actions are flags; Level carries a direct level pick (1-based, 0 when none).
type InputFrame struct {
	Actions map[Action]bool
	Level   int
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// SelectLevel records a direct level pick. Numbers outside 1..9 are ignored.
func (f *InputFrame) SelectLevel(n int) {
	if n < 1 || n > 9 {
		return
	}
	f.Level = n
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Empty reports whether nothing was triggered this frame.
func (f InputFrame) Empty() bool {
	for _, v := range f.Actions {
		if v {
			return false
		}
	}
	return f.Level == 0
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.Level = 0
}

