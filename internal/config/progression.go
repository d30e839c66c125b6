package config

import "strings"

// Policy selects how the active level changes while playing.
type Policy string

const (
	// PolicyAuto promotes the level as the score crosses multiples of points_per_level.
	PolicyAuto Policy = "auto"
	// PolicyManual keeps the level chosen in the menu for the whole run.
	PolicyManual Policy = "manual"
)

// Valid reports whether p is a known policy.
func (p Policy) Valid() bool {
	return p == PolicyAuto || p == PolicyManual
}

// ParsePolicy converts a user-supplied string into a Policy.
func ParsePolicy(s string) (Policy, error) {
	p := Policy(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", invalid("unknown progression policy %q (want auto or manual)", s)
	}
	return p, nil
}

// RestartMode selects what restarting after a game over does.
type RestartMode string

const (
	// RestartMenu returns to the level menu.
	RestartMenu RestartMode = "menu"
	// RestartLevel replays the level the run started on.
	RestartLevel RestartMode = "level"
)

// Valid reports whether m is a known restart mode.
func (m RestartMode) Valid() bool {
	return m == RestartMenu || m == RestartLevel
}

// ParseRestartMode converts a user-supplied string into a RestartMode.
func ParseRestartMode(s string) (RestartMode, error) {
	m := RestartMode(strings.ToLower(strings.TrimSpace(s)))
	if !m.Valid() {
		return "", invalid("unknown restart mode %q (want menu or level)", s)
	}
	return m, nil
}
