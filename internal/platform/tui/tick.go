// Package tui hosts the flippy simulation in the terminal with Bubble Tea.
// It handles the UI loop, input mapping, frame timing and rendering.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a simulation frame.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// frameDelta returns the seconds between two ticks, clamped to [0, maxDelta].
// A zero prev means this is the first frame, which gets the nominal step.
func frameDelta(prev, now time.Time, nominal, maxDelta float64) float64 {
	dt := nominal
	if !prev.IsZero() {
		dt = now.Sub(prev).Seconds()
	}
	if dt < 0 {
		return 0
	}
	if dt > maxDelta {
		return maxDelta
	}
	return dt
}
