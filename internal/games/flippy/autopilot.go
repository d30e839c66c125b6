package flippy

// Autopilot is a deterministic bot that flies toward the next gap.
// It aims Margin pixels below the gap center to leave room for the flap's rise.
type Autopilot struct {
	Margin float64
}

// DefaultAutopilot returns a bot tuned for the built-in presets.
func DefaultAutopilot() Autopilot {
	return Autopilot{Margin: 20}
}

// Target returns the height the bot is steering toward: the gap center of the first
// obstacle not yet behind the bird, or mid-field when there is none.
func (a Autopilot) Target(s Snapshot) float64 {
	for _, o := range s.Obstacles {
		if o.TrailingEdge() >= s.Bird.X-s.Bird.Radius {
			return o.GapCenter - a.Margin
		}
	}
	return (s.Field.FloorY+s.Field.Height)/2 - a.Margin
}

// ShouldFlap reports whether the bot would flap in this state.
func (a Autopilot) ShouldFlap(s Snapshot) bool {
	if s.Phase != PhasePlaying {
		return false
	}
	return s.Bird.Y < a.Target(s)
}
