package flippy

// Event is a single thing that happened during Advance.
type Event struct {
	Kind     Kind // KindScoreGate when a gate is cleared; the obstacle hit on a crash
	Score    int  // Score after the event
	Level    int  // Active level after the event
	Promoted bool // The gate promoted the level
}

// Report describes one Advance call. Hosts read it instead of observing state changes.
type Report struct {
	Events   []Event
	Scored   int
	Promoted bool
	Level    int // Active level after the step
	GameOver bool
	Hit      Kind
	Spawned  int
	Removed  int
}

// Empty reports whether nothing noteworthy happened.
func (r Report) Empty() bool {
	return len(r.Events) == 0 && r.Spawned == 0 && r.Removed == 0
}

func (r *Report) gate(score, level int, promoted bool) {
	r.Scored++
	r.Promoted = r.Promoted || promoted
	r.Level = level
	r.Events = append(r.Events, Event{Kind: KindScoreGate, Score: score, Level: level, Promoted: promoted})
}

func (r *Report) crash(hit Kind, score, level int) {
	r.GameOver = true
	r.Hit = hit
	r.Events = append(r.Events, Event{Kind: hit, Score: score, Level: level})
}
