package flippy

import "github.com/vovakirdan/flippy/internal/core"

// Phase is the derived game phase.
type Phase int

const (
	PhaseMenu     Phase = iota // Not started: level select
	PhasePlaying               // Started and not over
	PhaseGameOver              // Frozen until restart
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	default:
		return "unknown"
	}
}

// Kind tags the entities the bird can touch.
type Kind int

const (
	KindNone Kind = iota
	KindPipeSegment
	KindScoreGate
	KindGround
	KindCeiling
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindPipeSegment:
		return "pipe"
	case KindScoreGate:
		return "gate"
	case KindGround:
		return "ground"
	case KindCeiling:
		return "ceiling"
	default:
		return "unknown"
	}
}

// Bird is the player avatar. X is fixed for a run.
type Bird struct {
	X, Y   float64
	VY     float64
	Radius float64
}

// Circle returns the bird's collision circle.
func (b Bird) Circle() core.Circle {
	return core.Circle{X: b.X, Y: b.Y, R: b.Radius}
}

// Snapshot is a read-only copy of the game state for renderers and bots.
type Snapshot struct {
	Phase      Phase
	Started    bool
	GameOver   bool
	Score      int
	Level      int
	LevelName  string
	StartLevel int
	Bird       Bird
	Obstacles  []Obstacle
	Elapsed    float64 // Simulated seconds since the level was selected
	SpawnTimer float64
	Crash      Kind
	Field      Field
}

// Snapshot returns a copy of the current state. Mutating it does not affect the game.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Phase:      g.Phase(),
		Started:    g.started,
		GameOver:   g.gameOver,
		Score:      g.score,
		Level:      g.level,
		LevelName:  levels[g.level].Name,
		StartLevel: g.startLevel,
		Bird:       g.bird,
		Obstacles:  g.pipes.Pipes(),
		Elapsed:    g.elapsed,
		SpawnTimer: g.pipes.Timer(),
		Crash:      g.crash,
		Field:      g.field,
	}
}
