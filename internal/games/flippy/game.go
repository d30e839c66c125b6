// Package flippy implements the flippy bird simulation core.
// The bird flaps through gaps between scrolling pipe pairs; the core owns all game
// state and is advanced by a host once per frame. It does no rendering or input.
package flippy

import (
	"math"
	"math/rand"
	"time"

	"github.com/vovakirdan/flippy/internal/config"
)

// Rand is the random source for gap placement. *rand.Rand satisfies it.
type Rand interface {
	Float64() float64
}

// Game is the simulation state machine.
type Game struct {
	cfg   config.FlippyConfig
	field Field
	bird  Bird
	pipes *PipeManager

	level      int // Active preset index
	startLevel int // Index the run was started on
	score      int
	started    bool
	gameOver   bool
	elapsed    float64
	crash      Kind
}

// New creates a game on the level menu. A nil rng uses a time-seeded source.
// cfg is expected to have passed Validate; an unset max_delta takes the default.
func New(cfg config.FlippyConfig, rng Rand) *Game {
	if cfg.Runtime.MaxDelta <= 0 {
		cfg.Runtime.MaxDelta = config.Default().Runtime.MaxDelta
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	field := Field{
		Width:  cfg.Field.Width,
		Height: cfg.Field.Height,
		FloorY: cfg.Field.FloorY,
	}
	g := &Game{
		cfg:   cfg,
		field: field,
		pipes: NewPipeManager(rng, field, cfg.Obstacles),
	}
	g.reset()
	return g
}

// NewSeeded creates a game with a deterministic source.
func NewSeeded(cfg config.FlippyConfig, seed int64) *Game {
	return New(cfg, rand.New(rand.NewSource(seed)))
}

// reset clears the run state and puts the bird at its start pose.
func (g *Game) reset() {
	g.bird = Bird{
		X:      g.cfg.BirdX(),
		Y:      g.cfg.BirdStartY(),
		Radius: g.cfg.Bird.Radius,
	}
	g.pipes.Reset()
	g.score = 0
	g.elapsed = 0
	g.crash = KindNone
	g.gameOver = false
}

// SelectLevel starts a new run on the given level, clamped into range.
func (g *Game) SelectLevel(index int) {
	index = ClampLevel(index)
	g.reset()
	g.level = index
	g.startLevel = index
	g.started = true
}

// Flap sets the bird's vertical velocity to the active level's flap velocity.
// Ignored unless playing.
func (g *Game) Flap() {
	if g.Phase() != PhasePlaying {
		return
	}
	g.bird.VY = levels[g.level].FlapVelocity
}

// Advance steps the simulation by dt seconds. It is a no-op unless playing.
// dt is clamped to [0, runtime.max_delta].
func (g *Game) Advance(dt float64) Report {
	rep := Report{Level: g.level}
	if g.Phase() != PhasePlaying {
		return rep
	}
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	dt = math.Min(dt, g.cfg.Runtime.MaxDelta)

	preset := levels[g.level]
	g.elapsed += dt

	// Semi-implicit Euler: velocity first, then position.
	g.bird.VY += preset.Gravity * dt
	g.bird.Y += g.bird.VY * dt

	if hit := g.checkBounds(); hit != KindNone {
		g.end(hit, &rep)
		return rep
	}

	// Scoring is checked before collision for the same obstacle.
	circle := g.bird.Circle()
	for i := range g.pipes.pipes {
		p := &g.pipes.pipes[i]
		p.X += preset.Speed * dt

		if !p.Passed && p.TrailingEdge() < g.bird.X-g.bird.Radius {
			p.Passed = true
			g.score++
			promoted := g.progress()
			rep.gate(g.score, g.level, promoted)
		}

		if !g.gameOver && (circle.IntersectsRect(p.TopRect(g.field)) || circle.IntersectsRect(p.BottomRect(g.field))) {
			g.end(KindPipeSegment, &rep)
		}
	}

	rep.Removed = g.pipes.Prune()

	if !g.gameOver && g.pipes.Tick(dt, levels[g.level]) {
		rep.Spawned++
	}
	return rep
}

// checkBounds clamps the bird to the field and reports the boundary it crossed.
func (g *Game) checkBounds() Kind {
	r := g.bird.Radius
	if g.bird.Y-r < g.field.FloorY {
		g.bird.Y = g.field.FloorY + r
		return KindGround
	}
	if g.bird.Y+r > g.field.Height {
		g.bird.Y = g.field.Height - r
		return KindCeiling
	}
	return KindNone
}

// progress applies the level-progression policy after a score increment.
func (g *Game) progress() bool {
	if g.cfg.Progression.Policy != config.PolicyAuto {
		return false
	}
	next := LevelForScore(g.score, g.level, NumLevels, g.cfg.Progression.PointsPerLevel)
	if next <= g.level {
		return false
	}
	g.level = next
	g.pipes.ResetTimer()
	return true
}

func (g *Game) end(hit Kind, rep *Report) {
	g.gameOver = true
	g.crash = hit
	rep.crash(hit, g.score, g.level)
}

// ReturnToMenu abandons the run and shows the level menu.
// The starting level stays selected.
func (g *Game) ReturnToMenu() {
	g.reset()
	g.level = g.startLevel
	g.started = false
}

// Restart replays the level the current run was started on.
func (g *Game) Restart() {
	g.SelectLevel(g.startLevel)
}

// Phase returns the derived phase.
func (g *Game) Phase() Phase {
	switch {
	case !g.started:
		return PhaseMenu
	case g.gameOver:
		return PhaseGameOver
	default:
		return PhasePlaying
	}
}

// Level returns the active level preset.
func (g *Game) Level() LevelPreset {
	return levels[g.level]
}

// LevelIndex returns the active level index.
func (g *Game) LevelIndex() int {
	return g.level
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.score
}

// Config returns the configuration the game was created with.
func (g *Game) Config() config.FlippyConfig {
	return g.cfg
}
