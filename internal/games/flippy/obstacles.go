package flippy

import (
	"github.com/vovakirdan/flippy/internal/config"
	"github.com/vovakirdan/flippy/internal/core"
)

// Field is the playfield in world units. The floor is y=FloorY, the ceiling y=Height.
type Field struct {
	Width  float64
	Height float64
	FloorY float64
}

// Obstacle is a pipe pair with a score gate in the gap between its segments.
type Obstacle struct {
	X         float64 // Center x
	Width     float64
	Top       float64 // Top segment height, occupying [Height-Top, Height]
	Bottom    float64 // Bottom segment height, occupying [FloorY, FloorY+Bottom]
	GapCenter float64
	Passed    bool // Scored; flips once
}

// TrailingEdge returns the obstacle's right edge.
func (o Obstacle) TrailingEdge() float64 {
	return o.X + o.Width/2
}

// LeadingEdge returns the obstacle's left edge.
func (o Obstacle) LeadingEdge() float64 {
	return o.X - o.Width/2
}

// TopRect returns the collision rectangle of the upper segment.
func (o Obstacle) TopRect(f Field) core.Rect {
	return core.NewRect(o.LeadingEdge(), f.Height-o.Top, o.Width, o.Top)
}

// BottomRect returns the collision rectangle of the lower segment.
func (o Obstacle) BottomRect(f Field) core.Rect {
	return core.NewRect(o.LeadingEdge(), f.FloorY, o.Width, o.Bottom)
}

// PipeManager handles spawning, movement, and removal of pipes.
// Spawning is driven by an accumulator of simulated time, never the wall clock.
type PipeManager struct {
	pipes       []Obstacle
	rng         Rand
	field       Field
	margins     config.ObstacleConfig
	accumulator float64
}

// NewPipeManager creates a pipe manager drawing gap centers from rng.
func NewPipeManager(rng Rand, field Field, margins config.ObstacleConfig) *PipeManager {
	return &PipeManager{
		pipes:   make([]Obstacle, 0, 8),
		rng:     rng,
		field:   field,
		margins: margins,
	}
}

// Reset clears all pipes and the spawn timer.
func (pm *PipeManager) Reset() {
	pm.pipes = pm.pipes[:0]
	pm.accumulator = 0
}

// ResetTimer restarts the spawn interval.
func (pm *PipeManager) ResetTimer() {
	pm.accumulator = 0
}

// Timer returns the seconds accumulated toward the next spawn.
func (pm *PipeManager) Timer() float64 {
	return pm.accumulator
}

// Pipes returns a copy of the active pipes in spawn order.
func (pm *PipeManager) Pipes() []Obstacle {
	out := make([]Obstacle, len(pm.pipes))
	copy(out, pm.pipes)
	return out
}

// Tick accumulates dt and spawns a pipe pair for preset once the interval elapses.
// Returns true if a pair was spawned.
func (pm *PipeManager) Tick(dt float64, preset LevelPreset) bool {
	pm.accumulator += dt
	if pm.accumulator < preset.SpawnInterval {
		return false
	}
	pm.accumulator = 0
	pm.Spawn(preset)
	return true
}

// Spawn appends a pipe pair just beyond the right edge of the field.
// The gap center is uniform in [FloorY+SafeMargin, Height-SafeMargin].
func (pm *PipeManager) Spawn(preset LevelPreset) Obstacle {
	f := pm.field
	lo := f.FloorY + pm.margins.SafeMargin
	hi := f.Height - pm.margins.SafeMargin
	center := lo
	if hi > lo {
		center = lo + pm.rng.Float64()*(hi-lo)
	}

	half := preset.Gap / 2
	o := Obstacle{
		X:         f.Width + preset.PipeWidth,
		Width:     preset.PipeWidth,
		Top:       core.MaxF(pm.margins.MinSegment, f.Height-center-half),
		Bottom:    core.MaxF(pm.margins.MinSegment, center-half-f.FloorY),
		GapCenter: center,
	}
	pm.pipes = append(pm.pipes, o)
	return o
}

// Prune removes pipes that have scrolled past the left edge by the despawn margin.
// Returns the number removed.
func (pm *PipeManager) Prune() int {
	kept := pm.pipes[:0]
	for _, p := range pm.pipes {
		if p.TrailingEdge() > -pm.margins.DespawnMargin {
			kept = append(kept, p)
		}
	}
	removed := len(pm.pipes) - len(kept)
	pm.pipes = kept
	return removed
}
