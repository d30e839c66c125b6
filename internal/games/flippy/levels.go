package flippy

// LevelPreset is a named bundle of difficulty constants.
// Units are world pixels and seconds; y grows upward.
type LevelPreset struct {
	Name          string
	Speed         float64 // Horizontal pipe velocity (negative = leftward), px/s
	SpawnInterval float64 // Seconds between pipe pairs
	Gap           float64 // Vertical gap height, px
	PipeWidth     float64 // px
	Gravity       float64 // Vertical acceleration (negative = downward), px/s²
	FlapVelocity  float64 // Upward velocity set by a flap, px/s
}

// levels is ordered by strictly increasing difficulty.
// Gravity and flap keep the feel of 60 Hz per-frame tuning: ~0.28 s to apex, ~56 px rise.
var levels = [...]LevelPreset{
	{Name: "Level 1", Speed: -140, SpawnInterval: 1.80, Gap: 180, PipeWidth: 60, Gravity: -1368, FlapVelocity: 390},
	{Name: "Level 2", Speed: -170, SpawnInterval: 1.60, Gap: 165, PipeWidth: 60, Gravity: -1440, FlapVelocity: 396},
	{Name: "Level 3", Speed: -200, SpawnInterval: 1.50, Gap: 150, PipeWidth: 58, Gravity: -1512, FlapVelocity: 402},
	{Name: "Level 4", Speed: -230, SpawnInterval: 1.35, Gap: 135, PipeWidth: 56, Gravity: -1584, FlapVelocity: 414},
	{Name: "Level 5", Speed: -260, SpawnInterval: 1.20, Gap: 120, PipeWidth: 54, Gravity: -1656, FlapVelocity: 426},
}

// NumLevels is the number of level presets.
const NumLevels = len(levels)

// Levels returns a copy of the preset table.
func Levels() []LevelPreset {
	out := make([]LevelPreset, NumLevels)
	copy(out, levels[:])
	return out
}

// Preset returns the preset at index i, clamped into range.
func Preset(i int) LevelPreset {
	return levels[ClampLevel(i)]
}

// ClampLevel clamps a level index into [0, NumLevels-1].
func ClampLevel(i int) int {
	if i < 0 {
		return 0
	}
	if i >= NumLevels {
		return NumLevels - 1
	}
	return i
}

// LevelForScore returns the active level after reaching score, given n presets and a
// promotion every perLevel points. The result never drops below current and never
// exceeds n-1.
func LevelForScore(score, current, n, perLevel int) int {
	if n <= 0 {
		return 0
	}
	if perLevel <= 0 || score < 0 {
		return min(current, n-1)
	}
	target := min(n-1, score/perLevel)
	return min(max(current, target), n-1)
}
