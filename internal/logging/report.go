package logging

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/flippy/internal/games/flippy"
)

// LogReport writes the events of one simulation step.
// Gates are logged at debug level; promotions and crashes at info.
func LogReport(logger *log.Logger, rep flippy.Report, elapsed float64) {
	for _, ev := range rep.Events {
		if ev.Kind == flippy.KindScoreGate {
			logger.Debug("gate cleared", "score", ev.Score)
			if ev.Promoted {
				logger.Info("level promoted", "preset", flippy.Preset(ev.Level).Name, "score", ev.Score)
			}
			continue
		}
		logger.Info("game over",
			"hit", ev.Kind,
			"score", ev.Score,
			"preset", flippy.Preset(ev.Level).Name,
			"elapsed", Seconds(elapsed),
		)
	}
}

// Seconds converts simulated seconds to a rounded duration for display.
func Seconds(s float64) time.Duration {
	return time.Duration(s * float64(time.Second)).Round(time.Millisecond)
}
