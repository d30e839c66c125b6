package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippy/internal/logging"
	"github.com/vovakirdan/flippy/internal/platform/window"
)

var flagScale float64

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Start the game in a desktop window.

Controls:
  1-5 or click a button  - Pick a level
  Space/Up/W or click    - Flap
  P                      - Pause
  Space/R/Enter or click - Restart (after game over)
  M/Esc                  - Back to the level menu
  Q                      - Quit

Examples:
  flippy window
  flippy window --level 4 --scale 1.5`,
	Run: runWindow,
}

func init() {
	addGameFlags(windowCmd)
	windowCmd.Flags().Float64Var(&flagScale, "scale", 1, "Window size relative to the field")
}

func runWindow(cmd *cobra.Command, args []string) {
	if err := checkLevel(flagLevel, true); err != nil {
		fail("%v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	logger, closer, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	game := newGame(cfg)
	if flagLevel > 0 {
		game.SelectLevel(flagLevel - 1)
		logger.Info("level selected", "preset", game.Level().Name, "policy", cfg.Progression.Policy)
	}

	if err := window.Run(game, window.Options{Scale: flagScale, Logger: logger}); err != nil {
		logger.Error("window host failed", "err", err)
		closer.Close()
		fail("running game: %v", err)
	}
}
