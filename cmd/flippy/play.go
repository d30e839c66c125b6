package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/flippy/internal/core"
	"github.com/vovakirdan/flippy/internal/logging"
	"github.com/vovakirdan/flippy/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the terminal",
	Long: `Start the game in the terminal.

Controls:
  1-5, Up/Down + Enter   - Pick a level
  Space/Up/W             - Flap
  P                      - Pause
  R/Space/Enter          - Restart (after game over)
  M/Esc                  - Back to the level menu
  ?                      - Toggle help
  Q/Ctrl+C               - Quit

Examples:
  flippy play
  flippy play --level 2
  flippy play --policy manual --restart level
  flippy play --config ./my-flippy.yaml`,
	Run: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) {
	if err := checkLevel(flagLevel, true); err != nil {
		fail("%v", err)
	}
	cfg, err := loadConfig()
	if err != nil {
		fail("%v", err)
	}

	// The terminal belongs to the game, so logs go to a file.
	logger, closer, err := logging.New(logging.Options{Level: cfg.Log.Level, File: cfg.Log.File})
	if err != nil {
		fail("%v", err)
	}
	defer closer.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.DefaultConfig()
	rt.ScreenW = width
	rt.ScreenH = height
	rt.TickRate = cfg.Runtime.TickRate
	rt.Seed = flagSeed

	logger.Info("starting terminal host",
		"width", rt.ScreenW,
		"height", rt.ScreenH,
		"tick_rate", rt.TickRate,
		"policy", cfg.Progression.Policy,
	)

	err = tui.Run(newGame(cfg), tui.Options{
		Runtime:    rt,
		Logger:     logger,
		StartLevel: flagLevel,
	})
	if err != nil {
		logger.Error("terminal host failed", "err", err)
		closer.Close()
		fail("running game: %v", err)
	}
}
