package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippy/internal/config"
	"github.com/vovakirdan/flippy/internal/games/flippy"
)

// Flags shared by the commands that start a game.
var (
	flagConfig  string
	flagLevel   int
	flagPolicy  string
	flagRestart string
	flagSeed    int64
)

// addGameFlags registers the flags of the interactive hosts.
func addGameFlags(cmd *cobra.Command) {
	addSourceFlags(cmd)
	cmd.Flags().IntVar(&flagLevel, "level", 0, "Level to start on (1-5, 0 = menu)")
	cmd.Flags().StringVar(&flagRestart, "restart", "", "After game over: menu, level")
}

// addSourceFlags registers the config, policy and seed flags.
func addSourceFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	cmd.Flags().StringVar(&flagPolicy, "policy", "", "Progression policy: auto, manual")
	cmd.Flags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
}

// loadConfig loads the config and applies command-line overrides.
func loadConfig() (config.FlippyConfig, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	err = cfg.ApplyOverrides(config.Overrides{
		Policy:   flagPolicy,
		Restart:  flagRestart,
		TickRate: flagFPS,
		LogLevel: flagLogLevel,
		LogFile:  flagLogFile,
	})
	return cfg, err
}

// newGame creates the simulation, seeded when a seed was given.
func newGame(cfg config.FlippyConfig) *flippy.Game {
	if flagSeed != 0 {
		return flippy.NewSeeded(cfg, flagSeed)
	}
	return flippy.New(cfg, nil)
}

func checkLevel(level int, allowMenu bool) error {
	low := 1
	if allowMenu {
		low = 0
	}
	if level < low || level > flippy.NumLevels {
		return fmt.Errorf("level must be between %d and %d, got %d", low, flippy.NumLevels, level)
	}
	return nil
}

func fail(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
