// flippy is a flappy-bird game for the terminal and the desktop.
//
// Usage:
//
//	flippy play              - Play in the terminal
//	flippy window            - Play in a desktop window
//	flippy levels            - List the level presets
//	flippy sim               - Run a headless simulation and print a summary
//
// Global flags:
//
//	--fps <rate>          - Override the tick rate from the config
//	--log-level <level>   - debug, info, warn or error
//	--log-file <path>     - Log file (default: $XDG_STATE_HOME/flippy/flippy.log)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS      int
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "flippy",
	Short: "Flippy - flap through the pipes",
	Long: `Flippy is a flappy-bird game with five difficulty levels. It runs in the
terminal or in a desktop window on the same simulation.

Available commands:
  play     - Play in the terminal
  window   - Play in a desktop window
  levels   - Show the level presets
  sim      - Simulate a run without a display

Examples:
  flippy play
  flippy play --level 3 --policy manual
  flippy window --scale 1.5
  flippy sim --level 5 --seconds 120 --autopilot`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (0 = config tick_rate)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Path to the log file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(simCmd)
}
