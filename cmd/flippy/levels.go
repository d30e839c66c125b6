package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flippy/internal/games/flippy"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List the level presets",
	Long:  `Shows the difficulty constants of every level.`,
	Run:   runLevels,
}

func runLevels(cmd *cobra.Command, args []string) {
	levels := flippy.Levels()

	fmt.Println("Levels:")
	fmt.Println()

	// Calculate column widths
	maxNameLen := 5 // "Level" header
	for _, l := range levels {
		if len(l.Name) > maxNameLen {
			maxNameLen = len(l.Name)
		}
	}

	// Print header
	fmt.Printf("  #  %-*s  %6s  %6s  %5s  %5s  %8s  %5s\n",
		maxNameLen, "Level", "Speed", "Every", "Gap", "Width", "Gravity", "Flap")
	fmt.Printf("  -  %-*s  %6s  %6s  %5s  %5s  %8s  %5s\n",
		maxNameLen, "-----", "-----", "-----", "---", "-----", "-------", "----")

	// Print presets
	for i, l := range levels {
		fmt.Printf("  %d  %-*s  %6.0f  %5.2fs  %5.0f  %5.0f  %8.0f  %5.0f\n",
			i+1, maxNameLen, l.Name, l.Speed, l.SpawnInterval, l.Gap, l.PipeWidth, l.Gravity, l.FlapVelocity)
	}

	fmt.Println()
	fmt.Println("Run 'flippy play --level <#>' to start on a level.")
}
