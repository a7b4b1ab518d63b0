package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List all available levels",
	Long:  `Shows the built-in levels and any loaded with --levels-dir.`,
	Run:   runLevels,
}

func runLevels(_ *cobra.Command, _ []string) {
	levels := registry.List()

	if len(levels) == 0 {
		fmt.Println("No levels available.")
		return
	}

	fmt.Println("Available levels:")
	fmt.Println()

	maxIDLen := 2 // "ID" header
	maxTitleLen := 5
	for _, l := range levels {
		maxIDLen = max(maxIDLen, len(l.ID))
		maxTitleLen = max(maxTitleLen, len(l.Title))
	}

	fmt.Printf("  %-*s  %-*s  %9s  %8s  %s\n", maxIDLen, "ID", maxTitleLen, "Title", "Platforms", "Distance", "Source")
	fmt.Printf("  %-*s  %-*s  %9s  %8s  %s\n", maxIDLen, "--", maxTitleLen, "-----", "---------", "--------", "------")

	for _, l := range levels {
		fmt.Printf("  %-*s  %-*s  %9d  %8.0f  %s\n", maxIDLen, l.ID, maxTitleLen, l.Title, l.Platforms, l.WinDistance, l.Source)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play <id>' to play a level.")
}
