package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var flagClear bool

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show best runs for a level",
	Long: `Display the top 10 runs for the specified level: wins first (fastest
first), then the furthest losing runs.

Examples:
  platformer scores meadow
  platformer scores steps --clear`,
	Args: cobra.ExactArgs(1),
	Run:  runScores,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClear, "clear", false, "Delete the level's run history")
}

func runScores(_ *cobra.Command, args []string) {
	levelID := args[0]

	level, err := registry.Get(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'platformer levels' to see available levels.")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening runs database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClear {
		if err := store.ClearRuns(levelID); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Cleared runs for %s.\n", level.Title)
		return
	}

	runs, err := store.TopRuns(levelID, 10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving runs: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Best Runs - %s\n", level.Title)
	fmt.Println()

	if len(runs) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Printf("Play 'platformer play %s' to set the first one!\n", levelID)
		return
	}

	fmt.Printf("  %-4s  %-6s  %-8s  %-7s  %s\n", "Rank", "Result", "Distance", "Time", "Date")
	fmt.Printf("  %-4s  %-6s  %-8s  %-7s  %s\n", "----", "------", "--------", "----", "----")

	for i, r := range runs {
		fmt.Printf("  %-4d  %-6s  %-8.0f  %-7s  %s\n",
			i+1, r.Outcome, r.Distance, tui.FormatTicks(r.Ticks, flagFPS), r.CreatedAt.Format("2006-01-02 15:04"))
	}

	if stats, err := store.GetLevelStats(levelID); err == nil {
		fmt.Println()
		fmt.Printf("Runs: %d  Wins: %d  Best distance: %.0f / %.0f\n",
			stats.Runs, stats.Wins, stats.BestDistance, level.WinDistance)
	}
}
