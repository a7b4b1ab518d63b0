package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to play a level, Tab for the
scoreboard. Esc in a level returns to the menu.

Examples:
  platformer menu
  platformer menu --fps 30
  platformer menu --levels-dir ./my-levels`,
	Run: runMenu,
}

func init() {
	addSessionFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	svc, cleanup, err := openServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.RunSession(svc, runtimeConfig())
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", runErr)
		os.Exit(1)
	}
}
