// platformer is a side-scrolling platformer for the terminal.
//
// Usage:
//
//	platformer levels            - List available levels
//	platformer play [level]      - Play a level (default: meadow)
//	platformer menu              - Pick levels interactively
//	platformer serve             - Start SSH server for remote play
//	platformer scores <level>    - Show best runs for a level
//	platformer config            - Print the default configuration
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.platformer/runs.db)
//	--config <path>       - Use a custom config YAML
//	--levels-dir <dir>    - Load extra level files
//	--difficulty <preset> - easy, normal or hard
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/levels"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagLevelsDir  string
	flagDifficulty string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "A side-scrolling platformer in your terminal",
	Long: `Walk and jump across platforms; keep going right until the level is won.
Falling off the bottom of the screen loses the run and starts over.

Available commands:
  levels   - Show all available levels
  play     - Play a level directly
  menu     - Interactive level picker
  serve    - Start SSH server for remote play
  scores   - View best runs
  config   - Print the default configuration

Examples:
  platformer play
  platformer play steps --difficulty easy
  platformer menu --levels-dir ./my-levels
  platformer serve --ssh :2222
  platformer scores meadow`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if flagLevelsDir == "" {
			return nil
		}
		cfg, err := loadGameConfig()
		if err != nil {
			return err
		}
		n, err := levels.RegisterDir(flagLevelsDir, cfg.Viewport.Height)
		if err != nil {
			return fmt.Errorf("loading levels from %s: %w", flagLevelsDir, err)
		}
		if n == 0 {
			fmt.Fprintf(os.Stderr, "Warning: no level files found in %s\n", flagLevelsDir)
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (simulation steps per second)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/runs.db", "Path to run history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels-dir", "", "Directory with extra level files (.yaml, .yml, .toml)")
	rootCmd.PersistentFlags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")

	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(configCmd)
}
