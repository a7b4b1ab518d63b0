package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagLogPath string
	flagDebug   bool
	flagSound   bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level (meadow if omitted).

Controls:
  A/Left        - Walk left (hold)
  D/Right       - Walk right (hold)
  W/Up/Space    - Jump
  S/Down        - Stop
  P             - Pause
  R             - Restart the attempt
  Esc/B/Q       - Quit

Difficulty options:
  easy   - Lower gravity, longer banners
  normal - Default physics
  hard   - Higher gravity, faster walking

Examples:
  platformer play
  platformer play steps --difficulty hard
  platformer play meadow --sound --log ./platformer.log
  platformer play --config ./my-platformer.yaml`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	addSessionFlags(playCmd)
}

// addSessionFlags adds flags shared by the local play modes.
func addSessionFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagLogPath, "log", "", "Write a session log to this file")
	cmd.Flags().BoolVar(&flagDebug, "debug", false, "Log debug events (requires --log)")
	cmd.Flags().BoolVar(&flagSound, "sound", false, "Play sound cues")
}

func runPlay(_ *cobra.Command, args []string) {
	levelID := levels.DefaultLevel
	if len(args) > 0 {
		levelID = args[0]
	}

	level, err := registry.Get(levelID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: unknown level %q\n", levelID)
		fmt.Fprintln(os.Stderr, "Run 'platformer levels' to see available levels.")
		os.Exit(1)
	}

	svc, cleanup, err := openServices()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := level.FitsViewport(svc.Config.Viewport.Height); err != nil {
		cleanup()
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	runErr := tui.Run(level, svc, runtimeConfig())
	cleanup()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// openServices prepares config, storage, logging and sound for a local session.
// The returned cleanup closes whatever was opened.
func openServices() (tui.Services, func(), error) {
	cfg, err := loadGameConfig()
	if err != nil {
		return tui.Services{}, nil, err
	}

	logger, closeLog, err := openLogger(flagLogPath, flagDebug)
	if err != nil {
		return tui.Services{}, nil, err
	}

	sound, closeSound := openSound(flagSound, logger)
	store := openStore()

	svc := tui.Services{
		Config: cfg,
		Store:  store,
		Logger: logger,
		Sound:  sound,
	}
	cleanup := func() {
		closeSound()
		if store != nil {
			store.Close()
		}
		closeLog()
	}
	return svc, cleanup, nil
}
