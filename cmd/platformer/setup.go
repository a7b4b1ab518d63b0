package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/audio"
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// loadGameConfig loads the config file and applies the difficulty preset.
func loadGameConfig() (config.PlatformerConfig, error) {
	preset, ok := config.ParseDifficulty(flagDifficulty)
	if !ok {
		return config.PlatformerConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal or hard)", flagDifficulty)
	}

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return cfg, err
	}
	if preset != "" {
		config.ApplyPlatformerPreset(&cfg, preset)
	}
	return cfg, nil
}

// runtimeConfig sizes the screen from the terminal.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	return cfg
}

// openStore opens the run history. The game works without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open runs database: %v\n", err)
		return nil
	}
	return store
}

// openLogger returns a file logger when path is set. The terminal belongs
// to the game, so without a path nothing is logged.
func openLogger(path string, debug bool) (*log.Logger, func(), error) {
	if path == "" {
		return nil, func() {}, nil
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open log file: %w", err)
	}

	logger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger, func() { f.Close() }, nil
}

// openSound returns a speaker-backed player when enabled, muted otherwise.
func openSound(enabled bool, logger *log.Logger) (audio.Player, func()) {
	if !enabled {
		return audio.Mute{}, func() {}
	}

	sm := audio.NewSoundManager()
	if err := sm.Initialize(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: sound disabled: %v\n", err)
		if logger != nil {
			logger.Warn("sound disabled", "error", err)
		}
		return audio.Mute{}, func() {}
	}
	return sm, sm.Cleanup
}
