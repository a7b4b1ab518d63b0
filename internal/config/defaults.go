package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/platformer.yaml
var defaultPlatformerYAML []byte

// DefaultPlatformerConfig returns the default platformer configuration.
func DefaultPlatformerConfig() PlatformerConfig {
	return PlatformerConfig{
		Physics: PlatformerPhysics{
			Gravity:     0.5,
			JumpImpulse: -20,
			MoveSpeed:   5,
			ScrollStep:  5,
		},
		Player: PlatformerPlayer{
			SpawnX: 100,
			SpawnY: 600,
			Width:  100,
			Height: 150,
		},
		Viewport: PlatformerViewport{
			Width:         1600,
			Height:        1000,
			DeadZoneLeft:  100,
			DeadZoneRight: 750,
		},
		Rules: PlatformerRules{
			BannerDuration: 2 * time.Second,
			WinText:        "You Win",
			LoseText:       "You lose",
		},
		Input: PlatformerInput{
			HoldTimeout: 700 * time.Millisecond,
		},
		Theme: PlatformerTheme{
			Background: "slate",
			Platform:   "sand",
			Character:  "bright_yellow",
			HUD:        "bright_white",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultPlatformerYAML
}
