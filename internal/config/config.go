// Package config provides YAML-based game configuration loading and
// difficulty presets for the platformer.
package config

import "time"

// PlatformerConfig contains all tuning for the platformer.
// Coordinates and sizes are in world units on the logical surface; speeds
// and accelerations are per simulation step.
type PlatformerConfig struct {
	Physics  PlatformerPhysics  `yaml:"physics"`
	Player   PlatformerPlayer   `yaml:"player"`
	Viewport PlatformerViewport `yaml:"viewport"`
	Rules    PlatformerRules    `yaml:"rules"`
	Input    PlatformerInput    `yaml:"input"`
	Theme    PlatformerTheme    `yaml:"theme"`
}

// PlatformerPhysics defines the character physics.
type PlatformerPhysics struct {
	Gravity     float64 `yaml:"gravity"`      // Downward acceleration per step while airborne
	JumpImpulse float64 `yaml:"jump_impulse"` // Vertical velocity set by a jump (negative = up)
	MoveSpeed   float64 `yaml:"move_speed"`   // Horizontal speed inside the dead zone
	ScrollStep  float64 `yaml:"scroll_step"`  // World translation per step outside the dead zone
}

// PlatformerPlayer defines the character's spawn point and size.
type PlatformerPlayer struct {
	SpawnX float64 `yaml:"spawn_x"`
	SpawnY float64 `yaml:"spawn_y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PlatformerViewport defines the logical drawing surface and the dead zone.
type PlatformerViewport struct {
	Width         float64 `yaml:"width"`
	Height        float64 `yaml:"height"`          // Falling below this loses the attempt
	DeadZoneLeft  float64 `yaml:"dead_zone_left"`  // Left soft boundary for character movement
	DeadZoneRight float64 `yaml:"dead_zone_right"` // Right soft boundary for character movement
}

// PlatformerRules defines win/lose presentation.
type PlatformerRules struct {
	BannerDuration time.Duration `yaml:"banner_duration"`
	WinText        string        `yaml:"win_text"`
	LoseText       string        `yaml:"lose_text"`
}

// PlatformerInput defines how held keys are synthesised from key repeats.
type PlatformerInput struct {
	HoldTimeout time.Duration `yaml:"hold_timeout"` // Direction is released when no repeat arrives in time
}

// PlatformerTheme names the colors used for drawing.
type PlatformerTheme struct {
	Background string `yaml:"background"`
	Platform   string `yaml:"platform"`
	Character  string `yaml:"character"`
	HUD        string `yaml:"hud"`
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty converts a CLI value to a preset. Empty input yields "".
func ParseDifficulty(s string) (DifficultyPreset, bool) {
	switch DifficultyPreset(s) {
	case "":
		return "", true
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(s), true
	default:
		return "", false
	}
}

// GravityScaleForPreset returns the gravity multiplier for a difficulty preset.
func GravityScaleForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.8
	case DifficultyHard:
		return 1.25
	default:
		return 1.0
	}
}
