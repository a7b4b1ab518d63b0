package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Validate checks the configuration for values the game cannot run with.
func (c PlatformerConfig) Validate() error {
	var errs []error

	if c.Physics.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("physics.gravity must be positive, got %v", c.Physics.Gravity))
	}
	if c.Physics.JumpImpulse >= 0 {
		errs = append(errs, fmt.Errorf("physics.jump_impulse must be negative (up), got %v", c.Physics.JumpImpulse))
	}
	if c.Physics.MoveSpeed <= 0 || c.Physics.ScrollStep <= 0 {
		errs = append(errs, errors.New("physics.move_speed and physics.scroll_step must be positive"))
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		errs = append(errs, errors.New("player.width and player.height must be positive"))
	}
	if c.Viewport.Width <= 0 || c.Viewport.Height <= 0 {
		errs = append(errs, errors.New("viewport.width and viewport.height must be positive"))
	}
	if c.Viewport.DeadZoneLeft >= c.Viewport.DeadZoneRight {
		errs = append(errs, fmt.Errorf("viewport dead zone is empty: left %v >= right %v",
			c.Viewport.DeadZoneLeft, c.Viewport.DeadZoneRight))
	}
	if c.Player.SpawnY <= 0 || c.Player.SpawnY > c.Viewport.Height {
		errs = append(errs, fmt.Errorf("player.spawn_y %v is outside (0, %v]", c.Player.SpawnY, c.Viewport.Height))
	}
	if c.Rules.BannerDuration <= 0 {
		errs = append(errs, errors.New("rules.banner_duration must be positive"))
	}
	if c.Input.HoldTimeout <= 0 {
		errs = append(errs, errors.New("input.hold_timeout must be positive"))
	}
	for name, color := range map[string]string{
		"background": c.Theme.Background,
		"platform":   c.Theme.Platform,
		"character":  c.Theme.Character,
		"hud":        c.Theme.HUD,
	} {
		if _, ok := core.ParseColor(color); !ok {
			errs = append(errs, fmt.Errorf("theme.%s: unknown color %q", name, color))
		}
	}

	return errors.Join(errs...)
}

// Colors resolves the theme's color names. Unknown names fall back to the
// default color; Validate reports them.
func (t PlatformerTheme) Colors() (background, platform, character, hud core.Color) {
	background, _ = core.ParseColor(t.Background)
	platform, _ = core.ParseColor(t.Platform)
	character, _ = core.ParseColor(t.Character)
	hud, _ = core.ParseColor(t.HUD)
	return background, platform, character, hud
}
