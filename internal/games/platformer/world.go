package platformer

import (
	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// MoveMode is the horizontal outcome of a step. Exactly one applies per step.
type MoveMode int

const (
	MoveIdle      MoveMode = iota // Nothing moves horizontally
	MoveCharacter                 // The character walks inside the dead zone
	MoveScroll                    // The world scrolls under a pinned character
)

// String returns a human-readable name for the mode.
func (m MoveMode) String() string {
	switch m {
	case MoveIdle:
		return "idle"
	case MoveCharacter:
		return "move"
	case MoveScroll:
		return "scroll"
	default:
		return "unknown"
	}
}

// Rules are the per-world constants resolved from config and level.
type Rules struct {
	Gravity       float64
	MoveSpeed     float64
	ScrollStep    float64
	DeadZoneLeft  float64
	DeadZoneRight float64
	SurfaceHeight float64
	WinDistance   float64
}

// World is one session's mutable state. A reset replaces the whole value.
type World struct {
	Character    *Character
	Platforms    []Platform
	ScrollOffset float64
	Keys         core.Keys
	Rules        Rules
}

// NewWorld builds a fresh world from the level layout and config.
// The level's platform table is copied, never aliased.
func NewWorld(level registry.Level, cfg config.PlatformerConfig) *World {
	spawn := core.Vec{X: cfg.Player.SpawnX, Y: cfg.Player.SpawnY}
	if level.Spawn != nil {
		spawn = *level.Spawn
	}

	platforms := make([]Platform, len(level.Platforms))
	for i, b := range level.Platforms {
		platforms[i] = NewPlatform(b)
	}

	return &World{
		Character: NewCharacter(spawn, cfg.Player.Width, cfg.Player.Height, cfg.Physics.JumpImpulse),
		Platforms: platforms,
		Rules: Rules{
			Gravity:       cfg.Physics.Gravity,
			MoveSpeed:     cfg.Physics.MoveSpeed,
			ScrollStep:    cfg.Physics.ScrollStep,
			DeadZoneLeft:  cfg.Viewport.DeadZoneLeft,
			DeadZoneRight: cfg.Viewport.DeadZoneRight,
			SurfaceHeight: cfg.Viewport.Height,
			WinDistance:   level.WinDistance,
		},
	}
}

// Step runs the character update and then decides between walking the
// character and scrolling the world. The velocity chosen here is applied by
// the next step's update.
func (w *World) Step() MoveMode {
	c := w.Character
	c.Update(w.Platforms, w.Rules.Gravity)

	switch {
	case w.Keys.Right && c.Pos.X < w.Rules.DeadZoneRight:
		c.Vel.X = w.Rules.MoveSpeed
		return MoveCharacter
	case w.Keys.Left && c.Pos.X > w.Rules.DeadZoneLeft:
		c.Vel.X = -w.Rules.MoveSpeed
		return MoveCharacter
	}

	c.Vel.X = 0
	if !w.Keys.Right && !w.Keys.Left {
		return MoveIdle
	}
	if w.Keys.Right {
		w.scroll(-w.Rules.ScrollStep)
	}
	if w.Keys.Left {
		w.scroll(w.Rules.ScrollStep)
	}
	return MoveScroll
}

// scroll translates every platform by dx. Moving platforms left advances
// the scroll offset.
func (w *World) scroll(dx float64) {
	for i := range w.Platforms {
		w.Platforms[i].Pos.X += dx
	}
	w.ScrollOffset -= dx
}

// Won reports whether the scroll offset has passed the level's win distance.
func (w *World) Won() bool {
	return w.ScrollOffset > w.Rules.WinDistance
}

// Lost reports whether the character fell below the surface or left it
// through the top.
func (w *World) Lost() bool {
	y := w.Character.Pos.Y
	return y > w.Rules.SurfaceHeight || y <= 0
}

// Progress returns the scroll offset as a fraction of the win distance,
// clamped to [0, 1].
func (w *World) Progress() float64 {
	if w.Rules.WinDistance <= 0 {
		return 0
	}
	return core.ClampF(w.ScrollOffset/w.Rules.WinDistance, 0, 1)
}

// Render draws the platforms and the character.
func (w *World) Render(s Surface, theme Theme) {
	for _, p := range w.Platforms {
		p.Draw(s, theme.Platform)
	}
	w.Character.Draw(s, theme.Sprite, theme.Character)
}
