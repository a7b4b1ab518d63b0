package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Platform is a static rectangle the character can stand on.
// Only Pos.X ever changes, and only when the whole world scrolls.
type Platform struct {
	Pos    core.Vec
	Width  float64
	Height float64
}

// NewPlatform creates a platform from a layout rectangle.
func NewPlatform(b core.Box) Platform {
	return Platform{
		Pos:    core.Vec{X: b.X, Y: b.Y},
		Width:  b.W,
		Height: b.H,
	}
}

// Box returns the platform's rectangle.
func (p Platform) Box() core.Box {
	return core.Box{X: p.Pos.X, Y: p.Pos.Y, W: p.Width, H: p.Height}
}

// Draw fills the platform's rectangle.
func (p Platform) Draw(s Surface, color core.Color) {
	s.FillRect(p.Pos.X, p.Pos.Y, p.Width, p.Height, color)
}
