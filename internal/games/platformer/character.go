package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Character is the player-controlled body.
type Character struct {
	Pos         core.Vec
	Vel         core.Vec
	Width       float64
	Height      float64
	OnGround    bool
	JumpImpulse float64 // Vertical velocity applied by Jump (negative = up)
}

// NewCharacter creates a character at rest in the air at spawn.
func NewCharacter(spawn core.Vec, width, height, jumpImpulse float64) *Character {
	return &Character{
		Pos:         spawn,
		Width:       width,
		Height:      height,
		JumpImpulse: jumpImpulse,
	}
}

// Box returns the character's rectangle.
func (c *Character) Box() core.Box {
	return core.Box{X: c.Pos.X, Y: c.Pos.Y, W: c.Width, H: c.Height}
}

// Update advances the character by one step: integrate velocity, apply
// gravity while airborne, then land on a supporting platform if any.
//
// A platform supports the character when its top edge lies between the
// current bottom edge and the bottom edge predicted by this step's vertical
// velocity, and the horizontal spans overlap. Several supporting platforms
// resolve to the one whose top is closest to the bottom edge; equal
// distances go to the later platform in the list.
func (c *Character) Update(platforms []Platform, gravity float64) {
	c.Pos = c.Pos.Add(c.Vel)

	if !c.OnGround {
		c.Vel.Y += gravity
	}

	bottom := c.Pos.Y + c.Height
	body := c.Box()

	support := -1
	closest := math.Inf(1)
	for i, p := range platforms {
		top := p.Pos.Y
		if bottom+c.Vel.Y >= top && bottom <= top && body.SpansOverlapX(p.Box()) {
			if d := top - bottom; d <= closest {
				closest = d
				support = i
			}
		}
	}

	if support < 0 {
		c.OnGround = false
		return
	}

	c.Vel.Y = 0
	c.Pos.Y = platforms[support].Pos.Y - c.Height
	c.OnGround = true
}

// Jump launches the character upward. It only has an effect while standing
// on a platform and reports whether the jump happened.
func (c *Character) Jump() bool {
	if !c.OnGround {
		return false
	}
	c.Vel.Y = c.JumpImpulse
	c.OnGround = false
	return true
}

// Draw renders the sprite at the character's rectangle, or a filled
// rectangle while the sprite is not loaded.
func (c *Character) Draw(s Surface, sprite *Sprite, color core.Color) {
	if sprite.Loaded() {
		s.DrawImage(sprite, c.Pos.X, c.Pos.Y, c.Width, c.Height)
		return
	}
	s.FillRect(c.Pos.X, c.Pos.Y, c.Width, c.Height, color)
}
