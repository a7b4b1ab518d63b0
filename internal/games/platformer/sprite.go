package platformer

import (
	_ "embed"
	"errors"
	"strings"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

//go:embed assets/hero.txt
var heroArt string

// Sprite is a small piece of character art drawn by Surface.DrawImage.
// A space in the art is transparent. The zero value (and nil) is an
// unloaded sprite, which callers replace with a filled rectangle.
type Sprite struct {
	rows  [][]rune
	width int
	Color core.Color
}

// ParseSprite builds a sprite from text art, one row per line.
// Rows are padded with transparent cells to the widest row.
func ParseSprite(art string, color core.Color) (*Sprite, error) {
	lines := strings.Split(strings.TrimRight(art, "\n"), "\n")

	s := &Sprite{Color: color}
	for _, line := range lines {
		row := []rune(strings.TrimRight(line, "\r"))
		s.width = core.Max(s.width, len(row))
		s.rows = append(s.rows, row)
	}
	if s.width == 0 {
		return nil, errors.New("sprite: empty art")
	}

	for i, row := range s.rows {
		for len(row) < s.width {
			row = append(row, ' ')
		}
		s.rows[i] = row
	}
	return s, nil
}

// HeroSprite returns the built-in character sprite.
func HeroSprite(color core.Color) *Sprite {
	s, err := ParseSprite(heroArt, color)
	if err != nil {
		return nil
	}
	return s
}

// Loaded reports whether the sprite has art to draw.
func (s *Sprite) Loaded() bool {
	return s != nil && s.width > 0
}

// Width returns the art width in cells.
func (s *Sprite) Width() int {
	return s.width
}

// Height returns the art height in cells.
func (s *Sprite) Height() int {
	return len(s.rows)
}

// At returns the rune at (x, y) of the art, or a space outside it.
func (s *Sprite) At(x, y int) rune {
	if y < 0 || y >= len(s.rows) || x < 0 || x >= s.width {
		return ' '
	}
	return s.rows[y][x]
}
