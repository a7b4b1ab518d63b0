package platformer

import (
	"math"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// Surface is the drawing target the game renders onto.
// Coordinates are world units on the logical surface.
type Surface interface {
	Clear(bg core.Color)
	FillRect(x, y, w, h float64, color core.Color)
	DrawImage(img *Sprite, x, y, w, h float64)
}

// CellSurface projects the logical surface onto a terminal screen buffer,
// scaling each axis independently so the whole viewport fits the terminal.
type CellSurface struct {
	dst    *core.Screen
	scaleX float64
	scaleY float64
}

// NewCellSurface creates a surface drawing a viewW x viewH logical area onto dst.
func NewCellSurface(dst *core.Screen, viewW, viewH float64) *CellSurface {
	return &CellSurface{
		dst:    dst,
		scaleX: float64(dst.Width()) / viewW,
		scaleY: float64(dst.Height()) / viewH,
	}
}

// Project converts a logical rectangle to the cells it covers.
// Any rectangle with positive size covers at least one cell.
func (s *CellSurface) Project(x, y, w, h float64) core.Rect {
	x0 := int(math.Round(x * s.scaleX))
	y0 := int(math.Round(y * s.scaleY))
	x1 := int(math.Round((x + w) * s.scaleX))
	y1 := int(math.Round((y + h) * s.scaleY))
	if x1 <= x0 && w > 0 {
		x1 = x0 + 1
	}
	if y1 <= y0 && h > 0 {
		y1 = y0 + 1
	}
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Clear fills the screen with the background color.
func (s *CellSurface) Clear(bg core.Color) {
	s.dst.ClearWith(bg)
}

// FillRect fills the cells covered by the rectangle with a solid block.
func (s *CellSurface) FillRect(x, y, w, h float64, color core.Color) {
	s.dst.FillRect(s.Project(x, y, w, h), core.Cell{Rune: '█', Fg: color, Bg: color})
}

// DrawImage draws the sprite scaled into the rectangle using nearest-neighbour
// sampling. Transparent sprite cells keep whatever is underneath. Sprites
// that are not loaded draw nothing.
func (s *CellSurface) DrawImage(img *Sprite, x, y, w, h float64) {
	if !img.Loaded() {
		return
	}

	r := s.Project(x, y, w, h)
	for cy := 0; cy < r.H; cy++ {
		sy := cy * img.Height() / r.H
		for cx := 0; cx < r.W; cx++ {
			sx := cx * img.Width() / r.W
			ch := img.At(sx, sy)
			if ch == ' ' {
				continue
			}
			under := s.dst.GetCell(r.X+cx, r.Y+cy)
			s.dst.SetCell(r.X+cx, r.Y+cy, core.Cell{Rune: ch, Fg: img.Color, Bg: under.Bg})
		}
	}
}
