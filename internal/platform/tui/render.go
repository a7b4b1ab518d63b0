package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// ansiColors maps core.Color to terminal palette entries.
// ColorDefault has no entry and leaves the terminal color unchanged.
var ansiColors = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
	core.ColorSand:          lipgloss.Color("187"),
	core.ColorSlate:         lipgloss.Color("66"),
	core.ColorBlack:         lipgloss.Color("0"),
}

type colorPair struct {
	fg, bg core.Color
}

// styleCache holds one lipgloss style per color pair seen so far.
type styleCache map[colorPair]lipgloss.Style

func (c styleCache) get(fg, bg core.Color) lipgloss.Style {
	p := colorPair{fg, bg}
	if s, ok := c[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if col, ok := ansiColors[fg]; ok {
		s = s.Foreground(col)
	}
	if col, ok := ansiColors[bg]; ok {
		s = s.Background(col)
	}
	c[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	styles := make(styleCache)

	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := s.GetCell(x, y)

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Fg != start.Fg || cell.Bg != start.Bg {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			sb.WriteString(styles.get(start.Fg, start.Bg).Render(run.String()))
		}
	}
	return sb.String()
}
