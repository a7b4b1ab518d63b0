package platformer

import "github.com/vovakirdan/tui-platformer/internal/core"

// Banner presents the transient win/lose notification.
// The game decides when to hide it.
type Banner interface {
	Show(text string)
	Hide()
}

// ScreenBanner is a Banner drawn as a centred box on the screen buffer.
type ScreenBanner struct {
	text    string
	visible bool
}

// NewScreenBanner creates a hidden banner.
func NewScreenBanner() *ScreenBanner {
	return &ScreenBanner{}
}

// Show displays text until Hide is called.
func (b *ScreenBanner) Show(text string) {
	b.text = text
	b.visible = true
}

// Hide removes the banner.
func (b *ScreenBanner) Hide() {
	b.visible = false
}

// Visible reports whether the banner is shown.
func (b *ScreenBanner) Visible() bool {
	return b.visible
}

// Text returns the most recently shown text.
func (b *ScreenBanner) Text() string {
	return b.text
}

// Draw renders the banner if visible.
func (b *ScreenBanner) Draw(dst *core.Screen) {
	if b.visible {
		drawCenteredMessage(dst, b.text, "")
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	titleLen := len([]rune(title))
	subtitleLen := len([]rune(subtitle))

	boxW := core.Max(titleLen, subtitleLen) + 6
	boxH := 3
	if subtitle != "" {
		boxH = 5
	}
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.FillRect(box, core.Cell{Rune: ' ', Fg: core.ColorBrightWhite, Bg: core.ColorBlack})
	dst.DrawBox(box)

	dst.DrawText(boxX+(boxW-titleLen)/2, boxY+1, title)
	if subtitle != "" {
		dst.DrawText(boxX+(boxW-subtitleLen)/2, boxY+3, subtitle)
	}
}
