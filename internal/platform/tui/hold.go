package tui

import (
	"time"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// HoldTracker synthesizes held direction keys. Terminals report key
// presses and auto-repeats but never releases, so a direction counts as
// held until no repeat arrives within the timeout, the opposite direction
// is pressed, or stop is pressed.
type HoldTracker struct {
	timeout time.Duration
	left    time.Time // Last left press, zero when released
	right   time.Time // Last right press, zero when released
}

// NewHoldTracker creates a tracker with the given repeat timeout.
func NewHoldTracker(timeout time.Duration) *HoldTracker {
	if timeout <= 0 {
		timeout = 700 * time.Millisecond
	}
	return &HoldTracker{timeout: timeout}
}

// Press records a key press at now. Only direction and stop actions
// affect held state.
func (h *HoldTracker) Press(a core.Action, now time.Time) {
	switch a {
	case core.ActionLeft:
		h.left = now
		h.right = time.Time{}
	case core.ActionRight:
		h.right = now
		h.left = time.Time{}
	case core.ActionStop:
		h.Release()
	}
}

// Release drops both directions.
func (h *HoldTracker) Release() {
	h.left = time.Time{}
	h.right = time.Time{}
}

// Keys returns the held state at now.
func (h *HoldTracker) Keys(now time.Time) core.Keys {
	return core.Keys{
		Left:  h.held(h.left, now),
		Right: h.held(h.right, now),
	}
}

func (h *HoldTracker) held(pressed, now time.Time) bool {
	return !pressed.IsZero() && now.Sub(pressed) < h.timeout
}
