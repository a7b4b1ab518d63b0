// Package tui provides the Bubble Tea integration for the platformer.
// It handles the terminal UI loop, input mapping, and session flow.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Loop identifies the
// tick loop that scheduled it, so a tick left over from a finished game is
// not picked up by the next one.
type TickMsg struct {
	Time time.Time
	Loop uint64
}

var loopIDs atomic.Uint64

// nextLoopID returns a fresh tick loop identifier.
func nextLoopID() uint64 {
	return loopIDs.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, loop uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Loop: loop}
	})
}
