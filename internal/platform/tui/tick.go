// Package tui runs 2048 in the terminal with Bubble Tea: the game loop,
// key mapping, menus, the scoreboard and the SSH server.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
// ID identifies the tick loop that scheduled it.
type TickMsg struct {
	Time time.Time
	ID   uint64
}

var tickLoops atomic.Uint64

// nextTickID returns a fresh tick loop identifier.
func nextTickID() uint64 {
	return tickLoops.Add(1)
}

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int, id uint64) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, ID: id}
	})
}
