// Package tui hosts the crossing game in a terminal with Bubble Tea. It owns
// the frame scheduler, key mapping, the cell renderer, the scoreboard and the
// SSH server.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger one game frame. It carries the frame timestamp.
type TickMsg time.Time

// tickCmd schedules the next frame at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
