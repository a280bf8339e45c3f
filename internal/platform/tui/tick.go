// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and tick scheduling.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends tick messages at the specified rate.
func tickCmd(tickRate int) tea.Cmd {
	return tea.Tick(tickInterval(tickRate), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// tickInterval is the fixed period between ticks.
func tickInterval(tickRate int) time.Duration {
	if tickRate <= 0 {
		tickRate = 15
	}
	return time.Second / time.Duration(tickRate)
}
