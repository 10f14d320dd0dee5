// Package tui provides the Bubble Tea integration for the maze game.
// It handles the terminal UI loop, input mapping, and game orchestration.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen identifies the
// tick loop that produced it; a model drops ticks from loops it replaced.
type TickMsg struct {
	At  time.Time
	Gen int
}

// tickCmd returns a Bubble Tea command that sends one tick message after
// the interval for tickRate.
func tickCmd(tickRate, gen int) tea.Cmd {
	if tickRate <= 0 {
		tickRate = 60
	}
	interval := time.Second / time.Duration(tickRate)
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{At: t, Gen: gen}
	})
}
