// Package tui provides the Bubble Tea integration for the snake game.
// It handles the terminal UI loop, input mapping, and tick pacing; all game
// semantics live in the engine.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick.
type TickMsg time.Time

// tickCmd returns a Bubble Tea command that sends a tick message after the
// given interval. The interval is re-read from the engine every tick, so the
// cadence follows the menu refresh rate or the difficulty's tick rate.
func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}
