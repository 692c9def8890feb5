package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpetrov/gosnake/internal/core"
)

// KeyMap defines the key bindings and their help text. Translating keys to
// semantic actions here keeps the engine free of key knowledge and makes the
// bindings testable.
type KeyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Confirm key.Binding
	Pause   key.Binding
	Restart key.Binding
	Quit    key.Binding
	Level1  key.Binding
	Level2  key.Binding
	Level3  key.Binding
}

// DefaultKeyMap returns the standard bindings: arrows/WASD to steer, enter
// to start, p to pause, r to restart, 1-3 for difficulty, q to quit.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:      key.NewBinding(key.WithKeys("up", "w"), key.WithHelp("↑/w", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "s"), key.WithHelp("↓/s", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "a"), key.WithHelp("←/a", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "d"), key.WithHelp("→/d", "right")),
		Confirm: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
		Pause:   key.NewBinding(key.WithKeys("p", " "), key.WithHelp("p", "pause")),
		Restart: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "restart")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Level1:  key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "level 1")),
		Level2:  key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "level 2")),
		Level3:  key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "level 3")),
	}
}

// MapKey translates a key message to a semantic action.
// Returns ActionNone for unbound keys.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Up):
		return core.ActionUp
	case key.Matches(msg, k.Down):
		return core.ActionDown
	case key.Matches(msg, k.Left):
		return core.ActionLeft
	case key.Matches(msg, k.Right):
		return core.ActionRight
	case key.Matches(msg, k.Confirm):
		return core.ActionConfirm
	case key.Matches(msg, k.Pause):
		return core.ActionPause
	case key.Matches(msg, k.Restart):
		return core.ActionRestart
	case key.Matches(msg, k.Level1):
		return core.ActionLevel1
	case key.Matches(msg, k.Level2):
		return core.ActionLevel2
	case key.Matches(msg, k.Level3):
		return core.ActionLevel3
	}
	return core.ActionNone
}
