package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpetrov/gosnake/internal/core"
	"github.com/mpetrov/gosnake/internal/game"
	"github.com/mpetrov/gosnake/internal/storage"
)

// Model is the Bubble Tea model driving the snake engine. It owns timing and
// input decoding; the engine owns every rule. The renderer only reads a
// snapshot between ticks, never mid-tick.
type Model struct {
	engine     *game.Engine
	screen     *core.Screen
	store      *storage.Store
	keys       KeyMap
	frame      core.InputFrame
	quitting   bool
	scoreSaved bool // Whether the score has been saved for the current game over
}

// NewModel creates a Bubble Tea model for the given engine.
func NewModel(engine *game.Engine, store *storage.Store, cfg core.RuntimeConfig) Model {
	return Model{
		engine: engine,
		screen: core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:  store,
		keys:   DefaultKeyMap(),
		frame:  core.NewInputFrame(),
	}
}

// Init starts the tick loop at the engine's current cadence.
func (m Model) Init() tea.Cmd {
	return tickCmd(m.engine.TickInterval())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey buffers decoded actions into the current frame. The engine
// ignores whatever does not apply to its phase.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.MapKey(msg)
	if action == core.ActionQuit {
		m.quitting = true
		return m, tea.Quit
	}
	if action != core.ActionNone {
		m.frame.Set(action)
	}
	return m, nil
}

// handleTick runs one engine step and schedules the next tick.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	m.engine.Step(m.frame)
	m.frame.Clear()

	snap := m.engine.Snapshot()
	switch snap.Phase {
	case game.PhaseGameOver:
		// Save once per game over; best-effort.
		if !m.scoreSaved && snap.Score > 0 && m.store != nil {
			//nolint:errcheck // Best-effort save, game continues regardless
			m.store.SaveScore(int(snap.Level), snap.Score)
		}
		m.scoreSaved = true
	case game.PhasePlaying:
		m.scoreSaved = false
	}

	return m, tickCmd(m.engine.TickInterval())
}

// View renders the current engine state to a styled string.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.engine.Render(m.screen)
	return RenderScreen(m.screen)
}

// Run starts the Bubble Tea program for the given engine.
func Run(engine *game.Engine, store *storage.Store, cfg core.RuntimeConfig) error {
	model := NewModel(engine, store, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
