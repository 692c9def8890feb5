package game

import (
	"github.com/mpetrov/gosnake/internal/core"
)

// Snapshot is the read-only view of the engine handed to the presentation
// layer between ticks. It never exposes the pending bonus reward; that is
// computed only at consumption.
type Snapshot struct {
	Tick   uint64
	Phase  Phase
	Reason GameOverReason
	Level  Level
	Score  int

	Body        []core.Point // head first; nil before the first session
	Length      int
	Food        core.Point
	BonusActive bool
	BonusPos    core.Point
}

// Snapshot captures the current game state. The body is a copy; mutating it
// cannot affect the engine.
func (e *Engine) Snapshot() Snapshot {
	snap := Snapshot{
		Tick:   e.tick,
		Phase:  e.phase,
		Reason: e.reason,
		Level:  e.level,
		Score:  e.score.Total(),
		Food:   e.food,
	}

	if e.snake != nil {
		snap.Body = e.snake.Body()
		snap.Length = e.snake.Len()
	}
	if e.bonus.Active {
		snap.BonusActive = true
		snap.BonusPos = e.bonus.Pos
	}

	return snap
}
