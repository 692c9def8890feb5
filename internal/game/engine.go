// Package game implements the authoritative rule engine of the snake game:
// movement, collisions, item spawning, scoring, and the session state
// machine. The engine is driven by an external tick loop and exposes a
// read-only snapshot for rendering; it knows nothing about terminals or
// keys.
package game

import (
	"math/rand"
	"time"

	"github.com/mpetrov/gosnake/internal/config"
	"github.com/mpetrov/gosnake/internal/core"
)

// Phase is the top-level session state.
type Phase int

const (
	PhaseMenu Phase = iota
	PhasePlaying
	PhasePaused
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlaying:
		return "playing"
	case PhasePaused:
		return "paused"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// GameOverReason records why a session ended.
type GameOverReason int

const (
	ReasonNone GameOverReason = iota
	ReasonWallCollision
	ReasonSelfCollision
)

// String returns a display string for the reason.
func (r GameOverReason) String() string {
	switch r {
	case ReasonWallCollision:
		return "WALL COLLISION"
	case ReasonSelfCollision:
		return "SELF COLLISION"
	default:
		return ""
	}
}

// StepResult reports what happened during one engine step.
type StepResult struct {
	AteFood     bool
	AteBonus    bool
	FoodPoints  int // score delta from food this step
	BonusReward int // score delta from the bonus this step
	Died        bool
	Reason      GameOverReason
}

// Engine owns all game state and advances it one tick at a time. All
// mutation happens inside Step; callers observe state only through
// Snapshot and Render between ticks. Single-threaded by design.
type Engine struct {
	cfg   config.Config
	grid  core.Grid
	rng   *rand.Rand
	clock func() time.Time

	phase  Phase
	reason GameOverReason
	level  Level

	snake            *Snake
	food             core.Point
	bonus            Bonus
	applesSinceBonus int
	score            ScoreKeeper
	tick             uint64
}

// New creates an engine in the Menu phase at difficulty 1.
// The seed fixes every spawn decision, making sessions reproducible.
func New(cfg config.Config, seed int64) *Engine {
	return &Engine{
		cfg:   cfg,
		grid:  core.Grid{W: cfg.Grid.Width, H: cfg.Grid.Height},
		rng:   rand.New(rand.NewSource(seed)),
		clock: time.Now,
		phase: PhaseMenu,
		level: Level1,
	}
}

// SetClock replaces the wall-clock source used for bonus decay.
// Tests inject a fake clock to simulate elapsed time deterministically.
func (e *Engine) SetClock(now func() time.Time) {
	e.clock = now
}

// Phase returns the current session phase.
func (e *Engine) Phase() Phase {
	return e.phase
}

// Level returns the selected difficulty level.
func (e *Engine) Level() Level {
	return e.level
}

// SelectLevel presets the menu's difficulty selection. It only applies in
// the Menu; the level is fixed once a session starts.
func (e *Engine) SelectLevel(l Level) {
	if e.phase == PhaseMenu && l.Valid() {
		e.level = l
	}
}

// TickInterval returns how long the driver should wait between Step calls:
// the menu refresh rate in the Menu, the difficulty's tick rate otherwise.
func (e *Engine) TickInterval() time.Duration {
	if e.phase == PhaseMenu {
		return time.Second / time.Duration(e.cfg.Speed.MenuRefresh)
	}
	return time.Second / time.Duration(e.cfg.Speed.TicksPerSecond(int(e.level)))
}

// reset starts a fresh session with the currently selected difficulty:
// new snake at the grid center, fresh food, no bonus, score zero.
func (e *Engine) reset() {
	e.snake = newSnake(e.grid, e.cfg.Snake.StartLength)
	e.bonus = Bonus{}
	e.applesSinceBonus = 0
	e.score.Reset()
	e.reason = ReasonNone
	e.food = e.spawnFood()
}

// Step processes one tick worth of commands and, while Playing, advances
// the snake one cell. Commands that do not apply to the current phase are
// silently ignored; that includes direction reversals.
func (e *Engine) Step(input core.InputFrame) StepResult {
	e.tick++

	switch e.phase {
	case PhaseMenu:
		e.stepMenu(input)
		return StepResult{}

	case PhasePaused:
		if input.Has(core.ActionPause) {
			e.phase = PhasePlaying
		}
		return StepResult{}

	case PhaseGameOver:
		if input.Has(core.ActionRestart) {
			e.reset()
			e.phase = PhasePlaying
		}
		return StepResult{}
	}

	// Playing
	if input.Has(core.ActionPause) {
		e.phase = PhasePaused
		return StepResult{}
	}

	switch {
	case input.Has(core.ActionUp):
		e.snake.Steer(core.DirUp)
	case input.Has(core.ActionDown):
		e.snake.Steer(core.DirDown)
	case input.Has(core.ActionLeft):
		e.snake.Steer(core.DirLeft)
	case input.Has(core.ActionRight):
		e.snake.Steer(core.DirRight)
	}

	return e.advance()
}

// stepMenu handles difficulty selection and the start command. Difficulty
// changes keep the engine in the Menu; Confirm resets and starts playing.
func (e *Engine) stepMenu(input core.InputFrame) {
	switch {
	case input.Has(core.ActionLevel1):
		e.level = Level1
	case input.Has(core.ActionLevel2):
		e.level = Level2
	case input.Has(core.ActionLevel3):
		e.level = Level3
	}

	if input.Has(core.ActionConfirm) {
		e.reset()
		e.phase = PhasePlaying
	}
}

// advance moves the snake one cell and resolves collisions, growth,
// spawning, and scoring for this tick.
func (e *Engine) advance() StepResult {
	head, res := e.snake.Advance(e.grid)
	switch res {
	case MoveHitWall:
		e.phase = PhaseGameOver
		e.reason = ReasonWallCollision
		return StepResult{Died: true, Reason: e.reason}
	case MoveHitSelf:
		e.phase = PhaseGameOver
		e.reason = ReasonSelfCollision
		return StepResult{Died: true, Reason: e.reason}
	}

	var out StepResult

	if head == e.food {
		// Tail stays: the body grows by one this tick.
		out.AteFood = true
		out.FoodPoints = e.score.AddFood(e.cfg.Scoring.FoodPoints, e.level)
		e.food = e.spawnFood()

		e.applesSinceBonus++
		if e.applesSinceBonus >= e.cfg.Bonus.AppleThreshold && !e.bonus.Active {
			// The counter resets only when a bonus actually appears; on a
			// full grid it keeps counting.
			if e.spawnBonus() {
				e.applesSinceBonus = 0
			}
		}
	} else {
		e.snake.TrimTail()
	}

	if e.bonus.Active && head == e.bonus.Pos {
		out.AteBonus = true
		out.BonusReward = e.score.AddBonus(e.bonus.Reward(e.clock(), e.cfg.Bonus))
		e.snake.Grow(e.cfg.Bonus.GrowSegments)
		e.bonus = Bonus{}
	}

	return out
}

// spawnFood picks a cell occupied by neither the snake nor an active bonus.
func (e *Engine) spawnFood() core.Point {
	p, ok := pickFreeCell(e.rng, e.grid, func(p core.Point) bool {
		return e.snake.Occupies(p) || (e.bonus.Active && p == e.bonus.Pos)
	})
	if !ok {
		// Full grid: park the food off-grid rather than loop.
		return offGrid
	}
	return p
}

// spawnBonus activates a bonus on a cell occupied by neither the snake nor
// the food, stamping the spawn time for decay scoring. Reports whether a
// bonus was placed.
func (e *Engine) spawnBonus() bool {
	p, ok := pickFreeCell(e.rng, e.grid, func(p core.Point) bool {
		return e.snake.Occupies(p) || p == e.food
	})
	if !ok {
		return false
	}
	e.bonus = Bonus{Pos: p, Active: true, SpawnedAt: e.clock()}
	return true
}
