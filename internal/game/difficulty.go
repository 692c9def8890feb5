package game

import "fmt"

// Level is the difficulty level, selected in the menu and held constant for
// the whole session. It controls both the tick rate and the per-food score
// multiplier.
type Level int

const (
	Level1 Level = iota + 1
	Level2
	Level3
)

// Valid reports whether the level is one of the three playable levels.
func (l Level) Valid() bool {
	return l >= Level1 && l <= Level3
}

// Multiplier returns the per-food score multiplier for the level.
func (l Level) Multiplier() int {
	return int(l)
}

// String returns the level as a display string.
func (l Level) String() string {
	return fmt.Sprintf("%d", int(l))
}
