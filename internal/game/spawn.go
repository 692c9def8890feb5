package game

import (
	"math/rand"

	"github.com/mpetrov/gosnake/internal/core"
)

// offGrid is the sentinel position for items with nowhere to spawn.
var offGrid = core.Point{X: -1, Y: -1}

// pickFreeCell returns a uniformly random grid cell for which occupied
// reports false. Enumerating the free set and sampling an index guarantees
// termination and a uniform distribution even on a crowded grid, unlike
// rejection sampling.
//
// ok is false when no free cell exists. A session ends by wall or self
// collision long before the snake can fill the grid, so callers treat that
// case as unreachable in normal play.
func pickFreeCell(rng *rand.Rand, g core.Grid, occupied func(core.Point) bool) (p core.Point, ok bool) {
	free := make([]core.Point, 0, g.Cells())
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			c := core.Point{X: x, Y: y}
			if !occupied(c) {
				free = append(free, c)
			}
		}
	}

	if len(free) == 0 {
		return offGrid, false
	}
	return free[rng.Intn(len(free))], true
}
