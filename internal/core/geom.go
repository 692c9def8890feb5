// Package core provides fundamental types for the snake engine.
// It contains no external dependencies (especially no Bubble Tea) to keep
// game logic pure and testable.
package core

// Point represents a cell position on the play grid.
// Points compare by value; the zero value is the top-left cell.
type Point struct {
	X, Y int
}

// Add returns the point offset by another point.
func (p Point) Add(q Point) Point {
	return Point{X: p.X + q.X, Y: p.Y + q.Y}
}

// Direction represents one of the four movement directions.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

// deltas maps each direction to its unit offset. Y grows downward.
var deltas = [...]Point{
	DirUp:    {X: 0, Y: -1},
	DirDown:  {X: 0, Y: 1},
	DirLeft:  {X: -1, Y: 0},
	DirRight: {X: 1, Y: 0},
}

// Delta returns the unit offset for the direction.
func (d Direction) Delta() Point {
	return deltas[d]
}

// Opposite returns the reverse of the direction.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Grid describes the rectangular play field. Valid cells satisfy
// 0 <= x < W and 0 <= y < H.
type Grid struct {
	W, H int
}

// Contains reports whether the point lies inside the grid bounds.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.W && p.Y >= 0 && p.Y < g.H
}

// Cells returns the total number of cells on the grid.
func (g Grid) Cells() int {
	return g.W * g.H
}

// Center returns the middle cell of the grid.
func (g Grid) Center() Point {
	return Point{X: g.W / 2, Y: g.H / 2}
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Min returns the smaller of two integers.
func Min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
