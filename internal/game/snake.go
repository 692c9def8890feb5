package game

import (
	"github.com/mpetrov/gosnake/internal/core"
)

// MoveResult is the outcome of a single snake advance.
type MoveResult int

const (
	MoveOK MoveResult = iota
	MoveHitWall
	MoveHitSelf
)

// Snake is the ordered body of the player, head at index 0. Movement applies
// a buffered direction so at most one turn takes effect per tick.
type Snake struct {
	body    []core.Point
	dir     core.Direction
	pending core.Direction
}

// newSnake places a snake of the given length at the grid center, facing
// right, body trailing to the left.
func newSnake(g core.Grid, length int) *Snake {
	c := g.Center()
	body := make([]core.Point, length)
	for i := range body {
		body[i] = core.Point{X: c.X - i, Y: c.Y}
	}
	return &Snake{
		body:    body,
		dir:     core.DirRight,
		pending: core.DirRight,
	}
}

// Steer buffers a direction change for the next advance. A reversal would
// drive the head into the neck, so it is ignored and the previously buffered
// direction stays in effect.
func (s *Snake) Steer(d core.Direction) {
	if d == s.dir.Opposite() {
		return
	}
	s.pending = d
}

// Advance applies the buffered direction and moves the head one cell.
// On MoveOK the new head has been prepended and the caller decides whether
// to trim the tail (normal move) or keep it (growth). On a collision result
// the body is left untouched.
//
// The self check runs against the entire current body, including the cell
// the tail is about to vacate this same tick. That is stricter than a
// trim-tail-first check and is the authoritative rule here.
func (s *Snake) Advance(g core.Grid) (core.Point, MoveResult) {
	s.dir = s.pending
	newHead := s.Head().Add(s.dir.Delta())

	if !g.Contains(newHead) {
		return newHead, MoveHitWall
	}
	if s.Occupies(newHead) {
		return newHead, MoveHitSelf
	}

	s.body = append([]core.Point{newHead}, s.body...)
	return newHead, MoveOK
}

// TrimTail removes the last body segment.
func (s *Snake) TrimTail() {
	if len(s.body) > 1 {
		s.body = s.body[:len(s.body)-1]
	}
}

// Grow appends n segments duplicating the current tail. They unfold as the
// snake moves on subsequent ticks.
func (s *Snake) Grow(n int) {
	if len(s.body) == 0 {
		return
	}
	tail := s.body[len(s.body)-1]
	for i := 0; i < n; i++ {
		s.body = append(s.body, tail)
	}
}

// Head returns the head position.
func (s *Snake) Head() core.Point {
	return s.body[0]
}

// Len returns the body length in segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Direction returns the direction applied on the most recent advance.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Occupies reports whether any body segment sits on the given cell.
func (s *Snake) Occupies(p core.Point) bool {
	for _, seg := range s.body {
		if seg == p {
			return true
		}
	}
	return false
}

// Body returns a copy of the body, head first.
func (s *Snake) Body() []core.Point {
	out := make([]core.Point, len(s.body))
	copy(out, s.body)
	return out
}
