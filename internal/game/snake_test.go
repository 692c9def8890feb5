package game

import (
	"testing"

	"github.com/mpetrov/gosnake/internal/core"
)

func TestNewSnakeStartsAtCenterFacingRight(t *testing.T) {
	g := core.Grid{W: 20, H: 20}
	s := newSnake(g, 3)

	want := []core.Point{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}}
	body := s.Body()
	if len(body) != 3 {
		t.Fatalf("Expected length 3, got %d", len(body))
	}
	for i, p := range want {
		if body[i] != p {
			t.Errorf("Segment %d: expected %v, got %v", i, p, body[i])
		}
	}
	if s.Direction() != core.DirRight {
		t.Errorf("Expected initial direction right, got %v", s.Direction())
	}
}

func TestBodyCellsDistinct(t *testing.T) {
	g := core.Grid{W: 20, H: 20}
	s := newSnake(g, 3)

	for i := 0; i < 5; i++ {
		if _, res := s.Advance(g); res != MoveOK {
			t.Fatalf("Advance %d failed with %v", i, res)
		}
		s.TrimTail()

		seen := make(map[core.Point]bool)
		for _, p := range s.Body() {
			if seen[p] {
				t.Fatalf("Duplicate body cell %v after advance %d", p, i)
			}
			seen[p] = true
		}
	}
}

func TestSteerRejectsReversal(t *testing.T) {
	g := core.Grid{W: 20, H: 20}
	s := newSnake(g, 3)

	// Moving right; left is a reversal and must leave the pending
	// direction untouched.
	s.Steer(core.DirLeft)
	if s.pending != core.DirRight {
		t.Errorf("Reversal should be ignored, pending is %v", s.pending)
	}

	if _, res := s.Advance(g); res != MoveOK {
		t.Fatalf("Advance failed: %v", res)
	}
	if s.Head() != (core.Point{X: 11, Y: 10}) {
		t.Errorf("Head should have moved right, got %v", s.Head())
	}

	// A perpendicular turn is accepted.
	s.Steer(core.DirDown)
	if s.pending != core.DirDown {
		t.Errorf("Expected pending down, got %v", s.pending)
	}
}

func TestAdvanceWallCollision(t *testing.T) {
	g := core.Grid{W: 20, H: 20}

	cases := []struct {
		name string
		head core.Point
		dir  core.Direction
	}{
		{"left wall", core.Point{X: 0, Y: 5}, core.DirLeft},
		{"right wall", core.Point{X: 19, Y: 5}, core.DirRight},
		{"top wall", core.Point{X: 5, Y: 0}, core.DirUp},
		{"bottom wall", core.Point{X: 5, Y: 19}, core.DirDown},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			s := &Snake{
				body:    []core.Point{tc.head, tc.head.Add(tc.dir.Opposite().Delta())},
				dir:     tc.dir,
				pending: tc.dir,
			}
			lenBefore := s.Len()

			_, res := s.Advance(g)
			if res != MoveHitWall {
				t.Errorf("Expected MoveHitWall, got %v", res)
			}
			if s.Len() != lenBefore {
				t.Errorf("Body mutated on wall hit: %d vs %d", s.Len(), lenBefore)
			}
		})
	}
}

func TestAdvanceSelfCollision(t *testing.T) {
	g := core.Grid{W: 20, H: 20}

	// Hook shape: moving right from (5,5) lands on (6,5), an interior
	// segment.
	s := &Snake{
		body: []core.Point{
			{X: 5, Y: 5},
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5},
			{X: 6, Y: 4},
		},
		dir:     core.DirUp,
		pending: core.DirRight,
	}

	_, res := s.Advance(g)
	if res != MoveHitSelf {
		t.Errorf("Expected MoveHitSelf, got %v", res)
	}
	if s.Len() != 5 {
		t.Errorf("Body mutated on self hit: length %d", s.Len())
	}
}

func TestSelfCollisionIncludesVacatingTail(t *testing.T) {
	g := core.Grid{W: 20, H: 20}

	// Closed loop: the head moves onto the exact cell the tail occupies.
	// Under a trim-tail-first rule this would be legal; the authoritative
	// rule here checks the whole body, tail included, so it dies.
	s := &Snake{
		body: []core.Point{
			{X: 5, Y: 5},
			{X: 5, Y: 6},
			{X: 6, Y: 6},
			{X: 6, Y: 5}, // tail, about to be vacated
		},
		dir:     core.DirUp,
		pending: core.DirRight,
	}

	_, res := s.Advance(g)
	if res != MoveHitSelf {
		t.Errorf("Moving onto the vacating tail cell must die, got %v", res)
	}
}

func TestGrowDuplicatesTail(t *testing.T) {
	g := core.Grid{W: 20, H: 20}
	s := newSnake(g, 3)

	tail := s.Body()[2]
	s.Grow(2)

	if s.Len() != 5 {
		t.Fatalf("Expected length 5 after Grow(2), got %d", s.Len())
	}
	body := s.Body()
	if body[3] != tail || body[4] != tail {
		t.Errorf("Grown segments should duplicate the tail %v, got %v %v", tail, body[3], body[4])
	}
}
