package game

import "testing"

func TestLevelValid(t *testing.T) {
	for l := Level1; l <= Level3; l++ {
		if !l.Valid() {
			t.Errorf("Level %d should be valid", l)
		}
	}
	for _, l := range []Level{0, 4, -1} {
		if l.Valid() {
			t.Errorf("Level %d should be invalid", l)
		}
	}
}

func TestLevelMultiplier(t *testing.T) {
	if Level1.Multiplier() != 1 || Level2.Multiplier() != 2 || Level3.Multiplier() != 3 {
		t.Error("Multiplier must equal the level number")
	}
}

func TestScoreKeeper(t *testing.T) {
	var s ScoreKeeper

	if d := s.AddFood(10, Level3); d != 30 {
		t.Errorf("Expected food delta 30, got %d", d)
	}
	if d := s.AddBonus(23); d != 23 {
		t.Errorf("Expected bonus delta 23, got %d", d)
	}
	if s.Total() != 53 {
		t.Errorf("Expected total 53, got %d", s.Total())
	}

	s.Reset()
	if s.Total() != 0 {
		t.Errorf("Expected 0 after reset, got %d", s.Total())
	}
}
