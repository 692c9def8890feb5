package game

import (
	"testing"
	"time"

	"github.com/mpetrov/gosnake/internal/config"
)

func TestBonusRewardDecay(t *testing.T) {
	cfg := config.Default().Bonus
	spawn := time.Unix(1000, 0)
	b := Bonus{Active: true, SpawnedAt: spawn}

	cases := []struct {
		name    string
		elapsed time.Duration
		want    int
	}{
		{"at spawn", 0, 50},
		{"half window", 2500 * time.Millisecond, 28},
		{"three seconds", 3 * time.Second, 23},
		{"window elapsed", 5 * time.Second, 5},
		{"long after", 30 * time.Second, 5},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := b.Reward(spawn.Add(tc.elapsed), cfg); got != tc.want {
				t.Errorf("Reward after %v: expected %d, got %d", tc.elapsed, tc.want, got)
			}
		})
	}
}

func TestBonusRewardNeverBelowMin(t *testing.T) {
	cfg := config.Default().Bonus
	spawn := time.Unix(1000, 0)
	b := Bonus{Active: true, SpawnedAt: spawn}

	for secs := 0; secs <= 60; secs++ {
		got := b.Reward(spawn.Add(time.Duration(secs)*time.Second), cfg)
		if got < cfg.MinReward || got > cfg.MaxReward {
			t.Fatalf("Reward at %ds out of range: %d", secs, got)
		}
	}
}

func TestBonusZeroValueIsInactive(t *testing.T) {
	var b Bonus
	if b.Active {
		t.Error("Zero-value bonus must be inactive")
	}
}
