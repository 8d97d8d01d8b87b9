package config

import (
	"testing"
	"time"
)

func TestDifficultyDisabledKeepsBase(t *testing.T) {
	d := NewDifficultyManager(DefaultTetrisConfig().Difficulty)
	got := d.GravityInterval(time.Second, 100*time.Millisecond, Progress{Lines: 500})
	if got != time.Second {
		t.Errorf("GravityInterval = %v, want 1s", got)
	}
}

func TestDifficultyLinesProgression(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "lines", MaxAt: 10},
		Scaling:     ScalingConfig{SpeedMultiplier: 1.0},
	}
	d := NewDifficultyManager(cfg)

	tests := []struct {
		lines int
		want  time.Duration
	}{
		{0, time.Second},
		{10, 500 * time.Millisecond},
		{100, 500 * time.Millisecond},
	}
	for _, tt := range tests {
		got := d.GravityInterval(time.Second, 100*time.Millisecond, Progress{Lines: tt.lines})
		if got != tt.want {
			t.Errorf("lines=%d: GravityInterval = %v, want %v", tt.lines, got, tt.want)
		}
	}
}

func TestDifficultyFloor(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:     true,
		Progression: ProgressionConfig{Type: "score", MaxAt: 1},
		Scaling:     ScalingConfig{SpeedMultiplier: 100},
	}
	d := NewDifficultyManager(cfg)
	got := d.GravityInterval(time.Second, 100*time.Millisecond, Progress{Score: 5})
	if got != 100*time.Millisecond {
		t.Errorf("GravityInterval = %v, want floor 100ms", got)
	}
}

func TestDifficultyLevelInterpolates(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:      true,
		InitialLevel: 0.5,
		Progression:  ProgressionConfig{Type: "time", MaxAt: 100},
	}
	d := NewDifficultyManager(cfg)
	if got := d.Level(Progress{Ticks: 50}); got != 0.75 {
		t.Errorf("Level = %v, want 0.75", got)
	}
	d.SetEnabled(false)
	if got := d.Level(Progress{Ticks: 50}); got != 0.5 {
		t.Errorf("disabled Level = %v, want 0.5", got)
	}
}
