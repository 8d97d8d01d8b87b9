// Package config provides YAML-based game configuration loading,
// environment overrides and difficulty management for the game.
package config

import (
	"errors"
	"fmt"
	"time"
)

// TetrisConfig contains all configuration for the Tetris game.
type TetrisConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Palette    []string         `yaml:"palette"`
	Feedback   FeedbackConfig   `yaml:"feedback"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig defines the playfield size in cells.
type BoardConfig struct {
	Cols int `yaml:"cols"`
	Rows int `yaml:"rows"`
}

// TimingConfig defines the gravity cadence.
type TimingConfig struct {
	GravityMS    int `yaml:"gravity_ms"`     // Interval between gravity steps
	SoftDropMS   int `yaml:"soft_drop_ms"`   // Interval while soft drop is held, 0 = every tick
	MinGravityMS int `yaml:"min_gravity_ms"` // Fastest gravity difficulty may reach
}

// GravityInterval returns the base gravity interval.
func (t TimingConfig) GravityInterval() time.Duration {
	return time.Duration(t.GravityMS) * time.Millisecond
}

// SoftDropInterval returns the soft-drop interval (0 means every tick).
func (t TimingConfig) SoftDropInterval() time.Duration {
	return time.Duration(t.SoftDropMS) * time.Millisecond
}

// MinGravityInterval returns the lower bound for the gravity interval.
func (t TimingConfig) MinGravityInterval() time.Duration {
	return time.Duration(t.MinGravityMS) * time.Millisecond
}

// ScoringConfig defines point awards.
type ScoringConfig struct {
	LineClearBase  int `yaml:"line_clear_base"`  // n rows score n*(n-1)*base
	SoftDropPoints int `yaml:"soft_drop_points"` // Per successful soft-drop step
}

// FeedbackConfig controls the cues emitted on line clears and game over.
type FeedbackConfig struct {
	Bell       bool `yaml:"bell"`        // Ring the terminal bell
	FlashTicks int  `yaml:"flash_ticks"` // How long the HUD banner stays up
}

// Validate reports configuration that would make the board unplayable.
func (c TetrisConfig) Validate(minCols int) error {
	var errs []error
	if c.Board.Cols < minCols {
		errs = append(errs, fmt.Errorf("board.cols must be at least %d, got %d", minCols, c.Board.Cols))
	}
	if c.Board.Rows < 4 {
		errs = append(errs, fmt.Errorf("board.rows must be at least 4, got %d", c.Board.Rows))
	}
	if c.Timing.GravityMS <= 0 {
		errs = append(errs, fmt.Errorf("timing.gravity_ms must be positive, got %d", c.Timing.GravityMS))
	}
	if c.Timing.SoftDropMS < 0 {
		errs = append(errs, fmt.Errorf("timing.soft_drop_ms must not be negative, got %d", c.Timing.SoftDropMS))
	}
	if c.Scoring.LineClearBase < 0 || c.Scoring.SoftDropPoints < 0 {
		errs = append(errs, errors.New("scoring values must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: invalid tetris config: %w", errors.Join(errs...))
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a game.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Gravity speed-up at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. An empty name is DifficultyFixed.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyFixed, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
