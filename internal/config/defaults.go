package config

import (
	_ "embed"
)

//go:embed defaults/tetris.yaml
var defaultTetrisYAML []byte

// DefaultTetrisConfig returns the default Tetris configuration: a 12x24
// board falling one row per second.
func DefaultTetrisConfig() TetrisConfig {
	return TetrisConfig{
		Board: BoardConfig{
			Cols: 12,
			Rows: 24,
		},
		Timing: TimingConfig{
			GravityMS:    1000,
			SoftDropMS:   0,
			MinGravityMS: 100,
		},
		Scoring: ScoringConfig{
			LineClearBase:  100,
			SoftDropPoints: 1,
		},
		Palette: []string{"red", "cyan", "yellow", "orange", "green", "blue"},
		Feedback: FeedbackConfig{
			Bell:       false,
			FlashTicks: 45,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 100,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 9.0,
			},
		},
	}
}
