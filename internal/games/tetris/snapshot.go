package tetris

import (
	"time"

	"github.com/vovakirdan/retro-tetris/internal/core"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StateGameOver    GameStateType = "game_over"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick        uint64
	Variant     string
	Score       int
	HighScore   int
	Lines       int
	Elapsed     time.Duration
	SoftDrop    bool
	ActiveShape Shape
	Active      [4]core.Point
	NextShape   Shape
	Settled     int // occupied grid cells
	State       GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.phase == PhaseGameOver:
		state = StateGameOver
	case g.paused && g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	s := Snapshot{
		Tick:      g.tick,
		Variant:   string(g.variant),
		Score:     g.score,
		HighScore: g.highScore,
		Lines:     g.lines,
		Elapsed:   g.Elapsed(),
		SoftDrop:  g.softDrop,
		State:     state,
	}
	if g.active != nil {
		s.ActiveShape = g.active.Shape()
		s.Active = g.active.Cells()
	}
	if g.next != nil {
		s.NextShape = g.next.Shape()
	}
	if g.grid != nil {
		s.Settled = g.grid.Len()
	}
	return s
}
