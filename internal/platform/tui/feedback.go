package tui

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-tetris/internal/core"
)

const bell = "\a"

// BellFeedback turns game cues into a terminal bell.
type BellFeedback struct {
	mu     sync.Mutex
	out    io.Writer
	logger *log.Logger
}

var _ core.Feedback = (*BellFeedback)(nil)

// NewBellFeedback rings the bell on out. A nil logger discards.
func NewBellFeedback(out io.Writer, logger *log.Logger) *BellFeedback {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &BellFeedback{out: out, logger: logger}
}

// OnLineCleared rings once per clear.
func (b *BellFeedback) OnLineCleared() {
	b.ring("line cleared")
}

// OnGameOverSound rings once when the game ends.
func (b *BellFeedback) OnGameOverSound() {
	b.ring("game over")
}

func (b *BellFeedback) ring(cue string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.logger.Debug("feedback", "cue", cue)
	if b.out == nil {
		return
	}
	if _, err := io.WriteString(b.out, bell); err != nil {
		b.logger.Warn("ring bell", "error", err)
	}
}
