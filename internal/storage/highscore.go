package storage

import "github.com/vovakirdan/retro-tetris/internal/core"

// HighScores adapts a Store to the single-game high-score contract.
type HighScores struct {
	store  *Store
	gameID string
}

var _ core.HighScoreStore = (*HighScores)(nil)

// HighScores returns the high-score view of one game variant.
func (s *Store) HighScores(gameID string) *HighScores {
	return &HighScores{store: s, gameID: gameID}
}

// LoadHighScore returns the stored best score, 0 if none.
func (h *HighScores) LoadHighScore() (int, error) {
	return h.store.HighScore(h.gameID)
}

// SaveHighScore replaces the stored best score.
func (h *HighScores) SaveHighScore(score int) error {
	return h.store.SetHighScore(h.gameID, score)
}
