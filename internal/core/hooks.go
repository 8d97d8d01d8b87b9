package core

// HighScoreStore persists the best score a game has seen.
// Implementations live in the storage layer; games receive one from the platform.
type HighScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}

// Feedback receives one-shot cues the platform may turn into sound,
// a terminal bell or a screen flash.
type Feedback interface {
	OnLineCleared()
	OnGameOverSound()
}

// NopFeedback ignores every cue.
type NopFeedback struct{}

func (NopFeedback) OnLineCleared()   {}
func (NopFeedback) OnGameOverSound() {}
