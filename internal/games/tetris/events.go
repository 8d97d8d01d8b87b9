package tetris

// Listener is notified after each observable state change so a view can
// refresh without polling. Callbacks run synchronously inside Step.
type Listener interface {
	// OnPieceChanged fires when the active piece moves, rotates or is replaced.
	OnPieceChanged(p *Piece)
	// OnGridChanged fires after blocks settle; cleared lists removed rows.
	OnGridChanged(cleared []int)
	// OnScoreChanged fires whenever the score or high score changes.
	OnScoreChanged(current, high int)
	// OnGameOver fires once when the game ends.
	OnGameOver()
}

// NopListener ignores every notification.
type NopListener struct{}

func (NopListener) OnPieceChanged(*Piece)   {}
func (NopListener) OnGridChanged([]int)     {}
func (NopListener) OnScoreChanged(int, int) {}
func (NopListener) OnGameOver()             {}
