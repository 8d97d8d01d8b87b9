package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone        Action = iota
	ActionLeft               // Left arrow, A, H - shift piece left
	ActionRight              // Right arrow, D, L - shift piece right
	ActionRotate             // Up arrow, W, K, X - rotate clockwise
	ActionSoftDropOn         // Down arrow, S, J pressed - accelerate descent
	ActionSoftDropOff        // Down released (synthesized by the platform)
	ActionUp                 // Menu navigation
	ActionDown               // Menu navigation
	ActionConfirm            // Enter - confirm selection in menu
	ActionBack               // B, Escape - go back to menu
	ActionRestart            // R, Enter after game over - start a new game
	ActionQuit               // Q, Ctrl+C - exit game/session
	ActionPause              // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "MoveLeft"
	case ActionRight:
		return "MoveRight"
	case ActionRotate:
		return "RotateCW"
	case ActionSoftDropOn:
		return "SoftDropOn"
	case ActionSoftDropOff:
		return "SoftDropOff"
	case ActionUp:
		return "Up"
	case ActionDown:
		return "Down"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame collects the actions triggered during one simulation tick.
// Actions keep their arrival order so a game can replay them exactly as
// the player issued them (left, rotate, left is not the same as left, left, rotate).
type InputFrame struct {
	queue []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set appends an action to this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.queue = append(f.queue, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, q := range f.queue {
		if q == a {
			return true
		}
	}
	return false
}

// Actions returns the actions in arrival order.
func (f InputFrame) Actions() []Action {
	return f.queue
}

// Len returns the number of queued actions.
func (f InputFrame) Len() int {
	return len(f.queue)
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	f.queue = f.queue[:0]
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := InputFrame{queue: make([]Action, len(f.queue))}
	copy(clone.queue, f.queue)
	return clone
}
