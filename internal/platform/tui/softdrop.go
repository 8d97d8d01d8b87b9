package tui

import "time"

// softDropRelease is how long the down key may stay silent before it is
// considered released. Terminal auto-repeat starts after roughly 500ms.
const softDropRelease = 550 * time.Millisecond

// softDropLatch infers key release from auto-repeat. Terminals only report
// presses, so a held down key shows up as a stream of presses and the
// release is the moment that stream stops.
type softDropLatch struct {
	held    bool
	last    time.Time
	timeout time.Duration
}

func newSoftDropLatch(timeout time.Duration) softDropLatch {
	return softDropLatch{timeout: timeout}
}

// Press records a down-key press. Returns true on the first press of a hold.
func (l *softDropLatch) Press(now time.Time) bool {
	started := !l.held
	l.held = true
	l.last = now
	return started
}

// Released reports, once per hold, that no press arrived within the timeout.
func (l *softDropLatch) Released(now time.Time) bool {
	if !l.held || now.Sub(l.last) < l.timeout {
		return false
	}
	l.held = false
	return true
}

// Held reports whether the down key is considered pressed.
func (l *softDropLatch) Held() bool {
	return l.held
}
