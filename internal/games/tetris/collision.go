package tetris

import "github.com/vovakirdan/retro-tetris/internal/core"

// Transform is a prospective change to the active piece.
type Transform int

const (
	TranslateLeft Transform = iota
	TranslateRight
	TranslateDown
	Rotate
)

// String returns the transform name.
func (t Transform) String() string {
	switch t {
	case TranslateLeft:
		return "left"
	case TranslateRight:
		return "right"
	case TranslateDown:
		return "down"
	case Rotate:
		return "rotate"
	default:
		return "unknown"
	}
}

// Verdict is the outcome of validating a transform. ShiftX is the
// horizontal correction a rotation needs to bring the piece back inside
// the side walls.
type Verdict struct {
	Allowed bool
	ShiftX  int
}

// Collider decides whether a transform keeps the piece inside the board
// and clear of settled blocks. It never mutates the piece or the grid.
type Collider struct {
	grid *Grid
}

// NewCollider creates a collider over grid.
func NewCollider(grid *Grid) *Collider {
	return &Collider{grid: grid}
}

// CanApply validates t against the current grid.
func (c *Collider) CanApply(p *Piece, t Transform) Verdict {
	current := p.Cells()
	var next [4]core.Point

	switch t {
	case TranslateLeft:
		next = p.Translated(-1, 0)
	case TranslateRight:
		next = p.Translated(1, 0)
	case TranslateDown:
		next = p.Translated(0, 1)
	case Rotate:
		return c.canRotate(p)
	default:
		return Verdict{}
	}

	minX, maxX, _, maxY := Bounds(next)
	if minX < 0 || maxX >= c.grid.Cols() || maxY >= c.grid.Rows() {
		return Verdict{}
	}
	if c.grid.Overlaps(next[:], current[:]) {
		return Verdict{}
	}
	return Verdict{Allowed: true}
}

// canRotate refuses rotation while any block touches the top row, then
// clamps the rotated piece back between the side walls.
func (c *Collider) canRotate(p *Piece) Verdict {
	current := p.Cells()
	if _, _, minY, _ := Bounds(current); minY <= 0 {
		return Verdict{}
	}

	next := p.Rotated()
	minX, maxX, _, maxY := Bounds(next)
	shift := 0
	switch {
	case minX < 0:
		shift = -minX
	case maxX >= c.grid.Cols():
		shift = c.grid.Cols() - 1 - maxX
	}
	if maxY >= c.grid.Rows() {
		return Verdict{}
	}
	for i := range next {
		next[i].X += shift
	}
	if c.grid.Overlaps(next[:], current[:]) {
		return Verdict{}
	}
	return Verdict{Allowed: true, ShiftX: shift}
}

// Apply validates t and, when allowed, performs it on p.
func (c *Collider) Apply(p *Piece, t Transform) bool {
	v := c.CanApply(p, t)
	if !v.Allowed {
		return false
	}
	switch t {
	case TranslateLeft:
		p.Translate(-1, 0)
	case TranslateRight:
		p.Translate(1, 0)
	case TranslateDown:
		p.Translate(0, 1)
	case Rotate:
		next := p.Rotated()
		for i := range next {
			next[i].X += v.ShiftX
		}
		p.place(next, v.ShiftX)
	}
	return true
}

// CanMoveDown reports whether p can fall one more row.
func (c *Collider) CanMoveDown(p *Piece) bool {
	return c.CanApply(p, TranslateDown).Allowed
}

// Blocked reports whether a freshly spawned piece has nowhere to go:
// it already overlaps the stack or cannot take a single step down.
func (c *Collider) Blocked(p *Piece) bool {
	cells := p.Cells()
	if c.grid.Overlaps(cells[:], nil) {
		return true
	}
	return !c.CanMoveDown(p)
}
