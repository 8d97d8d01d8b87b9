package tetris

import "github.com/vovakirdan/retro-tetris/internal/core"

// Block is one colored cell of a piece or of the settled stack.
type Block struct {
	Pos   core.Point
	Color core.Color
}

// Piece is the falling tetromino: four cells, a color and the pivot it
// rotates around. Rows grow downward; rows above 0 are off-board but legal
// while a piece is still entering.
type Piece struct {
	shape Shape
	color core.Color
	cells [4]core.Point
	pivot Pivot
}

// NewPiece builds a piece of the given shape anchored at anchor.
// The anchor is the leftmost column and spawn row of the shape table.
func NewPiece(shape Shape, color core.Color, anchor core.Point) *Piece {
	def := shapes[shape]
	p := &Piece{shape: shape, color: color}
	for i, off := range def.offsets {
		p.cells[i] = anchor.Add(off.X, off.Y)
	}
	p.pivot = Pivot{X2: 2*anchor.X + def.pivot.X2, Y2: 2*anchor.Y + def.pivot.Y2}
	return p
}

// Shape returns the piece shape.
func (p *Piece) Shape() Shape { return p.shape }

// Color returns the shared color of all four blocks.
func (p *Piece) Color() core.Color { return p.color }

// Pivot returns the current rotation center.
func (p *Piece) Pivot() Pivot { return p.pivot }

// Cells returns the positions of the four blocks.
func (p *Piece) Cells() [4]core.Point { return p.cells }

// Blocks returns the four blocks with their color.
func (p *Piece) Blocks() []Block {
	out := make([]Block, len(p.cells))
	for i, c := range p.cells {
		out[i] = Block{Pos: c, Color: p.color}
	}
	return out
}

// Translated returns the cells shifted by (dx, dy) without moving the piece.
func (p *Piece) Translated(dx, dy int) [4]core.Point {
	var out [4]core.Point
	for i, c := range p.cells {
		out[i] = c.Add(dx, dy)
	}
	return out
}

// Translate moves every block and the pivot by (dx, dy).
func (p *Piece) Translate(dx, dy int) {
	p.cells = p.Translated(dx, dy)
	p.pivot.X2 += 2 * dx
	p.pivot.Y2 += 2 * dy
}

// Rotated returns the cells after a quarter turn around the pivot,
// without moving the piece. For a unit cell at (c, r) and pivot (px, py):
//
//	c' = r + px - py
//	r' = px + py - c - 1
//
// X2-Y2 is always even, so both terms stay integral.
func (p *Piece) Rotated() [4]core.Point {
	a := (p.pivot.X2 - p.pivot.Y2) / 2
	b := (p.pivot.X2+p.pivot.Y2)/2 - 1
	var out [4]core.Point
	for i, c := range p.cells {
		out[i] = core.Point{X: c.Y + a, Y: b - c.X}
	}
	return out
}

// Rotate turns the piece a quarter around its pivot. The pivot itself is
// unchanged, so four rotations restore the original cells.
func (p *Piece) Rotate() {
	p.cells = p.Rotated()
}

// place overwrites the cells after a validated rotation or shift.
// dx is applied to the pivot as well so later rotations stay centered.
func (p *Piece) place(cells [4]core.Point, dx int) {
	p.cells = cells
	p.pivot.X2 += 2 * dx
}

// Bounds returns the min/max column and row over the four cells.
func Bounds(cells [4]core.Point) (minX, maxX, minY, maxY int) {
	minX, maxX = cells[0].X, cells[0].X
	minY, maxY = cells[0].Y, cells[0].Y
	for _, c := range cells[1:] {
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return minX, maxX, minY, maxY
}
