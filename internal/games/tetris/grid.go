package tetris

import (
	"slices"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/retro-tetris/internal/core"
)

// Grid is the settled-block occupancy map of the board. Cells are keyed
// by row*cols+col; a missing key is an empty cell. Only on-board cells are
// ever stored.
type Grid struct {
	cols, rows int
	bounds     core.Rect
	cells      *intmap.Map[int, core.Color]
}

// NewGrid creates an empty cols x rows board.
func NewGrid(cols, rows int) *Grid {
	return &Grid{
		cols:   cols,
		rows:   rows,
		bounds: core.NewRect(0, 0, cols, rows),
		cells:  intmap.New[int, core.Color](cols * rows),
	}
}

// Cols returns the board width in cells.
func (g *Grid) Cols() int { return g.cols }

// Rows returns the board height in cells.
func (g *Grid) Rows() int { return g.rows }

// Len returns the number of occupied cells.
func (g *Grid) Len() int { return g.cells.Len() }

// InBounds reports whether p lies on the board.
func (g *Grid) InBounds(p core.Point) bool {
	return g.bounds.Contains(p.X, p.Y)
}

func (g *Grid) key(p core.Point) int {
	return p.Y*g.cols + p.X
}

func (g *Grid) point(key int) core.Point {
	return core.Point{X: key % g.cols, Y: key / g.cols}
}

// IsOccupied reports whether a settled block sits at p.
// Off-board positions are never occupied.
func (g *Grid) IsOccupied(p core.Point) bool {
	if !g.InBounds(p) {
		return false
	}
	return g.cells.Has(g.key(p))
}

// At returns the color at p and whether the cell is occupied.
func (g *Grid) At(p core.Point) (core.Color, bool) {
	if !g.InBounds(p) {
		return core.ColorDefault, false
	}
	return g.cells.Get(g.key(p))
}

// Set occupies p with a block of color c. Off-board positions are ignored
// and reported as false.
func (g *Grid) Set(p core.Point, c core.Color) bool {
	if !g.InBounds(p) {
		return false
	}
	g.cells.Put(g.key(p), c)
	return true
}

// Merge transfers the piece's blocks into the grid. It returns false when
// any block lay above the top row and was therefore dropped.
func (g *Grid) Merge(p *Piece) bool {
	ok := true
	for _, c := range p.Cells() {
		if !g.Set(c, p.Color()) {
			ok = false
		}
	}
	return ok
}

// Overlaps reports whether any of cells collides with a settled block,
// ignoring settled blocks at the positions listed in exclude.
func (g *Grid) Overlaps(cells []core.Point, exclude []core.Point) bool {
	for _, c := range cells {
		if g.IsOccupied(c) && !slices.Contains(exclude, c) {
			return true
		}
	}
	return false
}

// RowCount returns how many blocks occupy row.
func (g *Grid) RowCount(row int) int {
	if row < 0 || row >= g.rows {
		return 0
	}
	n := 0
	base := row * g.cols
	for col := range g.cols {
		if g.cells.Has(base + col) {
			n++
		}
	}
	return n
}

// IsRowFull reports whether every column of row is occupied.
func (g *Grid) IsRowFull(row int) bool {
	return g.RowCount(row) == g.cols
}

// FullRows returns the indices of all full rows in ascending order.
func (g *Grid) FullRows() []int {
	var full []int
	for row := range g.rows {
		if g.IsRowFull(row) {
			full = append(full, row)
		}
	}
	return full
}

// RemoveRows deletes every block in the given rows.
func (g *Grid) RemoveRows(rows []int) {
	for _, row := range rows {
		if row < 0 || row >= g.rows {
			continue
		}
		base := row * g.cols
		for col := range g.cols {
			g.cells.Del(base + col)
		}
	}
}

// ShiftDown moves every block strictly above row down by n rows.
// The map is rebuilt rather than mutated while it is being walked.
func (g *Grid) ShiftDown(row, n int) {
	if n <= 0 {
		return
	}
	next := intmap.New[int, core.Color](g.cols * g.rows)
	g.cells.ForEach(func(k int, c core.Color) bool {
		p := g.point(k)
		if p.Y < row {
			p.Y += n
		}
		if g.InBounds(p) {
			next.Put(g.key(p), c)
		}
		return true
	})
	g.cells = next
}

// Clear empties the board.
func (g *Grid) Clear() {
	g.cells.Clear()
}

// Blocks returns every settled block ordered by row then column.
func (g *Grid) Blocks() []Block {
	out := make([]Block, 0, g.cells.Len())
	g.cells.ForEach(func(k int, c core.Color) bool {
		out = append(out, Block{Pos: g.point(k), Color: c})
		return true
	})
	slices.SortFunc(out, func(a, b Block) int {
		if a.Pos.Y != b.Pos.Y {
			return a.Pos.Y - b.Pos.Y
		}
		return a.Pos.X - b.Pos.X
	})
	return out
}
