// Package tetris implements the falling-block puzzle game: the board
// occupancy grid, pieces and their rotation geometry, move validation,
// line clearing and the tick-driven Playing/GameOver state machine.
package tetris

import "github.com/vovakirdan/retro-tetris/internal/core"

// Shape identifies one of the seven canonical tetrominoes.
type Shape int

const (
	ShapeL Shape = iota
	ShapeJ       // mirrored L
	ShapeI
	ShapeO
	ShapeZ
	ShapeS // mirrored Z
	ShapeT
)

// ShapeCount is the number of canonical shapes.
const ShapeCount = 7

// Pivot is a rotation center stored in half-cell units so that the
// fractional centers pieces rotate around stay exact integers.
// The cell-space pivot is (X2/2, Y2/2).
type Pivot struct {
	X2, Y2 int
}

// Point returns the pivot in cell units.
func (p Pivot) Point() (x, y float64) {
	return float64(p.X2) / 2, float64(p.Y2) / 2
}

// shapeDef describes a shape relative to its spawn anchor. The anchor is
// the column of the leftmost block and row 0 of the spawn position.
type shapeDef struct {
	name    string
	offsets [4]core.Point
	pivot   Pivot
	// span is the number of columns reserved when spawning: the anchor
	// is drawn from [0, cols-span] so the piece can rotate on-board.
	span int
}

// shapes is the single table every shape-dependent rule reads from.
//
//	L      J      I          O     Z      S      T
//	#       #                ##    ##      ##    ###
//	#       #     ####       ##     ##    ##      #
//	##     ##
var shapes = [ShapeCount]shapeDef{
	ShapeL: {
		name:    "L",
		offsets: [4]core.Point{{X: 0, Y: -1}, {X: 0, Y: 0}, {X: 0, Y: 1}, {X: 1, Y: 1}},
		pivot:   Pivot{X2: 3, Y2: 1},
		span:    3,
	},
	ShapeJ: {
		name:    "J",
		offsets: [4]core.Point{{X: 0, Y: 1}, {X: 1, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: -1}},
		pivot:   Pivot{X2: 3, Y2: 1},
		span:    3,
	},
	ShapeI: {
		name:    "I",
		offsets: [4]core.Point{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 2, Y: -1}, {X: 3, Y: -1}},
		pivot:   Pivot{X2: 4, Y2: 0},
		span:    6,
	},
	ShapeO: {
		name:    "O",
		offsets: [4]core.Point{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 0, Y: 0}, {X: 1, Y: 0}},
		pivot:   Pivot{X2: 2, Y2: 0},
		span:    3,
	},
	ShapeZ: {
		name:    "Z",
		offsets: [4]core.Point{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 1, Y: 0}, {X: 2, Y: 0}},
		pivot:   Pivot{X2: 3, Y2: 1},
		span:    5,
	},
	ShapeS: {
		name:    "S",
		offsets: [4]core.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: -1}, {X: 2, Y: -1}},
		pivot:   Pivot{X2: 3, Y2: 1},
		span:    5,
	},
	ShapeT: {
		name:    "T",
		offsets: [4]core.Point{{X: 0, Y: -1}, {X: 1, Y: -1}, {X: 2, Y: -1}, {X: 1, Y: 0}},
		pivot:   Pivot{X2: 3, Y2: 1},
		span:    5,
	},
}

// String returns the conventional letter for the shape.
func (s Shape) String() string {
	if !s.Valid() {
		return "?"
	}
	return shapes[s].name
}

// Valid reports whether s is one of the seven canonical shapes.
func (s Shape) Valid() bool {
	return s >= 0 && s < ShapeCount
}

// SpawnSpan returns how many columns the shape reserves when spawning.
func (s Shape) SpawnSpan() int {
	return shapes[s].span
}

// MinColumns is the narrowest board every shape can spawn on.
func MinColumns() int {
	widest := 0
	for _, def := range shapes {
		widest = max(widest, def.span)
	}
	return widest
}
