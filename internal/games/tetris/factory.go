package tetris

import (
	"math/rand"

	"github.com/vovakirdan/retro-tetris/internal/core"
)

// DefaultPalette is the set of colors new pieces are painted with.
var DefaultPalette = []core.Color{
	core.ColorRed,
	core.ColorCyan,
	core.ColorYellow,
	core.ColorOrange,
	core.ColorGreen,
	core.ColorBlue,
}

// Factory produces new pieces at a random column near the top of the
// board. It never touches the grid, so a piece held for preview is not
// part of the board until it is promoted.
type Factory struct {
	rng     *rand.Rand
	cols    int
	palette []core.Color
}

// NewFactory creates a factory for a board cols wide. An empty palette
// falls back to DefaultPalette.
func NewFactory(rng *rand.Rand, cols int, palette []core.Color) *Factory {
	if len(palette) == 0 {
		palette = DefaultPalette
	}
	return &Factory{rng: rng, cols: cols, palette: palette}
}

// RandomShape picks one of the seven shapes uniformly.
func (f *Factory) RandomShape() Shape {
	return Shape(f.rng.Intn(ShapeCount))
}

// RandomColor picks a palette color uniformly.
func (f *Factory) RandomColor() core.Color {
	return f.palette[f.rng.Intn(len(f.palette))]
}

// Spawn builds a piece of the given shape at a random column drawn from
// the shape's spawn range.
func (f *Factory) Spawn(shape Shape, color core.Color) *Piece {
	limit := max(1, f.cols-shape.SpawnSpan()+1)
	x := f.rng.Intn(limit)
	return NewPiece(shape, color, core.Point{X: x, Y: 0})
}

// Next builds a piece with a random shape and color.
func (f *Factory) Next() *Piece {
	shape := f.RandomShape()
	color := f.RandomColor()
	return f.Spawn(shape, color)
}
