package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-tetris/internal/core"
)

func pts(xy ...int) [4]core.Point {
	var out [4]core.Point
	for i := range out {
		out[i] = core.Point{X: xy[2*i], Y: xy[2*i+1]}
	}
	return out
}

func TestNewPieceLayout(t *testing.T) {
	p := NewPiece(ShapeL, core.ColorRed, core.Point{X: 3, Y: 0})
	assert.Equal(t, pts(3, -1, 3, 0, 3, 1, 4, 1), p.Cells())
	assert.Equal(t, Pivot{X2: 9, Y2: 1}, p.Pivot())
	assert.Equal(t, core.ColorRed, p.Color())
	assert.Equal(t, ShapeL, p.Shape())

	x, y := p.Pivot().Point()
	assert.InDelta(t, 4.5, x, 1e-9)
	assert.InDelta(t, 0.5, y, 1e-9)
}

func TestRotateMatchesPivotFormula(t *testing.T) {
	// L with pivot (4.5, 5.5): c' = r + px - py, r' = px + py - c - 1.
	p := NewPiece(ShapeL, core.ColorRed, core.Point{X: 3, Y: 5})
	require.Equal(t, pts(3, 4, 3, 5, 3, 6, 4, 6), p.Cells())

	p.Rotate()
	assert.Equal(t, pts(3, 6, 4, 6, 5, 6, 5, 5), p.Cells())
}

func TestRotateFourTimesRestores(t *testing.T) {
	for s := range Shape(ShapeCount) {
		t.Run(s.String(), func(t *testing.T) {
			p := NewPiece(s, core.ColorBlue, core.Point{X: 4, Y: 6})
			orig := p.Cells()
			for range 4 {
				p.Rotate()
			}
			assert.Equal(t, orig, p.Cells())
		})
	}
}

func TestRotateSquareIsStable(t *testing.T) {
	p := NewPiece(ShapeO, core.ColorYellow, core.Point{X: 2, Y: 3})
	before := p.Cells()
	p.Rotate()
	after := p.Cells()
	assert.ElementsMatch(t, before[:], after[:])
}

func TestTranslateCarriesPivot(t *testing.T) {
	a := NewPiece(ShapeT, core.ColorGreen, core.Point{X: 2, Y: 4})
	b := NewPiece(ShapeT, core.ColorGreen, core.Point{X: 5, Y: 7})

	a.Translate(3, 3)
	assert.Equal(t, b.Cells(), a.Cells())
	assert.Equal(t, b.Pivot(), a.Pivot())

	a.Rotate()
	b.Rotate()
	assert.Equal(t, b.Cells(), a.Cells())
}

func TestTranslatedDoesNotMutate(t *testing.T) {
	p := NewPiece(ShapeI, core.ColorCyan, core.Point{X: 0, Y: 2})
	before := p.Cells()
	_ = p.Translated(1, 1)
	_ = p.Rotated()
	assert.Equal(t, before, p.Cells())
}

func TestBlocksShareColor(t *testing.T) {
	p := NewPiece(ShapeS, core.ColorOrange, core.Point{X: 1, Y: 1})
	blocks := p.Blocks()
	require.Len(t, blocks, 4)
	for i, b := range blocks {
		assert.Equal(t, core.ColorOrange, b.Color)
		assert.Equal(t, p.Cells()[i], b.Pos)
	}
}

func TestBounds(t *testing.T) {
	minX, maxX, minY, maxY := Bounds(pts(3, -1, 3, 0, 3, 1, 4, 1))
	assert.Equal(t, []int{3, 4, -1, 1}, []int{minX, maxX, minY, maxY})
}
