package tetris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/retro-tetris/internal/core"
)

func TestTranslateWalls(t *testing.T) {
	g := NewGrid(12, 24)
	c := NewCollider(g)

	tests := []struct {
		name   string
		anchor core.Point
		t      Transform
		want   bool
	}{
		{"left at left wall", core.Point{X: 0, Y: 5}, TranslateLeft, false},
		{"left in open", core.Point{X: 1, Y: 5}, TranslateLeft, true},
		{"right at right wall", core.Point{X: 8, Y: 5}, TranslateRight, false},
		{"right in open", core.Point{X: 7, Y: 5}, TranslateRight, true},
		{"down at bottom", core.Point{X: 4, Y: 24}, TranslateDown, false},
		{"down in open", core.Point{X: 4, Y: 10}, TranslateDown, true},
		{"down above board", core.Point{X: 4, Y: 0}, TranslateDown, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPiece(ShapeI, core.ColorCyan, tt.anchor)
			assert.Equal(t, tt.want, c.CanApply(p, tt.t).Allowed)
		})
	}
}

func TestTranslateIntoSettledBlock(t *testing.T) {
	g := NewGrid(12, 24)
	c := NewCollider(g)
	p := NewPiece(ShapeO, core.ColorYellow, core.Point{X: 4, Y: 10})

	g.Set(core.Point{X: 4, Y: 11}, core.ColorRed)
	assert.False(t, c.CanApply(p, TranslateDown).Allowed)

	g.Set(core.Point{X: 3, Y: 9}, core.ColorRed)
	assert.False(t, c.CanApply(p, TranslateLeft).Allowed)
	assert.True(t, c.CanApply(p, TranslateRight).Allowed)
}

func TestCanApplyDoesNotMutate(t *testing.T) {
	g := NewGrid(12, 24)
	c := NewCollider(g)
	p := NewPiece(ShapeT, core.ColorGreen, core.Point{X: 4, Y: 10})
	before := p.Cells()

	for _, tr := range []Transform{TranslateLeft, TranslateRight, TranslateDown, Rotate} {
		c.CanApply(p, tr)
	}
	assert.Equal(t, before, p.Cells())
	assert.Equal(t, 0, g.Len())
}

func TestRotateRefusedAtTop(t *testing.T) {
	g := NewGrid(12, 24)
	c := NewCollider(g)

	// T spawns with its top row at row -1.
	p := NewPiece(ShapeT, core.ColorGreen, core.Point{X: 4, Y: 0})
	assert.False(t, c.CanApply(p, Rotate).Allowed)

	// Top row exactly at 0 is still refused.
	p.Translate(0, 1)
	assert.False(t, c.CanApply(p, Rotate).Allowed)

	p.Translate(0, 1)
	assert.True(t, c.CanApply(p, Rotate).Allowed)
}

func TestRotateClampsLeftWall(t *testing.T) {
	g := NewGrid(12, 24)
	c := NewCollider(g)

	// Horizontal I at row 4, then stood up in column 1 and pushed to column 0.
	p := NewPiece(ShapeI, core.ColorCyan, core.Point{X: 0, Y: 5})
	p.Rotate()
	require.Equal(t, pts(1, 6, 1, 5, 1, 4, 1, 3), p.Cells())
	require.True(t, c.Apply(p, TranslateLeft))

	v := c.CanApply(p, Rotate)
	require.True(t, v.Allowed)
	assert.Equal(t, 1, v.ShiftX)

	require.True(t, c.Apply(p, Rotate))
	minX, maxX, minY, maxY := Bounds(p.Cells())
	assert.Equal(t, []int{0, 3, 5, 5}, []int{minX, maxX, minY, maxY})
}

func TestRotateClampsRightWall(t *testing.T) {
	g := NewGrid(12, 24)
	c := NewCollider(g)

	p := NewPiece(ShapeI, core.ColorCyan, core.Point{X: 8, Y: 5})
	p.Rotate()
	require.Equal(t, 9, p.Cells()[0].X)
	p.Translate(2, 0)

	v := c.CanApply(p, Rotate)
	require.True(t, v.Allowed)
	assert.Equal(t, -2, v.ShiftX)

	require.True(t, c.Apply(p, Rotate))
	minX, maxX, _, _ := Bounds(p.Cells())
	assert.Equal(t, 8, minX)
	assert.Equal(t, 11, maxX)
}

func TestRotateIntoSettledBlock(t *testing.T) {
	g := NewGrid(12, 24)
	c := NewCollider(g)
	p := NewPiece(ShapeL, core.ColorRed, core.Point{X: 3, Y: 5})

	// The rotated L occupies (3,6) (4,6) (5,6) (5,5).
	g.Set(core.Point{X: 5, Y: 6}, core.ColorGray)
	assert.False(t, c.CanApply(p, Rotate).Allowed)
	assert.False(t, c.Apply(p, Rotate))
	assert.Equal(t, pts(3, 4, 3, 5, 3, 6, 4, 6), p.Cells())
}

func TestRotatePastFloorRefused(t *testing.T) {
	g := NewGrid(12, 24)
	c := NewCollider(g)

	// Horizontal I resting on the floor would stand up through it.
	p := NewPiece(ShapeI, core.ColorCyan, core.Point{X: 4, Y: 24})
	assert.False(t, c.CanApply(p, Rotate).Allowed)
}

func TestBlocked(t *testing.T) {
	g := NewGrid(12, 24)
	c := NewCollider(g)
	p := NewPiece(ShapeO, core.ColorYellow, core.Point{X: 0, Y: 1})
	assert.False(t, c.Blocked(p))

	fillRow(g, 2, 11)
	assert.True(t, c.Blocked(p), "cannot move down")

	g.Clear()
	g.Set(core.Point{X: 0, Y: 0}, core.ColorGray)
	assert.True(t, c.Blocked(p), "overlaps the stack")
}
