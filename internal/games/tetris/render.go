package tetris

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/retro-tetris/internal/core"
)

const (
	hudWidth     = 18
	previewWidth = 12
	previewRows  = 6
	panelGap     = 1
)

// layout positions the board and side panels on the screen.
type layout struct {
	hudX, boardX, previewX int
	top                    int // banner row; the board box starts one row below
	compact                bool
}

type hudStat struct {
	label, value string
}

func boardWidth(cols int) int { return cols*2 + 2 }

func layoutSize(cols, rows int, compact bool) (w, h int) {
	w = hudWidth + panelGap + boardWidth(cols) + panelGap + previewWidth
	if compact {
		return w, (rows+1)/2 + 3
	}
	return w, rows + 3
}

// fitsLayout reports whether the board fits, in compact form at least.
func fitsLayout(cols, rows, w, h int) bool {
	needW, needH := layoutSize(cols, rows, true)
	return w >= needW && h >= needH
}

func computeLayout(cols, rows, w, h int) layout {
	_, fullH := layoutSize(cols, rows, false)
	compact := h < fullH
	needW, needH := layoutSize(cols, rows, compact)

	x0 := max(0, (w-needW)/2)
	l := layout{
		hudX:    x0,
		boardX:  x0 + hudWidth + panelGap,
		top:     max(0, (h-needH)/2),
		compact: compact,
	}
	l.previewX = l.boardX + boardWidth(cols) + panelGap
	return l
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.grid == nil {
		return
	}

	cols, rows := g.grid.Cols(), g.grid.Rows()
	if dst.Width() > 0 && dst.Height() > 0 && !fitsLayout(cols, rows, dst.Width(), dst.Height()) {
		needW, needH := layoutSize(cols, rows, true)
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	l := computeLayout(cols, rows, dst.Width(), dst.Height())
	g.renderBoard(dst, l)
	g.renderHUD(dst, l)
	g.renderPreview(dst, l)

	if g.bannerTicks > 0 && g.banner != "" {
		x := l.boardX + (boardWidth(cols)-len(g.banner))/2
		dst.DrawTextWithColor(x, l.top, g.banner, core.ColorGold)
	}

	switch {
	case g.phase == PhaseGameOver:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d", g.score), "Press Enter or R to restart")
	case g.paused && g.tooSmall:
		g.renderOverlay(dst, "Paused", "Window was too small", "Press P to continue")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// cellAt returns what occupies board cell (col, row): the falling piece
// first, then the settled stack.
func (g *Game) cellAt(col, row int) (core.Color, bool) {
	if g.phase == PhasePlaying && g.active != nil {
		for _, c := range g.active.Cells() {
			if c.X == col && c.Y == row {
				return g.active.Color(), true
			}
		}
	}
	return g.grid.At(core.Point{X: col, Y: row})
}

func (g *Game) renderBoard(dst *core.Screen, l layout) {
	cols, rows := g.grid.Cols(), g.grid.Rows()
	innerH := rows
	if l.compact {
		innerH = (rows + 1) / 2
	}
	boxY := l.top + 1
	dst.DrawBox(core.NewRect(l.boardX, boxY, boardWidth(cols), innerH+2), core.ColorGray)

	for y := range innerH {
		for col := range cols {
			var (
				r     rune
				color core.Color
				ok    bool
			)
			if l.compact {
				r, color, ok = g.halfBlock(col, y*2)
			} else {
				color, ok = g.cellAt(col, y)
				r = '█'
			}
			if !ok {
				continue
			}
			x := l.boardX + 1 + col*2
			dst.SetWithColor(x, boxY+1+y, r, color)
			dst.SetWithColor(x+1, boxY+1+y, r, color)
		}
	}
}

// halfBlock folds board rows row and row+1 into one screen cell.
// The color of the upper cell wins when both are occupied.
func (g *Game) halfBlock(col, row int) (rune, core.Color, bool) {
	topColor, top := g.cellAt(col, row)
	bottomColor, bottom := g.cellAt(col, row+1)
	switch {
	case top && bottom:
		return '█', topColor, true
	case top:
		return '▀', topColor, true
	case bottom:
		return '▄', bottomColor, true
	default:
		return ' ', core.ColorDefault, false
	}
}

func (g *Game) renderHUD(dst *core.Screen, l layout) {
	x := l.hudX + 1
	y := l.top + 1

	dst.DrawTextWithColor(x, y, strings.ToUpper(g.Title()), core.ColorGold)
	stats := []hudStat{
		{"Time", FormatElapsed(g.Elapsed())},
		{"Score", fmt.Sprintf("%d", g.score)},
		{"High", fmt.Sprintf("%d", g.highScore)},
		{"Lines", fmt.Sprintf("%d", g.lines)},
	}
	if g.difficulty != nil && g.difficulty.IsEnabled() {
		iv := g.fallInterval()
		stats = append(stats, hudStat{"Speed", fmt.Sprintf("%.2fs", iv.Seconds())})
	}
	for i, s := range stats {
		dst.DrawTextWithColor(x, y+2+i, s.label, core.ColorGray)
		dst.DrawText(x+7, y+2+i, s.value)
	}

	help := []string{
		"←/→  move",
		"↑    rotate",
		"↓    soft drop",
		"p    pause",
		"q    quit",
	}
	hy := y + 3 + len(stats)
	for i, line := range help {
		dst.DrawTextWithColor(x, hy+i, line, core.ColorGray)
	}
}

func (g *Game) renderPreview(dst *core.Screen, l layout) {
	boxY := l.top + 1
	dst.DrawBox(core.NewRect(l.previewX, boxY, previewWidth, previewRows), core.ColorGray)
	dst.DrawText(l.previewX+2, boxY, " Next ")

	if g.next == nil || g.phase == PhaseGameOver {
		return
	}
	cells := g.next.Cells()
	minX, maxX, minY, maxY := Bounds(cells)
	innerW, innerH := (previewWidth-2)/2, previewRows-2
	padX := (innerW - (maxX - minX + 1)) / 2
	padY := (innerH - (maxY - minY + 1)) / 2
	for _, c := range cells {
		x := l.previewX + 1 + (c.X-minX+padX)*2
		y := boxY + 1 + c.Y - minY + padY
		dst.SetWithColor(x, y, '█', g.next.Color())
		dst.SetWithColor(x+1, y, '█', g.next.Color())
	}
}

// renderOverlay draws a centered message box.
func (g *Game) renderOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, len([]rune(line)))
	}
	boxW := maxLen + 4
	boxH := len(lines)*2 + 1
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)
	for i, line := range lines {
		color := core.ColorDefault
		if i == 0 {
			color = core.ColorGold
		}
		x := (dst.Width() - len([]rune(line))) / 2
		dst.DrawTextWithColor(x, box.Y+1+i*2, line, color)
	}
}
