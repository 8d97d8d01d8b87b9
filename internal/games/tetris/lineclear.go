package tetris

// Scoring holds the point rules.
type Scoring struct {
	// LineClearBase scales the clear bonus: n rows earn n*(n-1)*LineClearBase.
	LineClearBase int
	// SoftDropPoints is awarded per successful soft-drop step.
	SoftDropPoints int
}

// DefaultScoring matches the classic rules: a single line scores nothing,
// two lines 200, three 600, four 1200.
func DefaultScoring() Scoring {
	return Scoring{LineClearBase: 100, SoftDropPoints: 1}
}

// ClearBonus returns the score for clearing n rows at once.
func (s Scoring) ClearBonus(n int) int {
	if n <= 1 {
		return 0
	}
	return n * (n - 1) * s.LineClearBase
}

// ClearResult describes one line-clear pass.
type ClearResult struct {
	Rows       []int // cleared row indices, ascending
	ScoreDelta int
}

// Count returns the number of cleared rows.
func (r ClearResult) Count() int {
	return len(r.Rows)
}

// ProcessClears removes every full row and drops the rows above.
// Rows are handled top to bottom, each shifting everything above it by
// one, so gaps between non-adjacent clears collapse without overlaps.
// For adjacent rows the result equals ShiftDown(lowest, count) after
// removing them all.
func ProcessClears(g *Grid, s Scoring) ClearResult {
	full := g.FullRows()
	if len(full) == 0 {
		return ClearResult{}
	}
	for _, row := range full {
		g.RemoveRows([]int{row})
		g.ShiftDown(row, 1)
	}
	return ClearResult{Rows: full, ScoreDelta: s.ClearBonus(len(full))}
}
