package tetris

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-tetris/internal/config"
	"github.com/vovakirdan/retro-tetris/internal/core"
	"github.com/vovakirdan/retro-tetris/internal/registry"
)

// Variant selects the gravity rules.
type Variant string

const (
	// VariantClassic falls at a fixed cadence unless a difficulty preset says otherwise.
	VariantClassic Variant = "classic"
	// VariantMarathon speeds gravity up as lines are cleared.
	VariantMarathon Variant = "marathon"
)

// Phase is the top-level game state.
type Phase int

const (
	PhasePlaying Phase = iota
	PhaseGameOver
)

// Game implements the falling-block game.
type Game struct {
	variant Variant

	cfg        config.TetrisConfig
	override   *config.TetrisConfig
	scoring    Scoring
	difficulty *config.DifficultyManager

	rng      *rand.Rand
	clock    core.Clock
	logger   *log.Logger
	store    core.HighScoreStore
	listener Listener
	feedback core.Feedback

	grid     *Grid
	collider *Collider
	factory  *Factory
	active   *Piece
	next     *Piece // preview, not on the board

	tick      uint64
	score     int
	highScore int
	lines     int
	softDrop  bool
	phase     Phase
	paused    bool

	// Wall-clock bookkeeping. Elapsed time excludes pauses.
	startedAt    time.Time
	pausedAt     time.Time
	pausedFor    time.Duration
	finalElapsed time.Duration
	lastGravity  time.Duration
	nextGravity  time.Duration

	banner      string
	bannerTicks int

	screenW  int
	screenH  int
	tooSmall bool
}

// Package-level settings applied on the next Reset (set by the CLI).
var (
	configPath       string
	difficultyPreset string
)

// SetConfigPath sets the YAML config file used on the next Reset.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset used on the next Reset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = preset
}

// New creates a classic game.
func New() *Game {
	return newGame(VariantClassic)
}

// NewMarathon creates a game whose gravity speeds up with cleared lines.
func NewMarathon() *Game {
	return newGame(VariantMarathon)
}

func newGame(v Variant) *Game {
	return &Game{
		variant:  v,
		clock:    core.SystemClock{},
		logger:   log.New(io.Discard),
		listener: NopListener{},
		feedback: core.NopFeedback{},
	}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_marathon", func() registry.Game {
		return NewMarathon()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.variant == VariantMarathon {
		return "tetris_marathon"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.variant == VariantMarathon {
		return "Tetris (Marathon)"
	}
	return "Tetris"
}

// SetClock replaces the time source. Must be called before Reset.
func (g *Game) SetClock(c core.Clock) {
	g.clock = c
}

// SetListener registers the state-change listener.
func (g *Game) SetListener(l Listener) {
	if l == nil {
		l = NopListener{}
	}
	g.listener = l
}

// SetConfig pins the configuration instead of loading it from disk.
func (g *Game) SetConfig(cfg config.TetrisConfig) {
	g.override = &cfg
}

// UseHighScores attaches the high-score store and loads the stored value.
func (g *Game) UseHighScores(store core.HighScoreStore) {
	g.store = store
	g.highScore = max(g.highScore, g.loadHighScore())
}

// UseFeedback attaches the sound/flash cue sink.
func (g *Game) UseFeedback(fb core.Feedback) {
	if fb == nil {
		fb = core.NopFeedback{}
	}
	g.feedback = fb
}

// UseLogger routes engine diagnostics to logger.
func (g *Game) UseLogger(logger *log.Logger) {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g.logger = logger
}

// Reset loads configuration, seeds the RNG and starts a fresh game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.loadConfig()
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.grid = NewGrid(g.cfg.Board.Cols, g.cfg.Board.Rows)
	g.collider = NewCollider(g.grid)
	g.factory = NewFactory(g.rng, g.cfg.Board.Cols, g.palette())
	g.highScore = max(g.highScore, g.loadHighScore())
	g.Resize(cfg.ScreenW, cfg.ScreenH)
	g.start()
}

// start begins a new game on the current board, keeping config, RNG
// stream and high score.
func (g *Game) start() {
	g.grid.Clear()
	g.tick = 0
	g.score = 0
	g.lines = 0
	g.softDrop = false
	g.phase = PhasePlaying
	g.paused = false
	g.banner = ""
	g.bannerTicks = 0

	g.startedAt = g.clock.Now()
	g.pausedFor = 0
	g.finalElapsed = 0
	g.lastGravity = 0
	g.nextGravity = g.fallInterval()

	g.active = g.factory.Next()
	g.next = g.factory.Next()
	if g.tooSmall {
		g.setPaused(true)
	}

	g.listener.OnGridChanged(nil)
	g.listener.OnPieceChanged(g.active)
	g.listener.OnScoreChanged(g.score, g.highScore)
	g.logger.Debug("game started", "variant", g.variant, "cols", g.grid.Cols(), "rows", g.grid.Rows())
}

func (g *Game) loadConfig() {
	var cfg config.TetrisConfig
	if g.override != nil {
		cfg = *g.override
	} else {
		loaded, err := config.LoadTetris(configPath)
		if err != nil {
			g.logger.Warn("load config, using defaults", "error", err)
		}
		cfg = loaded

		preset, err := config.ParsePreset(difficultyPreset)
		if err != nil {
			g.logger.Warn("bad difficulty preset", "error", err)
			preset = config.DifficultyFixed
		}
		if g.variant == VariantMarathon && config.IsFixedPreset(preset) {
			preset = config.DifficultyNormal
		}
		config.ApplyTetrisPreset(&cfg, preset)
	}

	if err := cfg.Validate(MinColumns()); err != nil {
		g.logger.Warn("invalid config, using defaults", "error", err)
		cfg = config.DefaultTetrisConfig()
	}

	g.cfg = cfg
	g.scoring = Scoring{
		LineClearBase:  cfg.Scoring.LineClearBase,
		SoftDropPoints: cfg.Scoring.SoftDropPoints,
	}
	g.difficulty = config.NewDifficultyManager(cfg.Difficulty)
}

func (g *Game) palette() []core.Color {
	var out []core.Color
	for _, name := range g.cfg.Palette {
		c, ok := core.ParseColor(name)
		if !ok || c == core.ColorDefault {
			g.logger.Warn("unknown palette color", "color", name)
			continue
		}
		out = append(out, c)
	}
	return out
}

// Resize records the screen size. A screen too small for the board pauses
// play; a zero size means no screen is attached.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h
	if g.grid == nil || w <= 0 || h <= 0 {
		g.tooSmall = false
		return
	}
	g.tooSmall = !fitsLayout(g.grid.Cols(), g.grid.Rows(), w, h)
	if g.tooSmall && g.phase == PhasePlaying {
		g.setPaused(true)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++
	if g.bannerTicks > 0 {
		g.bannerTicks--
	}

	for _, a := range in.Actions() {
		switch a {
		case core.ActionRestart, core.ActionConfirm:
			if g.phase == PhaseGameOver {
				g.start()
				return core.StepResult{State: g.State()}
			}
		case core.ActionPause:
			if g.phase == PhasePlaying && !g.tooSmall {
				g.setPaused(!g.paused)
			}
		case core.ActionSoftDropOff:
			g.softDrop = false
		}
	}

	if g.phase == PhaseGameOver || g.paused {
		return core.StepResult{State: g.State()}
	}

	for _, a := range in.Actions() {
		if g.phase != PhasePlaying {
			break
		}
		switch a {
		case core.ActionLeft:
			g.move(TranslateLeft)
		case core.ActionRight:
			g.move(TranslateRight)
		case core.ActionRotate:
			g.move(Rotate)
		case core.ActionSoftDropOn:
			g.softDrop = true
		case core.ActionSoftDropOff:
			g.softDrop = false
		}
	}

	elapsed := g.Elapsed()
	if g.phase == PhasePlaying && g.gravityDue(elapsed) {
		g.gravity(elapsed)
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) move(t Transform) {
	if g.collider.Apply(g.active, t) {
		g.listener.OnPieceChanged(g.active)
		g.settleIfLanded()
	}
}

// settleIfLanded settles the active piece as soon as nothing lets it fall
// further, so a landed piece cannot be slid or turned afterwards.
func (g *Game) settleIfLanded() {
	if !g.collider.CanMoveDown(g.active) {
		g.settle()
	}
}

func (g *Game) setPaused(paused bool) {
	if paused == g.paused {
		return
	}
	now := g.clock.Now()
	if paused {
		g.pausedAt = now
	} else {
		g.pausedFor += now.Sub(g.pausedAt)
	}
	g.paused = paused
}

// Elapsed returns the play time excluding pauses, frozen once the game ends.
func (g *Game) Elapsed() time.Duration {
	if g.phase == PhaseGameOver {
		return g.finalElapsed
	}
	now := g.clock.Now()
	if g.paused {
		now = g.pausedAt
	}
	return now.Sub(g.startedAt) - g.pausedFor
}

// fallInterval is the normal gravity interval for the current progress.
func (g *Game) fallInterval() time.Duration {
	return g.difficulty.GravityInterval(
		g.cfg.Timing.GravityInterval(),
		g.cfg.Timing.MinGravityInterval(),
		config.Progress{Score: g.score, Lines: g.lines, Ticks: int(g.tick)},
	)
}

func (g *Game) gravityDue(elapsed time.Duration) bool {
	if g.softDrop {
		iv := g.cfg.Timing.SoftDropInterval()
		return iv <= 0 || elapsed-g.lastGravity >= iv
	}
	return elapsed >= g.nextGravity
}

// gravity performs one downward step and settles the piece once it rests on
// the floor or the stack.
func (g *Game) gravity(elapsed time.Duration) {
	g.lastGravity = elapsed
	iv := g.fallInterval()
	g.nextGravity = elapsed.Truncate(iv) + iv

	if g.collider.Apply(g.active, TranslateDown) {
		if g.softDrop {
			g.addScore(g.scoring.SoftDropPoints)
		}
		g.listener.OnPieceChanged(g.active)
		g.settleIfLanded()
		return
	}
	g.settle()
}

func (g *Game) settle() {
	onBoard := g.grid.Merge(g.active)

	res := ProcessClears(g.grid, g.scoring)
	g.listener.OnGridChanged(res.Rows)
	if n := res.Count(); n > 0 {
		g.lines += n
		g.feedback.OnLineCleared()
		g.showBanner(clearBanner(n))
		g.addScore(res.ScoreDelta)
		g.logger.Debug("lines cleared", "rows", res.Rows, "delta", res.ScoreDelta)
	}

	if !onBoard {
		g.endGame()
		return
	}
	g.promote()
}

// promote makes the preview piece active and draws a new preview.
func (g *Game) promote() {
	g.active = g.next
	g.next = g.factory.Next()
	g.listener.OnPieceChanged(g.active)
	if g.collider.Blocked(g.active) {
		g.endGame()
	}
}

func (g *Game) endGame() {
	g.finalElapsed = g.Elapsed()
	g.phase = PhaseGameOver
	g.softDrop = false
	g.grid.Clear()

	g.listener.OnGridChanged(nil)
	g.listener.OnGameOver()
	g.feedback.OnGameOverSound()
	g.logger.Info("game over", "score", g.score, "lines", g.lines, "elapsed", FormatElapsed(g.finalElapsed))
}

func (g *Game) addScore(n int) {
	if n <= 0 {
		return
	}
	g.score += n
	if g.score > g.highScore {
		g.highScore = g.score
		g.saveHighScore()
	}
	g.listener.OnScoreChanged(g.score, g.highScore)
}

func (g *Game) loadHighScore() int {
	if g.store == nil {
		return 0
	}
	hs, err := g.store.LoadHighScore()
	if err != nil {
		g.logger.Warn("load high score", "error", err)
		return 0
	}
	return hs
}

func (g *Game) saveHighScore() {
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(g.highScore); err != nil {
		g.logger.Warn("save high score", "score", g.highScore, "error", err)
	}
}

func (g *Game) showBanner(text string) {
	g.banner = text
	g.bannerTicks = g.cfg.Feedback.FlashTicks
}

func clearBanner(n int) string {
	switch n {
	case 1:
		return "LINE!"
	case 2:
		return "DOUBLE!"
	case 3:
		return "TRIPLE!"
	default:
		return "TETRIS!"
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:     g.score,
		HighScore: g.highScore,
		Lines:     g.lines,
		GameOver:  g.phase == PhaseGameOver,
		Paused:    g.paused,
	}
}

// Grid exposes the settled blocks for inspection.
func (g *Game) Grid() *Grid { return g.grid }

// Active returns the falling piece.
func (g *Game) Active() *Piece { return g.active }

// Next returns the preview piece.
func (g *Game) Next() *Piece { return g.next }
