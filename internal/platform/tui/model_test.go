package tui

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/retro-tetris/internal/core"
	"github.com/vovakirdan/retro-tetris/internal/registry"
	"github.com/vovakirdan/retro-tetris/internal/storage"
)

const stubID = "tui_stub"

func init() {
	registry.Register(stubID, func() registry.Game { return &stubGame{} })
}

// stubGame records what the platform hands it.
type stubGame struct {
	steps  [][]core.Action
	state  core.GameState
	resets int
	width  int
	height int
	hs     core.HighScoreStore
	fb     core.Feedback
	logger *log.Logger
}

func (g *stubGame) ID() string                          { return stubID }
func (g *stubGame) Title() string                       { return "Stub" }
func (g *stubGame) Reset(core.RuntimeConfig)            { g.resets++ }
func (g *stubGame) State() core.GameState               { return g.state }
func (g *stubGame) Resize(w, h int)                     { g.width, g.height = w, h }
func (g *stubGame) UseHighScores(s core.HighScoreStore) { g.hs = s }
func (g *stubGame) UseFeedback(fb core.Feedback)        { g.fb = fb }
func (g *stubGame) UseLogger(l *log.Logger)             { g.logger = l }

func (g *stubGame) Step(in core.InputFrame) core.StepResult {
	g.steps = append(g.steps, append([]core.Action(nil), in.Actions()...))
	return core.StepResult{State: g.state}
}

func (g *stubGame) Render(dst *core.Screen) {
	dst.Clear()
	dst.DrawText(0, 0, "stub")
}

func (g *stubGame) lastStep(t *testing.T) []core.Action {
	t.Helper()
	if len(g.steps) == 0 {
		t.Fatal("game was never stepped")
	}
	return g.steps[len(g.steps)-1]
}

func testConfig() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 40, ScreenH: 10, TickRate: 60, Seed: 1}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

type memScores struct{ best int }

func (s *memScores) LoadHighScore() (int, error) { return s.best, nil }
func (s *memScores) SaveHighScore(v int) error   { s.best = v; return nil }

func TestModelQueuesActionsForNextTick(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), Options{})
	t0 := time.Unix(100, 0)

	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, runeKey("a"))
	m, _ = update(t, m, runeKey("w"))
	m, cmd := update(t, m, TickMsg(t0.Add(16*time.Millisecond)))

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	got := g.lastStep(t)
	if len(got) != 2 || got[0] != core.ActionLeft || got[1] != core.ActionRotate {
		t.Errorf("step actions = %v, want [MoveLeft RotateCW]", got)
	}

	m, _ = update(t, m, TickMsg(t0.Add(32*time.Millisecond)))
	if got := g.lastStep(t); len(got) != 0 {
		t.Errorf("frame not cleared between ticks: %v", got)
	}
}

func TestModelSynthesizesSoftDropRelease(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), Options{})
	t0 := time.Unix(100, 0)

	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m, _ = update(t, m, TickMsg(t0.Add(16*time.Millisecond)))
	if got := g.lastStep(t); len(got) != 1 || got[0] != core.ActionSoftDropOn {
		t.Fatalf("step actions = %v, want [SoftDropOn]", got)
	}

	m, _ = update(t, m, TickMsg(t0.Add(300*time.Millisecond)))
	if got := g.lastStep(t); len(got) != 0 {
		t.Fatalf("released too early: %v", got)
	}

	_, _ = update(t, m, TickMsg(t0.Add(600*time.Millisecond)))
	if got := g.lastStep(t); len(got) != 1 || got[0] != core.ActionSoftDropOff {
		t.Errorf("step actions = %v, want [SoftDropOff]", got)
	}
}

func TestModelQuit(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig(), Options{})

	m, cmd := update(t, m, runeKey("q"))
	if !m.IsQuitting() {
		t.Error("q should quit")
	}
	if cmd == nil {
		t.Error("quit should return a command")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestModelBackOnlyWhenStopped(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), Options{})

	m, _ = update(t, m, TickMsg(time.Unix(100, 0)))
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() || cmd != nil {
		t.Error("back must be ignored while playing")
	}

	g.state.Paused = true
	m, _ = update(t, m, TickMsg(time.Unix(101, 0)))
	m, cmd = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should leave a paused game")
	}
	if cmd == nil {
		t.Error("standalone back should end the program")
	}
}

func TestModelResizeKeepsGame(t *testing.T) {
	g := &stubGame{}
	m := NewModel(g, nil, testConfig(), Options{})

	_, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 50})

	if g.width != 120 || g.height != 50 {
		t.Errorf("resize = %dx%d, want 120x50", g.width, g.height)
	}
	if g.resets != 0 {
		t.Error("a resizable game must not be reset")
	}
}

func TestModelAttachesServices(t *testing.T) {
	g := &stubGame{}
	scores := &memScores{}
	var bellOut bytes.Buffer
	logger := log.New(&bytes.Buffer{})

	NewModel(g, nil, testConfig(), Options{HighScores: scores, Logger: logger, Bell: &bellOut})

	if g.hs != scores {
		t.Error("high score store not attached")
	}
	if g.logger != logger {
		t.Error("logger not attached")
	}
	if g.fb == nil {
		t.Fatal("feedback not attached")
	}
	g.fb.OnLineCleared()
	if bellOut.String() != "\a" {
		t.Errorf("bell output = %q", bellOut.String())
	}
}

func TestModelWithoutBellLeavesFeedbackAlone(t *testing.T) {
	g := &stubGame{}
	NewModel(g, nil, testConfig(), Options{})
	if g.fb != nil {
		t.Error("feedback should not be attached without a bell writer")
	}
	if g.logger == nil {
		t.Error("a discard logger should still be attached")
	}
}

func TestModelSavesScoreOncePerGameOver(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer store.Close()

	g := &stubGame{}
	m := NewModel(g, store, testConfig(), Options{})
	if g.hs == nil {
		t.Fatal("store-backed high scores not attached")
	}

	g.state = core.GameState{Score: 420, Lines: 3, GameOver: true}
	t0 := time.Unix(100, 0)
	m, _ = update(t, m, TickMsg(t0))
	m, _ = update(t, m, TickMsg(t0.Add(time.Second)))

	scores, err := store.TopScores(stubID, 10)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(scores) != 1 {
		t.Fatalf("got %d scores, want 1", len(scores))
	}
	if scores[0].Score != 420 || scores[0].Lines != 3 {
		t.Errorf("saved %+v", scores[0])
	}

	// A restart followed by another game over records a second entry.
	g.state = core.GameState{}
	m, _ = update(t, m, TickMsg(t0.Add(2*time.Second)))
	g.state = core.GameState{Score: 10, GameOver: true}
	_, _ = update(t, m, TickMsg(t0.Add(3*time.Second)))

	scores, err = store.TopScores(stubID, 10)
	if err != nil {
		t.Fatalf("top scores: %v", err)
	}
	if len(scores) != 2 {
		t.Errorf("got %d scores, want 2", len(scores))
	}
}

func TestModelView(t *testing.T) {
	m := NewModel(&stubGame{}, nil, testConfig(), Options{})
	view := m.View()
	if !strings.Contains(view, "stub") {
		t.Errorf("view missing game output: %q", view)
	}
	if lines := strings.Count(view, "\n") + 1; lines != 10 {
		t.Errorf("view has %d lines, want 10", lines)
	}
}

func TestSessionMenuToGameAndBack(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), Options{})

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyEnter})
	s = next.(SessionModel)
	if s.game == nil {
		t.Fatal("enter should start the selected game")
	}
	g, ok := s.game.game.(*stubGame)
	if !ok {
		t.Fatalf("unexpected game %T", s.game.game)
	}
	if g.resets != 1 {
		t.Errorf("game reset %d times, want 1", g.resets)
	}

	g.state.GameOver = true
	next, _ = s.Update(TickMsg(time.Unix(100, 0)))
	s = next.(SessionModel)
	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)

	if s.game != nil {
		t.Error("back should return to the menu")
	}
	if s.quitting {
		t.Error("back must not end the session")
	}
}

func TestSessionScoreboardRoundTrip(t *testing.T) {
	s := NewSessionModel(nil, testConfig(), Options{})

	next, _ := s.Update(tea.KeyMsg{Type: tea.KeyTab})
	s = next.(SessionModel)
	if s.scoreboard == nil {
		t.Fatal("tab should open the scoreboard")
	}
	if !strings.Contains(s.View(), "No scores recorded yet") {
		t.Error("empty scoreboard should say so")
	}

	next, _ = s.Update(tea.KeyMsg{Type: tea.KeyEsc})
	s = next.(SessionModel)
	if s.scoreboard != nil {
		t.Error("esc should close the scoreboard")
	}
	if s.quitting {
		t.Error("closing the scoreboard must not end the session")
	}
}
