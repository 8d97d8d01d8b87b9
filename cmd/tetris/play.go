package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/retro-tetris/internal/config"
	"github.com/vovakirdan/retro-tetris/internal/core"
	"github.com/vovakirdan/retro-tetris/internal/platform/tui"
	"github.com/vovakirdan/retro-tetris/internal/registry"
	"github.com/vovakirdan/retro-tetris/internal/storage"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: tetris).

Controls:
  Left/A/H      - Move left
  Right/D/L     - Move right
  Up/W/K/X      - Rotate
  Down/S/J      - Soft drop (hold)
  P             - Pause
  R/Enter       - Restart (after game over)
  Esc/B         - Leave (while paused or after game over)
  Q/Ctrl+C      - Quit

Difficulty options:
  fixed  - One row per second, no progression (default)
  easy   - Starts slow, speeds up as lines are cleared
  normal - Starts at 30% speed-up
  hard   - Starts at 70% speed-up

Examples:
  tetris play
  tetris play tetris_marathon
  tetris play --difficulty hard
  tetris play --config ./my-tetris.yaml --log-file ./tetris.log`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagLogFile, "log-file", "", "Write game logs to this file")
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "tetris"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'tetris list' to see available modes.")
		os.Exit(1)
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	opts, closeOpts, err := sessionOptions(flagLogFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	runErr := tui.Run(game, store, runtimeConfig(), opts)

	if store != nil {
		store.Close()
	}
	closeOpts()

	if runErr != nil {
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", runErr)
		os.Exit(1)
	}
}

// runtimeConfig sizes the game to the current terminal.
func runtimeConfig() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}

	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// openStore opens the score database; play continues without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open scores database: %v\n", err)
		return nil
	}
	return store
}

// sessionOptions builds the platform services shared by play and menu.
// The returned func releases the log file, if any.
func sessionOptions(logFile string) (tui.Options, func(), error) {
	var opts tui.Options
	closer := func() {}

	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return opts, closer, fmt.Errorf("open log file: %w", err)
		}
		opts.Logger = log.NewWithOptions(f, log.Options{
			ReportTimestamp: true,
			Level:           log.GetLevel(),
			Prefix:          "tetris",
		})
		closer = func() { f.Close() }
	}

	if flagHighScoreFile != "" {
		df, err := storage.NewDataFile(flagHighScoreFile)
		if err != nil {
			closer()
			return opts, func() {}, fmt.Errorf("high score file: %w", err)
		}
		opts.HighScores = df
	}

	if cfg, err := config.LoadTetris(flagConfig); err == nil && cfg.Feedback.Bell {
		opts.Bell = os.Stderr
	}

	return opts, closer, nil
}
