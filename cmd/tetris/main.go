// tetris is a falling-block puzzle game for the terminal.
//
// Usage:
//
//	tetris list              - List available modes
//	tetris play [mode]       - Play a mode (default: tetris)
//	tetris menu              - Pick a mode interactively
//	tetris serve             - Start SSH server for remote play
//	tetris scores [mode]     - Show high scores for a mode
//
// Global flags (defaults may come from TETRIS_* environment variables):
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--seed <value>        - Set RNG seed for reproducible gameplay
//	--db <path>           - Set database path (default: ~/.tetris/scores.db)
//	--config <path>       - Game config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard, fixed
//	--log-level <level>   - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/retro-tetris/internal/config"
	"github.com/vovakirdan/retro-tetris/internal/games/tetris"
)

var (
	flagFPS           int
	flagSeed          int64
	flagDBPath        string
	flagConfig        string
	flagDifficulty    string
	flagLogLevel      string
	flagHighScoreFile string

	env = loadEnv()
)

// loadEnv reads TETRIS_* overrides; flags fall back to built-in defaults
// when the environment is malformed.
func loadEnv() config.Env {
	e, err := config.LoadEnv()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
		return config.Env{FPS: 60, DBPath: "~/.tetris/scores.db", Difficulty: "fixed", LogLevel: "info",
			SSHHost: "0.0.0.0", SSHPort: 2222, HostKeyPath: ".ssh/tetris_host_ed25519"}
	}
	return e
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tetris",
	Short: "Tetris - falling blocks in your terminal",
	Long: `Tetris is a terminal falling-block puzzle game.

Available commands:
  list     - Show all available modes
  play     - Play a mode directly
  menu     - Interactive mode picker
  serve    - Start SSH server for remote play
  scores   - View high scores

Examples:
  tetris play
  tetris play tetris_marathon --difficulty hard
  tetris menu
  tetris serve --port 2222
  tetris scores tetris`,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := log.ParseLevel(flagLogLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
		}
		log.SetLevel(level)

		tetris.SetConfigPath(flagConfig)
		tetris.SetDifficultyPreset(flagDifficulty)
		return nil
	},
	SilenceUsage: true,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.IntVar(&flagFPS, "fps", env.FPS, "Tick rate (frames per second)")
	flags.Int64Var(&flagSeed, "seed", env.Seed, "RNG seed (0 = random based on time)")
	flags.StringVar(&flagDBPath, "db", env.DBPath, "Path to scores database")
	flags.StringVar(&flagConfig, "config", env.ConfigPath, "Path to custom game config YAML")
	flags.StringVar(&flagDifficulty, "difficulty", env.Difficulty, "Difficulty preset: easy, normal, hard, fixed")
	flags.StringVar(&flagLogLevel, "log-level", env.LogLevel, "Log level: debug, info, warn, error")
	flags.StringVar(&flagHighScoreFile, "highscore-file", env.HighScoreFile, "Keep the best score in a data file instead of the database")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
}
