// platformer plays Catatatatat, a tile platformer, in the terminal.
//
// Usage:
//
//	platformer list                 - List games and builtin levels
//	platformer play [game]          - Play a generated arena or a chosen level
//	platformer levels               - Pick a builtin or saved level interactively
//	platformer level <subcommand>   - Generate, show and manage saved levels
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible arenas
//	--db <path>          - Set database path (default: ~/.platformer/levels.db)
//	--config <path>      - Use a custom platformer config YAML
//	--log-level <level>  - debug, info, warn or error
//	--log-file <path>    - Write logs to a file while a game is running
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/storage"

	// Import games to register them
	_ "github.com/vovakirdan/tui-platformer/internal/games/catlaser"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagDBPath   string
	flagConfig   string
	flagLogLevel string
	flagLogFile  string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "platformer",
	Short: "Catatatatat - a laser cat platformer in your terminal",
	Long: `Catatatatat is a tile platformer played in the terminal: run, jump,
float and charge lasers to break crates.

Available commands:
  list     - Show games and builtin levels
  play     - Play a generated arena or a chosen level
  levels   - Interactive level picker
  level    - Generate, show and manage saved levels

Examples:
  platformer play
  platformer play --level meadow
  platformer play --seed 7 --difficulty hard
  platformer level generate --save cave1
  platformer levels`,
	SilenceUsage: true,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.platformer/levels.db", "Path to saved levels database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom platformer config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Log file used while a game is running")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(levelCmd)
}

// newLogger creates the command line logger on stderr.
func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
	})
	if level, err := log.ParseLevel(flagLogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
	}
	return logger
}

// gameLogger returns the logger used while the alternate screen is active.
// Without --log-file game logs are dropped. The returned func closes the file.
func gameLogger(logger *log.Logger) (*log.Logger, func()) {
	if flagLogFile == "" {
		return nil, func() {}
	}
	f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		logger.Warn("could not open log file", "path", flagLogFile, "error", err)
		return nil, func() {}
	}
	fileLogger := log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		Prefix:          "platformer",
		Level:           logger.GetLevel(),
	})
	return fileLogger, func() { f.Close() }
}

// runtimeConfig builds the runtime config from the terminal size and flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// openStore opens the saved levels database.
func openStore() (*storage.Store, error) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return nil, fmt.Errorf("opening levels database: %w", err)
	}
	return store, nil
}
