package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/games/catlaser"
	sim "github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"
	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var (
	flagDifficulty string
	flagLevelID    string
	flagLevelFile  string
	flagSavedLevel string
	flagSunset     bool
)

var playCmd = &cobra.Command{
	Use:   "play [game]",
	Short: "Play a game",
	Long: `Start playing. Without a level flag a jump arena is generated
from --seed.

Controls:
  A/D, Left/Right  - Walk
  W/Up/Space       - Jump (keep pressing to float)
  S/Down           - Crouch
  Z                - Toggle running
  X                - Start charging a laser, press again to fire
  P                - Pause
  R                - Restart the level
  Esc              - Back
  Q/Ctrl+C         - Quit

Difficulty options:
  easy   - No spikes, fewer crates
  normal - Default arena at 30% hazard scaling
  hard   - More spikes, deeper ceilings, stronger knockback
  fixed  - Config values without scaling

Examples:
  platformer play
  platformer play --seed 42 --difficulty hard
  platformer play --level crate-cave
  platformer play --file ./my-level.lvl
  platformer play --saved cave1`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	playCmd.Flags().StringVar(&flagLevelID, "level", "", "Builtin level ID (see 'platformer list')")
	playCmd.Flags().StringVar(&flagLevelFile, "file", "", "Level file: .lvl/.yaml, or raw level text")
	playCmd.Flags().StringVar(&flagSavedLevel, "saved", "", "Name of a level saved in the database")
	playCmd.Flags().BoolVar(&flagSunset, "sunset", false, "Use the sunset background")
	playCmd.MarkFlagsMutuallyExclusive("level", "file", "saved")
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	gameID := "catlaser"
	if len(args) > 0 {
		gameID = args[0]
	}
	// Check if game exists
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'platformer list' to see available games", gameID)
	}
	if flagDifficulty != "" && config.ParsePreset(flagDifficulty) == "" {
		return fmt.Errorf("unknown difficulty %q", flagDifficulty)
	}

	catlaser.SetConfigPath(flagConfig)
	catlaser.SetDifficultyPreset(flagDifficulty)

	switch {
	case flagLevelID != "":
		catlaser.SetLevelID(flagLevelID)
	case flagLevelFile != "":
		code, bg, err := readLevelFile(flagLevelFile)
		if err != nil {
			return err
		}
		catlaser.SetLevelCode(code)
		catlaser.SetLevelBackground(bg)
	case flagSavedLevel != "":
		store, err := openStore()
		if err != nil {
			return err
		}
		rec, err := store.LoadLevel(flagSavedLevel)
		store.Close()
		if err != nil {
			return err
		}
		catlaser.SetLevelCode(rec.Code)
	}
	if flagSunset {
		catlaser.SetLevelBackground(string(sim.SheetBgNatureSunset))
	}

	_, err := playGame(gameID, logger)
	return err
}

// playGame runs one game session. It reports whether the player pressed back.
func playGame(gameID string, logger *log.Logger) (bool, error) {
	game, err := registry.Create(gameID)
	if err != nil {
		return false, fmt.Errorf("creating game: %w", err)
	}

	holdTicks := config.DefaultPlatformerConfig().Input.HoldTicks
	if cfg, err := config.LoadPlatformer(flagConfig); err == nil {
		holdTicks = cfg.Input.HoldTicks
	} else {
		logger.Warn("could not load config, using defaults", "path", flagConfig, "error", err)
	}

	gl, closeLog := gameLogger(logger)
	defer closeLog()

	cfg := runtimeConfig()
	logger.Debug("starting game", "game", gameID, "screen", fmt.Sprintf("%dx%d", cfg.ScreenW, cfg.ScreenH))
	goBack, err := tui.Run(game, cfg, tui.Options{HoldTicks: holdTicks, Logger: gl})
	if err != nil {
		return false, fmt.Errorf("running game: %w", err)
	}

	if g, ok := game.(*catlaser.Game); ok && g.Err() != nil {
		logger.Error("level failed to load", "error", g.Err())
	}
	return goBack, nil
}

// readLevelFile reads a level file. Files with a level extension go through
// the level loader; anything else is raw level text. "-" reads stdin.
func readLevelFile(path string) (code, background string, err error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("reading stdin: %w", err)
		}
		return strings.TrimSpace(string(data)), "", nil
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".lvl", ".yaml", ".yml":
		loader := levels.NewLoader(filepath.Dir(path))
		lvl, err := loader.LoadFile(filepath.Base(path))
		if err != nil {
			return "", "", err
		}
		return lvl.Code(), string(lvl.Layout.Background), nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return "", "", fmt.Errorf("reading level file: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return "", "", errors.New("level file is empty")
	}
	return text, "", nil
}
