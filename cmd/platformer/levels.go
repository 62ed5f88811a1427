package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/catlaser"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "Pick a builtin or saved level interactively",
	Long: `Lists the builtin levels and the levels saved in the database.
Enter plays the selected level; Esc in the game returns to the list.

Controls:
  Up/Down/j/k  - Navigate
  Enter        - Play
  X            - Delete a saved level
  Q/Esc        - Quit`,
	RunE: runLevels,
}

func runLevels(_ *cobra.Command, _ []string) error {
	logger := newLogger()

	store, err := openStore()
	if err != nil {
		logger.Warn("saved levels unavailable", "error", err)
	}
	if store != nil {
		defer store.Close()
	}

	catlaser.SetConfigPath(flagConfig)

	for {
		cfg := runtimeConfig()
		entry, ok, err := tui.RunLevelPicker(store, cfg.ScreenW, cfg.ScreenH)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}

		if entry.Source == tui.SourceBuiltin {
			catlaser.SetLevelCode("")
			catlaser.SetLevelID(entry.Name)
		} else {
			catlaser.SetLevelID("")
			catlaser.SetLevelCode(entry.Code)
		}

		goBack, err := playGame("catlaser", logger)
		if err != nil {
			return err
		}
		if !goBack {
			return nil
		}
	}
}
