package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List games and builtin levels",
	Long:  `Shows the registered games and the levels shipped with the binary.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	games := registry.List()

	if len(games) == 0 {
		fmt.Println("No games available.")
		return nil
	}

	fmt.Println("Available games:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, g := range games {
		maxIDLen = max(maxIDLen, len(g.ID))
	}

	fmt.Printf("  %-*s  %s\n", maxIDLen, "ID", "Title")
	fmt.Printf("  %-*s  %s\n", maxIDLen, "--", "-----")
	for _, g := range games {
		fmt.Printf("  %-*s  %s\n", maxIDLen, g.ID, g.Title)
	}

	builtin, err := levels.Builtin().LoadAll()
	if err != nil {
		return err
	}
	fmt.Println()
	fmt.Println("Builtin levels:")
	fmt.Println()

	maxIDLen = 2
	for _, lvl := range builtin {
		maxIDLen = max(maxIDLen, len(lvl.ID))
	}
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "ID", "Size", "Name")
	fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, "--", "----", "----")
	for _, lvl := range builtin {
		size := fmt.Sprintf("%dx%d", lvl.Layout.Width, lvl.Layout.Height)
		fmt.Printf("  %-*s  %-7s  %s\n", maxIDLen, lvl.ID, size, lvl.Name)
	}

	fmt.Println()
	fmt.Println("Run 'platformer play --level <id>' to play a level.")
	return nil
}
