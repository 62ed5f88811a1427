package main

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/catlaser"
	sim "github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"
	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels/formats"
	"github.com/vovakirdan/tui-platformer/internal/platform/tui"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

var (
	flagGenKind    string
	flagGenWidth   int
	flagGenHeight  int
	flagGenDensity float64
	flagGenSave    string
	flagGenYAML    bool
	flagGenPreset  string
)

var levelCmd = &cobra.Command{
	Use:   "level",
	Short: "Generate, show and manage saved levels",
	Long: `Level tools. Levels are stored as level text in the database
given by --db.

Examples:
  platformer level generate --seed 3
  platformer level generate --kind scatter --density 0.3 --save dots
  platformer level show meadow
  platformer level save cave1 ./cave1.lvl
  platformer level load cave1 > cave1.lvl
  platformer level ls
  platformer level rm cave1`,
}

var levelGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a level and print its text",
	Args:  cobra.NoArgs,
	RunE:  runLevelGenerate,
}

var levelShowCmd = &cobra.Command{
	Use:   "show <name|id|file>",
	Short: "Draw a saved level, builtin level or level file",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelShow,
}

var levelSaveCmd = &cobra.Command{
	Use:   "save <name> <file|->",
	Short: "Save a level file under a name",
	Args:  cobra.ExactArgs(2),
	RunE:  runLevelSave,
}

var levelLoadCmd = &cobra.Command{
	Use:   "load <name>",
	Short: "Print the text of a saved level",
	Args:  cobra.ExactArgs(1),
	RunE:  runLevelLoad,
}

var levelListCmd = &cobra.Command{
	Use:     "ls",
	Aliases: []string{"list"},
	Short:   "List saved levels",
	Args:    cobra.NoArgs,
	RunE:    runLevelList,
}

var levelRemoveCmd = &cobra.Command{
	Use:     "rm <name>",
	Aliases: []string{"delete"},
	Short:   "Delete a saved level",
	Args:    cobra.ExactArgs(1),
	RunE:    runLevelRemove,
}

func init() {
	levelGenerateCmd.Flags().StringVar(&flagGenKind, "kind", "arena", "Generator: arena or scatter")
	levelGenerateCmd.Flags().IntVar(&flagGenWidth, "width", 0, "Width in tiles (0 = config default)")
	levelGenerateCmd.Flags().IntVar(&flagGenHeight, "height", 0, "Height in tiles (0 = config default)")
	levelGenerateCmd.Flags().Float64Var(&flagGenDensity, "density", 0.25, "Tile density for scatter levels")
	levelGenerateCmd.Flags().StringVar(&flagGenSave, "save", "", "Also save the level under this name")
	levelGenerateCmd.Flags().BoolVar(&flagGenYAML, "yaml", false, "Print a YAML level file instead of level text")
	levelGenerateCmd.Flags().StringVar(&flagGenPreset, "difficulty", "", "Difficulty preset for arena hazards")

	levelCmd.AddCommand(levelGenerateCmd)
	levelCmd.AddCommand(levelShowCmd)
	levelCmd.AddCommand(levelSaveCmd)
	levelCmd.AddCommand(levelLoadCmd)
	levelCmd.AddCommand(levelListCmd)
	levelCmd.AddCommand(levelRemoveCmd)
}

func runLevelGenerate(cmd *cobra.Command, _ []string) error {
	logger := newLogger()

	cfg, err := config.LoadPlatformer(flagConfig)
	if err != nil {
		return err
	}
	if flagGenPreset != "" {
		preset := config.ParsePreset(flagGenPreset)
		if preset == "" {
			return fmt.Errorf("unknown difficulty %q", flagGenPreset)
		}
		config.ApplyPlatformerPreset(&cfg, preset)
	}

	seed := flagSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	var layout levels.Layout
	switch flagGenKind {
	case "arena":
		opts := cfg.ArenaOptions()
		if flagGenWidth > 0 {
			opts.Width = flagGenWidth
		}
		if flagGenHeight > 0 {
			opts.Height = flagGenHeight
		}
		if opts.Width < 3 || opts.Height < opts.SpawnY+2 {
			return fmt.Errorf("arena of %dx%d is too small", opts.Width, opts.Height)
		}
		layout = levels.Arena(rng, opts)
	case "scatter":
		w, h := cfg.Arena.Width, cfg.Arena.Height
		if flagGenWidth > 0 {
			w = flagGenWidth
		}
		if flagGenHeight > 0 {
			h = flagGenHeight
		}
		if w < 2 || h < 6 {
			return fmt.Errorf("scatter level of %dx%d is too small", w, h)
		}
		layout = levels.Scatter(rng, w, h, flagGenDensity)
	default:
		return fmt.Errorf("unknown generator %q", flagGenKind)
	}
	logger.Debug("generated level", "kind", flagGenKind, "seed", seed,
		"size", fmt.Sprintf("%dx%d", layout.Width, layout.Height))

	code := layout.String()
	if flagGenSave != "" {
		store, err := openStore()
		if err != nil {
			return err
		}
		defer store.Close()
		if err := store.SaveLevel(flagGenSave, code); err != nil {
			return err
		}
		logger.Info("level saved", "name", flagGenSave)
	}

	if flagGenYAML {
		id := flagGenSave
		if id == "" {
			id = fmt.Sprintf("%s-%d", flagGenKind, seed)
		}
		data, err := formats.MarshalYAML(formats.Level{
			ID:         id,
			Name:       id,
			Background: string(layout.Background),
			Code:       code,
			Metadata:   map[string]string{"generator": flagGenKind, "seed": fmt.Sprint(seed)},
		})
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), string(data))
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), code)
	return nil
}

// resolveLevel finds a level by saved name, builtin ID or file path, in
// that order.
func resolveLevel(ref string) (name, code, background string, err error) {
	if store, openErr := openStore(); openErr == nil {
		rec, loadErr := store.LoadLevel(ref)
		store.Close()
		if loadErr == nil {
			return rec.Name, rec.Code, "", nil
		}
		if !errors.Is(loadErr, storage.ErrLevelNotFound) {
			return "", "", "", loadErr
		}
	}
	if lvl, loadErr := levels.Builtin().LoadByID(ref); loadErr == nil {
		return lvl.Name, lvl.Code(), string(lvl.Layout.Background), nil
	}
	code, background, err = readLevelFile(ref)
	if err != nil {
		return "", "", "", fmt.Errorf("no saved level, builtin level or file named %q: %w", ref, err)
	}
	return ref, code, background, nil
}

func runLevelShow(cmd *cobra.Command, args []string) error {
	name, code, background, err := resolveLevel(args[0])
	if err != nil {
		return err
	}
	layout, err := levels.Parse(code)
	if err != nil {
		return err
	}
	if err := layout.Validate(); err != nil {
		return err
	}

	// Draw the whole level once: two cells per tile column, one row per tile
	// row, plus the HUD.
	catlaser.SetConfigPath(flagConfig)
	catlaser.SetLevelBackground(background)
	game := catlaser.NewWithCode(name, code)
	w := max(layout.Width*2, catlaser.MinScreenW)
	h := max(layout.Height+1, catlaser.MinScreenH)
	game.Reset(core.RuntimeConfig{ScreenW: w, ScreenH: h, TickRate: flagFPS, Seed: 1})
	if err := game.Err(); err != nil {
		return err
	}
	game.Step(core.NewInputFrame())

	screen := core.NewScreen(w, h)
	game.Render(screen)

	out := cmd.OutOrStdout()
	if background == "" {
		background = string(sim.SheetBgNature)
	}
	fmt.Fprintf(out, "%s  %dx%d  background %s\n\n", name, layout.Width, layout.Height, background)
	fmt.Fprintln(out, tui.RenderScreen(screen))
	return nil
}

func runLevelSave(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	code, _, err := readLevelFile(args[1])
	if err != nil {
		return err
	}
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.SaveLevel(args[0], code); err != nil {
		return err
	}
	logger.Info("level saved", "name", args[0], "db", flagDBPath)
	return nil
}

func runLevelLoad(cmd *cobra.Command, args []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	rec, err := store.LoadLevel(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), rec.Code)
	return nil
}

func runLevelList(cmd *cobra.Command, _ []string) error {
	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	records, err := store.ListLevels()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(records) == 0 {
		fmt.Fprintln(out, "No saved levels.")
		return nil
	}

	maxNameLen := 4 // "Name" header
	for _, r := range records {
		maxNameLen = max(maxNameLen, len(r.Name))
	}
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "Name", "Size", "Updated")
	fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, "----", "----", "-------")
	for _, r := range records {
		size := fmt.Sprintf("%dx%d", r.Width, r.Height)
		fmt.Fprintf(out, "  %-*s  %-7s  %s\n", maxNameLen, r.Name, size, r.UpdatedAt.Format("Jan 02 15:04"))
	}
	return nil
}

func runLevelRemove(_ *cobra.Command, args []string) error {
	logger := newLogger()

	store, err := openStore()
	if err != nil {
		return err
	}
	defer store.Close()

	if err := store.DeleteLevel(args[0]); err != nil {
		return err
	}
	logger.Info("level deleted", "name", args[0])
	return nil
}
