// Package catlaser adapts the platformer simulation to the game registry:
// it picks a level, steps the simulation once per tick and draws it as
// terminal glyphs.
package catlaser

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	sim "github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"
	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// Minimum screen size in cells.
const (
	MinScreenW = 20
	MinScreenH = 8
)

// hudRows is the number of rows above the play field.
const hudRows = 1

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// levelCode and levelID store the level chosen via CLI. The code wins.
var (
	levelCode       string
	levelBackground sim.Sheet
	levelID         string
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelCode plays the given level text instead of a generated arena.
func SetLevelCode(code string) {
	levelCode = code
}

// SetLevelBackground sets the background sheet for a level set with
// SetLevelCode. Empty means the nature background.
func SetLevelBackground(sheet string) {
	levelBackground = sim.Sheet(sheet)
}

// SetLevelID plays a builtin level instead of a generated arena.
func SetLevelID(id string) {
	levelID = id
}

// Game implements the platformer on top of the simulation core.
type Game struct {
	// Level source; empty fields fall back to the CLI selection.
	code string
	name string

	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	params  sim.Params

	state  *sim.State
	draws  sim.DrawList
	paused bool

	levelName string
	loadErr   error
	tooSmall  bool
}

// New creates a game that plays the CLI-selected level, or a generated
// arena when none is selected.
func New() *Game {
	return &Game{}
}

// NewWithCode creates a game that plays the given level text.
func NewWithCode(name, code string) *Game {
	return &Game{name: name, code: code}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "catlaser"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Catatatatat"
}

// Reset loads the config and level and starts the simulation.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	// Load game config
	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		cfg = config.DefaultPlatformerConfig()
	}

	// Apply difficulty preset if set
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.tooSmall = runtime.ScreenW < MinScreenW || runtime.ScreenH < MinScreenH
	g.params = cfg.Fit(cfg.ToParams(), runtime.ScreenW, runtime.ScreenH-hudRows, CellW, CellH)

	g.paused = false
	g.draws.Reset()
	g.state = nil
	g.loadErr = nil

	layout, name, err := g.layout()
	if err != nil {
		g.loadErr = err
		return
	}
	if levelBackground != "" {
		layout.Background = levelBackground
	}
	if layout.Background == "" {
		layout.Background = sim.SheetBgNature
	}
	world, err := layout.Build(g.params)
	if err != nil {
		g.loadErr = err
		return
	}
	// Short levels keep the hills on their floor.
	g.params.ViewHeight = min(g.params.ViewHeight, float64(world.Height*sim.TileSize))
	g.levelName = name
	g.state = sim.NewState(world, g.params)
}

// layout resolves the level to play.
func (g *Game) layout() (levels.Layout, string, error) {
	switch {
	case g.code != "":
		l, err := levels.Parse(g.code)
		return l, g.name, err
	case levelCode != "":
		l, err := levels.Parse(levelCode)
		return l, "custom", err
	case levelID != "":
		lvl, err := levels.Builtin().LoadByID(levelID)
		if err != nil {
			return levels.Layout{}, "", err
		}
		return lvl.Layout, lvl.Name, nil
	}
	rng := rand.New(rand.NewSource(g.runtime.Seed))
	return levels.Arena(rng, g.cfg.ArenaOptions()), fmt.Sprintf("arena #%d", g.runtime.Seed), nil
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || g.state == nil {
		return core.StepResult{State: g.State()}
	}

	// Handle restart
	if in.Has(core.ActionRestart) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State(), Events: []string{"level restarted"}}
	}

	// Handle pause toggle
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	before := g.state.Stats
	g.draws.Reset()
	g.state.Update(inputOf(in), &g.draws)

	return core.StepResult{State: g.State(), Events: events(before, g.state.Stats)}
}

// inputOf maps platform actions to the controller's held keys.
func inputOf(in core.InputFrame) sim.Input {
	return sim.Input{
		Left:   in.Has(core.ActionLeft),
		Right:  in.Has(core.ActionRight),
		Jump:   in.Has(core.ActionJump),
		Crouch: in.Has(core.ActionCrouch),
		Run:    in.Has(core.ActionRun),
		Shoot:  in.Has(core.ActionShoot),
	}
}

// events describes what changed between two stat samples.
func events(before, after sim.Stats) []string {
	var out []string
	if n := after.Breaks - before.Breaks; n > 0 {
		out = append(out, plural(n, "crate broken", "crates broken"))
	}
	if after.Respawns > before.Respawns {
		out = append(out, "fell out, respawned")
	}
	return out
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return fmt.Sprintf("%d %s", n, many)
}

// Render draws the last simulated tick and the HUD.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Check for screen too small
	if g.tooSmall {
		msg := "Window too small"
		hint := fmt.Sprintf("Need %dx%d", MinScreenW, MinScreenH)
		dst.DrawTextCentered(dst.Height()/2-1, msg)
		dst.DrawTextCentered(dst.Height()/2+1, hint)
		return
	}

	if g.loadErr != nil {
		g.drawCenteredBox(dst, "LEVEL ERROR", g.loadErr.Error())
		return
	}

	g.draws.Replay(screenCanvas{dst: dst, top: hudRows, rows: dst.Height() - hudRows})
	g.renderHUD(dst)

	if g.paused {
		g.drawCenteredBox(dst, "PAUSED", "Press P to resume")
	}
}

// renderHUD draws the level name, counters and the charge meter.
func (g *Game) renderHUD(dst *core.Screen) {
	dst.DrawTextColored(1, 0, g.levelName, core.ColorBrightWhite)

	st := g.state.Stats
	counters := fmt.Sprintf("Crates: %d  Shots: %d", st.Breaks, st.Shots)
	dst.DrawTextCentered(0, counters)

	meter := g.chargeMeter()
	dst.DrawTextColored(dst.Width()-len([]rune(meter))-1, 0, meter, core.ColorBrightCyan)
}

// chargeMeter renders the laser tier being charged, one mark per tier.
func (g *Game) chargeMeter() string {
	params := g.state.Params
	p := g.state.World.Player()
	tiers := params.MaxCharge/params.ChargeTierTicks + 1
	tier := -1
	if p != nil && p.Player.Charging {
		tier = params.ChargeTier(g.state.Tick - p.Player.ChargeStart)
	}
	meter := []rune("Charge [")
	for i := range tiers {
		if i <= tier {
			meter = append(meter, '#')
		} else {
			meter = append(meter, '.')
		}
	}
	return string(append(meter, ']'))
}

// drawCenteredBox draws a centered message box.
func (g *Game) drawCenteredBox(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	box := core.NewRect(0, 0, w, h).Centered(core.Min(core.Max(len(title), len(subtitle))+4, w), 5)
	boxX, boxY, boxW := box.X, box.Y, box.W

	// Draw box background
	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := core.Max(boxX+(boxW-len(subtitle))/2, boxX+1)
	dst.DrawText(subtitleX, boxY+3, subtitle)
}

// State returns the current game state. Score counts broken crates.
func (g *Game) State() core.GameState {
	if g.state == nil {
		return core.GameState{Paused: g.paused}
	}
	return core.GameState{
		Score:  g.state.Stats.Breaks,
		Tick:   g.state.Tick,
		Paused: g.paused,
	}
}

// LevelName returns the display name of the level being played.
func (g *Game) LevelName() string {
	return g.levelName
}

// LevelCode returns the current level in the level text format, with
// broken crates removed.
func (g *Game) LevelCode() string {
	if g.state == nil {
		return ""
	}
	return levels.Encode(g.state.World)
}

// Err returns the level load error, if any.
func (g *Game) Err() error {
	return g.loadErr
}

// Register the game with the registry
func init() {
	registry.Register("catlaser", func() registry.Game {
		return New()
	})
}
