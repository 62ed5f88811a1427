package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// footerRows is the number of terminal rows below the game screen:
// the status line and the help bar.
const footerRows = 2

// statusSeconds is how long an event stays in the status line.
const statusSeconds = 2

// Options tunes the play screen.
type Options struct {
	HoldTicks int         // ticks a key stays held after its last press
	Logger    *log.Logger // receives game events; nil discards them
}

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	mapper    *KeyMapper
	tracker   *HoldTracker
	keys      GameKeyMap
	help      help.Model
	logger    *log.Logger
	gameState core.GameState

	status      string
	statusUntil int // tick at which the status line clears

	width    int
	quitting bool
	back     bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, opts Options) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if cfg.TickRate <= 0 {
		cfg.TickRate = 60
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	width, height := cfg.ScreenW, cfg.ScreenH
	cfg.ScreenH = max(height-footerRows, 0)

	h := help.New()
	h.Width = width

	return Model{
		game:    game,
		screen:  core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:  cfg,
		mapper:  NewKeyMapper(),
		tracker: NewHoldTracker(opts.HoldTicks),
		keys:    DefaultGameKeyMap(),
		help:    h,
		logger:  logger,
		width:   width,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	m.logger.Info("game started", "game", m.game.ID(), "seed", m.config.Seed,
		"screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	// Start the tick loop
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		return m.handleTick()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.back = true
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Screenshot):
		if path, err := m.saveScreenshot(); err != nil {
			m.logger.Error("screenshot failed", "err", err)
			m.setStatus("screenshot failed")
		} else {
			m.setStatus("saved " + path)
		}
		return m, nil
	}

	if action, _ := m.mapper.MapKey(msg); action != core.ActionNone {
		m.tracker.Press(action)
	}
	return m, nil
}

// handleResize processes window resize events.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	m.width = msg.Width
	m.help.Width = msg.Width
	m.config.ScreenW = msg.Width
	m.config.ScreenH = max(msg.Height-footerRows, 0)
	m.screen.Resize(m.config.ScreenW, m.config.ScreenH)

	// The viewport follows the terminal, so the level restarts.
	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.tracker.Reset()
	m.logger.Debug("resized", "screen", fmt.Sprintf("%dx%d", m.config.ScreenW, m.config.ScreenH))

	return m, nil
}

// handleTick processes simulation ticks.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	frame := m.tracker.Frame()
	result := m.game.Step(frame)
	m.gameState = result.State

	if frame.Has(core.ActionRestart) {
		m.tracker.Reset()
	}
	if len(result.Events) > 0 {
		for _, e := range result.Events {
			m.logger.Debug("event", "tick", result.State.Tick, "event", e)
		}
		m.setStatus(strings.Join(result.Events, ", "))
	}
	if m.status != "" && m.gameState.Tick >= m.statusUntil && !m.gameState.Paused {
		m.status = ""
	}

	// Continue ticking
	return m, tickCmd(m.config.TickRate)
}

// setStatus shows text in the status line for a couple of seconds.
func (m *Model) setStatus(text string) {
	m.status = text
	m.statusUntil = m.gameState.Tick + statusSeconds*m.config.TickRate
}

// saveScreenshot saves the current screen to a file and returns its path.
func (m *Model) saveScreenshot() (string, error) {
	// Render current state
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(home, ".platformer", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		return "", err
	}
	m.logger.Info("screenshot saved", "path", path)
	return path, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting || m.back {
		return ""
	}

	// Render game to screen buffer
	m.game.Render(m.screen)

	var b strings.Builder
	b.WriteString(RenderScreen(m.screen))
	b.WriteString("\n")

	statusStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("229"))
	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))
	return b.String()
}

// Status returns the status line text.
func (m Model) Status() string {
	return m.status
}

// IsGoingBack returns true if the player left with the back key.
func (m Model) IsGoingBack() bool {
	return m.back
}

// Run starts the Bubble Tea program for the game.
// Returns true if the player pressed back, false if quitting.
func Run(game registry.Game, cfg core.RuntimeConfig, opts Options) (goBack bool, err error) {
	model := NewModel(game, cfg, opts)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return false, err
	}
	m, ok := finalModel.(Model)
	if !ok {
		return false, nil
	}
	return m.IsGoingBack(), nil
}
