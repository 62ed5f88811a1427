package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

// KeyMapper translates Bubble Tea key messages to game actions.
// This centralizes key bindings and makes them testable.
type KeyMapper struct{}

// NewKeyMapper creates a new key mapper with default bindings.
func NewKeyMapper() *KeyMapper {
	return &KeyMapper{}
}

// MapKey translates a key message to an action.
// Returns the action (may be ActionNone) and whether it's a quit request.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	key := msg.String()

	// Global quit keys
	switch key {
	case "ctrl+c", "q":
		return core.ActionQuit, true
	}

	switch key {
	case "a", "left":
		return core.ActionLeft, false
	case "d", "right":
		return core.ActionRight, false
	case "w", "up", " ":
		return core.ActionJump, false
	case "s", "down":
		return core.ActionCrouch, false
	case "z":
		return core.ActionRun, false
	case "x":
		return core.ActionShoot, false
	case "enter":
		return core.ActionConfirm, false
	case "b", "esc":
		return core.ActionBack, false
	case "p":
		return core.ActionPause, false
	case "r":
		return core.ActionRestart, false
	}

	return core.ActionNone, false
}

// HoldTracker turns key presses into held keys. Terminals report presses
// and autorepeats but never releases, so a movement key counts as held for
// holdTicks after its last press. Run and Shoot latch: one press holds,
// the next press releases. Other actions last a single frame.
type HoldTracker struct {
	holdTicks int
	tick      int
	until     map[core.Action]int
	latched   map[core.Action]bool
	once      []core.Action
}

// NewHoldTracker creates a tracker. holdTicks below 1 is treated as 1.
func NewHoldTracker(holdTicks int) *HoldTracker {
	return &HoldTracker{
		holdTicks: max(holdTicks, 1),
		until:     make(map[core.Action]int),
		latched:   make(map[core.Action]bool),
	}
}

// Press records a key press for the next frame.
func (h *HoldTracker) Press(a core.Action) {
	switch a {
	case core.ActionNone, core.ActionQuit:
		return
	case core.ActionRun, core.ActionShoot:
		if h.latched[a] {
			delete(h.latched, a)
		} else {
			h.latched[a] = true
		}
	case core.ActionLeft, core.ActionRight, core.ActionJump, core.ActionCrouch:
		h.until[a] = h.tick + h.holdTicks - 1
		// Opposite directions cancel so a turn is immediate.
		switch a {
		case core.ActionLeft:
			delete(h.until, core.ActionRight)
		case core.ActionRight:
			delete(h.until, core.ActionLeft)
		}
	default:
		h.once = append(h.once, a)
	}
}

// Latched reports whether a latching action is currently held.
func (h *HoldTracker) Latched(a core.Action) bool {
	return h.latched[a]
}

// Frame builds the input frame for the current tick and advances the clock.
func (h *HoldTracker) Frame() core.InputFrame {
	f := core.NewInputFrame()
	for a, until := range h.until {
		if h.tick <= until {
			f.Set(a)
		} else {
			delete(h.until, a)
		}
	}
	for a := range h.latched {
		f.Set(a)
	}
	for _, a := range h.once {
		f.Set(a)
	}
	h.once = h.once[:0]
	h.tick++
	return f
}

// Reset releases every key.
func (h *HoldTracker) Reset() {
	clear(h.until)
	clear(h.latched)
	h.once = h.once[:0]
}

// GameKeyMap holds the bindings shown in the play screen help bar.
type GameKeyMap struct {
	Move       key.Binding
	Jump       key.Binding
	Crouch     key.Binding
	Run        key.Binding
	Shoot      key.Binding
	Pause      key.Binding
	Restart    key.Binding
	Screenshot key.Binding
	Back       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view.
func (k GameKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Move, k.Jump, k.Run, k.Shoot, k.Pause, k.Help, k.Quit}
}

// FullHelp returns keybindings for the expanded help view.
func (k GameKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Move, k.Jump, k.Crouch, k.Run, k.Shoot},
		{k.Pause, k.Restart, k.Screenshot, k.Back, k.Help, k.Quit},
	}
}

// DefaultGameKeyMap returns the default play screen bindings.
func DefaultGameKeyMap() GameKeyMap {
	return GameKeyMap{
		Move: key.NewBinding(
			key.WithKeys("a", "d", "left", "right"),
			key.WithHelp("←/→", "move"),
		),
		Jump: key.NewBinding(
			key.WithKeys("w", "up", " "),
			key.WithHelp("space", "jump"),
		),
		Crouch: key.NewBinding(
			key.WithKeys("s", "down"),
			key.WithHelp("↓", "crouch"),
		),
		Run: key.NewBinding(
			key.WithKeys("z"),
			key.WithHelp("z", "run"),
		),
		Shoot: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "charge/fire"),
		),
		Pause: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "pause"),
		),
		Restart: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "restart"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc", "b"),
			key.WithHelp("esc", "back"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
