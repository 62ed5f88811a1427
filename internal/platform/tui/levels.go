package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels"
	"github.com/vovakirdan/tui-platformer/internal/storage"
)

// Level sources shown in the picker.
const (
	SourceBuiltin = "builtin"
	SourceSaved   = "saved"
)

// LevelEntry is one row of the level picker.
type LevelEntry struct {
	Name   string
	Source string
	Width  int
	Height int
	Code   string
}

// PickerKeyMap defines the key bindings for the level picker.
type PickerKeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Select key.Binding
	Delete key.Binding
	Quit   key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k PickerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Select, k.Delete, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k PickerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select},
		{k.Delete, k.Quit},
	}
}

// DefaultPickerKeyMap returns default key bindings.
func DefaultPickerKeyMap() PickerKeyMap {
	return PickerKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("up/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("down/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "play"),
		),
		Delete: key.NewBinding(
			key.WithKeys("x", "delete"),
			key.WithHelp("x", "delete saved"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// LoadLevelEntries lists the builtin levels followed by the saved ones.
// A nil store lists builtins only.
func LoadLevelEntries(store *storage.Store) ([]LevelEntry, error) {
	builtin, err := levels.Builtin().LoadAll()
	if err != nil {
		return nil, err
	}
	entries := make([]LevelEntry, 0, len(builtin))
	for _, lvl := range builtin {
		entries = append(entries, LevelEntry{
			Name:   lvl.ID,
			Source: SourceBuiltin,
			Width:  lvl.Layout.Width,
			Height: lvl.Layout.Height,
			Code:   lvl.Code(),
		})
	}
	if store == nil {
		return entries, nil
	}

	saved, err := store.ListLevels()
	if err != nil {
		return nil, err
	}
	for _, rec := range saved {
		entries = append(entries, LevelEntry{
			Name:   rec.Name,
			Source: SourceSaved,
			Width:  rec.Width,
			Height: rec.Height,
			Code:   rec.Code,
		})
	}
	return entries, nil
}

// PickerModel is the Bubble Tea model for choosing a level.
type PickerModel struct {
	store    *storage.Store
	entries  []LevelEntry
	table    table.Model
	help     help.Model
	keys     PickerKeyMap
	width    int
	height   int
	message  string
	selected *LevelEntry
	quitting bool
}

// NewPickerModel creates a picker over the given entries.
func NewPickerModel(store *storage.Store, entries []LevelEntry, width, height int) PickerModel {
	m := PickerModel{
		store:   store,
		entries: entries,
		help:    help.New(),
		keys:    DefaultPickerKeyMap(),
		width:   width,
		height:  height,
	}
	m.table = m.createTable()
	m.updateTableRows()
	return m
}

// createTable creates a new table with appropriate columns.
func (m *PickerModel) createTable() table.Model {
	nameWidth := 24
	if m.width > 60 {
		nameWidth = min(m.width-34, 40)
	}
	columns := []table.Column{
		{Title: "Level", Width: nameWidth},
		{Title: "Source", Width: 8},
		{Title: "Size", Width: 9},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithFocused(true),
		table.WithHeight(max(m.height-8, 3)), // Leave room for title, help and margins
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("57")).
		Bold(false)
	t.SetStyles(s)

	return t
}

// updateTableRows fills the table from the entries.
func (m *PickerModel) updateTableRows() {
	rows := make([]table.Row, len(m.entries))
	for i, e := range m.entries {
		rows[i] = table.Row{e.Name, e.Source, fmt.Sprintf("%dx%d", e.Width, e.Height)}
	}
	m.table.SetRows(rows)
	if m.table.Cursor() >= len(rows) {
		m.table.SetCursor(max(len(rows)-1, 0))
	}
}

// Init initializes the picker model.
func (m PickerModel) Init() tea.Cmd {
	return nil
}

// Update handles messages for the picker.
func (m PickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Select):
			if e, ok := m.current(); ok {
				m.selected = &e
				return m, tea.Quit
			}
			return m, nil

		case key.Matches(msg, m.keys.Delete):
			m.deleteCurrent()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		cursor := m.table.Cursor()
		m.table = m.createTable()
		m.updateTableRows()
		m.table.SetCursor(min(cursor, max(len(m.entries)-1, 0)))
		m.help.Width = msg.Width
		return m, nil
	}

	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// current returns the entry under the cursor.
func (m PickerModel) current() (LevelEntry, bool) {
	i := m.table.Cursor()
	if i < 0 || i >= len(m.entries) {
		return LevelEntry{}, false
	}
	return m.entries[i], true
}

// deleteCurrent removes the saved level under the cursor.
func (m *PickerModel) deleteCurrent() {
	e, ok := m.current()
	if !ok {
		return
	}
	if e.Source != SourceSaved || m.store == nil {
		m.message = "builtin levels cannot be deleted"
		return
	}
	if err := m.store.DeleteLevel(e.Name); err != nil {
		m.message = err.Error()
		return
	}
	i := m.table.Cursor()
	m.entries = append(m.entries[:i], m.entries[i+1:]...)
	m.updateTableRows()
	m.message = fmt.Sprintf("deleted %s", e.Name)
}

// View renders the picker.
func (m PickerModel) View() string {
	if m.quitting || m.selected != nil {
		return ""
	}

	var b strings.Builder

	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("229")).
		MarginBottom(1)
	b.WriteString(titleStyle.Render(centerText("CATATATATAT - LEVELS", m.width)))
	b.WriteString("\n\n")

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("240")).
		Padding(0, 1)
	if len(m.entries) == 0 {
		emptyStyle := lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true).
			Padding(2, 4)
		b.WriteString(tableStyle.Render(emptyStyle.Render("No levels found.\nSave one with: platformer level save")))
	} else {
		b.WriteString(tableStyle.Render(m.table.View()))
	}
	b.WriteString("\n")

	if m.message != "" {
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("214")).Render(m.message))
	}
	b.WriteString("\n")

	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))
	b.WriteString(helpStyle.Render(m.help.View(m.keys)))

	return b.String()
}

// Selected returns the chosen level, if any.
func (m PickerModel) Selected() (LevelEntry, bool) {
	if m.selected == nil {
		return LevelEntry{}, false
	}
	return *m.selected, true
}

// centerText centers text within the given width.
func centerText(text string, width int) string {
	if len(text) >= width {
		return text
	}
	padding := (width - len(text)) / 2
	return strings.Repeat(" ", padding) + text
}

// RunLevelPicker runs the level picker screen.
// Returns the chosen level and true, or false if the player quit.
func RunLevelPicker(store *storage.Store, width, height int) (LevelEntry, bool, error) {
	entries, err := LoadLevelEntries(store)
	if err != nil {
		return LevelEntry{}, false, err
	}
	model := NewPickerModel(store, entries, width, height)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	finalModel, err := p.Run()
	if err != nil {
		return LevelEntry{}, false, err
	}

	m, ok := finalModel.(PickerModel)
	if !ok {
		return LevelEntry{}, false, nil
	}
	e, ok := m.Selected()
	return e, ok, nil
}
