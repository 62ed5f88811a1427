package tui

import (
	"errors"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-platformer/internal/storage"
)

const savedLevel = "3,1\nnature_ct*3\n,,,"

func openPickerStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "levels.db"))
	if err != nil {
		t.Fatalf("storage.Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func pickerUpdate(t *testing.T, m PickerModel, msg tea.Msg) PickerModel {
	t.Helper()
	next, _ := m.Update(msg)
	pm, ok := next.(PickerModel)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return pm
}

func TestLoadLevelEntries(t *testing.T) {
	builtin, err := LoadLevelEntries(nil)
	if err != nil {
		t.Fatalf("LoadLevelEntries(nil): %v", err)
	}
	if len(builtin) == 0 {
		t.Fatal("no builtin levels")
	}
	for _, e := range builtin {
		if e.Source != SourceBuiltin || e.Code == "" {
			t.Errorf("bad builtin entry %+v", e)
		}
	}

	store := openPickerStore(t)
	if err := store.SaveLevel("mine", savedLevel); err != nil {
		t.Fatal(err)
	}
	all, err := LoadLevelEntries(store)
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != len(builtin)+1 {
		t.Fatalf("entries = %d, expected %d", len(all), len(builtin)+1)
	}
	last := all[len(all)-1]
	if last.Name != "mine" || last.Source != SourceSaved || last.Width != 3 || last.Height != 1 {
		t.Errorf("saved entry = %+v", last)
	}
}

func TestPickerSelect(t *testing.T) {
	entries := []LevelEntry{
		{Name: "one", Source: SourceBuiltin, Width: 2, Height: 2},
		{Name: "two", Source: SourceBuiltin, Width: 3, Height: 3},
	}
	m := NewPickerModel(nil, entries, 80, 24)

	m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	e, ok := m.Selected()
	if !ok || e.Name != "two" {
		t.Errorf("Selected() = %+v, %v; expected two", e, ok)
	}
}

func TestPickerQuit(t *testing.T) {
	m := NewPickerModel(nil, []LevelEntry{{Name: "one"}}, 80, 24)
	m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if _, ok := m.Selected(); ok {
		t.Error("quit should not select")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestPickerDelete(t *testing.T) {
	store := openPickerStore(t)
	if err := store.SaveLevel("mine", savedLevel); err != nil {
		t.Fatal(err)
	}
	entries := []LevelEntry{
		{Name: "meadow", Source: SourceBuiltin},
		{Name: "mine", Source: SourceSaved},
	}
	m := NewPickerModel(store, entries, 80, 24)

	// Builtins stay.
	m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if len(m.entries) != 2 {
		t.Fatalf("builtin deleted: %+v", m.entries)
	}

	m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyDown})
	m = pickerUpdate(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	if len(m.entries) != 1 || m.entries[0].Name != "meadow" {
		t.Errorf("entries after delete = %+v", m.entries)
	}
	if _, err := store.LoadLevel("mine"); !errors.Is(err, storage.ErrLevelNotFound) {
		t.Errorf("LoadLevel after delete: %v", err)
	}
}

func TestCenterText(t *testing.T) {
	tests := []struct {
		text  string
		width int
		want  string
	}{
		{"ab", 6, "  ab"},
		{"abc", 3, "abc"},
		{"toolong", 4, "toolong"},
	}
	for _, tc := range tests {
		t.Run(tc.text, func(t *testing.T) {
			if got := centerText(tc.text, tc.width); got != tc.want {
				t.Errorf("centerText(%q, %d) = %q, expected %q", tc.text, tc.width, got, tc.want)
			}
		})
	}
}
