package levels

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/core"
	"github.com/vovakirdan/tui-platformer/internal/games/catlaser/levels/formats"
)

func TestBuiltinLevels(t *testing.T) {
	ids, err := Builtin().ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "crate-cave" || ids[1] != "meadow" {
		t.Fatalf("builtin ids = %v", ids)
	}

	for _, id := range ids {
		lvl, err := Builtin().LoadByID(id)
		if err != nil {
			t.Fatalf("LoadByID(%s): %v", id, err)
		}
		w, err := lvl.Build(core.DefaultParams())
		if err != nil {
			t.Fatalf("Build(%s): %v", id, err)
		}
		if w.Player() == nil {
			t.Errorf("%s has no player", id)
		}
	}

	meadow, _ := Builtin().LoadByID("meadow")
	if meadow.Name != "Meadow" || meadow.Layout.Width != 40 || meadow.Layout.Height != 10 {
		t.Errorf("meadow = %s %dx%d", meadow.Name, meadow.Layout.Width, meadow.Layout.Height)
	}
	if meadow.Metadata["author"] == "" {
		t.Error("meadow metadata should be loaded")
	}
	cave, _ := Builtin().LoadByID("crate-cave")
	if cave.Layout.Background != core.SheetBgNatureSunset {
		t.Errorf("crate-cave background = %q", cave.Layout.Background)
	}
}

func TestLoaderDirectory(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) {
		t.Helper()
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}

	write("tiny.lvl", "2,2\n_*1,nature_ct*1,_*1,nature_ct*1\nplayer,,,,\n")
	data, err := formats.MarshalYAML(formats.Level{ID: "alpha", Name: "Alpha", Code: "1,1\nnature_ct*1\n,"})
	if err != nil {
		t.Fatal(err)
	}
	write("alpha.yaml", string(data))
	write("broken.yaml", "id: broken\ncode: |\n  1,1\n  lava*1\n")
	write("notes.txt", "ignored")

	loader := NewLoader(dir)
	ids, err := loader.ListIDs()
	if err != nil {
		t.Fatalf("ListIDs: %v", err)
	}
	if len(ids) != 2 || ids[0] != "alpha" || ids[1] != "tiny" {
		t.Fatalf("ids = %v, expected [alpha tiny]", ids)
	}

	tiny, err := loader.LoadByID("tiny")
	if err != nil {
		t.Fatalf("LoadByID: %v", err)
	}
	if tiny.Layout.Sprite(0, 0) != CodePlayer || tiny.Layout.Tile(0, 1) != CodeNatureConnected {
		t.Errorf("tiny layout = %+v", tiny.Layout)
	}
	if tiny.Layout.Background != core.SheetBgNature {
		t.Errorf("default background = %q", tiny.Layout.Background)
	}

	if _, err := loader.LoadByID("missing"); err == nil {
		t.Error("expected an error for a missing level")
	}
	if _, err := loader.LoadFile("broken.yaml"); err == nil {
		t.Error("expected an error for an unknown tile code")
	}
}
