package registry

import (
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

type fakeGame struct{ title string }

func (g fakeGame) ID() string                           { return "fake" }
func (g fakeGame) Title() string                        { return g.title }
func (g fakeGame) Reset(core.RuntimeConfig)             {}
func (g fakeGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g fakeGame) Render(*core.Screen)                  {}
func (g fakeGame) State() core.GameState                { return core.GameState{} }

func TestRegisterCreateList(t *testing.T) {
	Register("zz-test", func() Game { return fakeGame{title: "Zed"} })
	Register("aa-test", func() Game { return fakeGame{title: "Ay"} })

	if !Exists("zz-test") || Exists("missing") {
		t.Error("Exists reports the wrong games")
	}

	g, err := Create("aa-test")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "Ay" {
		t.Errorf("title = %q", g.Title())
	}
	if _, err := Create("missing"); err == nil {
		t.Error("Create of an unknown game should fail")
	}

	list := List()
	ai, zi := -1, -1
	for i, info := range list {
		switch info.ID {
		case "aa-test":
			ai = i
		case "zz-test":
			zi = i
			if info.Title != "Zed" {
				t.Errorf("listed title = %q", info.Title)
			}
		}
	}
	if ai < 0 || zi < 0 || ai > zi {
		t.Errorf("List() = %+v, expected both games sorted by ID", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup-test", func() Game { return fakeGame{} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup-test", func() Game { return fakeGame{} })
}
