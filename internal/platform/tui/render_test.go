package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-platformer/internal/core"
)

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorDimBlue; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 3)
	s.DrawTextColored(0, 0, "ab", core.ColorGreen)
	s.DrawTextColored(2, 0, "cd", core.ColorBrown)
	s.DrawText(0, 2, "end")

	out := RenderScreen(s)
	if got := strings.Count(out, "\n"); got != 2 {
		t.Errorf("output has %d newlines, expected 2", got)
	}
	for _, want := range []string{"ab", "cd", "end"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q: %q", want, out)
		}
	}
}
