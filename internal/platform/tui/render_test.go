package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/tui-ski/internal/core"
)

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetColored(0, 0, 'T', core.ColorGreen)
	s.SetColored(1, 0, 'T', core.ColorGreen)
	s.SetColored(2, 0, 'o', core.ColorBrown)
	s.SetColored(5, 1, '@', core.ColorCyan)

	out := RenderScreen(s)
	plain := ansi.Strip(out)
	lines := strings.Split(plain, "\n")

	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	if lines[0] != "TTo   " {
		t.Errorf("line 0 = %q, expected %q", lines[0], "TTo   ")
	}
	if lines[1] != "     @" {
		t.Errorf("line 1 = %q, expected %q", lines[1], "     @")
	}
}

func TestColorStylesCoverPalette(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for color %d", c)
		}
	}
}
