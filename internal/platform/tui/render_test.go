package tui

import (
	"strings"
	"testing"

	"github.com/mpetrov/gosnake/internal/core"
)

func TestRenderScreenShape(t *testing.T) {
	s := core.NewScreen(8, 3)
	s.DrawText(0, 0, "top")
	s.DrawText(0, 2, "bottom")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Expected 3 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "top") {
		t.Errorf("Row 0 missing text: %q", lines[0])
	}
	if !strings.Contains(lines[2], "bottom") {
		t.Errorf("Row 2 missing text: %q", lines[2])
	}
}

func TestRenderScreenKeepsRuneOrder(t *testing.T) {
	s := core.NewScreen(6, 1)
	s.SetCell(0, 0, 'a', core.ColorRed)
	s.SetCell(1, 0, 'b', core.ColorRed)
	s.SetCell(2, 0, 'c', core.ColorGreen)
	s.SetCell(3, 0, 'd', core.ColorDefault)

	out := RenderScreen(s)
	for _, r := range []string{"a", "b", "c", "d"} {
		if !strings.Contains(out, r) {
			t.Errorf("Output missing %q: %q", r, out)
		}
	}
	if strings.Index(out, "a") > strings.Index(out, "c") {
		t.Error("Color runs must preserve cell order")
	}
}
