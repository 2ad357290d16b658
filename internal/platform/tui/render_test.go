package tui

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-shapes/internal/core"
)

func TestRenderScreenBodyPassesThrough(t *testing.T) {
	s := core.NewScreen(4, 3)
	s.DrawText(0, 2, "┌─┐")

	got := RenderScreen(s, 0)
	want := "    \n    \n┌─┐ "
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("RenderScreen mismatch (-want +got):\n%s", diff)
	}
}
