package render

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vovakirdan/tui-shapes/internal/core"
	"github.com/vovakirdan/tui-shapes/internal/shape"
)

func TestTableSize(t *testing.T) {
	tests := []struct{ n, w, h int }{
		{1, 3, 3},
		{4, 9, 9},
		{5, 11, 11},
	}
	for _, tc := range tests {
		w, h := TableSize(tc.n)
		if w != tc.w || h != tc.h {
			t.Errorf("TableSize(%d) = %dx%d, expected %dx%d", tc.n, w, h, tc.w, tc.h)
		}
	}
}

func TestTableDraw(t *testing.T) {
	s := core.NewScreen(7, 6)
	tbl := NewTable(s, '▒', ' ')

	if err := tbl.Draw(shape.MustDecode(0x2, 0x1), 1, 2); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	want := strings.Join([]string{
		"       ",
		"  ┌─┬─┐",
		"  │▒│ │",
		"  ├─┼─┤",
		"  │ │▒│",
		"  └─┴─┘",
	}, "\n")
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("Draw() mismatch (-want +got):\n%s", diff)
	}
}

func TestTableDrawSingleCell(t *testing.T) {
	s := core.NewScreen(3, 3)
	tbl := NewTable(s, '#', '.')

	if err := tbl.Draw(shape.MustDecode(0), 0, 0); err != nil {
		t.Fatalf("Draw() failed: %v", err)
	}

	want := "┌─┐\n│.│\n└─┘"
	if diff := cmp.Diff(want, s.String()); diff != "" {
		t.Errorf("Draw() mismatch (-want +got):\n%s", diff)
	}
}

func TestTableRedrawInPlace(t *testing.T) {
	s := core.NewScreen(9, 9)
	tbl := NewTable(s, '▒', ' ')

	sh, err := shape.New("corner", 'c', []uint64{0x04, 0x06, 0x06, 0x00})
	if err != nil {
		t.Fatalf("shape.New() failed: %v", err)
	}

	for i := 0; i < sh.Len(); i++ {
		if err := tbl.Draw(sh.Current(), 0, 0); err != nil {
			t.Fatalf("Draw() failed: %v", err)
		}

		// Every cell position must reflect the current grid, with no leftovers.
		g := sh.Current()
		for r := 0; r < g.Size(); r++ {
			for c := 0; c < g.Size(); c++ {
				want := ' '
				if g.At(r, c) {
					want = '▒'
				}
				if got := s.Get(1+2*c, 1+2*r); got != want {
					t.Errorf("orientation %d cell (%d,%d) = %q, expected %q", i, r, c, got, want)
				}
			}
		}
		sh.Advance()
	}
}

func TestTableDrawOutOfBounds(t *testing.T) {
	g := shape.MustDecode(0x04, 0x04, 0x04, 0x04, 0x04)

	tests := []struct {
		name     string
		row, col int
	}{
		{"too far right", 0, 70},
		{"too far down", 14, 0},
		{"negative row", -1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := core.NewScreen(80, 24)
			tbl := NewTable(s, '▒', ' ')

			err := tbl.Draw(g, tc.row, tc.col)
			if !errors.Is(err, ErrOutOfBounds) {
				t.Fatalf("Draw() error = %v, expected ErrOutOfBounds", err)
			}
			if s.String() != core.NewScreen(80, 24).String() {
				t.Error("nothing should be drawn when the table does not fit")
			}
		})
	}
}

func TestTableDrawFitsAtEdge(t *testing.T) {
	s := core.NewScreen(80, 24)
	tbl := NewTable(s, '▒', ' ')

	if err := tbl.Draw(shape.MustDecode(0x04, 0x04, 0x04, 0x04, 0x04), 13, 69); err != nil {
		t.Fatalf("table touching the bottom-right edge should fit: %v", err)
	}
	if s.Get(79, 23) != '┘' {
		t.Errorf("bottom-right corner = %q, expected '┘'", s.Get(79, 23))
	}
}
