// Package render draws shape grids onto a core.Screen.
package render

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-shapes/internal/core"
	"github.com/vovakirdan/tui-shapes/internal/shape"
)

// ErrOutOfBounds is returned when a table would not fit on the screen.
var ErrOutOfBounds = errors.New("render: table does not fit on screen")

// Default cell glyphs.
const (
	DefaultFilled = '▒'
	DefaultEmpty  = ' '
)

// Renderer draws a grid with its top-left corner at (row, col).
// Drawing again at the same origin must overwrite the previous drawing.
type Renderer interface {
	Draw(g shape.Grid, row, col int) error
}

// Table draws grids as box-drawing tables, one character per cell with rule
// lines between cells.
type Table struct {
	screen *core.Screen
	filled rune
	empty  rune
}

// NewTable creates a table renderer drawing into s.
func NewTable(s *core.Screen, filled, empty rune) *Table {
	return &Table{screen: s, filled: filled, empty: empty}
}

// TableSize returns the width and height in characters of the table for an
// n x n grid.
func TableSize(n int) (w, h int) {
	return 2*n + 1, 2*n + 1
}

// Draw implements Renderer. Nothing is drawn if the table would leave the
// screen.
func (t *Table) Draw(g shape.Grid, row, col int) error {
	n := g.Size()
	w, h := TableSize(n)
	area := core.NewRect(col, row, w, h)
	if !area.Within(t.screen.Bounds()) {
		return fmt.Errorf("%w: %dx%d at row %d col %d, screen is %dx%d",
			ErrOutOfBounds, w, h, row, col, t.screen.Width(), t.screen.Height())
	}

	y := row
	t.rule(y, col, n, '┌', '┬', '┐')
	for r := 0; r < n; r++ {
		y++
		t.cells(y, col, g, r)
		y++
		if r < n-1 {
			t.rule(y, col, n, '├', '┼', '┤')
		} else {
			t.rule(y, col, n, '└', '┴', '┘')
		}
	}
	return nil
}

// rule draws a horizontal border: left, then "─" + junction per column,
// with the right glyph closing the last column.
func (t *Table) rule(y, x, n int, left, mid, right rune) {
	t.screen.Set(x, y, left)
	for i := 0; i < n; i++ {
		t.screen.Set(x+1+2*i, y, '─')
		if i < n-1 {
			t.screen.Set(x+2+2*i, y, mid)
		} else {
			t.screen.Set(x+2+2*i, y, right)
		}
	}
}

// cells draws grid row r as "│c│c│...│".
func (t *Table) cells(y, x int, g shape.Grid, r int) {
	t.screen.Set(x, y, '│')
	for c := 0; c < g.Size(); c++ {
		glyph := t.empty
		if g.At(r, c) {
			glyph = t.filled
		}
		t.screen.Set(x+1+2*c, y, glyph)
		t.screen.Set(x+2+2*c, y, '│')
	}
}

var _ Renderer = (*Table)(nil)
