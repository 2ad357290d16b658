// Package shape holds the pure orientation logic of the viewer: square
// bitmap grids, the rotate/reflect primitives, orbit enumeration, and the
// Shape wrapper that cycles through a precomputed orbit.
package shape

import (
	"errors"
	"strings"
)

// ErrNotSquare is returned by NewGrid when the cell matrix is empty or ragged.
var ErrNotSquare = errors.New("shape: cell matrix must be square and non-empty")

// Grid is an immutable square matrix of cells.
// Cells are stored in row-major order: index = row*n + col.
// The zero value is an empty 0x0 grid and is never produced by constructors.
type Grid struct {
	n     int
	cells []bool
}

// Decode builds a Grid from row bitmasks.
// Bit (N-1-col) of rows[row] controls cell (row, col), so the most
// significant used bit is the leftmost column.
// A uint64 mask reaches only the 64 rightmost columns: for N > 64, columns
// 0..N-65 always decode empty. Use NewGrid for frames wider than 64.
func Decode(rows []uint64) (Grid, error) {
	n := len(rows)
	if n == 0 {
		return Grid{}, &DefinitionError{Row: -1}
	}

	for i, v := range rows {
		if n < 64 && v >= uint64(1)<<n {
			return Grid{}, &DefinitionError{Row: i, Value: v, Size: n}
		}
	}

	g := newGrid(n)
	for row, v := range rows {
		for col := 0; col < n; col++ {
			bit := n - 1 - col
			if bit < 64 && v&(uint64(1)<<bit) != 0 {
				g.cells[row*n+col] = true
			}
		}
	}
	return g, nil
}

// MustDecode is like Decode but panics on an invalid definition.
// Intended for package-level tables of known-good shapes.
func MustDecode(rows ...uint64) Grid {
	g, err := Decode(rows)
	if err != nil {
		panic(err)
	}
	return g
}

// NewGrid builds a Grid from a square cell matrix. The input is copied.
func NewGrid(cells [][]bool) (Grid, error) {
	n := len(cells)
	if n == 0 {
		return Grid{}, ErrNotSquare
	}
	g := newGrid(n)
	for row := range cells {
		if len(cells[row]) != n {
			return Grid{}, ErrNotSquare
		}
		copy(g.cells[row*n:(row+1)*n], cells[row])
	}
	return g, nil
}

// newGrid allocates an empty n x n grid. Only package code may fill it.
func newGrid(n int) Grid {
	return Grid{n: n, cells: make([]bool, n*n)}
}

// Size returns the grid dimension N.
func (g Grid) Size() int {
	return g.n
}

// At reports whether cell (row, col) is filled.
// Out-of-bounds coordinates report false.
func (g Grid) At(row, col int) bool {
	if row < 0 || row >= g.n || col < 0 || col >= g.n {
		return false
	}
	return g.cells[row*g.n+col]
}

// Filled returns the number of filled cells.
func (g Grid) Filled() int {
	count := 0
	for _, c := range g.cells {
		if c {
			count++
		}
	}
	return count
}

// Equal reports whether both grids have the same dimension and contents.
func (g Grid) Equal(other Grid) bool {
	if g.n != other.n {
		return false
	}
	for i, c := range g.cells {
		if c != other.cells[i] {
			return false
		}
	}
	return true
}

// Rows encodes the grid back into row bitmasks, the inverse of Decode.
// Grids wider than 64 columns keep only the 64 rightmost columns.
func (g Grid) Rows() []uint64 {
	rows := make([]uint64, g.n)
	for row := 0; row < g.n; row++ {
		var v uint64
		for col := 0; col < g.n; col++ {
			bit := g.n - 1 - col
			if bit < 64 && g.cells[row*g.n+col] {
				v |= uint64(1) << bit
			}
		}
		rows[row] = v
	}
	return rows
}

// String renders the grid as N lines of '#' (filled) and '.' (empty).
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.n*g.n + g.n)
	for row := 0; row < g.n; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < g.n; col++ {
			if g.cells[row*g.n+col] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}
