package shape

// RotateCW returns g rotated 90 degrees clockwise.
// Cell (y, x) lands at (x, d-1-y).
func RotateCW(g Grid) Grid {
	d := g.n
	out := newGrid(d)
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			out.cells[x*d+(d-1-y)] = g.cells[y*d+x]
		}
	}
	return out
}

// Reflect returns the horizontal mirror of g.
// Cell (y, x) lands at (y, d-1-x).
func Reflect(g Grid) Grid {
	d := g.n
	out := newGrid(d)
	for y := 0; y < d; y++ {
		for x := 0; x < d; x++ {
			out.cells[y*d+(d-1-x)] = g.cells[y*d+x]
		}
	}
	return out
}
