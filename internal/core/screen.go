package core

import (
	"strings"
)

// Screen is a 2D character buffer the viewer draws into.
// It decouples drawing from the terminal: renderers place runes, and the
// platform layer prints the finished buffer in one piece.
// Cells are stored in row-major order: index = y*width + x.
type Screen struct {
	width  int
	height int
	cells  []rune
}

// NewScreen creates a blank screen buffer with the given dimensions.
// Negative dimensions are treated as zero.
func NewScreen(width, height int) *Screen {
	s := &Screen{}
	s.setSize(width, height)
	return s
}

// setSize reallocates the buffer and blanks it.
func (s *Screen) setSize(width, height int) {
	s.width = Max(width, 0)
	s.height = Max(height, 0)
	s.cells = make([]rune, s.width*s.height)
	s.Clear()
}

// Width returns the screen width in characters.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the screen height in characters.
func (s *Screen) Height() int {
	return s.height
}

// Bounds returns the drawable area as a Rect anchored at (0, 0).
func (s *Screen) Bounds() Rect {
	return NewRect(0, 0, s.width, s.height)
}

// Resize changes the screen dimensions, keeping the overlapping top-left area.
func (s *Screen) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	old := s.cells
	oldW := s.width
	keepW := Min(oldW, Max(width, 0))
	keepH := Min(s.height, Max(height, 0))

	s.setSize(width, height)
	for y := 0; y < keepH; y++ {
		copy(s.cells[y*s.width:y*s.width+keepW], old[y*oldW:y*oldW+keepW])
	}
}

// Clear fills the entire screen with spaces.
func (s *Screen) Clear() {
	for i := range s.cells {
		s.cells[i] = ' '
	}
}

// Set places a rune at column x, row y.
// Out-of-bounds coordinates are silently ignored.
func (s *Screen) Set(x, y int, r rune) {
	if !s.Bounds().Contains(x, y) {
		return
	}
	s.cells[y*s.width+x] = r
}

// Get returns the rune at column x, row y.
// Returns space for out-of-bounds coordinates.
func (s *Screen) Get(x, y int) rune {
	if !s.Bounds().Contains(x, y) {
		return ' '
	}
	return s.cells[y*s.width+x]
}

// DrawText writes a string horizontally starting at (x, y).
// Runes past the right edge are clipped.
func (s *Screen) DrawText(x, y int, text string) {
	i := 0
	for _, r := range text {
		s.Set(x+i, y, r)
		i++
	}
}

// Row returns the specified row as a string.
// Out-of-range rows come back as blanks of screen width.
func (s *Screen) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	return string(s.cells[y*s.width : (y+1)*s.width])
}

// String joins every row with newlines.
func (s *Screen) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height*3 + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}
