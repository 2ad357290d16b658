package shape

import "fmt"

// Shape is a named, glyph-tagged orbit with a cursor on the displayed
// orientation. The orientation list is fixed at construction; only the
// cursor moves, and only through Advance.
type Shape struct {
	name         string
	glyph        rune
	orientations []Grid
	current      int
}

// New decodes rows and builds a Shape from the resulting grid.
// An invalid definition returns a *DefinitionError and no Shape.
func New(name string, glyph rune, rows []uint64) (*Shape, error) {
	base, err := Decode(rows)
	if err != nil {
		return nil, err
	}
	return FromGrid(name, glyph, base), nil
}

// FromGrid builds a Shape whose orbit is computed from base.
func FromGrid(name string, glyph rune, base Grid) *Shape {
	return &Shape{
		name:         name,
		glyph:        glyph,
		orientations: Orientations(base),
	}
}

// Name returns the shape's name.
func (s *Shape) Name() string {
	return s.name
}

// Glyph returns the shape's display glyph.
func (s *Shape) Glyph() rune {
	return s.glyph
}

// Len returns the number of distinct orientations.
func (s *Shape) Len() int {
	return len(s.orientations)
}

// Index returns the position of the current orientation in the orbit.
func (s *Shape) Index() int {
	return s.current
}

// Current returns the orientation being displayed.
func (s *Shape) Current() Grid {
	return s.orientations[s.current]
}

// Orientations returns a copy of the orbit in enumeration order.
func (s *Shape) Orientations() []Grid {
	out := make([]Grid, len(s.orientations))
	copy(out, s.orientations)
	return out
}

// Advance moves the cursor to the next orientation, wrapping at the end.
func (s *Shape) Advance() {
	s.current = (s.current + 1) % len(s.orientations)
}

// String returns a short description, e.g. "line (1) 1/2".
func (s *Shape) String() string {
	return fmt.Sprintf("%s (%c) %d/%d", s.name, s.glyph, s.current+1, len(s.orientations))
}
