// Package catalog provides named sets of shape definitions: built-in sets
// embedded in the binary, YAML set files loaded from disk, a registry of
// both, and the layout that turns a set into placed, ready-to-draw shapes.
package catalog

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-shapes/internal/shape"
)

var (
	// ErrMissingID indicates a set file without an id.
	ErrMissingID = errors.New("catalog: set must have an id")
	// ErrNoShapes indicates a set with an empty shape list.
	ErrNoShapes = errors.New("catalog: set must define at least one shape")
	// ErrInvalidGlyph indicates a glyph that is not exactly one character.
	ErrInvalidGlyph = errors.New("catalog: glyph must be a single character")
)

// Origin is an explicit screen position (top-left of the table).
type Origin struct {
	Row int `yaml:"row"`
	Col int `yaml:"col"`
}

// Definition describes one shape before it is built.
type Definition struct {
	Name   string
	Glyph  rune
	Rows   []uint64
	Origin *Origin // nil means "place automatically"
}

// Set is an ordered, named collection of shape definitions.
type Set struct {
	ID     string
	Title  string
	Shapes []Definition
	Source string // File path, or "builtin"
}

// yamlSet is the on-disk form of a set.
type yamlSet struct {
	ID     string      `yaml:"id"`
	Title  string      `yaml:"title"`
	Shapes []yamlShape `yaml:"shapes"`
}

type yamlShape struct {
	Name   string   `yaml:"name"`
	Glyph  string   `yaml:"glyph"`
	Rows   []uint64 `yaml:"rows"` // 0x04 and 0b0100 literals both decode
	Origin *Origin  `yaml:"origin,omitempty"`
}

// ParseYAML parses and validates a set file.
func ParseYAML(data []byte) (Set, error) {
	var ys yamlSet
	if err := yaml.Unmarshal(data, &ys); err != nil {
		return Set{}, fmt.Errorf("catalog: yaml unmarshal: %w", err)
	}

	set := Set{
		ID:     ys.ID,
		Title:  ys.Title,
		Shapes: make([]Definition, 0, len(ys.Shapes)),
	}
	if set.Title == "" {
		set.Title = set.ID
	}

	for _, s := range ys.Shapes {
		if utf8.RuneCountInString(s.Glyph) != 1 {
			return Set{}, fmt.Errorf("%w: set %q shape %q has glyph %q", ErrInvalidGlyph, ys.ID, s.Name, s.Glyph)
		}
		glyph, _ := utf8.DecodeRuneInString(s.Glyph)
		set.Shapes = append(set.Shapes, Definition{
			Name:   s.Name,
			Glyph:  glyph,
			Rows:   s.Rows,
			Origin: s.Origin,
		})
	}

	if err := set.Validate(); err != nil {
		return Set{}, err
	}
	return set, nil
}

// Validate checks the set has an id and shapes, and that every definition
// decodes. Decoding errors unwrap to shape.ErrDefinition.
func (s Set) Validate() error {
	if s.ID == "" {
		return ErrMissingID
	}
	if len(s.Shapes) == 0 {
		return fmt.Errorf("%w: %q", ErrNoShapes, s.ID)
	}
	for _, d := range s.Shapes {
		if _, err := shape.Decode(d.Rows); err != nil {
			return fmt.Errorf("catalog: set %q shape %q: %w", s.ID, d.Name, err)
		}
	}
	return nil
}
