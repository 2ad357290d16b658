// Package config provides YAML-based viewer configuration with an embedded
// default and a user-overridable search path.
package config

import (
	"errors"
	"fmt"
	"time"
	"unicode/utf8"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid value")

// ViewerConfig contains all viewer settings.
type ViewerConfig struct {
	PollIntervalMS int          `yaml:"poll_interval_ms"`
	Glyphs         Glyphs       `yaml:"glyphs"`
	Layout         LayoutConfig `yaml:"layout"`
	DefaultSet     string       `yaml:"default_set"`

	// Source records where the config was loaded from.
	Source string `yaml:"-"`
}

// Glyphs defines the characters used for grid cells.
type Glyphs struct {
	Filled string `yaml:"filled"`
	Empty  string `yaml:"empty"`
}

// LayoutConfig defines where automatically placed shapes go.
type LayoutConfig struct {
	OriginRow int `yaml:"origin_row"`
	OriginCol int `yaml:"origin_col"`
	Gap       int `yaml:"gap"`
}

// PollInterval returns the poll delay as a duration.
func (c ViewerConfig) PollInterval() time.Duration {
	return time.Duration(c.PollIntervalMS) * time.Millisecond
}

// FilledGlyph returns the glyph for filled cells.
func (c ViewerConfig) FilledGlyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyphs.Filled)
	return r
}

// EmptyGlyph returns the glyph for empty cells.
func (c ViewerConfig) EmptyGlyph() rune {
	r, _ := utf8.DecodeRuneInString(c.Glyphs.Empty)
	return r
}

// Validate rejects settings the viewer cannot run with.
func (c ViewerConfig) Validate() error {
	if c.PollIntervalMS <= 0 {
		return fmt.Errorf("%w: poll_interval_ms must be positive, got %d", ErrInvalid, c.PollIntervalMS)
	}
	if utf8.RuneCountInString(c.Glyphs.Filled) != 1 {
		return fmt.Errorf("%w: glyphs.filled must be one character, got %q", ErrInvalid, c.Glyphs.Filled)
	}
	if utf8.RuneCountInString(c.Glyphs.Empty) != 1 {
		return fmt.Errorf("%w: glyphs.empty must be one character, got %q", ErrInvalid, c.Glyphs.Empty)
	}
	if c.Layout.OriginRow < 0 || c.Layout.OriginCol < 0 || c.Layout.Gap < 0 {
		return fmt.Errorf("%w: layout values must not be negative", ErrInvalid)
	}
	if c.DefaultSet == "" {
		return fmt.Errorf("%w: default_set must not be empty", ErrInvalid)
	}
	return nil
}
