package core

import "time"

// RuntimeConfig contains the settings the viewer is started with.
// ScreenW/ScreenH are the detected terminal size; PollInterval is the fixed
// delay between input polls.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	PollInterval time.Duration // Delay between polls (default 100ms)
	Filled       rune          // Glyph for filled grid cells
	Empty        rune          // Glyph for empty grid cells
}

// DefaultConfig returns a RuntimeConfig for a standard 80x24 terminal.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		PollInterval: 100 * time.Millisecond,
		Filled:       '▒',
		Empty:        ' ',
	}
}
