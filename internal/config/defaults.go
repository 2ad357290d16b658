package config

import (
	_ "embed"
)

//go:embed defaults/config.yaml
var defaultConfigYAML []byte

// EmbeddedSource marks a config that came from the embedded default file.
const EmbeddedSource = "embedded"

// Default returns the hardcoded viewer configuration.
// It matches defaults/config.yaml and is the fallback if the embed fails.
func Default() ViewerConfig {
	return ViewerConfig{
		PollIntervalMS: 100,
		Glyphs: Glyphs{
			Filled: "▒",
			Empty:  " ",
		},
		Layout: LayoutConfig{
			OriginRow: 5,
			OriginCol: 5,
			Gap:       2,
		},
		DefaultSet: "demo",
		Source:     "default",
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultConfigYAML
}
