package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-shapes/internal/core"
)

// KeyMap holds the viewer key bindings.
// It implements help.KeyMap for the footer.
type KeyMap struct {
	Rotate key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the standard bindings: r rotates, q or ctrl+c quits.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Rotate: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "rotate"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Rotate, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

// MapKey translates a key message to a viewer action.
// Unbound keys map to ActionNone.
func (k KeyMap) MapKey(msg tea.KeyMsg) core.Action {
	switch {
	case key.Matches(msg, k.Quit):
		return core.ActionQuit
	case key.Matches(msg, k.Rotate):
		return core.ActionRotate
	}
	return core.ActionNone
}
