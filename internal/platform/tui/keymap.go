package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-stomp/internal/core"
)

// KeyMap holds the terminal key bindings.
type KeyMap struct {
	Right key.Binding
	Left  key.Binding
	Jump  key.Binding
	Stop  key.Binding
	Quit  key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Left, k.Right, k.Jump, k.Stop, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Left, k.Right, k.Stop},
		{k.Jump, k.Quit},
	}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Right: key.NewBinding(
			key.WithKeys("right", "d", "l"),
			key.WithHelp("→/d", "right"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "a", "h"),
			key.WithHelp("←/a", "left"),
		),
		Jump: key.NewBinding(
			key.WithKeys(" ", "up", "w", "k"),
			key.WithHelp("space/↑", "jump"),
		),
		Stop: key.NewBinding(
			key.WithKeys("down", "s", "j"),
			key.WithHelp("↓/s", "stop"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c", "esc"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Translate maps a terminal key to the simulation key it presses.
// Stop and Quit are handled by the model and are not translated.
func (k KeyMap) Translate(msg tea.KeyMsg) (core.Key, bool) {
	switch {
	case key.Matches(msg, k.Right):
		return core.KeyArrowRight, true
	case key.Matches(msg, k.Left):
		return core.KeyArrowLeft, true
	case key.Matches(msg, k.Jump):
		return core.KeySpace, true
	}
	return "", false
}
