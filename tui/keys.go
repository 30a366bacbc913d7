package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/young1lin/gridconsole/console"
)

// KeyMap binds terminal keys to grid keys
type KeyMap struct {
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding
	Enter key.Binding
	Back  key.Binding
	Esc   key.Binding
	Quit  key.Binding
}

// DefaultKeyMap uses the arrows plus vi-style letters
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "right"),
		),
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Back: key.NewBinding(
			key.WithKeys("backspace"),
			key.WithHelp("backspace", "back"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "quit at top"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Left, k.Right, k.Enter, k.Back, k.Quit}
}

// FullHelp implements help.KeyMap
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.Enter, k.Back, k.Esc, k.Quit},
	}
}

// Translate maps a bubbletea key to a grid key
func (k KeyMap) Translate(msg tea.KeyMsg) console.Key {
	switch {
	case key.Matches(msg, k.Up):
		return console.KeyUp
	case key.Matches(msg, k.Down):
		return console.KeyDown
	case key.Matches(msg, k.Left):
		return console.KeyLeft
	case key.Matches(msg, k.Right):
		return console.KeyRight
	case key.Matches(msg, k.Enter):
		return console.KeyEnter
	case key.Matches(msg, k.Back):
		return console.KeyBackspace
	case key.Matches(msg, k.Esc):
		return console.KeyEscape
	}
	return console.KeyUnknown
}
