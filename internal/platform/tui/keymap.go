package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pico-arcade/internal/core"
)

// KeyMap binds terminal keys to the four device buttons.
type KeyMap struct {
	Confirm    key.Binding
	Left       key.Binding
	Right      key.Binding
	Exit       key.Binding
	Screenshot key.Binding
	Quit       key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Left, k.Right, k.Exit, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Confirm, k.Left, k.Right},
		{k.Exit, k.Screenshot, k.Quit},
	}
}

// DefaultKeyMap returns the default bindings. The letters match the
// device's button labels.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm: key.NewBinding(
			key.WithKeys("a", "enter", " "),
			key.WithHelp("a/enter", "start"),
		),
		Left: key.NewBinding(
			key.WithKeys("b", "left", "h"),
			key.WithHelp("b/←", "left/up"),
		),
		Right: key.NewBinding(
			key.WithKeys("y", "right", "l"),
			key.WithHelp("y/→", "right/down"),
		),
		Exit: key.NewBinding(
			key.WithKeys("x", "esc"),
			key.WithHelp("x x", "exit game"),
		),
		Screenshot: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "screenshot"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// Button maps a key message to the button it presses.
func (k KeyMap) Button(msg tea.KeyMsg) (core.Button, bool) {
	switch {
	case key.Matches(msg, k.Confirm):
		return core.ButtonConfirm, true
	case key.Matches(msg, k.Left):
		return core.ButtonLeft, true
	case key.Matches(msg, k.Right):
		return core.ButtonRight, true
	case key.Matches(msg, k.Exit):
		return core.ButtonExit, true
	}
	return 0, false
}
