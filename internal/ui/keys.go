package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the launcher's keyboard shortcuts. The two modifier submits
// mirror the launcher's secondary confirm gestures: alt+enter tags the
// outcome as "command", ctrl+o as "option".
type KeyMap struct {
	Up     key.Binding
	Down   key.Binding
	Submit key.Binding
	Cmd    key.Binding
	Opt    key.Binding
	Copy   key.Binding
	Escape key.Binding
}

// DefaultKeyMap returns the default keybindings for the launcher.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "ctrl+p"),
			key.WithHelp("↑/↓", "move"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "ctrl+n", "tab"),
			key.WithHelp("↑/↓", "move"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "open"),
		),
		Cmd: key.NewBinding(
			key.WithKeys("alt+enter"),
			key.WithHelp("alt+enter", "open alt"),
		),
		Opt: key.NewBinding(
			key.WithKeys("ctrl+o"),
			key.WithHelp("ctrl+o", "open with"),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", "copy"),
		),
		Escape: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", "dismiss"),
		),
	}
}
