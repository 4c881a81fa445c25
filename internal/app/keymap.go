package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all application keybindings.
type KeyMap struct {
	Quit             key.Binding
	SendRequest      key.Binding
	GenerateChapters key.Binding
	FormatBody       key.Binding
	CommandPalette   key.Binding
	Help             key.Binding

	FocusForm     key.Binding
	FocusResponse key.Binding
}

// DefaultKeyMap returns the default keybinding configuration.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		SendRequest: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "send"),
		),
		GenerateChapters: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "generate chapters"),
		),
		FormatBody: key.NewBinding(
			key.WithKeys("ctrl+f"),
			key.WithHelp("ctrl+f", "format body"),
		),
		CommandPalette: key.NewBinding(
			key.WithKeys("ctrl+k"),
			key.WithHelp("ctrl+k", "command palette"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		FocusForm: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "form"),
		),
		FocusResponse: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "response"),
		),
	}
}
