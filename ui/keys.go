package ui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the key bindings for the ordering UI.
type KeyMap struct {
	Up   key.Binding
	Down key.Binding

	// Category navigation jumps the cursor to the first item of the
	// neighboring category.
	NextCategory key.Binding
	PrevCategory key.Binding

	Add      key.Binding
	Decrease key.Binding
	Remove   key.Binding

	Confirm key.Binding
	Copy    key.Binding
	Retry   key.Binding
	Back    key.Binding
	Quit    key.Binding
}

// DefaultKeyMap is the built-in binding set. Vim-style navigation alongside
// arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "down"),
	),
	NextCategory: key.NewBinding(
		key.WithKeys("tab", "]"),
		key.WithHelp("tab", "next category"),
	),
	PrevCategory: key.NewBinding(
		key.WithKeys("shift+tab", "["),
		key.WithHelp("S-tab", "prev category"),
	),
	Add: key.NewBinding(
		key.WithKeys("enter", "+"),
		key.WithHelp("enter/+", "add"),
	),
	Decrease: key.NewBinding(
		key.WithKeys("-"),
		key.WithHelp("-", "one less"),
	),
	Remove: key.NewBinding(
		key.WithKeys("x"),
		key.WithHelp("x", "remove"),
	),
	Confirm: key.NewBinding(
		key.WithKeys("c"),
		key.WithHelp("c", "confirm order"),
	),
	Copy: key.NewBinding(
		key.WithKeys("y"),
		key.WithHelp("y", "copy summary"),
	),
	Retry: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "retry"),
	),
	Back: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "back"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}
