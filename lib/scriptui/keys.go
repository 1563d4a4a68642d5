// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all key bindings for the script viewer. Bindings in
// the first group apply while the card list has focus; the text inputs
// (search, sidebar fields, span editor) take printable keys themselves
// and only react to the bindings documented on their handlers.
type KeyMap struct {
	// Card selection and scrolling.
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Section navigation.
	PreviousSection key.Binding
	NextSection     key.Binding
	SectionIndex    key.Binding // 1-9 select a section by position.

	// Card actions.
	Copy      key.Binding
	EditBlank key.Binding // Open the editor on the first unfilled blank.
	ResetCard key.Binding

	// Form actions.
	ClearForm key.Binding // Clear customer and intent, reset all blanks.
	FullReset key.Binding // Clear all three fields, reset all blanks.

	// Sidebar.
	ToggleSidebar key.Binding
	Escape        key.Binding
	NextField     key.Binding
	PreviousField key.Binding

	// Search.
	SearchActivate key.Binding
	Submit         key.Binding

	Quit      key.Binding
	ForceQuit key.Binding
}

// DefaultKeyMap is the built-in key binding set. Vim-style movement
// (j/k, h/l) alongside arrow keys.
var DefaultKeyMap = KeyMap{
	Up: key.NewBinding(
		key.WithKeys("k", "up"),
		key.WithHelp("k/↑", "prev card"),
	),
	Down: key.NewBinding(
		key.WithKeys("j", "down"),
		key.WithHelp("j/↓", "next card"),
	),
	PageUp: key.NewBinding(
		key.WithKeys("ctrl+u", "pgup"),
		key.WithHelp("C-u", "page up"),
	),
	PageDown: key.NewBinding(
		key.WithKeys("ctrl+d", "pgdown"),
		key.WithHelp("C-d", "page down"),
	),
	Home: key.NewBinding(
		key.WithKeys("g", "home"),
		key.WithHelp("g", "top"),
	),
	End: key.NewBinding(
		key.WithKeys("G", "end"),
		key.WithHelp("G", "bottom"),
	),
	PreviousSection: key.NewBinding(
		key.WithKeys("h", "left"),
		key.WithHelp("h/←", "prev section"),
	),
	NextSection: key.NewBinding(
		key.WithKeys("l", "right"),
		key.WithHelp("l/→", "next section"),
	),
	SectionIndex: key.NewBinding(
		key.WithKeys("1", "2", "3", "4", "5", "6", "7", "8", "9"),
		key.WithHelp("1-9", "section"),
	),
	Copy: key.NewBinding(
		key.WithKeys("enter", "y"),
		key.WithHelp("⏎/y", "copy"),
	),
	EditBlank: key.NewBinding(
		key.WithKeys("e"),
		key.WithHelp("e", "fill blank"),
	),
	ResetCard: key.NewBinding(
		key.WithKeys("r"),
		key.WithHelp("r", "reset card"),
	),
	ClearForm: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("C-r", "clear form"),
	),
	FullReset: key.NewBinding(
		key.WithKeys("R"),
		key.WithHelp("R", "reset all"),
	),
	ToggleSidebar: key.NewBinding(
		key.WithKeys("ctrl+b"),
		key.WithHelp("C-b", "call details"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("Esc", "sidebar"),
	),
	NextField: key.NewBinding(
		key.WithKeys("tab", "down"),
		key.WithHelp("Tab", "next field"),
	),
	PreviousField: key.NewBinding(
		key.WithKeys("shift+tab", "up"),
		key.WithHelp("S-Tab", "prev field"),
	),
	SearchActivate: key.NewBinding(
		key.WithKeys("/"),
		key.WithHelp("/", "search"),
	),
	Submit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("⏎", "done"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
	),
}
