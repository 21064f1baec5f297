// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/charmbracelet/bubbles/key"
)

// =============================================================================
// KEY MAP DEFINITION
// =============================================================================

// KeyMap defines all keyboard bindings for the chat room. Letters are never
// bound: everything printable goes into the draft.
type KeyMap struct {
	Older     key.Binding
	Newer     key.Binding
	PageOlder key.Binding
	PageNewer key.Binding
	Newest    key.Binding

	Left      key.Binding
	Right     key.Binding
	Home      key.Binding
	End       key.Binding
	Backspace key.Binding
	Delete    key.Binding

	Submit key.Binding
	Quit   key.Binding
}

// DefaultKeyMap returns the default key bindings. The transcript lists the
// newest entry first, so scrolling down reveals older ones.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Older: key.NewBinding(
			key.WithKeys("down"),
			key.WithHelp("down", "older"),
		),
		Newer: key.NewBinding(
			key.WithKeys("up"),
			key.WithHelp("up", "newer"),
		),
		PageOlder: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("PgDn", "page older"),
		),
		PageNewer: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("PgUp", "page newer"),
		),
		Newest: key.NewBinding(
			key.WithKeys("ctrl+l"),
			key.WithHelp("C-l", "newest"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "ctrl+b"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "ctrl+f"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "ctrl+a"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "ctrl+e"),
		),
		Backspace: key.NewBinding(
			key.WithKeys("backspace", "ctrl+h"),
		),
		Delete: key.NewBinding(
			key.WithKeys("delete", "ctrl+d"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("Enter", "send"),
		),
		Quit: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("Esc/C-c", "quit"),
		),
	}
}

// ShortHelp returns the bindings worth showing in a one-line hint.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.PageNewer, k.PageOlder, k.Newest, k.Quit}
}

// FullHelp returns all documented bindings, grouped.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Newer, k.Older, k.PageNewer, k.PageOlder, k.Newest},
		{k.Submit, k.Quit},
	}
}
