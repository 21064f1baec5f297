// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package styles provides the colors and lip gloss styles of the lanchat TUI.

Unlike a full-color application theme, the chat room deliberately sticks to the
16 ANSI colors so it renders the same on every terminal in the LAN, including
the Linux console.

# Color System (colors.go)

## User Palette

Remote users are colored by their slot in the user color table, modulo the
palette length:

	Blue, Yellow, Cyan, Magenta

The local user always renders in LocalGreen and never consumes a slot.

## Semantic Colors

	Muted        - timestamps
	CommandHint  - recognized inline commands such as ?send
	Notice       - info notices (user label), NoticeLight for their text
	Alert        - error notices (user label), AlertLight for their text
	Transfer     - the "Sending:" progress overlay

# Theme System (theme.go)

Theme bundles the palette with the panel styles and detects the terminal
background through termenv:

	theme := styles.NewTheme()
	title := theme.PanelTitle.Render("LAN Room")

NewThemeWithOptions applies the [ui] section of the configuration
(palette override, border shape, forced dark or light mode).
*/
package styles
