// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

// =============================================================================
// ANSI BASE COLORS
// =============================================================================

var (
	Black       = lipgloss.Color("0")
	Red         = lipgloss.Color("1")
	Green       = lipgloss.Color("2")
	Yellow      = lipgloss.Color("3")
	Blue        = lipgloss.Color("4")
	Magenta     = lipgloss.Color("5")
	Cyan        = lipgloss.Color("6")
	White       = lipgloss.Color("7")
	DarkGray    = lipgloss.Color("8")
	LightRed    = lipgloss.Color("9")
	LightGreen  = lipgloss.Color("10")
	LightYellow = lipgloss.Color("11")
)

// =============================================================================
// USER COLORS
// =============================================================================

// DefaultUserPalette colors remote users by slot. Order matters: slot 0 is
// always blue, slot 4 wraps back to blue.
var DefaultUserPalette = []lipgloss.TerminalColor{Blue, Yellow, Cyan, Magenta}

// LocalGreen is reserved for the local user.
var LocalGreen lipgloss.TerminalColor = Green

// =============================================================================
// SEMANTIC COLORS
// =============================================================================

// Muted - timestamps
var Muted lipgloss.TerminalColor = DarkGray

// CommandHint - recognized inline commands (?send)
var CommandHint lipgloss.TerminalColor = LightYellow

// Notice / NoticeLight - info notices: label and body
var Notice lipgloss.TerminalColor = Yellow
var NoticeLight lipgloss.TerminalColor = LightYellow

// Alert / AlertLight - error notices: label and body
var Alert lipgloss.TerminalColor = Red
var AlertLight lipgloss.TerminalColor = LightRed

// Transfer - file transfer progress overlay
var Transfer lipgloss.TerminalColor = LightGreen

// PanelTextDark / PanelTextLight - default body text on dark and light backgrounds
var PanelTextDark lipgloss.TerminalColor = White
var PanelTextLight lipgloss.TerminalColor = Black

// ParseColor turns a config color spec ("4", "#FF8800", "magenta") into a
// terminal color. Bare names map onto the 16 ANSI colors.
func ParseColor(spec string) (lipgloss.TerminalColor, bool) {
	if spec == "" {
		return nil, false
	}
	if c, ok := namedColors[strings.ToLower(spec)]; ok {
		return c, true
	}
	if spec[0] == '#' {
		if (len(spec) != 4 && len(spec) != 7) || strings.ContainsAny(spec, " \t+-") {
			return nil, false
		}
		if _, err := colorful.Hex(spec); err != nil {
			return nil, false
		}
		return lipgloss.Color(spec), true
	}
	n := 0
	for _, r := range spec {
		if r < '0' || r > '9' {
			return nil, false
		}
		n = n*10 + int(r-'0')
		if n > 255 {
			return nil, false
		}
	}
	return lipgloss.Color(spec), true
}

var namedColors = map[string]lipgloss.TerminalColor{
	"black":        Black,
	"red":          Red,
	"green":        Green,
	"yellow":       Yellow,
	"blue":         Blue,
	"magenta":      Magenta,
	"cyan":         Cyan,
	"white":        White,
	"darkgray":     DarkGray,
	"gray":         DarkGray,
	"lightred":     LightRed,
	"lightgreen":   LightGreen,
	"lightyellow":  LightYellow,
	"lightblue":    lipgloss.Color("12"),
	"lightmagenta": lipgloss.Color("13"),
	"lightcyan":    lipgloss.Color("14"),
}
