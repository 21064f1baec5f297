// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Run is a fragment of text drawn with a single style.
type Run struct {
	Text  string
	Style lipgloss.Style
}

// Plain returns a run in the default style of whatever panel draws it.
func Plain(text string) Run {
	return Run{Text: text, Style: lipgloss.NewStyle()}
}

// Styled returns a run drawn with style.
func Styled(text string, style lipgloss.Style) Run {
	return Run{Text: text, Style: style}
}

// Line is an ordered list of runs drawn left to right.
type Line []Run

// Text returns the unstyled text of the line.
func (l Line) Text() string {
	var b strings.Builder
	for _, r := range l {
		b.WriteString(r.Text)
	}
	return b.String()
}

// Render draws the line. Properties a run leaves unset are taken from base.
func (l Line) Render(base lipgloss.Style) string {
	var b strings.Builder
	for _, r := range l {
		if r.Text == "" {
			continue
		}
		b.WriteString(r.Style.Inherit(base).Render(r.Text))
	}
	return b.String()
}
