// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/lanchat-tui/internal/model"
	"github.com/jeranaias/lanchat-tui/internal/ui/layout"
	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
)

// DefaultTranscriptTitle is the title of the transcript panel.
const DefaultTranscriptTitle = "LAN Room"

// TranscriptParams is the slice of a snapshot the transcript panel reads.
type TranscriptParams struct {
	Entries   []model.ChatEntry
	Colors    *model.UserColorTable
	LocalUser string
	Progress  *model.TransferProgress
	Scroll    int
	Area      layout.Rect

	// Title defaults to DefaultTranscriptTitle.
	Title string
	// ProgressMargin defaults to DefaultProgressMargin.
	ProgressMargin int
}

// =============================================================================
// TRANSCRIPT PANEL
// =============================================================================

// TranscriptLines returns the display records newest first: the transfer bar
// when a transfer is active, then every entry from the latest back.
func TranscriptLines(theme *styles.Theme, p TranscriptParams) []Line {
	lines := make([]Line, 0, len(p.Entries)+1)

	if p.Progress != nil {
		margin := p.ProgressMargin
		if margin <= 0 {
			margin = DefaultProgressMargin
		}
		lines = append(lines, TransferBarWithMargin(theme, *p.Progress, p.Area.Width, margin))
	}

	for i := len(p.Entries) - 1; i >= 0; i-- {
		lines = append(lines, FormatEntry(theme, p.Entries[i], p.Colors, p.LocalUser))
	}
	return lines
}

// BuildTranscript lays the transcript out in its bordered panel. Lines wider
// than the panel wrap at word boundaries; Scroll skips that many wrapped
// lines from the top. ContentRows on the result is the wrapped row count.
func BuildTranscript(theme *styles.Theme, p TranscriptParams) *Panel {
	title := p.Title
	if title == "" {
		title = DefaultTranscriptTitle
	}
	panel := NewPanel(theme, title, p.Area)

	inner := panel.Inner()
	if inner.Empty() {
		return panel
	}

	wrapped := WrapLines(theme, TranscriptLines(theme, p), inner.Width)
	panel.ContentRows = len(wrapped)

	// Scrolling past the end leaves blank rows rather than pinning the last page.
	vp := viewport.New(inner.Width, inner.Height)
	vp.SetContent(strings.Join(wrapped[clampScroll(p.Scroll, len(wrapped)):], "\n"))

	panel.Body = strings.Split(vp.View(), "\n")
	return panel
}

// WrapLines renders lines in the panel text style and word wraps them to
// width columns, one string per display row.
func WrapLines(theme *styles.Theme, lines []Line, width int) []string {
	if width <= 0 {
		return nil
	}

	wrap := lipgloss.NewStyle().Width(width)
	rows := make([]string, 0, len(lines))
	for _, line := range lines {
		rendered := wrap.Render(line.Render(theme.PanelText))
		rows = append(rows, strings.Split(rendered, "\n")...)
	}
	return rows
}

func clampScroll(scroll, rows int) int {
	if scroll < 0 {
		return 0
	}
	if scroll > rows {
		return rows
	}
	return scroll
}
