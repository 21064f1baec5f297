// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/jeranaias/lanchat-tui/internal/ui/layout"
	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
	"github.com/jeranaias/lanchat-tui/internal/util"
)

// =============================================================================
// PANEL
// =============================================================================

// Panel is a bordered box with its title set into the top edge:
//
//	┌LAN Room──────────┐
//	│12:01:09 alice: hi│
//	└──────────────────┘
//
// The rendered panel is always exactly Area.Width by Area.Height cells.
type Panel struct {
	Area  layout.Rect
	Title string

	// Body holds the styled inner lines, top to bottom. Lines past the inner
	// height are not drawn; wider lines are cut at the border.
	Body []string

	// ContentRows is how many rows the content had before it was windowed
	// into Body.
	ContentRows int

	border      lipgloss.Border
	borderStyle lipgloss.Style
	titleStyle  lipgloss.Style
}

// NewPanel creates an empty panel styled by theme.
func NewPanel(theme *styles.Theme, title string, area layout.Rect) *Panel {
	return &Panel{
		Area:        area,
		Title:       title,
		border:      theme.Border,
		borderStyle: theme.PanelBorder,
		titleStyle:  theme.PanelTitle,
	}
}

// Inner returns the text area inside the border.
func (p *Panel) Inner() layout.Rect {
	return p.Area.Inner()
}

// Lines renders the panel row by row.
func (p *Panel) Lines() []string {
	w, h := p.Area.Width, p.Area.Height
	if w <= 0 || h <= 0 {
		return nil
	}

	rows := make([]string, 0, h)
	if w < 2 || h < 2 {
		for i := 0; i < h; i++ {
			rows = append(rows, strings.Repeat(" ", w))
		}
		return rows
	}

	inner := w - 2
	rows = append(rows, p.topEdge(inner))

	left := p.borderStyle.Render(p.border.Left)
	right := p.borderStyle.Render(p.border.Right)
	for i := 0; i < h-2; i++ {
		body := ""
		if i < len(p.Body) {
			body = p.Body[i]
		}
		rows = append(rows, left+fitWidth(body, inner)+right)
	}

	bottom := p.border.BottomLeft + strings.Repeat(p.border.Bottom, inner) + p.border.BottomRight
	rows = append(rows, p.borderStyle.Render(bottom))
	return rows
}

// View renders the panel as one string.
func (p *Panel) View() string {
	return strings.Join(p.Lines(), "\n")
}

func (p *Panel) topEdge(inner int) string {
	title := util.TruncateWidth(p.Title, inner)
	fill := inner - util.StringWidth(title)

	var b strings.Builder
	b.WriteString(p.borderStyle.Render(p.border.TopLeft))
	if title != "" {
		b.WriteString(p.titleStyle.Render(title))
	}
	b.WriteString(p.borderStyle.Render(strings.Repeat(p.border.Top, fill) + p.border.TopRight))
	return b.String()
}

// fitWidth pads or cuts a styled line to exactly width cells.
func fitWidth(line string, width int) string {
	w := ansi.StringWidth(line)
	switch {
	case w == width:
		return line
	case w < width:
		return line + strings.Repeat(" ", width-w)
	default:
		cut := ansi.Truncate(line, width, "")
		if pad := width - ansi.StringWidth(cut); pad > 0 {
			cut += strings.Repeat(" ", pad)
		}
		return cut
	}
}
