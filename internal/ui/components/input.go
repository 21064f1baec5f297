// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/jeranaias/lanchat-tui/internal/model"
	"github.com/jeranaias/lanchat-tui/internal/ui/layout"
	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
	"github.com/jeranaias/lanchat-tui/internal/util"
)

// DefaultInputTitle is the title of the input panel.
const DefaultInputTitle = "Your message"

// =============================================================================
// INPUT PANEL
// =============================================================================

// BuildInput lays the draft out in its bordered panel, hard wrapped every
// inner-width runes, and returns the screen cell of the cursor. A cursor at
// the end of a full row sits at the start of the next one.
func BuildInput(theme *styles.Theme, input []rune, cursor int, area layout.Rect) (*Panel, layout.Point) {
	return BuildInputTitled(theme, DefaultInputTitle, input, cursor, area)
}

// BuildInputTitled is BuildInput with a custom panel title.
func BuildInputTitled(theme *styles.Theme, title string, input []rune, cursor int, area layout.Rect) (*Panel, layout.Point) {
	panel := NewPanel(theme, title, area)
	origin := layout.Point{X: area.X + 1, Y: area.Y + 1}

	width := area.Width - 2
	if width < 1 {
		return panel, origin
	}

	for _, chunk := range util.SplitEach(string(input), width) {
		panel.Body = append(panel.Body, Line{Plain(chunk)}.Render(theme.PanelText))
	}

	if cursor > len(input) {
		cursor = len(input)
	}
	row, col := model.CursorCell(cursor, width)
	return panel, layout.Point{X: origin.X + col, Y: origin.Y + row}
}
