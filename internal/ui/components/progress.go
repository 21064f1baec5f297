// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"math/bits"
	"strings"

	"github.com/jeranaias/lanchat-tui/internal/model"
	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
)

// DefaultProgressMargin is the number of panel columns the transfer bar
// leaves for its label and brackets.
const DefaultProgressMargin = 20

// =============================================================================
// TRANSFER BAR
// =============================================================================

// TransferBar renders the outbound transfer line for a panel panelWidth
// columns wide using the default margin.
func TransferBar(theme *styles.Theme, progress model.TransferProgress, panelWidth int) Line {
	return TransferBarWithMargin(theme, progress, panelWidth, DefaultProgressMargin)
}

// TransferBarWithMargin renders "Sending: [###---]" with the bar sized to
// panelWidth minus margin.
func TransferBarWithMargin(theme *styles.Theme, progress model.TransferProgress, panelWidth, margin int) Line {
	width := panelWidth - margin
	if width < 0 {
		width = 0
	}
	filled, empty := BarCells(progress, width)

	var bar strings.Builder
	bar.Grow(filled + empty + 2)
	bar.WriteByte('[')
	bar.WriteString(strings.Repeat("#", filled))
	bar.WriteString(strings.Repeat("-", empty))
	bar.WriteByte(']')

	return Line{
		Styled("Sending: ", theme.TransferBar),
		Styled(bar.String(), theme.TransferBar),
	}
}

// BarCells splits a bar width cells wide into filled and empty cells.
// Integer division keeps filled+empty <= width, with filled == width
// exactly when the transfer is complete. A non-positive total yields an
// empty bar.
func BarCells(progress model.TransferProgress, width int) (filled, empty int) {
	total := progress.Total
	if total <= 0 || width <= 0 {
		return 0, 0
	}

	completed := progress.Completed
	if completed < 0 {
		completed = 0
	}
	if completed > total {
		completed = total
	}

	return scale(completed, width, total), scale(total-completed, width, total)
}

// scale returns floor(n*width/total) for 0 <= n <= total without
// overflowing on huge files.
func scale(n int64, width int, total int64) int {
	hi, lo := bits.Mul64(uint64(n), uint64(width))
	quo, _ := bits.Div64(hi, lo, uint64(total))
	return int(quo)
}
