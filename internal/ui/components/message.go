// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/jeranaias/lanchat-tui/internal/model"
	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
)

// TimestampLayout is the clock prefix of every transcript line.
const TimestampLayout = "15:04:05 "

// =============================================================================
// MESSAGE FORMATTER
// =============================================================================

// FormatEntry renders one chat entry as a transcript line:
//
//	12:01:09 alice is online
//	12:01:15 alice: ?send notes.txt
//	12:02:00 lanchat: transfer complete
func FormatEntry(theme *styles.Theme, entry model.ChatEntry, colors *model.UserColorTable, localUser string) Line {
	stamp := Styled(entry.Timestamp.Format(TimestampLayout), theme.Timestamp)

	switch kind := entry.Kind.(type) {
	case model.Connection:
		user := lipgloss.NewStyle().Foreground(UserColor(theme, colors, localUser, entry.User))
		return Line{stamp, Styled(entry.User, user), Styled(" is online", user)}

	case model.Disconnection:
		user := lipgloss.NewStyle().Foreground(UserColor(theme, colors, localUser, entry.User))
		return Line{stamp, Styled(entry.User, user), Styled(" is offline", user)}

	case model.Content:
		user := lipgloss.NewStyle().Foreground(UserColor(theme, colors, localUser, entry.User))
		line := Line{stamp, Styled(entry.User, user), Styled(": ", user)}
		return append(line, ParseContent(theme, kind.Text)...)

	case model.SystemNotice:
		userStyle, textStyle := theme.NoticeUser, theme.NoticeText
		if kind.Severity == model.SeverityError {
			userStyle, textStyle = theme.AlertUser, theme.AlertText
		}
		return Line{stamp, Styled(entry.User, userStyle), Styled(kind.Text, textStyle)}

	default:
		return Line{stamp, Plain(entry.User)}
	}
}

// UserColor picks the color of user. Remote users seen by the color table get
// a palette slot; the local user and unknown users get the reserved color.
func UserColor(theme *styles.Theme, colors *model.UserColorTable, localUser, user string) lipgloss.TerminalColor {
	if user != localUser {
		if slot, ok := colors.Lookup(user); ok {
			return theme.UserColor(slot)
		}
	}
	return theme.LocalUser
}
