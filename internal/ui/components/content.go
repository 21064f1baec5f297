// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
)

// SendCommand starts an outbound file transfer.
const SendCommand = "?send"

// commandTokens are the chat commands highlighted at the start of a message.
var commandTokens = []string{
	SendCommand,
}

// CommandToken returns the command a message starts with, if any.
func CommandToken(content string) (string, bool) {
	for _, token := range commandTokens {
		if strings.HasPrefix(content, token) {
			return token, true
		}
	}
	return "", false
}

// ParseContent splits message content into styled runs. A leading command
// token is highlighted and the rest of the message follows in the default
// style; anything else is a single default run.
func ParseContent(theme *styles.Theme, content string) Line {
	token, ok := CommandToken(content)
	if !ok {
		return Line{Plain(content)}
	}

	parts := strings.SplitN(content, token, 2)
	rest := ""
	if len(parts) == 2 {
		rest = parts[1]
	}
	return Line{
		Styled(token, theme.Command),
		Plain(rest),
	}
}
