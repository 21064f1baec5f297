// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"github.com/mattn/go-runewidth"
)

// UNICODE: all helpers here count runes, never bytes, so multi-byte
// characters are never split in half.

// SplitEach splits s into consecutive chunks of exactly n runes. The last
// chunk holds whatever is left and may be shorter. Concatenating the result
// always reproduces s. An empty string or n < 1 yields no chunks.
func SplitEach(s string, n int) []string {
	if n < 1 || s == "" {
		return nil
	}
	runes := []rune(s)
	chunks := make([]string, 0, (len(runes)+n-1)/n)
	for start := 0; start < len(runes); start += n {
		end := start + n
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, string(runes[start:end]))
	}
	return chunks
}

// TruncateWidth truncates s to at most maxWidth terminal columns.
// Double-width characters (CJK) count as 2 columns; no ellipsis is added.
func TruncateWidth(s string, maxWidth int) string {
	if maxWidth <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= maxWidth {
		return s
	}
	return runewidth.Truncate(s, maxWidth, "")
}

// StringWidth returns the number of terminal columns s occupies.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// RuneLen returns the number of runes (characters) in a string.
func RuneLen(s string) int {
	return len([]rune(s))
}
