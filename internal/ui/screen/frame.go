// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screen

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/jeranaias/lanchat-tui/internal/ui/layout"
)

// Frame is one fully composed screen: Height styled rows of Width cells and
// where the cursor goes.
type Frame struct {
	Width  int
	Height int
	Lines  []string

	// Cursor is the cell the input panel asked for. It may fall outside the
	// frame on tiny terminals, in which case CursorVisible is false.
	Cursor        layout.Point
	CursorVisible bool

	// TranscriptRows is the wrapped row count of the whole transcript, of
	// which only a window is visible.
	TranscriptRows int
}

// String joins the styled rows.
func (f *Frame) String() string {
	return strings.Join(f.Lines, "\n")
}

// Plain returns the rows with all styling removed.
func (f *Frame) Plain() []string {
	out := make([]string, len(f.Lines))
	for i, l := range f.Lines {
		out[i] = ansi.Strip(l)
	}
	return out
}

// Clone returns a copy that shares nothing with f.
func (f *Frame) Clone() *Frame {
	c := *f
	c.Lines = append([]string(nil), f.Lines...)
	return &c
}
