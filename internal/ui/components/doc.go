// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Package components builds the two panels of the chat room screen.

Every builder is a pure function of its arguments: it reads a theme and a
slice of state and returns styled output, never keeping anything between
calls. The screen package stacks the panels into a frame.

# Building Blocks

Run and Line (text.go) - Styled text fragments and the lines made from them.
Panel (panel.go) - Bordered box with a bold title and an exact cell size.

# Transcript

ParseContent (content.go) - Highlights a leading chat command such as ?send.
FormatEntry (message.go) - Turns one chat entry into a timestamped line.
TransferBar (progress.go) - Outbound file transfer bar shown above the log.
BuildTranscript (transcript.go) - Newest-first, word wrapped, scrollable log.

# Input

BuildInput (input.go) - Hard-wrapped draft text and the cursor cell.

# Usage

	theme := styles.NewTheme()
	panel := components.BuildTranscript(theme, components.TranscriptParams{
		Entries:   snap.Entries,
		Colors:    snap.Colors,
		LocalUser: snap.LocalUser,
		Progress:  snap.Progress,
		Scroll:    snap.Scroll,
		Area:      area,
	})
	view := panel.View()
*/
package components
