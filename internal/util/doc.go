// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package util provides small helpers shared by the lanchat packages.
//
// # Key Functions
//
// String Utilities:
//   - SplitEach: fixed-width rune chunking used by the input panel
//   - TruncateWidth: display-width aware truncation for panel titles
//   - RuneLen: character count of a UTF-8 string
//
// File Operations:
//   - AtomicWriteFile: crash-safe file writing with fsync
//
// # Usage
//
//	// Break a draft message into panel-width lines
//	lines := util.SplitEach(draft, 38)
//
//	// Fit a title into the top border
//	title := util.TruncateWidth("LAN Room", 6)
package util
