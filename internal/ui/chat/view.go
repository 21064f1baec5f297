// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"log"
)

// =============================================================================
// VIEW
// =============================================================================

// View draws the current state. If drawing fails the previous frame stays
// on screen.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	m.surface.Resize(m.width, m.height)
	if err := m.renderer.Draw(m.surface, m.state.Snapshot()); err != nil {
		log.Printf("chat: %v", err)
	}
	return m.surface.View(m.renderer.Theme().Cursor)
}
