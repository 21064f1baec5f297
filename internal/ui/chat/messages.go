// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"github.com/jeranaias/lanchat-tui/internal/config"
	"github.com/jeranaias/lanchat-tui/internal/model"
)

// PeerMsg delivers an entry from the network (or the demo script).
type PeerMsg struct {
	Entry model.ChatEntry
}

// ConfigReloadedMsg carries the result of a config file reload.
type ConfigReloadedMsg struct {
	Config *config.Config
	Err    error
}

// demoStepMsg fires when script step Index is due.
type demoStepMsg struct {
	Index int
}

// transferTickMsg advances the simulated transfer with the given id.
type transferTickMsg struct {
	ID int
}
