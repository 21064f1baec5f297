// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package chat is the interactive preview of the chat room screen.
//
// It owns a model.ApplicationState, feeds it from a scripted demo room and
// from the keyboard, and draws every frame through screen.Renderer into an
// in-memory surface that Bubble Tea prints. Sending "?send <file>" starts a
// simulated outbound transfer so the progress overlay can be seen.
//
// Files:
//   - keys.go: key bindings
//   - messages.go: Bubble Tea message types
//   - model.go: Model, Init and Update
//   - transfer.go: simulated file transfers
//   - view.go: frame drawing
package chat
