// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package model contains the chat room data structures the renderer reads.
//
// Everything the screen shows for one frame comes from a Snapshot, a
// read-only copy taken from the ApplicationState aggregate owned by the
// event loop.
//
// # Key Types
//
//   - ChatEntry: one immutable event in the room log (who, when, what)
//   - Kind: closed set of entry kinds (Connection, Disconnection, Content, SystemNotice)
//   - UserColorTable: stable per-user color slot, assigned on first sight
//   - TransferProgress: bytes sent vs. total for an active outbound file transfer
//   - InputBuffer: the unsent draft and its cursor offset
//   - ApplicationState / Snapshot: the aggregate and its per-frame copy
//
// # Usage
//
//	state := model.NewApplicationState("me")
//	state.Append(model.NewConnection("alice"))
//	state.Append(model.NewContent("alice", "hi all"))
//	snap := state.Snapshot()
package model
