// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package screen composes the chat room panels into frames and commits them
// to a drawing surface.
//
// A Renderer is stateless between calls: Draw reads one model.Snapshot,
// builds the whole frame in memory and hands it to the Surface in a single
// Commit. A failed size query or commit surfaces as a *RenderError and
// leaves nothing half drawn.
package screen
