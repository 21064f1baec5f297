// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides command-line parsing and the non-interactive commands
// of lanchat-tui.
//
// # Commands
//
//   - tui (default): interactive chat room preview
//   - snapshot: render one frame of the demo room to stdout
//   - config [show|path|init]: inspect or create the config file
//   - version, help
//
// # Global Flags
//
//	--config PATH   Use PATH instead of ~/.lanchat/config.toml
//	--user NAME     Chat as NAME
//	--width N       Snapshot width (default: terminal width)
//	--height N      Snapshot height (default: terminal height)
//	--debug         Log to lanchat-debug.log when no log path is configured
package cli
