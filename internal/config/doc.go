// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for lanchat.
//
// Supports both TOML and JSON configuration formats, with sensible defaults,
// environment variable overrides, validation and live reload.
//
// # Key Types
//
//   - Config: Main configuration structure with all settings
//   - ChatConfig: Who this client chats as
//   - UIConfig: Theme, borders, titles and the user palette
//   - Watcher: Reloads the config file when it changes on disk
//
// # Configuration Precedence
//
// Configuration is loaded from (in order of precedence):
//   - Environment variables (LANCHAT_*)
//   - ~/.lanchat/config.toml
//   - ~/.lanchat/config.json
//   - Built-in defaults
//
// # Usage
//
// Load configuration:
//
//	cfg, err := config.Load()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// Build the theme and layout from it:
//
//	theme, err := styles.NewThemeWithOptions(cfg.ThemeOptions())
//	renderer := screen.NewRenderer(theme, cfg.ScreenOptions())
package config
