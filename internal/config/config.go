// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading and management for lanchat.
//
// Configuration file locations (in order of precedence):
//   - ~/.lanchat/config.toml
//   - ~/.lanchat/config.json
//   - Built-in defaults
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/jeranaias/lanchat-tui/internal/ui/screen"
	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
	"github.com/jeranaias/lanchat-tui/internal/util"
)

// CurrentVersion is written into new config files.
const CurrentVersion = "1"

// =============================================================================
// CONFIG STRUCTURES
// =============================================================================

// Config represents the complete lanchat configuration.
type Config struct {
	Version string `toml:"version" json:"version"`

	// Chat identity
	Chat ChatConfig `toml:"chat" json:"chat"`

	// UI configuration
	UI UIConfig `toml:"ui" json:"ui"`

	// Debug configuration
	Debug DebugConfig `toml:"debug" json:"debug"`
}

// ChatConfig contains chat identity settings.
type ChatConfig struct {
	// LocalUser is the name this client chats as. It is drawn in the local
	// user color and never takes a palette slot.
	LocalUser string `toml:"local_user" json:"local_user"`
}

// UIConfig contains terminal UI settings.
type UIConfig struct {
	// Theme is "auto", "dark" or "light".
	Theme string `toml:"theme" json:"theme"`
	// Border is "normal", "rounded", "thick" or "double".
	Border          string `toml:"border" json:"border"`
	TranscriptTitle string `toml:"transcript_title" json:"transcript_title"`
	InputTitle      string `toml:"input_title" json:"input_title"`
	// InputHeight is the input panel height in rows, borders included.
	InputHeight int `toml:"input_height" json:"input_height"`
	// ProgressMargin is how much narrower than the panel the transfer bar is.
	ProgressMargin int      `toml:"progress_margin" json:"progress_margin"`
	UserPalette    []string `toml:"user_palette" json:"user_palette"`
	LocalUserColor string   `toml:"local_user_color" json:"local_user_color"`
}

// DebugConfig contains diagnostics settings.
type DebugConfig struct {
	// LogPath receives log output when set. Logs are discarded otherwise.
	LogPath string `toml:"log_path" json:"log_path"`
}

// Input panel height bounds: two border rows plus at least one text row.
const (
	MinInputHeight = 3
	MaxInputHeight = 20
)

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Version: CurrentVersion,
		Chat: ChatConfig{
			LocalUser: "me",
		},
		UI: UIConfig{
			Theme:           "auto",
			Border:          "normal",
			TranscriptTitle: "LAN Room",
			InputTitle:      "Your message",
			InputHeight:     screen.DefaultInputHeight,
			ProgressMargin:  20,
			UserPalette:     []string{"4", "3", "6", "5"},
			LocalUserColor:  "2",
		},
	}
}

// =============================================================================
// CONFIG PATH HELPERS
// =============================================================================

// ConfigDir returns the lanchat configuration directory path.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory: %w", err)
	}
	return filepath.Join(home, ".lanchat"), nil
}

// ConfigPathTOML returns the path to the TOML config file.
func ConfigPathTOML() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// ConfigPathJSON returns the path to the JSON config file.
func ConfigPathJSON() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.json"), nil
}

// =============================================================================
// LOAD FUNCTIONS
// =============================================================================

// Load loads configuration from the config file(s).
// Tries TOML first, then JSON, and falls back to defaults.
// Environment overrides are applied last.
func Load() (*Config, error) {
	var loadErr error

	for _, pathFn := range []func() (string, error){ConfigPathTOML, ConfigPathJSON} {
		path, err := pathFn()
		if err != nil {
			continue
		}
		if _, statErr := os.Stat(path); statErr != nil {
			continue
		}
		cfg, err := LoadFromPath(path)
		if err == nil {
			return cfg, nil
		}
		if loadErr == nil {
			loadErr = err
		}
	}

	cfg := Default()
	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	// Return defaults (with any load error for informational purposes)
	return cfg, loadErr
}

// LoadTOML loads configuration from a TOML file into cfg.
func LoadTOML(cfg *Config, path string) error {
	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return fmt.Errorf("failed to decode TOML file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadJSON loads configuration from a JSON file into cfg.
func LoadJSON(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read JSON file: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to decode JSON file: %w", err)
	}
	return fillDefaults(cfg)
}

// LoadFromPath loads configuration from a specific file path with full
// validation. Files ending in .json are read as JSON, anything else as TOML.
func LoadFromPath(path string) (*Config, error) {
	cfg := &Config{}

	if strings.HasSuffix(path, ".json") {
		if err := LoadJSON(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load JSON config from %s: %w", path, err)
		}
	} else {
		if err := LoadTOML(cfg, path); err != nil {
			return nil, fmt.Errorf("failed to load TOML config from %s: %w", path, err)
		}
	}

	cfg.ApplyEnvOverrides()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// fillDefaults fills in any missing values with defaults.
func fillDefaults(cfg *Config) error {
	defaults := Default()

	if cfg.Version == "" {
		cfg.Version = defaults.Version
	}

	// Chat
	if cfg.Chat.LocalUser == "" {
		cfg.Chat.LocalUser = defaults.Chat.LocalUser
	}

	// UI
	if cfg.UI.Theme == "" {
		cfg.UI.Theme = defaults.UI.Theme
	}
	if cfg.UI.Border == "" {
		cfg.UI.Border = defaults.UI.Border
	}
	if cfg.UI.TranscriptTitle == "" {
		cfg.UI.TranscriptTitle = defaults.UI.TranscriptTitle
	}
	if cfg.UI.InputTitle == "" {
		cfg.UI.InputTitle = defaults.UI.InputTitle
	}
	if cfg.UI.InputHeight == 0 {
		cfg.UI.InputHeight = defaults.UI.InputHeight
	}
	if cfg.UI.ProgressMargin == 0 {
		cfg.UI.ProgressMargin = defaults.UI.ProgressMargin
	}
	if len(cfg.UI.UserPalette) == 0 {
		cfg.UI.UserPalette = defaults.UI.UserPalette
	}
	if cfg.UI.LocalUserColor == "" {
		cfg.UI.LocalUserColor = defaults.UI.LocalUserColor
	}

	return nil
}

// =============================================================================
// SAVE FUNCTIONS
// =============================================================================

// SaveToPath saves the configuration to path. Files ending in .json are
// written as JSON, anything else as TOML.
func SaveToPath(cfg *Config, path string) error {
	if strings.HasSuffix(path, ".json") {
		return SaveJSON(cfg, path)
	}
	return SaveTOML(cfg, path)
}

// SaveTOML saves the configuration to a TOML file.
func SaveTOML(cfg *Config, path string) error {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "# lanchat configuration file")
	fmt.Fprintln(&buf, "# Generated by lanchat-tui - edit with care")
	fmt.Fprintln(&buf, "")

	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	if err := util.AtomicWriteFile(path, buf.Bytes(), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// SaveJSON saves the configuration to a JSON file.
func SaveJSON(cfg *Config, path string) error {
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := util.AtomicWriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// =============================================================================
// VALIDATION
// =============================================================================

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidateErrors is a collection of validation errors.
type ValidateErrors []ValidationError

func (e ValidateErrors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	var msgs []string
	for _, err := range e {
		msgs = append(msgs, err.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate validates the configuration and returns any errors.
func (c *Config) Validate() error {
	var errs ValidateErrors

	if strings.TrimSpace(c.Chat.LocalUser) == "" {
		errs = append(errs, ValidationError{
			Field:   "chat.local_user",
			Message: "must not be empty",
		})
	}

	validThemes := map[string]bool{"auto": true, "dark": true, "light": true}
	if !validThemes[strings.ToLower(c.UI.Theme)] {
		errs = append(errs, ValidationError{
			Field:   "ui.theme",
			Message: fmt.Sprintf("invalid theme '%s', must be one of: auto, dark, light", c.UI.Theme),
		})
	}

	if _, ok := styles.BorderByName(c.UI.Border); !ok {
		errs = append(errs, ValidationError{
			Field:   "ui.border",
			Message: fmt.Sprintf("invalid border '%s', must be one of: normal, rounded, thick, double", c.UI.Border),
		})
	}

	if c.UI.InputHeight < MinInputHeight || c.UI.InputHeight > MaxInputHeight {
		errs = append(errs, ValidationError{
			Field:   "ui.input_height",
			Message: fmt.Sprintf("must be between %d and %d, got %d", MinInputHeight, MaxInputHeight, c.UI.InputHeight),
		})
	}

	if c.UI.ProgressMargin < 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.progress_margin",
			Message: fmt.Sprintf("must not be negative, got %d", c.UI.ProgressMargin),
		})
	}

	if len(c.UI.UserPalette) == 0 {
		errs = append(errs, ValidationError{
			Field:   "ui.user_palette",
			Message: "must hold at least one color",
		})
	}
	for i, spec := range c.UI.UserPalette {
		if _, ok := styles.ParseColor(spec); !ok {
			errs = append(errs, ValidationError{
				Field:   fmt.Sprintf("ui.user_palette[%d]", i),
				Message: fmt.Sprintf("invalid color '%s'", spec),
			})
		}
	}

	if _, ok := styles.ParseColor(c.UI.LocalUserColor); !ok {
		errs = append(errs, ValidationError{
			Field:   "ui.local_user_color",
			Message: fmt.Sprintf("invalid color '%s'", c.UI.LocalUserColor),
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// =============================================================================
// ENVIRONMENT OVERRIDES
// =============================================================================

// ApplyEnvOverrides applies environment variable overrides to the config.
//
// Supported environment variables:
//   - LANCHAT_USER: overrides chat.local_user
//   - LANCHAT_THEME: overrides ui.theme
//   - LANCHAT_BORDER: overrides ui.border
//   - LANCHAT_LOG: overrides debug.log_path
func (c *Config) ApplyEnvOverrides() {
	if user := os.Getenv("LANCHAT_USER"); user != "" {
		c.Chat.LocalUser = user
	}
	if theme := os.Getenv("LANCHAT_THEME"); theme != "" {
		c.UI.Theme = theme
	}
	if border := os.Getenv("LANCHAT_BORDER"); border != "" {
		c.UI.Border = border
	}
	if logPath := os.Getenv("LANCHAT_LOG"); logPath != "" {
		c.Debug.LogPath = logPath
	}
}

// =============================================================================
// CONVERSIONS
// =============================================================================

// ThemeOptions maps the UI settings onto theme options.
func (c *Config) ThemeOptions() styles.ThemeOptions {
	return styles.ThemeOptions{
		Mode:        c.UI.Theme,
		Border:      c.UI.Border,
		UserPalette: append([]string(nil), c.UI.UserPalette...),
		LocalUser:   c.UI.LocalUserColor,
	}
}

// ScreenOptions maps the UI settings onto layout options.
func (c *Config) ScreenOptions() screen.Options {
	return screen.Options{
		TranscriptTitle: c.UI.TranscriptTitle,
		InputTitle:      c.UI.InputTitle,
		InputHeight:     c.UI.InputHeight,
		ProgressMargin:  c.UI.ProgressMargin,
	}
}

// Clone returns a deep copy of the configuration.
func (c *Config) Clone() *Config {
	clone := *c
	clone.UI.UserPalette = append([]string(nil), c.UI.UserPalette...)
	return &clone
}

// String returns the configuration as TOML.
func (c *Config) String() string {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return fmt.Sprintf("error encoding config: %v", err)
	}
	return buf.String()
}

// =============================================================================
// SINGLETON PATTERN (THREAD-SAFE)
// =============================================================================

var (
	globalConfig     *Config
	globalConfigOnce sync.Once
	globalConfigMu   sync.RWMutex
)

// Global returns the global configuration instance.
// Loads configuration on first access. Thread-safe.
func Global() *Config {
	globalConfigOnce.Do(func() {
		cfg, err := Load()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		if cfg == nil {
			cfg = Default()
		}
		globalConfigMu.Lock()
		if globalConfig == nil {
			globalConfig = cfg
		}
		globalConfigMu.Unlock()
	})

	globalConfigMu.RLock()
	defer globalConfigMu.RUnlock()
	return globalConfig
}

// SetGlobal sets the global configuration instance. Thread-safe.
// After SetGlobal, Global never loads from disk.
func SetGlobal(cfg *Config) {
	globalConfigOnce.Do(func() {})
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalForTesting resets the global config state for testing.
func ResetGlobalForTesting() {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = nil
	globalConfigOnce = sync.Once{}
}
