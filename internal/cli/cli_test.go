// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/x/ansi"

	"github.com/jeranaias/lanchat-tui/internal/config"
)

// =============================================================================
// PARSE TESTS
// =============================================================================

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name     string
		argv     []string
		wantCmd  Command
		wantErr  bool
		validate func(*testing.T, Args)
	}{
		{name: "no args", argv: nil, wantCmd: CmdTUI},
		{name: "tui", argv: []string{"tui"}, wantCmd: CmdTUI},
		{name: "snapshot", argv: []string{"snapshot"}, wantCmd: CmdSnapshot},
		{name: "version flag", argv: []string{"--version"}, wantCmd: CmdVersion},
		{name: "help", argv: []string{"help"}, wantCmd: CmdHelp},
		{
			name:    "config subcommand",
			argv:    []string{"config", "PATH"},
			wantCmd: CmdConfig,
			validate: func(t *testing.T, a Args) {
				if a.Subcommand != "path" {
					t.Errorf("Subcommand = %q, want %q", a.Subcommand, "path")
				}
			},
		},
		{
			name:    "global flags anywhere",
			argv:    []string{"--user", "dana", "snapshot", "--width=100", "--height", "30", "--debug"},
			wantCmd: CmdSnapshot,
			validate: func(t *testing.T, a Args) {
				if a.User != "dana" || a.Width != 100 || a.Height != 30 || !a.Debug {
					t.Errorf("flags not parsed: %+v", a)
				}
			},
		},
		{
			name:    "config path flag",
			argv:    []string{"-c", "/tmp/lan.toml"},
			wantCmd: CmdTUI,
			validate: func(t *testing.T, a Args) {
				if a.ConfigPath != "/tmp/lan.toml" {
					t.Errorf("ConfigPath = %q", a.ConfigPath)
				}
			},
		},
		{name: "missing value", argv: []string{"--user"}, wantCmd: CmdHelp, wantErr: true},
		{name: "bad width", argv: []string{"snapshot", "--width", "wide"}, wantCmd: CmdHelp, wantErr: true},
		{name: "zero height", argv: []string{"--height=0"}, wantCmd: CmdHelp, wantErr: true},
		{name: "unknown command", argv: []string{"dance"}, wantCmd: CmdHelp, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd, args, err := ParseArgs(tc.argv)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseArgs(%v) error = %v, wantErr %v", tc.argv, err, tc.wantErr)
			}
			if cmd != tc.wantCmd {
				t.Errorf("ParseArgs(%v) command = %v, want %v", tc.argv, cmd, tc.wantCmd)
			}
			if tc.validate != nil {
				tc.validate(t, args)
			}
		})
	}
}

func TestShowHelpAndVersion(t *testing.T) {
	var buf bytes.Buffer
	ShowHelp(&buf)
	if !strings.Contains(buf.String(), "lanchat-tui snapshot") {
		t.Error("help should list the snapshot command")
	}

	buf.Reset()
	ShowVersion(&buf)
	if !strings.Contains(buf.String(), Version) {
		t.Errorf("version output %q should contain %q", buf.String(), Version)
	}
}

// =============================================================================
// SNAPSHOT TESTS
// =============================================================================

// useConfig installs cfg as the global config for the test.
func useConfig(t *testing.T, cfg *config.Config) {
	t.Helper()
	config.SetGlobal(cfg)
	t.Cleanup(config.ResetGlobalForTesting)
}

func snapshotConfig() *config.Config {
	cfg := config.Default()
	cfg.UI.Theme = "dark"
	return cfg
}

func TestHandleSnapshot_Buffer(t *testing.T) {
	ForceColorsEnabled(false)

	useConfig(t, snapshotConfig())

	var buf bytes.Buffer
	if err := HandleSnapshot(Args{Width: 70, Height: 20}, &buf); err != nil {
		t.Fatalf("HandleSnapshot failed: %v", err)
	}

	rows := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(rows) != 20 {
		t.Fatalf("got %d rows, want 20", len(rows))
	}
	for i, row := range rows {
		if w := ansi.StringWidth(row); w != 70 {
			t.Errorf("row %d is %d cells wide, want 70", i, w)
		}
	}

	out := buf.String()
	for _, want := range []string{"LAN Room", "Sending: [", "bob is offline", "Your message", snapshotDraft} {
		if !strings.Contains(out, want) {
			t.Errorf("snapshot should contain %q", want)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain snapshot should not contain escape sequences")
	}
}

func TestSnapshotState(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	snap := SnapshotState("me", now)

	if len(snap.Entries) == 0 {
		t.Fatal("snapshot state should hold the demo conversation")
	}
	if last := snap.Entries[len(snap.Entries)-1].Timestamp; !last.Equal(now) {
		t.Errorf("last entry at %v, want %v", last, now)
	}
	if snap.Progress == nil || snap.Progress.Completed != 34 {
		t.Errorf("expected a transfer in flight, got %+v", snap.Progress)
	}
	if string(snap.Input) != snapshotDraft || snap.InputCursor != len([]rune(snapshotDraft)) {
		t.Errorf("unexpected draft %q at %d", string(snap.Input), snap.InputCursor)
	}
}

// =============================================================================
// CONFIG COMMAND TESTS
// =============================================================================

func TestHandleConfig(t *testing.T) {
	useConfig(t, config.Default())
	path := filepath.Join(t.TempDir(), "config.toml")
	args := Args{ConfigPath: path, User: "dana"}

	var buf bytes.Buffer
	args.Subcommand = "path"
	if err := HandleConfig(args, &buf); err != nil {
		t.Fatalf("config path failed: %v", err)
	}
	if strings.TrimSpace(buf.String()) != path {
		t.Errorf("config path printed %q, want %q", buf.String(), path)
	}

	buf.Reset()
	args.Subcommand = "init"
	if err := HandleConfig(args, &buf); err != nil {
		t.Fatalf("config init failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config init did not write %s: %v", path, err)
	}
	t.Setenv("LANCHAT_USER", "")
	loaded, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if loaded.Chat.LocalUser != "dana" {
		t.Errorf("local user = %q, want dana", loaded.Chat.LocalUser)
	}

	if err := HandleConfig(args, &buf); err == nil {
		t.Error("config init should refuse to overwrite")
	}

	buf.Reset()
	args.Subcommand = "show"
	config.SetGlobal(loaded)
	if err := HandleConfig(args, &buf); err != nil {
		t.Fatalf("config show failed: %v", err)
	}
	if !strings.Contains(buf.String(), `local_user = "dana"`) {
		t.Errorf("config show output missing local user:\n%s", buf.String())
	}

	args.Subcommand = "frobnicate"
	if err := HandleConfig(args, &buf); err == nil {
		t.Error("unknown subcommand should fail")
	}
}

func TestHandleConfig_InitJSON(t *testing.T) {
	useConfig(t, config.Default())
	t.Setenv("LANCHAT_USER", "")
	path := filepath.Join(t.TempDir(), "config.json")

	var buf bytes.Buffer
	args := Args{ConfigPath: path, User: "erin", Subcommand: "init"}
	if err := HandleConfig(args, &buf); err != nil {
		t.Fatalf("config init failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("config init did not write %s: %v", path, err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(data)), "{") {
		t.Errorf("a .json path should be written as JSON, got:\n%s", data)
	}
	loaded, err := config.LoadFromPath(path)
	if err != nil {
		t.Fatalf("written config does not load: %v", err)
	}
	if loaded.Chat.LocalUser != "erin" {
		t.Errorf("local user = %q, want erin", loaded.Chat.LocalUser)
	}
}
