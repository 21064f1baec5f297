// lanchat-tui - A terminal chat room for the local network.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lanchat-tui/internal/cli"
	"github.com/jeranaias/lanchat-tui/internal/config"
	"github.com/jeranaias/lanchat-tui/internal/ui/chat"
)

// Version information (set at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// defaultLogPath is used by --debug when the config names no log file.
const defaultLogPath = "lanchat-debug.log"

func init() {
	// Sync version info with cli package
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	// Parse CLI arguments
	cmd, args, err := cli.Parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n\n", err)
		cli.ShowHelp(os.Stderr)
		os.Exit(2)
	}

	switch cmd {
	case cli.CmdHelp:
		cli.ShowHelp(os.Stdout)
		return
	case cli.CmdVersion:
		cli.ShowVersion(os.Stdout)
		return
	}

	cfg, err := loadConfig(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	config.SetGlobal(cfg)

	closeLog := setupLogging(args.Debug)
	defer closeLog()

	// Route to appropriate handler
	switch cmd {
	case cli.CmdTUI:
		err = runTUI(args)
	case cli.CmdSnapshot:
		err = cli.HandleSnapshot(args, os.Stdout)
	case cli.CmdConfig:
		err = cli.HandleConfig(args, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// loadConfig reads --config if given, else the default locations. A broken
// default config file is reported but does not stop the program.
func loadConfig(args cli.Args) (*config.Config, error) {
	var cfg *config.Config
	if args.ConfigPath != "" {
		loaded, err := config.LoadFromPath(args.ConfigPath)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	} else {
		loaded, err := config.Load()
		if loaded == nil {
			return nil, err
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: %v (using defaults)\n", err)
		}
		cfg = loaded
	}

	if args.User != "" {
		cfg.Chat.LocalUser = args.User
		if err := cfg.Validate(); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// setupLogging sends the log package to the configured file, or discards
// it. The returned func closes the file.
func setupLogging(debug bool) func() {
	path := config.Global().Debug.LogPath
	if path == "" && debug {
		path = defaultLogPath
	}
	if path == "" {
		log.SetOutput(io.Discard)
		return func() {}
	}

	f, err := tea.LogToFile(path, "lanchat")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open log file: %v\n", err)
		log.SetOutput(io.Discard)
		return func() {}
	}
	return func() { f.Close() }
}

func runTUI(args cli.Args) error {
	m := chat.New(true)
	p := tea.NewProgram(m, tea.WithAltScreen())

	if w, err := startWatcher(args, p); err != nil {
		log.Printf("config watcher disabled: %v", err)
	} else {
		defer w.Close()
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}

// startWatcher reloads the config file into the running program. The
// watcher runs on its own goroutine, so results go through p.Send.
func startWatcher(args cli.Args, p *tea.Program) (*config.Watcher, error) {
	path, err := cli.ConfigPath(args)
	if err != nil {
		return nil, err
	}

	w, err := config.NewWatcher(path, config.DefaultDebounce, func(c *config.Config, err error) {
		if err == nil && args.User != "" {
			c.Chat.LocalUser = args.User
		}
		p.Send(chat.ConfigReloadedMsg{Config: c, Err: err})
	})
	if err != nil {
		return nil, err
	}
	if err := w.Watch(); err != nil {
		w.Close()
		return nil, err
	}
	log.Printf("watching %s", w.Path())
	return w, nil
}
