// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// cli.go - CLI parsing for lanchat-tui.
package cli

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
)

// Version information (can be overridden at build time)
var (
	Version   = "0.1.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command represents the CLI command to execute.
type Command int

const (
	CmdTUI Command = iota
	CmdSnapshot
	CmdConfig
	CmdVersion
	CmdHelp
)

// Args holds parsed CLI arguments.
type Args struct {
	// Global flags
	ConfigPath string
	User       string
	Width      int
	Height     int
	Debug      bool

	// Command-specific
	Subcommand string

	// Raw args (remaining after the command word)
	Raw []string
}

const usageText = `lanchat-tui - chat room for the local network, in your terminal

Usage:
  lanchat-tui                     Start the chat room preview (default)
  lanchat-tui tui                 Same as above
  lanchat-tui snapshot            Print one frame of the demo room
  lanchat-tui config [show]       Show the effective configuration
  lanchat-tui config path         Print the config file location
  lanchat-tui config init         Write a default config file
  lanchat-tui version             Show version information
  lanchat-tui help                Show this help

Flags:
  --config PATH                   Config file (default: ~/.lanchat/config.toml)
  -u, --user NAME                 Chat as NAME (overrides chat.local_user)
  --width N                       Snapshot width in cells
  --height N                      Snapshot height in cells
  --debug                         Write logs to lanchat-debug.log

Keys (preview):
  Enter                           Send the draft (try "?send report.pdf")
  PgUp / PgDn                     Scroll the transcript
  Ctrl+L                          Jump back to the newest message
  Esc, Ctrl+C                     Quit

Environment:
  LANCHAT_USER, LANCHAT_THEME, LANCHAT_BORDER, LANCHAT_LOG
`

// Parse parses os.Args.
func Parse() (Command, Args, error) {
	return ParseArgs(os.Args[1:])
}

// ParseArgs parses a command line without the program name.
func ParseArgs(argv []string) (Command, Args, error) {
	remaining, parsedArgs, err := parseGlobalFlags(argv)
	if err != nil {
		return CmdHelp, parsedArgs, err
	}

	// If no remaining args, default to TUI
	if len(remaining) == 0 {
		return CmdTUI, parsedArgs, nil
	}

	cmd := strings.ToLower(remaining[0])
	remaining = remaining[1:]
	parsedArgs.Raw = remaining

	switch cmd {
	case "tui", "chat":
		return CmdTUI, parsedArgs, nil

	case "snapshot", "snap":
		return CmdSnapshot, parsedArgs, nil

	case "config":
		if len(remaining) > 0 {
			parsedArgs.Subcommand = strings.ToLower(remaining[0])
		}
		return CmdConfig, parsedArgs, nil

	case "version", "-v", "--version":
		return CmdVersion, parsedArgs, nil

	case "help", "-h", "--help":
		return CmdHelp, parsedArgs, nil

	default:
		return CmdHelp, parsedArgs, fmt.Errorf("unknown command %q", cmd)
	}
}

// parseGlobalFlags pulls the global flags out of argv wherever they appear
// and returns the rest in order.
func parseGlobalFlags(argv []string) ([]string, Args, error) {
	var remaining []string
	var parsedArgs Args

	for i := 0; i < len(argv); i++ {
		arg := argv[i]

		name, value, hasValue := strings.Cut(arg, "=")
		next := func() (string, error) {
			if hasValue {
				return value, nil
			}
			if i+1 >= len(argv) {
				return "", fmt.Errorf("flag %s needs a value", name)
			}
			i++
			return argv[i], nil
		}

		switch name {
		case "--config", "-c":
			v, err := next()
			if err != nil {
				return nil, parsedArgs, err
			}
			parsedArgs.ConfigPath = v
		case "--user", "-u":
			v, err := next()
			if err != nil {
				return nil, parsedArgs, err
			}
			parsedArgs.User = v
		case "--width", "--height":
			v, err := next()
			if err != nil {
				return nil, parsedArgs, err
			}
			n, err := parseSize(name, v)
			if err != nil {
				return nil, parsedArgs, err
			}
			if name == "--width" {
				parsedArgs.Width = n
			} else {
				parsedArgs.Height = n
			}
		case "--debug":
			parsedArgs.Debug = true
		default:
			remaining = append(remaining, arg)
		}
	}

	return remaining, parsedArgs, nil
}

func parseSize(flag, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return 0, fmt.Errorf("flag %s: %q is not a positive number", flag, value)
	}
	return n, nil
}

// ShowHelp prints usage.
func ShowHelp(w io.Writer) {
	fmt.Fprint(w, usageText)
}

// ShowVersion prints version information.
func ShowVersion(w io.Writer) {
	fmt.Fprintf(w, "lanchat-tui %s\n", Version)
	fmt.Fprintf(w, "  Commit:  %s\n", GitCommit)
	fmt.Fprintf(w, "  Built:   %s\n", BuildDate)
	fmt.Fprintf(w, "  Go:      %s %s/%s\n", runtime.Version(), runtime.GOOS, runtime.GOARCH)
}
