// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// config_cmd.go - The config command.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/jeranaias/lanchat-tui/internal/config"
)

// ConfigPath returns the config file the command line points at.
func ConfigPath(args Args) (string, error) {
	if args.ConfigPath != "" {
		return args.ConfigPath, nil
	}
	return config.ConfigPathTOML()
}

// HandleConfig runs "config show|path|init". show prints config.Global.
func HandleConfig(args Args, out io.Writer) error {
	switch args.Subcommand {
	case "", "show":
		_, err := fmt.Fprint(out, config.Global().String())
		return err

	case "path":
		path, err := ConfigPath(args)
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, path)
		return err

	case "init":
		path, err := ConfigPath(args)
		if err != nil {
			return err
		}
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists", path)
		}
		fresh := config.Default()
		if args.User != "" {
			fresh.Chat.LocalUser = args.User
		}
		if err := config.SaveToPath(fresh, path); err != nil {
			return err
		}
		_, err = fmt.Fprintf(out, "Wrote %s\n", path)
		return err

	default:
		return fmt.Errorf("unknown config subcommand %q (want show, path or init)", args.Subcommand)
	}
}
