// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// snapshot.go - Render one frame of the demo room.
package cli

import (
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/jeranaias/lanchat-tui/internal/config"
	"github.com/jeranaias/lanchat-tui/internal/demo"
	"github.com/jeranaias/lanchat-tui/internal/model"
	"github.com/jeranaias/lanchat-tui/internal/ui/screen"
	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
)

// snapshotDraft is the text left in the input panel of a snapshot.
const snapshotDraft = "?send quarterly-report.xlsx"

// HandleSnapshot renders the demo room once. On a terminal it draws in place
// at the terminal's size unless --width or --height is given; anywhere else
// it prints the frame as text. Settings come from config.Global.
func HandleSnapshot(args Args, out io.Writer) error {
	cfg := config.Global()
	theme, err := styles.NewThemeWithOptions(cfg.ThemeOptions())
	if err != nil {
		log.Printf("snapshot: %v", err)
	}
	renderer := screen.NewRenderer(theme, cfg.ScreenOptions())
	snap := SnapshotState(cfg.Chat.LocalUser, time.Now())

	if f, ok := out.(*os.File); ok && IsTerminal(f) && args.Width == 0 && args.Height == 0 {
		surface := screen.NewTerminalSurface(f)
		surface.Clear()
		drawErr := renderer.Draw(surface, snap)
		if err := surface.Close(); err != nil && drawErr == nil {
			drawErr = err
		}
		return drawErr
	}

	width, height := GetTerminalSize()
	if args.Width > 0 {
		width = args.Width
	}
	if args.Height > 0 {
		height = args.Height
	}

	surface := screen.NewBufferSurface(width, height)
	if err := renderer.Draw(surface, snap); err != nil {
		return err
	}

	frame := surface.Last()
	text := frame.String()
	if !ColorsEnabled() {
		text = strings.Join(frame.Plain(), "\n")
	}
	_, err = fmt.Fprintln(out, text)
	return err
}

// SnapshotState builds the room shown by a snapshot: the demo conversation
// ending at now, a transfer in flight and a draft in the input panel.
func SnapshotState(localUser string, now time.Time) model.Snapshot {
	state := model.NewApplicationState(localUser)

	var total time.Duration
	for _, step := range demo.Script(localUser) {
		total += step.Delay
	}
	demo.Populate(state, now.Add(-total))

	if err := state.SetProgress(34, 100); err != nil {
		log.Printf("snapshot: %v", err)
	}
	state.EditInput(func(b *model.InputBuffer) { b.InsertString(snapshotDraft) })
	return state.Snapshot()
}
