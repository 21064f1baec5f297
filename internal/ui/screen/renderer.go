// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screen

import (
	"github.com/jeranaias/lanchat-tui/internal/model"
	"github.com/jeranaias/lanchat-tui/internal/ui/components"
	"github.com/jeranaias/lanchat-tui/internal/ui/layout"
	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
)

// DefaultInputHeight is the height of the input panel, borders included.
const DefaultInputHeight = 6

// Options tune the layout. Zero values take the defaults.
type Options struct {
	TranscriptTitle string
	InputTitle      string
	InputHeight     int
	ProgressMargin  int
}

// DefaultOptions returns the stock layout.
func DefaultOptions() Options {
	return Options{
		TranscriptTitle: components.DefaultTranscriptTitle,
		InputTitle:      components.DefaultInputTitle,
		InputHeight:     DefaultInputHeight,
		ProgressMargin:  components.DefaultProgressMargin,
	}
}

func (o Options) withDefaults() Options {
	d := DefaultOptions()
	if o.TranscriptTitle == "" {
		o.TranscriptTitle = d.TranscriptTitle
	}
	if o.InputTitle == "" {
		o.InputTitle = d.InputTitle
	}
	if o.InputHeight <= 0 {
		o.InputHeight = d.InputHeight
	}
	if o.ProgressMargin <= 0 {
		o.ProgressMargin = d.ProgressMargin
	}
	return o
}

// =============================================================================
// RENDERER
// =============================================================================

// Renderer draws the chat room screen. It keeps no state between frames and
// may be shared.
type Renderer struct {
	theme *styles.Theme
	opts  Options
}

// NewRenderer creates a renderer for theme.
func NewRenderer(theme *styles.Theme, opts Options) *Renderer {
	return &Renderer{theme: theme, opts: opts.withDefaults()}
}

// Theme returns the theme the renderer draws with.
func (r *Renderer) Theme() *styles.Theme {
	return r.theme
}

// Options returns the effective layout options.
func (r *Renderer) Options() Options {
	return r.opts
}

// Draw renders snap and commits it to s as a single frame.
func (r *Renderer) Draw(s Surface, snap model.Snapshot) error {
	width, height, err := s.Size()
	if err != nil {
		return &RenderError{Op: "size", Err: err}
	}

	frame := r.Compose(width, height, snap)
	if err := s.Commit(frame); err != nil {
		return &RenderError{Op: "commit", Err: err}
	}
	return nil
}

// Compose builds the frame for a width by height screen without touching
// any surface: the transcript fills the top, the input panel sits below it.
func (r *Renderer) Compose(width, height int, snap model.Snapshot) *Frame {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	frame := &Frame{Width: width, Height: height}

	area := layout.Rect{Width: width, Height: height}
	chunks := layout.Split(area, layout.Min(0), layout.Length(r.opts.InputHeight))

	transcript := components.BuildTranscript(r.theme, components.TranscriptParams{
		Entries:        snap.Entries,
		Colors:         snap.Colors,
		LocalUser:      snap.LocalUser,
		Progress:       snap.Progress,
		Scroll:         snap.Scroll,
		Area:           chunks[0],
		Title:          r.opts.TranscriptTitle,
		ProgressMargin: r.opts.ProgressMargin,
	})
	input, cursor := components.BuildInputTitled(r.theme, r.opts.InputTitle, snap.Input, snap.InputCursor, chunks[1])

	frame.Lines = append(transcript.Lines(), input.Lines()...)
	frame.Cursor = cursor
	frame.CursorVisible = area.Contains(cursor)
	frame.TranscriptRows = transcript.ContentRows
	return frame
}
