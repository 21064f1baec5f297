// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screen

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// Surface is where frames end up.
type Surface interface {
	// Size reports the drawable area in cells.
	Size() (width, height int, err error)
	// Commit replaces whatever the surface shows with frame, all at once.
	Commit(frame *Frame) error
}

// =============================================================================
// BUFFER SURFACE
// =============================================================================

// BufferSurface is an in-memory surface of a fixed size. It keeps the last
// committed frame.
type BufferSurface struct {
	mu     sync.Mutex
	width  int
	height int
	last   *Frame
	closed bool
}

// NewBufferSurface creates a width by height buffer.
func NewBufferSurface(width, height int) *BufferSurface {
	return &BufferSurface{width: width, height: height}
}

// Size implements Surface.
func (b *BufferSurface) Size() (int, int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return 0, 0, ErrSurfaceClosed
	}
	return b.width, b.height, nil
}

// Commit implements Surface.
func (b *BufferSurface) Commit(frame *Frame) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		return ErrSurfaceClosed
	}
	b.last = frame.Clone()
	return nil
}

// Resize changes the size reported to the next Draw.
func (b *BufferSurface) Resize(width, height int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.width, b.height = width, height
}

// Close makes every later call fail with ErrSurfaceClosed.
func (b *BufferSurface) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.closed = true
	return nil
}

// Last returns a copy of the last committed frame, or nil.
func (b *BufferSurface) Last() *Frame {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.last == nil {
		return nil
	}
	return b.last.Clone()
}

// View returns the last frame with the cursor cell drawn in cursor style,
// for hosts that cannot place a hardware cursor.
func (b *BufferSurface) View(cursor lipgloss.Style) string {
	frame := b.Last()
	if frame == nil {
		return ""
	}
	if !frame.CursorVisible {
		return frame.String()
	}

	lines := frame.Lines
	lines[frame.Cursor.Y] = spliceCursor(lines[frame.Cursor.Y], frame.Cursor.X, cursor)
	return strings.Join(lines, "\n")
}

// spliceCursor redraws the cell at column x of a styled line.
func spliceCursor(line string, x int, cursor lipgloss.Style) string {
	cell, start, width := cellAt(ansi.Strip(line), x)
	left := ansi.Truncate(line, start, "")
	right := ansi.TruncateLeft(line, start+width, "")
	return left + cursor.Render(cell) + right
}

// cellAt finds the character covering column x of plain text. A wide
// character is reported from its first column. Past the end it is a blank.
func cellAt(plain string, x int) (cell string, start, width int) {
	col := 0
	for _, r := range plain {
		w := ansi.StringWidth(string(r))
		if w == 0 {
			continue
		}
		if x < col+w {
			return string(r), col, w
		}
		col += w
	}
	return " ", x, 1
}

// =============================================================================
// TERMINAL SURFACE
// =============================================================================

// TerminalSurface draws straight onto a terminal. Raw mode and the alternate
// screen are the caller's business.
type TerminalSurface struct {
	mu     sync.Mutex
	out    *termenv.Output
	fd     int
	rows   int
	closed bool
}

// NewTerminalSurface creates a surface writing to f, normally os.Stdout.
func NewTerminalSurface(f *os.File) *TerminalSurface {
	return &TerminalSurface{
		out: termenv.NewOutput(f),
		fd:  int(f.Fd()),
	}
}

// Size implements Surface.
func (t *TerminalSurface) Size() (int, int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return 0, 0, ErrSurfaceClosed
	}
	w, h, err := term.GetSize(t.fd)
	if err != nil {
		return 0, 0, fmt.Errorf("terminal size: %w", err)
	}
	return w, h, nil
}

// Commit implements Surface. The frame is encoded up front and written with
// one call.
func (t *TerminalSurface) Commit(frame *Frame) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return ErrSurfaceClosed
	}

	var b strings.Builder
	b.WriteString(termenv.CSI + termenv.HideCursorSeq)
	for i, line := range frame.Lines {
		fmt.Fprintf(&b, termenv.CSI+termenv.CursorPositionSeq, i+1, 1)
		b.WriteString(line)
		b.WriteString(termenv.CSI + termenv.EraseLineRightSeq)
	}
	if frame.CursorVisible {
		fmt.Fprintf(&b, termenv.CSI+termenv.CursorPositionSeq, frame.Cursor.Y+1, frame.Cursor.X+1)
		b.WriteString(termenv.CSI + termenv.ShowCursorSeq)
	}

	if _, err := t.out.WriteString(b.String()); err != nil {
		return fmt.Errorf("write frame: %w", err)
	}
	t.rows = len(frame.Lines)
	return nil
}

// Clear wipes the terminal.
func (t *TerminalSurface) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.out.ClearScreen()
}

// Close parks the cursor below the last frame, shows it and stops further
// drawing. The underlying file stays open.
func (t *TerminalSurface) Close() error {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.closed {
		return nil
	}
	t.closed = true
	if t.rows > 0 {
		t.out.MoveCursor(t.rows, 1)
		if _, err := t.out.WriteString("\n"); err != nil {
			return err
		}
	}
	t.out.ShowCursor()
	return nil
}
