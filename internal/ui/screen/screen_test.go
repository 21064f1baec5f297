// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package screen

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"

	"github.com/jeranaias/lanchat-tui/internal/model"
	"github.com/jeranaias/lanchat-tui/internal/ui/layout"
	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
)

func testRenderer(t *testing.T) *Renderer {
	t.Helper()
	theme, err := styles.NewThemeWithOptions(styles.ThemeOptions{Mode: "dark"})
	if err != nil {
		t.Fatalf("NewThemeWithOptions failed: %v", err)
	}
	return NewRenderer(theme, Options{})
}

func demoSnapshot() model.Snapshot {
	ts := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	state := model.NewApplicationState("me")
	state.Append(model.NewConnection("alice").At(ts))
	state.Append(model.NewContent("alice", "hi").At(ts))
	state.Append(model.NewContent("me", "?send notes.txt").At(ts))
	_ = state.SetProgress(3, 10)
	state.EditInput(func(b *model.InputBuffer) { b.InsertString("hello world!") })
	return state.Snapshot()
}

// draw renders snap onto a fresh buffer surface and returns the frame.
func draw(t *testing.T, r *Renderer, width, height int, snap model.Snapshot) *Frame {
	t.Helper()
	surface := NewBufferSurface(width, height)
	if err := r.Draw(surface, snap); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	return surface.Last()
}

func containsRow(t *testing.T, rows []string, i int, want string) {
	t.Helper()
	if !strings.Contains(rows[i], want) {
		t.Errorf("row %d = %q, want it to contain %q", i, rows[i], want)
	}
}

// failingSurface reports a fixed size and fails where told to.
type failingSurface struct {
	sizeErr   error
	commitErr error
	commits   int
}

func (f *failingSurface) Size() (int, int, error) {
	if f.sizeErr != nil {
		return 0, 0, f.sizeErr
	}
	return 40, 12, nil
}

func (f *failingSurface) Commit(*Frame) error {
	if f.commitErr != nil {
		return f.commitErr
	}
	f.commits++
	return nil
}

// =============================================================================
// DRAW TESTS
// =============================================================================

func TestDraw_Layout(t *testing.T) {
	frame := draw(t, testRenderer(t), 40, 12, demoSnapshot())

	if len(frame.Lines) != 12 {
		t.Fatalf("got %d rows, want 12", len(frame.Lines))
	}
	for i, line := range frame.Lines {
		if w := ansi.StringWidth(line); w != 40 {
			t.Errorf("row %d is %d wide, want 40", i, w)
		}
	}

	plain := frame.Plain()
	containsRow(t, plain, 0, "LAN Room")
	containsRow(t, plain, 1, "Sending: [##")
	containsRow(t, plain, 2, "12:00:00 me: ?send notes.txt")
	containsRow(t, plain, 3, "12:00:00 alice: hi")
	containsRow(t, plain, 6, "Your message") // input panel takes the bottom six rows
	containsRow(t, plain, 7, "hello world!")

	if frame.TranscriptRows != 4 {
		t.Errorf("TranscriptRows = %d, want 4 (overlay plus three entries)", frame.TranscriptRows)
	}
}

func TestDraw_CursorExample(t *testing.T) {
	frame := draw(t, testRenderer(t), 12, 10, demoSnapshot())

	if !frame.CursorVisible {
		t.Error("cursor should be visible")
	}
	if want := (layout.Point{X: 3, Y: 6}); frame.Cursor != want {
		t.Errorf("cursor = %+v, want %+v", frame.Cursor, want)
	}
	plain := frame.Plain()
	if plain[5] != "│hello worl│" || plain[6] != "│d!        │" {
		t.Errorf("input rows = %q, %q", plain[5], plain[6])
	}
}

func TestDraw_TranscriptRowsCountWrapping(t *testing.T) {
	state := model.NewApplicationState("me")
	long := strings.Repeat("word ", 30)
	state.Append(model.NewContent("alice", long))
	state.Append(model.NewContent("bob", long))

	frame := draw(t, testRenderer(t), 30, 12, state.Snapshot())
	if frame.TranscriptRows <= 2 {
		t.Errorf("TranscriptRows = %d, want more rows than entries", frame.TranscriptRows)
	}
}

func TestDraw_Deterministic(t *testing.T) {
	r := testRenderer(t)
	snap := demoSnapshot()

	a := draw(t, r, 50, 20, snap)
	b := draw(t, r, 50, 20, snap)
	if !reflect.DeepEqual(a, b) {
		t.Error("same snapshot drew different frames")
	}
}

func TestDraw_TinyTerminal(t *testing.T) {
	r := testRenderer(t)

	surface := NewBufferSurface(5, 3)
	if err := r.Draw(surface, demoSnapshot()); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	frame := surface.Last()
	if len(frame.Lines) != 3 {
		t.Errorf("got %d rows, want 3: the input panel shrinks to fit", len(frame.Lines))
	}
	// The cursor cell is reported even off screen.
	if want := (layout.Point{X: 1, Y: 5}); frame.Cursor != want || frame.CursorVisible {
		t.Errorf("cursor = %+v visible=%v, want %+v hidden", frame.Cursor, frame.CursorVisible, want)
	}

	surface.Resize(0, 0)
	if err := r.Draw(surface, demoSnapshot()); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	frame = surface.Last()
	if len(frame.Lines) != 0 || frame.CursorVisible {
		t.Errorf("0x0 surface: %d rows, cursor visible=%v", len(frame.Lines), frame.CursorVisible)
	}
}

func TestDraw_Errors(t *testing.T) {
	tests := []struct {
		name    string
		surface *failingSurface
		op      string
	}{
		{"size", &failingSurface{sizeErr: errors.New("no tty")}, "size"},
		{"commit", &failingSurface{commitErr: errors.New("broken pipe")}, "commit"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := testRenderer(t).Draw(tc.surface, demoSnapshot())

			var rerr *RenderError
			if !errors.As(err, &rerr) {
				t.Fatalf("expected *RenderError, got %v", err)
			}
			if rerr.Op != tc.op {
				t.Errorf("Op = %q, want %q", rerr.Op, tc.op)
			}
			cause := tc.surface.sizeErr
			if cause == nil {
				cause = tc.surface.commitErr
			}
			if !errors.Is(err, cause) {
				t.Errorf("error %v should wrap %v", err, cause)
			}
			if tc.surface.commits != 0 {
				t.Errorf("nothing should be committed, got %d commits", tc.surface.commits)
			}
		})
	}

	err := testRenderer(t).Draw(&failingSurface{commitErr: errors.New("broken pipe")}, demoSnapshot())
	if got := err.Error(); got != "render: commit: broken pipe" {
		t.Errorf("Error() = %q", got)
	}
}

func TestDraw_ClosedSurfaceKeepsLastFrame(t *testing.T) {
	r := testRenderer(t)
	surface := NewBufferSurface(30, 10)
	if err := r.Draw(surface, demoSnapshot()); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	before := surface.Last()

	if err := surface.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := r.Draw(surface, model.Snapshot{LocalUser: "me"}); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Draw on a closed surface = %v, want ErrSurfaceClosed", err)
	}
	if !reflect.DeepEqual(before, surface.Last()) {
		t.Error("a failed draw must not replace the last frame")
	}
}

// =============================================================================
// OPTIONS TESTS
// =============================================================================

func TestRenderer_Options(t *testing.T) {
	theme, _ := styles.NewThemeWithOptions(styles.ThemeOptions{Mode: "dark"})
	r := NewRenderer(theme, Options{TranscriptTitle: "Office", InputHeight: 4})

	want := Options{
		TranscriptTitle: "Office",
		InputTitle:      "Your message",
		InputHeight:     4,
		ProgressMargin:  20,
	}
	if got := r.Options(); got != want {
		t.Errorf("Options() = %+v, want %+v", got, want)
	}

	plain := r.Compose(30, 10, model.Snapshot{}).Plain()
	containsRow(t, plain, 0, "Office")
	containsRow(t, plain, 6, "Your message")
}

// =============================================================================
// BUFFER SURFACE TESTS
// =============================================================================

func TestBufferSurface_View(t *testing.T) {
	r := testRenderer(t)
	surface := NewBufferSurface(20, 8)
	if v := surface.View(r.Theme().Cursor); v != "" {
		t.Errorf("View before any draw = %q", v)
	}

	if err := r.Draw(surface, demoSnapshot()); err != nil {
		t.Fatalf("Draw failed: %v", err)
	}
	view := surface.View(r.Theme().Cursor)

	rows := strings.Split(view, "\n")
	if len(rows) != 8 {
		t.Fatalf("got %d rows, want 8", len(rows))
	}
	for i, row := range rows {
		if w := ansi.StringWidth(row); w != 20 {
			t.Errorf("row %d is %d wide, want 20", i, w)
		}
	}
	// The cursor cell keeps its character.
	if got := strings.Split(ansi.Strip(view), "\n"); !reflect.DeepEqual(got, surface.Last().Plain()) {
		t.Errorf("view text differs from the frame:\n%q\n%q", got, surface.Last().Plain())
	}
}

func TestSpliceCursor(t *testing.T) {
	cursor := lipgloss.NewStyle().Reverse(true)

	tests := []struct {
		name string
		line string
		x    int
		want string
		cell string
	}{
		{"ascii", "abcdef", 2, "abcdef", "c"},
		{"past the end", "ab", 2, "ab ", " "},
		{"after wide characters", "中文ab", 4, "中文ab", "a"},
		{"on a wide character", "中文ab", 2, "中文ab", "文"},
		{"second column of a wide character", "中文ab", 3, "中文ab", "文"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := spliceCursor(tc.line, tc.x, cursor)
			if plain := ansi.Strip(got); plain != tc.want {
				t.Errorf("text = %q, want %q", plain, tc.want)
			}
			if cell, _, _ := cellAt(tc.line, tc.x); cell != tc.cell {
				t.Errorf("cursor cell = %q, want %q", cell, tc.cell)
			}
			if w := ansi.StringWidth(got); w != ansi.StringWidth(tc.want) {
				t.Errorf("width = %d, want %d", w, ansi.StringWidth(tc.want))
			}
		})
	}
}

// =============================================================================
// TERMINAL SURFACE TESTS
// =============================================================================

func TestTerminalSurface_CommitWritesOneFrame(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "term.out"))
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	defer f.Close()

	s := NewTerminalSurface(f)
	if _, _, err := s.Size(); err == nil {
		t.Error("a regular file has no terminal size")
	}

	frame := &Frame{
		Width:         4,
		Height:        2,
		Lines:         []string{"ab  ", "cd  "},
		Cursor:        layout.Point{X: 2, Y: 1},
		CursorVisible: true,
	}
	if err := s.Commit(frame); err != nil {
		t.Fatalf("Commit failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if err := s.Commit(frame); !errors.Is(err, ErrSurfaceClosed) {
		t.Errorf("Commit after Close = %v, want ErrSurfaceClosed", err)
	}

	data, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	out := string(data)

	hide := termenv.CSI + termenv.HideCursorSeq
	show := termenv.CSI + termenv.ShowCursorSeq
	eol := termenv.CSI + termenv.EraseLineRightSeq
	at := func(row, col int) string {
		return fmt.Sprintf(termenv.CSI+termenv.CursorPositionSeq, row, col)
	}

	if !strings.HasPrefix(out, hide) {
		t.Error("cursor should be hidden while drawing")
	}
	for _, want := range []string{
		at(1, 1) + "ab  " + eol,
		at(2, 1) + "cd  " + eol,
		at(2, 3) + show, // cursor placed, then shown
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
	if !strings.HasSuffix(out, show) {
		t.Error("Close should show the cursor")
	}
}
