// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// =============================================================================
// INPUT BUFFER
// =============================================================================

// InputBuffer is the unsent draft message. The cursor is a rune offset in
// the range [0, Len()].
//
// The zero value is an empty buffer with the cursor at 0.
type InputBuffer struct {
	runes  []rune
	cursor int
}

// String returns the draft text.
func (b *InputBuffer) String() string {
	return string(b.runes)
}

// Runes returns a copy of the draft characters.
func (b *InputBuffer) Runes() []rune {
	out := make([]rune, len(b.runes))
	copy(out, b.runes)
	return out
}

// Len returns the draft length in characters.
func (b *InputBuffer) Len() int {
	return len(b.runes)
}

// Cursor returns the cursor offset.
func (b *InputBuffer) Cursor() int {
	return b.cursor
}

// Insert inserts r at the cursor and advances it.
func (b *InputBuffer) Insert(r rune) {
	b.clampCursor()
	b.runes = append(b.runes, 0)
	copy(b.runes[b.cursor+1:], b.runes[b.cursor:])
	b.runes[b.cursor] = r
	b.cursor++
}

// InsertString inserts every rune of s at the cursor.
func (b *InputBuffer) InsertString(s string) {
	for _, r := range s {
		b.Insert(r)
	}
}

// Backspace removes the character before the cursor.
func (b *InputBuffer) Backspace() {
	b.clampCursor()
	if b.cursor == 0 {
		return
	}
	b.runes = append(b.runes[:b.cursor-1], b.runes[b.cursor:]...)
	b.cursor--
}

// Delete removes the character under the cursor.
func (b *InputBuffer) Delete() {
	b.clampCursor()
	if b.cursor >= len(b.runes) {
		return
	}
	b.runes = append(b.runes[:b.cursor], b.runes[b.cursor+1:]...)
}

// Left moves the cursor one character back.
func (b *InputBuffer) Left() {
	if b.cursor > 0 {
		b.cursor--
	}
}

// Right moves the cursor one character forward.
func (b *InputBuffer) Right() {
	if b.cursor < len(b.runes) {
		b.cursor++
	}
}

// Home moves the cursor to the start of the draft.
func (b *InputBuffer) Home() {
	b.cursor = 0
}

// End moves the cursor past the last character.
func (b *InputBuffer) End() {
	b.cursor = len(b.runes)
}

// Take returns the draft and leaves the buffer empty.
func (b *InputBuffer) Take() string {
	s := string(b.runes)
	b.runes = b.runes[:0]
	b.cursor = 0
	return s
}

func (b *InputBuffer) clampCursor() {
	if b.cursor < 0 {
		b.cursor = 0
	}
	if b.cursor > len(b.runes) {
		b.cursor = len(b.runes)
	}
}

// CursorCell converts a character offset into a row and column inside a
// block of fixed-width lines. It matches util.SplitEach exactly: an offset on
// a line boundary lands on column 0 of the following row. Widths below 1
// place the cursor at the origin.
func CursorCell(offset, width int) (row, col int) {
	if width < 1 || offset <= 0 {
		return 0, 0
	}
	return offset / width, offset % width
}
