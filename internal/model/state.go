// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"fmt"
	"sync"
)

// =============================================================================
// SNAPSHOT
// =============================================================================

// Snapshot is everything one frame needs, copied out of ApplicationState so a
// draw never observes a mutation halfway through.
type Snapshot struct {
	LocalUser   string
	Entries     []ChatEntry
	Colors      *UserColorTable
	Progress    *TransferProgress
	Input       []rune
	InputCursor int
	Scroll      int
}

// =============================================================================
// APPLICATION STATE
// =============================================================================

// ApplicationState is the aggregate owned by the event loop. Network and
// input collaborators mutate it; the renderer only ever sees Snapshots.
// All methods are safe for concurrent use.
type ApplicationState struct {
	mu        sync.RWMutex
	localUser string
	entries   []ChatEntry
	colors    *UserColorTable
	progress  *TransferProgress
	input     InputBuffer
	scroll    int

	// scrollRows is the wrapped row count of the last drawn transcript.
	scrollRows int
}

// NewApplicationState creates an empty room for localUser.
func NewApplicationState(localUser string) *ApplicationState {
	return &ApplicationState{
		localUser: localUser,
		colors:    NewUserColorTable(),
	}
}

// LocalUser returns the name this client chats as.
func (s *ApplicationState) LocalUser() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.localUser
}

// Append adds an entry to the log. Remote users get a color slot the first
// time they appear; the local user and system notices never take one.
func (s *ApplicationState) Append(entry ChatEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, notice := entry.Kind.(SystemNotice); !notice && entry.User != s.localUser {
		s.colors.Assign(entry.User)
	}
	s.entries = append(s.entries, entry)
}

// Entries returns a copy of the log, oldest first.
func (s *ApplicationState) Entries() []ChatEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]ChatEntry, len(s.entries))
	copy(out, s.entries)
	return out
}

// SetProgress records the state of the active outbound transfer. A state
// that breaks the TransferProgress invariant is rejected and the previous
// one is kept.
func (s *ApplicationState) SetProgress(completed, total int64) error {
	p := TransferProgress{Completed: completed, Total: total}
	if !p.Valid() {
		return fmt.Errorf("%w: %d of %d", ErrInvalidProgress, completed, total)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = &p
	return nil
}

// ClearProgress removes the transfer overlay.
func (s *ApplicationState) ClearProgress() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.progress = nil
}

// Progress returns the active transfer, if any.
func (s *ApplicationState) Progress() (TransferProgress, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.progress == nil {
		return TransferProgress{}, false
	}
	return *s.progress, true
}

// Scroll returns the transcript scroll offset.
func (s *ApplicationState) Scroll() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.scroll
}

// SetScrollRows records how many wrapped rows the transcript had when it was
// last laid out, so ScrollBy can reach rows that long entries wrap onto.
func (s *ApplicationState) SetScrollRows(rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rows < 0 {
		rows = 0
	}
	s.scrollRows = rows
}

// ScrollBy moves the transcript by delta lines, clamped to
// [0, rows], where rows is the larger of the last recorded wrapped row count
// and the number of display records.
func (s *ApplicationState) ScrollBy(delta int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	limit := len(s.entries)
	if s.progress != nil {
		limit++
	}
	if s.scrollRows > limit {
		limit = s.scrollRows
	}
	s.scroll += delta
	if s.scroll > limit {
		s.scroll = limit
	}
	if s.scroll < 0 {
		s.scroll = 0
	}
}

// ScrollReset brings the newest entry back to the top.
func (s *ApplicationState) ScrollReset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.scroll = 0
}

// EditInput runs fn against the draft buffer under the write lock.
func (s *ApplicationState) EditInput(fn func(*InputBuffer)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&s.input)
}

// Input returns the draft text.
func (s *ApplicationState) Input() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.input.String()
}

// TakeInput returns the draft and clears it.
func (s *ApplicationState) TakeInput() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input.Take()
}

// Snapshot copies the state for one draw call.
func (s *ApplicationState) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]ChatEntry, len(s.entries))
	copy(entries, s.entries)

	var progress *TransferProgress
	if s.progress != nil {
		p := *s.progress
		progress = &p
	}

	return Snapshot{
		LocalUser:   s.localUser,
		Entries:     entries,
		Colors:      s.colors.Clone(),
		Progress:    progress,
		Input:       s.input.Runes(),
		InputCursor: s.input.Cursor(),
		Scroll:      s.scroll,
	}
}
