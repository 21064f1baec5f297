// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// UserColorTable maps remote user names to a stable color slot. Slots are
// handed out in order of first appearance and never change afterwards, so the
// same user keeps the same color for the whole session.
//
// The zero value is ready to use.
type UserColorTable struct {
	ids  map[string]int
	next int
}

// NewUserColorTable creates an empty table.
func NewUserColorTable() *UserColorTable {
	return &UserColorTable{ids: make(map[string]int)}
}

// Assign returns the slot for user, allocating the next one on first sight.
func (t *UserColorTable) Assign(user string) int {
	if id, ok := t.ids[user]; ok {
		return id
	}
	if t.ids == nil {
		t.ids = make(map[string]int)
	}
	id := t.next
	t.ids[user] = id
	t.next++
	return id
}

// Lookup returns the slot assigned to user, if any. It never allocates.
func (t *UserColorTable) Lookup(user string) (int, bool) {
	if t == nil {
		return 0, false
	}
	id, ok := t.ids[user]
	return id, ok
}

// Len returns the number of users that have a slot.
func (t *UserColorTable) Len() int {
	if t == nil {
		return 0
	}
	return len(t.ids)
}

// Clone returns an independent copy of the table.
func (t *UserColorTable) Clone() *UserColorTable {
	c := NewUserColorTable()
	if t == nil {
		return c
	}
	for user, id := range t.ids {
		c.ids[user] = id
	}
	c.next = t.next
	return c
}
