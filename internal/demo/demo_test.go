// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package demo

import (
	"testing"
	"time"

	"github.com/jeranaias/lanchat-tui/internal/model"
)

func TestScript_CoversEveryKind(t *testing.T) {
	seen := map[string]bool{}
	for i, step := range Script("me") {
		switch k := step.Entry.Kind.(type) {
		case model.Connection:
			seen["connection"] = true
		case model.Disconnection:
			seen["disconnection"] = true
		case model.Content:
			seen["content"] = true
		case model.SystemNotice:
			seen["notice/"+k.Severity.String()] = true
		}
		if step.Delay < 0 {
			t.Errorf("step %d has negative delay %v", i, step.Delay)
		}
	}

	for _, kind := range []string{"connection", "disconnection", "content", "notice/info", "notice/error"} {
		if !seen[kind] {
			t.Errorf("script should include a %s entry", kind)
		}
	}
}

func TestPopulate(t *testing.T) {
	state := model.NewApplicationState("me")
	start := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

	Populate(state, start)

	entries := state.Entries()
	if len(entries) != len(Script("me")) {
		t.Fatalf("got %d entries, want %d", len(entries), len(Script("me")))
	}
	if !entries[0].Timestamp.Equal(start) {
		t.Errorf("first entry at %v, want %v", entries[0].Timestamp, start)
	}
	for i := 1; i < len(entries); i++ {
		if entries[i].Timestamp.Before(entries[i-1].Timestamp) {
			t.Errorf("entry %d out of order", i)
		}
	}

	colors := state.Snapshot().Colors
	for _, user := range []string{"alice", "bob", "carol"} {
		if _, ok := colors.Lookup(user); !ok {
			t.Errorf("%s should have a color", user)
		}
	}
	for _, user := range []string{"me", NoticeUser} {
		if _, ok := colors.Lookup(user); ok {
			t.Errorf("%q should not take a palette slot", user)
		}
	}
}
