// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package demo scripts a small LAN room so the renderer can be shown without
// a network: peers join, chat, send a file and leave.
package demo

import (
	"time"

	"github.com/jeranaias/lanchat-tui/internal/model"
)

// NoticeUser labels system notices in the transcript.
const NoticeUser = "lanchat: "

// Step is one scripted event, due Delay after the previous one.
type Step struct {
	Delay time.Duration
	Entry model.ChatEntry
}

// Script returns the demo room for a client chatting as localUser.
func Script(localUser string) []Step {
	return []Step{
		{0, model.NewConnection("alice")},
		{400 * time.Millisecond, model.NewConnection("bob")},
		{900 * time.Millisecond, model.NewContent("alice", "morning all")},
		{1200 * time.Millisecond, model.NewContent("bob", "hey alice, did the printer on 3 get fixed?")},
		{1500 * time.Millisecond, model.NewContent(localUser, "morning! anyone up for lunch at noon?")},
		{1800 * time.Millisecond, model.NewContent("alice", "yes, new driver. sending the notes over")},
		{600 * time.Millisecond, model.NewContent("alice", "?send printer-notes.pdf")},
		{1100 * time.Millisecond, model.NewSystemNotice(NoticeUser, "printer-notes.pdf received (48 KiB)", model.SeverityInfo)},
		{1400 * time.Millisecond, model.NewConnection("carol")},
		{2000 * time.Millisecond, model.NewContent("carol",
			"lunch works for me, but can we do the place across the street instead of the canteen? "+
				"the canteen queue was twenty minutes yesterday")},
		{1600 * time.Millisecond, model.NewSystemNotice(NoticeUser, "dave could not be reached", model.SeverityError)},
		{2200 * time.Millisecond, model.NewDisconnection("bob")},
	}
}

// Populate appends the whole script to state at once, stamping entries as if
// the script had started at start.
func Populate(state *model.ApplicationState, start time.Time) {
	at := start
	for _, step := range Script(state.LocalUser()) {
		at = at.Add(step.Delay)
		state.Append(step.Entry.At(at))
	}
}
