// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import (
	"time"

	"github.com/google/uuid"
)

// =============================================================================
// SEVERITY
// =============================================================================

// Severity grades a local system notice.
type Severity int

const (
	SeverityInfo Severity = iota
	SeverityError
)

// String returns the lower-case name of the severity.
func (s Severity) String() string {
	switch s {
	case SeverityInfo:
		return "info"
	case SeverityError:
		return "error"
	default:
		return "unknown"
	}
}

// =============================================================================
// ENTRY KINDS
// =============================================================================

// Kind is the closed set of things a ChatEntry can record. The set is sealed
// by the unexported method; every renderer switches over all four variants.
type Kind interface {
	isKind()
}

// Connection records a user coming online.
type Connection struct{}

// Disconnection records a user going offline.
type Disconnection struct{}

// Content is a chat message body.
type Content struct {
	Text string
}

// SystemNotice is a message produced locally by the client itself
// (transfer finished, peer unreachable, ...).
type SystemNotice struct {
	Text     string
	Severity Severity
}

func (Connection) isKind()    {}
func (Disconnection) isKind() {}
func (Content) isKind()       {}
func (SystemNotice) isKind()  {}

// =============================================================================
// CHAT ENTRY
// =============================================================================

// ChatEntry is one event in the room log. Entries are appended and never
// modified afterwards.
type ChatEntry struct {
	ID        string
	User      string
	Timestamp time.Time
	Kind      Kind
}

// NewEntry creates an entry stamped with the current time and a fresh ID.
func NewEntry(user string, kind Kind) ChatEntry {
	return ChatEntry{
		ID:        uuid.New().String(),
		User:      user,
		Timestamp: time.Now(),
		Kind:      kind,
	}
}

// NewConnection creates a "user is online" entry.
func NewConnection(user string) ChatEntry {
	return NewEntry(user, Connection{})
}

// NewDisconnection creates a "user is offline" entry.
func NewDisconnection(user string) ChatEntry {
	return NewEntry(user, Disconnection{})
}

// NewContent creates a chat message entry.
func NewContent(user, text string) ChatEntry {
	return NewEntry(user, Content{Text: text})
}

// NewSystemNotice creates a local notice. user is the label shown in front of
// the text, e.g. "lanchat: ".
func NewSystemNotice(user, text string, severity Severity) ChatEntry {
	return NewEntry(user, SystemNotice{Text: text, Severity: severity})
}

// At returns a copy of the entry with its timestamp replaced.
func (e ChatEntry) At(ts time.Time) ChatEntry {
	e.Timestamp = ts
	return e
}
