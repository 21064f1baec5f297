// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"log"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lanchat-tui/internal/config"
	"github.com/jeranaias/lanchat-tui/internal/demo"
	"github.com/jeranaias/lanchat-tui/internal/model"
)

// =============================================================================
// UPDATE
// =============================================================================

// Update handles incoming messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case PeerMsg:
		m.state.Append(msg.Entry)
		return m, nil

	case demoStepMsg:
		if msg.Index >= len(m.script) {
			return m, nil
		}
		m.state.Append(m.script[msg.Index].Entry.At(time.Now()))
		return m, m.scheduleStep(msg.Index + 1)

	case transferTickMsg:
		return m.handleTransferTick(msg)

	case ConfigReloadedMsg:
		return m.handleConfigReload(msg)
	}

	return m, nil
}

// =============================================================================
// KEY HANDLING
// =============================================================================

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Older):
		m.scroll(1)
	case key.Matches(msg, m.keys.Newer):
		m.scroll(-1)
	case key.Matches(msg, m.keys.PageOlder):
		m.scroll(m.pageSize())
	case key.Matches(msg, m.keys.PageNewer):
		m.scroll(-m.pageSize())
	case key.Matches(msg, m.keys.Newest):
		m.state.ScrollReset()

	case key.Matches(msg, m.keys.Left):
		m.state.EditInput((*model.InputBuffer).Left)
	case key.Matches(msg, m.keys.Right):
		m.state.EditInput((*model.InputBuffer).Right)
	case key.Matches(msg, m.keys.Home):
		m.state.EditInput((*model.InputBuffer).Home)
	case key.Matches(msg, m.keys.End):
		m.state.EditInput((*model.InputBuffer).End)
	case key.Matches(msg, m.keys.Backspace):
		m.state.EditInput((*model.InputBuffer).Backspace)
	case key.Matches(msg, m.keys.Delete):
		m.state.EditInput((*model.InputBuffer).Delete)

	case msg.Type == tea.KeySpace:
		m.state.EditInput(func(b *model.InputBuffer) { b.Insert(' ') })
	case msg.Type == tea.KeyRunes:
		runes := msg.Runes
		m.state.EditInput(func(b *model.InputBuffer) {
			for _, r := range runes {
				b.Insert(r)
			}
		})
	}
	return m, nil
}

// scroll moves the transcript. The wrapped row count is taken from a fresh
// layout at the current size so long entries can be scrolled through.
func (m Model) scroll(delta int) {
	if m.width > 0 && m.height > 0 {
		frame := m.renderer.Compose(m.width, m.height, m.state.Snapshot())
		m.state.SetScrollRows(frame.TranscriptRows)
	}
	m.state.ScrollBy(delta)
}

// pageSize is the transcript height, or one line before the first resize.
func (m Model) pageSize() int {
	opts := m.renderer.Options()
	if n := m.height - opts.InputHeight - 2; n > 1 {
		return n
	}
	return 1
}

// submit posts the draft as the local user's message. A send command also
// starts a transfer.
func (m Model) submit() (tea.Model, tea.Cmd) {
	text := m.state.TakeInput()
	if strings.TrimSpace(text) == "" {
		return m, nil
	}

	m.state.Append(model.NewContent(m.state.LocalUser(), text))
	m.state.ScrollReset()

	name, ok := ParseSend(text)
	if !ok {
		return m, nil
	}
	switch {
	case name == "":
		m.notice("usage: ?send <file>", model.SeverityError)
		return m, nil
	case m.transfer != nil:
		m.notice("a transfer is already in progress", model.SeverityError)
		return m, nil
	}

	m.nextID++
	t := NewTransfer(m.nextID, name)
	if err := m.state.SetProgress(0, t.Size); err != nil {
		m.notice("cannot send "+name+": "+err.Error(), model.SeverityError)
		return m, nil
	}
	m.transfer = t
	log.Printf("chat: transfer %d started: %s (%d bytes)", t.ID, name, t.Size)
	return m, scheduleTransferTick(t.ID)
}

func (m Model) handleTransferTick(msg transferTickMsg) (tea.Model, tea.Cmd) {
	t := m.transfer
	if t == nil || t.ID != msg.ID {
		return m, nil
	}

	done := t.Advance()
	if q := t.NextQuarter(); q > 0 {
		log.Printf("chat: transfer %d at %d%%", t.ID, q*25)
	}
	if !done {
		if err := m.state.SetProgress(t.Sent, t.Size); err != nil {
			log.Printf("chat: transfer %d: %v", t.ID, err)
		}
		return m, scheduleTransferTick(t.ID)
	}

	m.state.ClearProgress()
	m.notice(t.Summary(), model.SeverityInfo)
	m.transfer = nil
	return m, nil
}

// handleConfigReload swaps in a new theme and layout. A broken file leaves
// the current look in place.
func (m Model) handleConfigReload(msg ConfigReloadedMsg) (tea.Model, tea.Cmd) {
	if msg.Err != nil {
		log.Printf("chat: config reload: %v", msg.Err)
		m.notice("config reload failed: "+msg.Err.Error(), model.SeverityError)
		return m, nil
	}
	if msg.Config == nil {
		return m, nil
	}

	m.renderer = newRenderer(msg.Config)
	config.SetGlobal(msg.Config)
	m.notice("configuration reloaded", model.SeverityInfo)
	return m, nil
}

func (m Model) notice(text string, severity model.Severity) {
	m.state.Append(model.NewSystemNotice(demo.NoticeUser, text, severity))
}
