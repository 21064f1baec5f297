// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package chat

import (
	"log"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jeranaias/lanchat-tui/internal/config"
	"github.com/jeranaias/lanchat-tui/internal/demo"
	"github.com/jeranaias/lanchat-tui/internal/model"
	"github.com/jeranaias/lanchat-tui/internal/ui/screen"
	"github.com/jeranaias/lanchat-tui/internal/ui/styles"
)

// =============================================================================
// MODEL
// =============================================================================

// Model is the Bubble Tea model for the chat room preview.
type Model struct {
	state    *model.ApplicationState
	renderer *screen.Renderer
	surface  *screen.BufferSurface
	keys     KeyMap

	width  int
	height int

	script   []demo.Step
	transfer *Transfer
	nextID   int
	quitting bool
}

// New creates a chat model from config.Global. With runDemo set the
// scripted room plays out after Init.
func New(runDemo bool) Model {
	cfg := config.Global()

	m := Model{
		state:    model.NewApplicationState(cfg.Chat.LocalUser),
		renderer: newRenderer(cfg),
		surface:  screen.NewBufferSurface(0, 0),
		keys:     DefaultKeyMap(),
	}
	if runDemo {
		m.script = demo.Script(cfg.Chat.LocalUser)
	}
	return m
}

func newRenderer(cfg *config.Config) *screen.Renderer {
	theme, err := styles.NewThemeWithOptions(cfg.ThemeOptions())
	if err != nil {
		log.Printf("chat: theme: %v", err)
	}
	return screen.NewRenderer(theme, cfg.ScreenOptions())
}

// Init starts the demo script, if any.
func (m Model) Init() tea.Cmd {
	if len(m.script) == 0 {
		return nil
	}
	return m.scheduleStep(0)
}

// State returns the application state the model renders.
func (m Model) State() *model.ApplicationState {
	return m.state
}

// Transfer returns the transfer in progress, or nil.
func (m Model) Transfer() *Transfer {
	return m.transfer
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) scheduleStep(i int) tea.Cmd {
	if i >= len(m.script) {
		return nil
	}
	return tea.Tick(m.script[i].Delay, func(time.Time) tea.Msg {
		return demoStepMsg{Index: i}
	})
}

func scheduleTransferTick(id int) tea.Cmd {
	return tea.Tick(transferInterval, func(time.Time) tea.Msg {
		return transferTickMsg{ID: id}
	})
}
