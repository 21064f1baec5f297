// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Theme holds the palette and the styled pieces of the chat room screen.
// It detects the terminal's color capability and background on creation.
type Theme struct {
	// Terminal capabilities
	IsDark       bool
	HasTrueColor bool
	ColorProfile termenv.Profile

	// Palette
	UserPalette []lipgloss.TerminalColor
	LocalUser   lipgloss.TerminalColor

	// Panels
	Border      lipgloss.Border
	PanelBorder lipgloss.Style
	PanelTitle  lipgloss.Style
	PanelText   lipgloss.Style

	// Transcript
	Timestamp   lipgloss.Style
	Command     lipgloss.Style
	NoticeUser  lipgloss.Style
	NoticeText  lipgloss.Style
	AlertUser   lipgloss.Style
	AlertText   lipgloss.Style
	TransferBar lipgloss.Style

	// Cursor cell used by surfaces that cannot place a hardware cursor
	Cursor lipgloss.Style
}

// ThemeOptions overrides parts of the default theme. Zero values keep the
// defaults.
type ThemeOptions struct {
	// Mode is "auto", "dark" or "light".
	Mode string
	// Border is "normal", "rounded", "thick" or "double".
	Border string
	// UserPalette is a list of color specs accepted by ParseColor.
	UserPalette []string
	// LocalUser is a color spec for the local user.
	LocalUser string
}

// NewTheme creates a theme for the current terminal with default colors.
func NewTheme() *Theme {
	t, _ := NewThemeWithOptions(ThemeOptions{})
	return t
}

// NewThemeWithOptions creates a theme and applies opts. An invalid option is
// reported and the theme falls back to the default for that option only.
func NewThemeWithOptions(opts ThemeOptions) (*Theme, error) {
	colorProfile := termenv.ColorProfile()

	t := &Theme{
		HasTrueColor: colorProfile == termenv.TrueColor,
		ColorProfile: colorProfile,
		UserPalette:  DefaultUserPalette,
		LocalUser:    LocalGreen,
		Border:       lipgloss.NormalBorder(),
	}

	var errs []string

	switch strings.ToLower(opts.Mode) {
	case "", "auto":
		t.IsDark = termenv.HasDarkBackground()
	case "dark":
		t.IsDark = true
	case "light":
		t.IsDark = false
	default:
		t.IsDark = true
		errs = append(errs, fmt.Sprintf("unknown theme mode %q", opts.Mode))
	}

	if opts.Border != "" {
		if b, ok := BorderByName(opts.Border); ok {
			t.Border = b
		} else {
			errs = append(errs, fmt.Sprintf("unknown border %q", opts.Border))
		}
	}

	if len(opts.UserPalette) > 0 {
		palette := make([]lipgloss.TerminalColor, 0, len(opts.UserPalette))
		for _, spec := range opts.UserPalette {
			c, ok := ParseColor(spec)
			if !ok {
				errs = append(errs, fmt.Sprintf("invalid palette color %q", spec))
				palette = nil
				break
			}
			palette = append(palette, c)
		}
		if palette != nil {
			t.UserPalette = palette
		}
	}

	if opts.LocalUser != "" {
		if c, ok := ParseColor(opts.LocalUser); ok {
			t.LocalUser = c
		} else {
			errs = append(errs, fmt.Sprintf("invalid local user color %q", opts.LocalUser))
		}
	}

	t.initStyles()

	if len(errs) > 0 {
		return t, fmt.Errorf("theme: %s", strings.Join(errs, "; "))
	}
	return t, nil
}

// initStyles initializes all the lip gloss styles.
func (t *Theme) initStyles() {
	text := PanelTextDark
	if !t.IsDark {
		text = PanelTextLight
	}

	t.PanelText = lipgloss.NewStyle().Foreground(text)
	t.PanelBorder = lipgloss.NewStyle().Foreground(text)
	t.PanelTitle = lipgloss.NewStyle().Bold(true).Foreground(text)

	t.Timestamp = lipgloss.NewStyle().Foreground(Muted)
	t.Command = lipgloss.NewStyle().Foreground(CommandHint)
	t.NoticeUser = lipgloss.NewStyle().Foreground(Notice)
	t.NoticeText = lipgloss.NewStyle().Foreground(NoticeLight)
	t.AlertUser = lipgloss.NewStyle().Foreground(Alert)
	t.AlertText = lipgloss.NewStyle().Foreground(AlertLight)
	t.TransferBar = lipgloss.NewStyle().Foreground(Transfer)

	t.Cursor = lipgloss.NewStyle().Reverse(true)
}

// UserColor returns the palette color for a color table slot.
func (t *Theme) UserColor(slot int) lipgloss.TerminalColor {
	if len(t.UserPalette) == 0 {
		return t.LocalUser
	}
	if slot < 0 {
		slot = -slot
	}
	return t.UserPalette[slot%len(t.UserPalette)]
}

// BorderByName returns the lip gloss border for a config name.
func BorderByName(name string) (lipgloss.Border, bool) {
	switch strings.ToLower(name) {
	case "normal":
		return lipgloss.NormalBorder(), true
	case "rounded":
		return lipgloss.RoundedBorder(), true
	case "thick":
		return lipgloss.ThickBorder(), true
	case "double":
		return lipgloss.DoubleBorder(), true
	default:
		return lipgloss.Border{}, false
	}
}
