// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
)

// =============================================================================
// COLOR TESTS
// =============================================================================

func TestDefaultUserPalette(t *testing.T) {
	want := []lipgloss.TerminalColor{Blue, Yellow, Cyan, Magenta}
	if len(DefaultUserPalette) != len(want) {
		t.Fatalf("palette has %d colors, want %d", len(DefaultUserPalette), len(want))
	}
	for i := range want {
		if DefaultUserPalette[i] != want[i] {
			t.Errorf("palette[%d] = %v, want %v", i, DefaultUserPalette[i], want[i])
		}
	}
	for _, c := range DefaultUserPalette {
		if c == LocalGreen {
			t.Error("local user color must not appear in the user palette")
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		spec string
		want lipgloss.TerminalColor
		ok   bool
	}{
		{"4", lipgloss.Color("4"), true},
		{"255", lipgloss.Color("255"), true},
		{"256", nil, false},
		{"#FF8800", lipgloss.Color("#FF8800"), true},
		{"#F80", lipgloss.Color("#F80"), true},
		{"#FF88", nil, false},
		{"#GGGGGG", nil, false},
		{"#12G", nil, false},
		{"#+F+F+F", nil, false},
		{"#12 345", nil, false},
		{"#ff8800", lipgloss.Color("#ff8800"), true},
		{"magenta", Magenta, true},
		{"LightYellow", LightYellow, true},
		{"chartreuse", nil, false},
		{"", nil, false},
		{"-1", nil, false},
	}

	for _, tc := range tests {
		got, ok := ParseColor(tc.spec)
		if ok != tc.ok {
			t.Errorf("ParseColor(%q) ok = %v, want %v", tc.spec, ok, tc.ok)
			continue
		}
		if ok && got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.spec, got, tc.want)
		}
	}
}

// =============================================================================
// THEME TESTS
// =============================================================================

func TestNewThemeWithOptions_Defaults(t *testing.T) {
	theme, err := NewThemeWithOptions(ThemeOptions{Mode: "dark"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !theme.IsDark {
		t.Error("dark mode should be forced")
	}
	if len(theme.UserPalette) != 4 {
		t.Errorf("palette length = %d, want 4", len(theme.UserPalette))
	}
	if theme.LocalUser != LocalGreen {
		t.Errorf("local user color = %v, want %v", theme.LocalUser, LocalGreen)
	}
	if theme.Border != lipgloss.NormalBorder() {
		t.Error("default border should be the normal border")
	}
	if !theme.PanelTitle.GetBold() {
		t.Error("panel titles should be bold")
	}
	if theme.PanelText.GetForeground() != PanelTextDark {
		t.Error("dark theme should use the dark panel text color")
	}
}

func TestNewThemeWithOptions_Light(t *testing.T) {
	theme, err := NewThemeWithOptions(ThemeOptions{Mode: "light"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if theme.IsDark {
		t.Error("light mode should be forced")
	}
	if theme.PanelText.GetForeground() != PanelTextLight {
		t.Error("light theme should use the light panel text color")
	}
}

func TestNewThemeWithOptions_Overrides(t *testing.T) {
	theme, err := NewThemeWithOptions(ThemeOptions{
		Mode:        "dark",
		Border:      "rounded",
		UserPalette: []string{"red", "#00FF00"},
		LocalUser:   "cyan",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if theme.Border != lipgloss.RoundedBorder() {
		t.Error("border override not applied")
	}
	if len(theme.UserPalette) != 2 || theme.UserPalette[0] != Red {
		t.Errorf("palette override not applied: %v", theme.UserPalette)
	}
	if theme.LocalUser != Cyan {
		t.Errorf("local user override not applied: %v", theme.LocalUser)
	}
}

func TestNewThemeWithOptions_InvalidFallsBack(t *testing.T) {
	theme, err := NewThemeWithOptions(ThemeOptions{
		Mode:        "sepia",
		Border:      "wavy",
		UserPalette: []string{"blue", "not-a-color"},
		LocalUser:   "#12",
	})
	if err == nil {
		t.Fatal("expected an error for invalid options")
	}
	if theme == nil {
		t.Fatal("theme should still be returned")
	}
	if len(theme.UserPalette) != len(DefaultUserPalette) {
		t.Error("invalid palette should fall back to the default palette")
	}
	if theme.LocalUser != LocalGreen {
		t.Error("invalid local color should fall back to green")
	}
	if theme.Border != lipgloss.NormalBorder() {
		t.Error("invalid border should fall back to normal")
	}
}

func TestTheme_UserColorWraps(t *testing.T) {
	theme, _ := NewThemeWithOptions(ThemeOptions{Mode: "dark"})

	for slot := 0; slot < 12; slot++ {
		want := DefaultUserPalette[slot%4]
		if got := theme.UserColor(slot); got != want {
			t.Errorf("UserColor(%d) = %v, want %v", slot, got, want)
		}
	}
	if theme.UserColor(4) != theme.UserColor(0) {
		t.Error("slot 4 should wrap to slot 0")
	}

	theme.UserPalette = nil
	if theme.UserColor(3) != theme.LocalUser {
		t.Error("empty palette should fall back to the local color")
	}
}

func TestBorderByName(t *testing.T) {
	for _, name := range []string{"normal", "rounded", "thick", "double", "ROUNDED"} {
		if _, ok := BorderByName(name); !ok {
			t.Errorf("BorderByName(%q) should be known", name)
		}
	}
	if _, ok := BorderByName("hidden"); ok {
		t.Error("BorderByName(hidden) should be unknown")
	}
}
