// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the color palette and visual properties for the script
// viewer. All colors use lipgloss ANSI 256-color codes for broad
// terminal compatibility.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected card.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// Navigation tabs.
	NavActiveForeground   lipgloss.Color
	NavActiveBackground   lipgloss.Color
	NavInactiveForeground lipgloss.Color

	// Section and header titles.
	SectionForeground lipgloss.Color
	HeaderForeground  lipgloss.Color
	NoteForeground    lipgloss.Color

	// Placeholder text: a filled value, or the fallback label shown
	// while the field is empty.
	PlaceholderValue lipgloss.Color
	PlaceholderLabel lipgloss.Color

	// Manual-edit spans by lifecycle state.
	SpanUnedited lipgloss.Color
	SpanEdited   lipgloss.Color
	SpanEditing  lipgloss.Color

	// UI chrome.
	BorderColor   lipgloss.Color
	FocusedBorder lipgloss.Color
	HelpText      lipgloss.Color
	ErrorText     lipgloss.Color
	NoticeText    lipgloss.Color

	// Sidebar overlay.
	SidebarBackground lipgloss.Color
	SidebarForeground lipgloss.Color

	// Copy confirmation tooltip.
	TooltipForeground lipgloss.Color // Text color inside tooltip boxes.
	TooltipBackground lipgloss.Color // Background color for tooltip boxes.
}

// SpanColor returns the color for a manual-edit span in the given
// state. Editing takes precedence over edited.
func (theme Theme) SpanColor(editing, edited bool) lipgloss.Color {
	switch {
	case editing:
		return theme.SpanEditing
	case edited:
		return theme.SpanEdited
	default:
		return theme.SpanUnedited
	}
}

// PlaceholderColor returns the color for placeholder text depending on
// whether the field has a value.
func (theme Theme) PlaceholderColor(filled bool) lipgloss.Color {
	if filled {
		return theme.PlaceholderValue
	}
	return theme.PlaceholderLabel
}

// DefaultTheme is the built-in dark-terminal color scheme. Designed for
// 256-color terminals with a dark background.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	NavActiveForeground:   lipgloss.Color("232"),
	NavActiveBackground:   lipgloss.Color("75"), // blue
	NavInactiveForeground: lipgloss.Color("245"),

	SectionForeground: lipgloss.Color("255"),
	HeaderForeground:  lipgloss.Color("220"), // yellow/amber
	NoteForeground:    lipgloss.Color("243"),

	PlaceholderValue: lipgloss.Color("114"), // green
	PlaceholderLabel: lipgloss.Color("208"), // orange: still needs filling

	SpanUnedited: lipgloss.Color("196"), // red: blank not filled yet
	SpanEdited:   lipgloss.Color("141"), // light purple
	SpanEditing:  lipgloss.Color("220"),

	BorderColor:   lipgloss.Color("240"),
	FocusedBorder: lipgloss.Color("75"),
	HelpText:      lipgloss.Color("241"),
	ErrorText:     lipgloss.Color("196"),
	NoticeText:    lipgloss.Color("114"),

	SidebarBackground: lipgloss.Color("235"),
	SidebarForeground: lipgloss.Color("252"),

	TooltipForeground: lipgloss.Color("232"),
	TooltipBackground: lipgloss.Color("114"), // green, matches NoticeText
}
