// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/scriptdesk/lib/tui"
)

const (
	// sidebarWidth is the width of the call details overlay, clamped
	// to the terminal width.
	sidebarWidth = 36

	// inputCharLimit bounds every text input.
	inputCharLimit = 200
)

func newSearchInput(theme tui.Theme) textinput.Model {
	input := textinput.New()
	input.Prompt = "/ "
	input.Placeholder = "search headers"
	input.CharLimit = inputCharLimit
	input.PromptStyle = lipgloss.NewStyle().Foreground(theme.FocusedBorder).Bold(true)
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.FaintText)
	input.TextStyle = lipgloss.NewStyle().Foreground(theme.NormalText)
	return input
}

func newFormInput(theme tui.Theme, label string) textinput.Model {
	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = label
	input.CharLimit = inputCharLimit
	input.PromptStyle = lipgloss.NewStyle().Foreground(theme.FocusedBorder).Background(theme.SidebarBackground)
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.FaintText).Background(theme.SidebarBackground)
	input.TextStyle = lipgloss.NewStyle().Foreground(theme.SidebarForeground).Background(theme.SidebarBackground)
	return input
}

// newSpanInput creates the inline editor that replaces a manual-edit
// span. It starts empty; the span's default text is shown as the
// placeholder while nothing is typed.
func newSpanInput(theme tui.Theme) textinput.Model {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = inputCharLimit
	input.TextStyle = lipgloss.NewStyle().Foreground(theme.SpanEditing).Underline(true)
	input.PlaceholderStyle = lipgloss.NewStyle().Foreground(theme.FaintText).Underline(true)
	return input
}

// resizeInputs fits the inputs to the current terminal width.
func (model *Model) resizeInputs() {
	model.searchInput.Width = max(model.width-4, 1)
	fieldWidth := max(min(sidebarWidth, model.width)-6, 1)
	for index := range model.formInputs {
		model.formInputs[index].Width = fieldWidth
	}
}
