// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/scriptdesk/lib/formstate"
	"github.com/bureau-foundation/scriptdesk/lib/tui"
)

// Sidebar rows, relative to the top of the overlay. Each field takes a
// label row, an input row and a spacer.
const (
	sidebarTitleRow      = 0
	sidebarFirstFieldRow = 2
	sidebarRowsPerField  = 3
	sidebarButtonRow     = sidebarFirstFieldRow + sidebarRowsPerField*len(formstate.Fields)

	closeGlyph  = "✕"
	clearButton = "[ Clear form ]"
)

func (model *Model) sidebarDimensions() (width, height int) {
	return min(sidebarWidth, model.width), model.contentHeight() + 1
}

// renderSidebar draws the call details overlay: one input per form
// field and the clear form button.
func (model *Model) renderSidebar() []string {
	width, height := model.sidebarDimensions()
	innerWidth := max(width-3, 1)

	background := lipgloss.NewStyle().Background(model.theme.SidebarBackground)
	text := background.Foreground(model.theme.SidebarForeground)
	faint := background.Foreground(model.theme.FaintText)
	border := lipgloss.NewStyle().Foreground(model.theme.BorderColor).Render("│")

	rows := make([]string, height)

	title := text.Bold(true).Render("Call details")
	closeWidth := ansi.StringWidth(closeGlyph)
	gap := max(innerWidth-ansi.StringWidth("Call details")-closeWidth, 1)
	rows[sidebarTitleRow] = title + background.Render(strings.Repeat(" ", gap)) + faint.Render(closeGlyph)

	for index, field := range formstate.Fields {
		row := sidebarFirstFieldRow + index*sidebarRowsPerField
		if row+1 >= height {
			break
		}
		labelStyle := faint
		if model.focusRegion == FocusSidebar && model.formFocus == field {
			labelStyle = text.Bold(true)
		}
		rows[row] = labelStyle.Render(fieldTitle(field))
		rows[row+1] = model.formInputs[field].View()
	}
	if sidebarButtonRow < height {
		button := lipgloss.NewStyle().
			Foreground(model.theme.NavActiveForeground).
			Background(model.theme.NavActiveBackground).
			Render(clearButton)
		rows[sidebarButtonRow] = button
	}
	if hintRow := sidebarButtonRow + 2; hintRow < height {
		rows[hintRow] = faint.Render("Tab next · C-r clear · Esc close")
	}

	for index, row := range rows {
		row = ansi.Truncate(row, innerWidth, "")
		rows[index] = tui.PadOverlayLine(row, innerWidth, width-1, background) + border
	}
	return rows
}

func fieldTitle(field formstate.Field) string {
	switch field {
	case formstate.AgentName:
		return "Agent name"
	case formstate.CustomerName:
		return "Customer name"
	case formstate.Intent:
		return "Intent"
	}
	return field.ID()
}

// sidebarClick handles a left click at overlay-relative (x, row). The
// close glyph closes the sidebar, a label or input focuses its field,
// and the button clears the form keeping the agent name.
func (model *Model) sidebarClick(x, row int) tea.Cmd {
	width, _ := model.sidebarDimensions()
	switch {
	case row == sidebarTitleRow && x >= width-1-1-ansi.StringWidth(closeGlyph):
		model.closeSidebar()
		return nil
	case row == sidebarButtonRow && x >= 1 && x < 1+ansi.StringWidth(clearButton):
		model.clearForm(true)
		return nil
	case row >= sidebarFirstFieldRow && row < sidebarButtonRow:
		offset := (row - sidebarFirstFieldRow) % sidebarRowsPerField
		if offset == sidebarRowsPerField-1 {
			return nil
		}
		target := formstate.Field((row - sidebarFirstFieldRow) / sidebarRowsPerField)
		model.formInputs[model.formFocus].Blur()
		model.formFocus = target
		model.focusRegion = FocusSidebar
		return model.formInputs[target].Focus()
	}
	return nil
}
