// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/scriptdesk/lib/tui"
)

const (
	menuGlyph    = "☰"
	defaultTitle = "scriptdesk"
)

// View implements tea.Model.
func (model Model) View() string {
	if !model.ready {
		return "Loading..."
	}

	header, _ := model.headerLayout()
	lines := []string{header, model.searchInput.View()}

	layout := model.buildContent()
	height := model.contentHeight()
	width := model.contentWidth()
	scrollbar := strings.Split(tui.RenderScrollbar(model.theme, height,
		len(layout.lines), height, model.scrollOffset, model.sidebar.ScrollLocked()), "\n")
	for row := 0; row < height; row++ {
		line := ""
		if index := model.scrollOffset + row; index < len(layout.lines) {
			line = layout.lines[index]
		}
		line = ansi.Truncate(line, width, "")
		line += strings.Repeat(" ", max(width-ansi.StringWidth(line), 0))
		if row < len(scrollbar) {
			line += scrollbar[row]
		}
		lines = append(lines, line)
	}
	lines = append(lines, model.statusBar())

	view := strings.Join(lines, "\n")
	if model.sidebar.IsOpen() {
		view = tui.SpliceOverlay(view, model.renderSidebar(), 0, searchRow)
	}
	if overlay, x, y, ok := model.tooltipOverlay(layout); ok {
		view = tui.SpliceOverlay(view, overlay, x, y)
	}
	return view
}

// headerLayout renders the header row (menu toggle, title and section
// tabs) and returns the click region of each tab.
func (model *Model) headerLayout() (string, []navHitRange) {
	menuStyle := lipgloss.NewStyle().Foreground(model.theme.FaintText)
	if model.sidebar.IsOpen() {
		menuStyle = menuStyle.Foreground(model.theme.FocusedBorder).Bold(true)
	}
	title := model.document.Title
	if title == "" {
		title = defaultTitle
	}
	titleStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText).Bold(true)
	activeStyle := lipgloss.NewStyle().
		Foreground(model.theme.NavActiveForeground).
		Background(model.theme.NavActiveBackground).
		Bold(true)
	inactiveStyle := lipgloss.NewStyle().Foreground(model.theme.NavInactiveForeground)

	var builder strings.Builder
	builder.WriteString(menuStyle.Render(menuGlyph) + " " + titleStyle.Render(title) + "  ")
	position := ansi.StringWidth(menuGlyph) + 1 + ansi.StringWidth(title) + 2

	var ranges []navHitRange
	for index, button := range model.document.Nav {
		label := fmt.Sprintf(" %d %s ", index+1, button.Label)
		if index >= 9 {
			label = " " + button.Label + " "
		}
		labelWidth := ansi.StringWidth(label)
		if model.width > 0 && position+labelWidth > model.width {
			break
		}
		style := inactiveStyle
		if button.Active {
			style = activeStyle
		}
		builder.WriteString(style.Render(label))
		ranges = append(ranges, navHitRange{startX: position, endX: position + labelWidth, navID: button.ID})
		position += labelWidth
	}
	return ansi.Truncate(builder.String(), max(model.width, 1), "…"), ranges
}

func (model *Model) computeNavHitRanges() {
	_, model.navHitRanges = model.headerLayout()
}

// statusBar shows the current notice, or key help for the focused
// region.
func (model *Model) statusBar() string {
	if model.notice != nil {
		color := model.theme.NoticeText
		if model.notice.level >= slog.LevelWarn {
			color = model.theme.ErrorText
		}
		text := model.notice.text
		if model.notice.structured != "" {
			text += "  (click to copy)"
		}
		return ansi.Truncate(lipgloss.NewStyle().Foreground(color).Render(text), max(model.width, 1), "…")
	}

	var bindings []key.Binding
	switch model.focusRegion {
	case FocusSearch:
		return model.helpLine("type to filter headers · ⏎ done · Esc clear", nil)
	case FocusSidebar:
		bindings = []key.Binding{model.keys.NextField, model.keys.ClearForm, model.keys.Escape}
		return model.helpLine("call details", bindings)
	case FocusSpanEdit:
		return model.helpLine("enter or esc to commit, blank restores the default", nil)
	}
	bindings = []key.Binding{
		model.keys.Down, model.keys.Copy, model.keys.EditBlank, model.keys.ResetCard,
		model.keys.SectionIndex, model.keys.SearchActivate, model.keys.ToggleSidebar,
		model.keys.ClearForm, model.keys.Quit,
	}
	return model.helpLine("", bindings)
}

func (model *Model) helpLine(prefix string, bindings []key.Binding) string {
	var parts []string
	if prefix != "" {
		parts = append(parts, prefix)
	}
	for _, binding := range bindings {
		help := binding.Help()
		parts = append(parts, help.Key+" "+help.Desc)
	}
	line := strings.Join(parts, " · ")
	style := lipgloss.NewStyle().Foreground(model.theme.HelpText)
	return style.Render(ansi.Truncate(line, max(model.width, 1), "…"))
}
