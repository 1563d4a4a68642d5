// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/scriptdesk/lib/scriptview"
)

// handleMouse processes mouse events. A left press starts tracking a
// potential swipe; the release either completes the swipe (a
// horizontal drag longer than the threshold) or, for a short drag,
// acts as a click at the release position.
func (model Model) handleMouse(message tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch {
	case message.Button == tea.MouseButtonWheelUp:
		model.scrollBy(-wheelStep)
		return model, nil
	case message.Button == tea.MouseButtonWheelDown:
		model.scrollBy(wheelStep)
		return model, nil
	}

	if message.Button != tea.MouseButtonLeft && message.Action != tea.MouseActionRelease {
		return model, nil
	}

	switch message.Action {
	case tea.MouseActionPress:
		model.swipe.Begin(float64(message.X) * model.cellWidth)
		return model, nil
	case tea.MouseActionRelease:
		if !model.swipe.Tracking() {
			return model, nil
		}
		direction := model.swipe.End(float64(message.X) * model.cellWidth)
		if direction != scriptview.SwipeNone {
			return model, model.applySwipe(direction)
		}
		return model, model.click(message.X, message.Y)
	}
	return model, nil
}

// click dispatches a left click at screen position (x, y).
func (model *Model) click(x, y int) tea.Cmd {
	switch {
	case y == headerRow:
		if x < ansi.StringWidth(menuGlyph)+1 {
			return model.toggleSidebar()
		}
		for _, hit := range model.navHitRanges {
			if x >= hit.startX && x < hit.endX {
				model.navigate(hit.navID)
				return nil
			}
		}
		return nil

	case y == model.height-1:
		return model.statusBarClick()
	}

	if model.sidebar.IsOpen() {
		width, height := model.sidebarDimensions()
		if x < width && y >= searchRow && y < searchRow+height {
			return model.sidebarClick(x, y-searchRow)
		}
	}

	if y == searchRow {
		model.commitSpanEdit()
		if model.focusRegion == FocusSidebar {
			model.formInputs[model.formFocus].Blur()
		}
		model.focusRegion = FocusSearch
		return model.searchInput.Focus()
	}

	return model.contentClick(x, y-contentTop+model.scrollOffset)
}

// contentClick handles a click at content coordinates. Clicking a
// card's reset control resets its blanks; clicking anywhere else on a
// card selects and copies it. Clicking inside the card being edited
// leaves the editor open.
func (model *Model) contentClick(x, line int) tea.Cmd {
	for index, box := range model.buildContent().boxes {
		if !box.contains(x, line) {
			continue
		}
		if box.onReset(x, line) {
			model.selected = index
			model.resetCard(box.card)
			return nil
		}
		if editing := model.document.Editing(); editing != nil && editing.Card() == box.card {
			return nil
		}
		model.selected = index
		return model.copyCard(box.card)
	}
	model.commitSpanEdit()
	return nil
}

// statusBarClick copies the structured form of a displayed log record.
func (model *Model) statusBarClick() tea.Cmd {
	if model.notice == nil || model.notice.structured == "" {
		return nil
	}
	structured := model.notice.structured
	write := model.clipboard
	return func() tea.Msg {
		if err := write(structured); err != nil {
			return logCopyResultMsg{err: err}
		}
		return logCopyResultMsg{}
	}
}

// logCopyResultMsg reports the outcome of copying a log record.
type logCopyResultMsg struct {
	err error
}
