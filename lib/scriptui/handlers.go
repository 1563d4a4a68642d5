// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// handleContentKeys processes keys while the card list has focus.
func (model Model) handleContentKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Quit):
		return model, tea.Quit

	case key.Matches(message, model.keys.ToggleSidebar),
		key.Matches(message, model.keys.Escape):
		return model, model.toggleSidebar()

	case key.Matches(message, model.keys.SearchActivate):
		model.focusRegion = FocusSearch
		return model, model.searchInput.Focus()

	case key.Matches(message, model.keys.SectionIndex):
		model.navigateIndex(int(message.String()[0] - '1'))
	case key.Matches(message, model.keys.PreviousSection):
		model.navigateRelative(-1)
	case key.Matches(message, model.keys.NextSection):
		model.navigateRelative(1)

	case key.Matches(message, model.keys.Up):
		model.moveSelection(-1)
	case key.Matches(message, model.keys.Down):
		model.moveSelection(1)
	case key.Matches(message, model.keys.PageUp):
		model.scrollBy(-model.contentHeight() / 2)
	case key.Matches(message, model.keys.PageDown):
		model.scrollBy(model.contentHeight() / 2)
	case key.Matches(message, model.keys.Home):
		model.moveSelection(-len(model.document.VisibleCards()))
	case key.Matches(message, model.keys.End):
		model.moveSelection(len(model.document.VisibleCards()))

	case key.Matches(message, model.keys.Copy):
		return model, model.copyCard(model.SelectedCard())
	case key.Matches(message, model.keys.EditBlank):
		if card := model.SelectedCard(); card != nil {
			return model, model.beginSpanEdit(card.FindFirstUnedited())
		}
	case key.Matches(message, model.keys.ResetCard):
		model.resetCard(model.SelectedCard())
	case key.Matches(message, model.keys.ClearForm):
		model.clearForm(true)
	case key.Matches(message, model.keys.FullReset):
		model.clearForm(false)
	}
	return model, nil
}

// handleSearchKeys processes keys while the search input has focus.
// Typing restarts the debounce timer; only the last keystroke of a
// burst triggers a search. Enter applies a pending search at once and
// returns focus to the cards. Escape clears a non-empty query, and
// leaves the input when it is already empty.
func (model Model) handleSearchKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Escape):
		if model.searchInput.Value() != "" {
			model.searchInput.SetValue("")
			model.searchTimer.Stop()
			model.applySearch()
			return model, nil
		}
		model.searchInput.Blur()
		model.focusRegion = FocusContent
		return model, nil

	case key.Matches(message, model.keys.Submit):
		if model.searchTimer.Running() {
			model.searchTimer.Stop()
			model.applySearch()
		}
		model.searchInput.Blur()
		model.focusRegion = FocusContent
		return model, nil

	case key.Matches(message, model.keys.ToggleSidebar):
		return model, model.toggleSidebar()
	}

	before := model.searchInput.Value()
	var command tea.Cmd
	model.searchInput, command = model.searchInput.Update(message)
	if model.searchInput.Value() == before {
		return model, command
	}
	return model, tea.Batch(command, model.searchTimer.Start(model.searchDebounce))
}

// handleSidebarKeys processes keys while a sidebar form field has
// focus. Every change is pushed to the form state immediately so the
// placeholders behind the sidebar update as the agent types.
func (model Model) handleSidebarKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Escape),
		key.Matches(message, model.keys.ToggleSidebar):
		model.closeSidebar()
		return model, nil
	case key.Matches(message, model.keys.NextField),
		key.Matches(message, model.keys.Submit):
		return model, model.focusField(1)
	case key.Matches(message, model.keys.PreviousField):
		return model, model.focusField(-1)
	case key.Matches(message, model.keys.ClearForm):
		model.clearForm(true)
		return model, nil
	}

	field := model.formFocus
	before := model.formInputs[field].Value()
	var command tea.Cmd
	model.formInputs[field], command = model.formInputs[field].Update(message)
	if model.formInputs[field].Value() != before {
		model.updateField(field)
	}
	return model, command
}

// handleSpanEditKeys processes keys while the inline span editor is
// open. Enter and Escape both commit; a blank entry restores the
// span's default text.
func (model Model) handleSpanEditKeys(message tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(message, model.keys.Submit),
		key.Matches(message, model.keys.Escape):
		model.commitSpanEdit()
		return model, nil
	case key.Matches(message, model.keys.ToggleSidebar):
		return model, model.toggleSidebar()
	}

	var command tea.Cmd
	model.spanInput, command = model.spanInput.Update(message)
	return model, command
}
