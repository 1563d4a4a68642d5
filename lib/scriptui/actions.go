// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/scriptdesk/lib/formstate"
	"github.com/bureau-foundation/scriptdesk/lib/scriptview"
)

// clipboardResultMsg reports the outcome of an asynchronous clipboard
// write started by copyCard.
type clipboardResultMsg struct {
	card *scriptview.Card
	err  error
}

// copyCard copies a card's text once every manual-edit blank in it is
// filled. An open span editor is committed first, as losing focus
// would. When a blank is still unfilled, the editor opens on it and
// nothing is copied.
func (model *Model) copyCard(card *scriptview.Card) tea.Cmd {
	if card == nil {
		return nil
	}
	model.commitSpanEdit()
	if !model.document.CheckAllEdited(card) {
		return model.syncSpanEditor()
	}

	text := card.Text()
	write := model.clipboard
	return func() tea.Msg {
		return clipboardResultMsg{card: card, err: write(text)}
	}
}

// handleClipboardResult shows the tooltip over the copied card and
// (re)starts its hide timer, or reports the failure.
func (model Model) handleClipboardResult(message clipboardResultMsg) (tea.Model, tea.Cmd) {
	if message.err != nil {
		return model, model.setNotice(&notice{
			text:  "Copy failed: " + message.err.Error(),
			level: slog.LevelError,
		}, noticeDuration)
	}
	model.showTooltip(message.card)
	return model, model.tooltipTimer.Start(model.tooltipDuration)
}

// commitSpanEdit closes the inline editor with whatever was typed.
func (model *Model) commitSpanEdit() {
	if span := model.document.Editing(); span != nil {
		model.document.Commit(span, model.spanInput.Value())
	}
	model.syncSpanEditor()
}

// beginSpanEdit opens the inline editor on span, selecting its card.
func (model *Model) beginSpanEdit(span *scriptview.Span) tea.Cmd {
	if span == nil {
		return nil
	}
	model.commitSpanEdit()
	if !model.document.BeginEdit(span) {
		return nil
	}
	return model.syncSpanEditor()
}

// syncSpanEditor aligns focus and the span input with the document's
// editing span. The document decides which span edits (BeginEdit may
// be triggered indirectly by CheckAllEdited); the model follows.
func (model *Model) syncSpanEditor() tea.Cmd {
	span := model.document.Editing()
	if span == nil {
		if model.focusRegion == FocusSpanEdit {
			model.spanInput.Blur()
			model.spanInput.Reset()
			model.focusRegion = FocusContent
		}
		return nil
	}
	if model.focusRegion == FocusSpanEdit {
		return nil
	}

	if model.sidebar.IsOpen() {
		model.closeSidebar()
	}
	model.searchInput.Blur()
	model.selectCard(span.Card())

	model.spanInput.Reset()
	model.spanInput.Placeholder = span.Default
	model.spanInput.Width = min(max(ansi.StringWidth(span.Default)+2, 12), max(model.contentWidth()/2, 12))
	model.focusRegion = FocusSpanEdit
	return model.spanInput.Focus()
}

// resetCard restores the card's blanks to their defaults.
func (model *Model) resetCard(card *scriptview.Card) {
	if card == nil {
		return
	}
	model.document.ResetCard(card)
	model.syncSpanEditor()
}

// clearForm empties the call details and resets every card's blanks.
// With preserveAgentName the agent name survives, which is the normal
// end-of-call action; a full reset clears it too.
func (model *Model) clearForm(preserveAgentName bool) {
	model.form.Reset(preserveAgentName)
	for _, field := range formstate.Fields {
		if preserveAgentName && field == formstate.AgentName {
			continue
		}
		model.formInputs[field].SetValue("")
	}
	model.document.ResetAllCards()
	model.syncSpanEditor()
}

// updateField copies a form input's value into the form state, which
// re-renders that field's placeholders.
func (model *Model) updateField(field formstate.Field) {
	model.form.Update(field, model.formInputs[field].Value())
}

// navigate shows the section paired with navID.
func (model *Model) navigate(navID string) {
	model.commitSpanEdit()
	if model.document.Navigate(navID, model.searchInput.Value()) {
		model.resetViewport()
	}
}

func (model *Model) navigateIndex(index int) {
	if index < 0 || index >= len(model.document.Nav) {
		return
	}
	model.navigate(model.document.Nav[index].ID)
}

func (model *Model) navigateRelative(delta int) {
	model.commitSpanEdit()
	if model.document.NavigateRelative(delta, model.searchInput.Value()) {
		model.resetViewport()
	}
}

// applySearch filters the document by the search input's current value.
func (model *Model) applySearch() {
	model.document.Search(model.searchInput.Value())
	model.resetViewport()
}

// resetViewport returns to the first card after the set of visible
// cards changed.
func (model *Model) resetViewport() {
	model.selected = 0
	model.scrollOffset = 0
	model.tooltip = nil
}

// selectCard highlights card if it is visible and scrolls it into view.
func (model *Model) selectCard(card *scriptview.Card) {
	for index, visible := range model.document.VisibleCards() {
		if visible == card {
			model.selected = index
			model.scrollToSelected()
			return
		}
	}
}

// moveSelection moves the highlight by delta cards, stopping at either
// end.
func (model *Model) moveSelection(delta int) {
	count := len(model.document.VisibleCards())
	if count == 0 {
		return
	}
	model.selected = min(max(model.selected+delta, 0), count-1)
	model.scrollToSelected()
}

// sidebar transitions. Opening commits an open span editor (the sidebar
// takes focus) and focuses the last used form field.

func (model *Model) toggleSidebar() tea.Cmd {
	if model.sidebar.IsOpen() {
		model.closeSidebar()
		return nil
	}
	model.sidebar.Open()
	return model.enterSidebar()
}

func (model *Model) closeSidebar() {
	model.sidebar.Close()
	model.leaveSidebar()
}

func (model *Model) enterSidebar() tea.Cmd {
	model.commitSpanEdit()
	model.searchInput.Blur()
	model.focusRegion = FocusSidebar
	return model.formInputs[model.formFocus].Focus()
}

func (model *Model) leaveSidebar() {
	model.formInputs[model.formFocus].Blur()
	if model.focusRegion == FocusSidebar {
		model.focusRegion = FocusContent
	}
}

// applySwipe opens or closes the sidebar for a completed drag.
func (model *Model) applySwipe(direction scriptview.SwipeDirection) tea.Cmd {
	if !model.sidebar.ApplySwipe(direction) {
		return nil
	}
	if model.sidebar.IsOpen() {
		return model.enterSidebar()
	}
	model.leaveSidebar()
	return nil
}

// focusField moves sidebar focus by delta fields, wrapping around.
func (model *Model) focusField(delta int) tea.Cmd {
	count := len(formstate.Fields)
	model.formInputs[model.formFocus].Blur()
	model.formFocus = formstate.Field(((int(model.formFocus)+delta)%count + count) % count)
	return model.formInputs[model.formFocus].Focus()
}

// sectionSummary describes the document for status notices.
func sectionSummary(document *scriptview.Document) string {
	cards := len(document.Cards())
	return fmt.Sprintf("%d sections, %d cards", len(document.Sections), cards)
}
