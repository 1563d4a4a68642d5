// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bureau-foundation/scriptdesk/lib/scriptdoc"
	"github.com/bureau-foundation/scriptdesk/lib/scriptview"
)

// handleReload swaps in a reloaded script library. The active section
// and the search query carry over; form values are re-applied to the
// new placeholders. Manual edits belong to the old cards and are lost.
func (model Model) handleReload(library *scriptdoc.Library) (tea.Model, tea.Cmd) {
	var listen tea.Cmd
	if model.reloads != nil {
		listen = listenForReload(model.reloads)
	}

	document, err := scriptview.New(library)
	if err != nil {
		model.logger.Warn("script library reload rejected", "error", err)
		return model, tea.Batch(listen, model.setNotice(&notice{
			text:  "Reload failed: " + err.Error(),
			level: slog.LevelWarn,
		}, noticeDuration))
	}

	var activeID string
	if active := model.document.ActiveNav(); active != nil {
		activeID = active.ID
	}

	model.commitSpanEdit()
	model.document = document
	search := model.searchInput.Value()
	if activeID == "" || !document.Navigate(activeID, search) {
		document.Search(search)
	}
	model.form.Bind(document)
	model.resetViewport()
	model.computeNavHitRanges()
	model.clampScroll()

	model.logger.Info("script library reloaded", "sections", len(document.Sections))
	return model, tea.Batch(listen, model.setNotice(&notice{
		text:  "Scripts reloaded (" + sectionSummary(document) + "); manual edits were reset",
		level: slog.LevelInfo,
	}, noticeDuration))
}
