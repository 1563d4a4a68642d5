// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/scriptdesk/lib/scriptview"
	"github.com/bureau-foundation/scriptdesk/lib/tui"
)

const tooltipText = "Copied!"

// tooltipState is the copy confirmation shown above a card. It is
// positioned at render time so it follows the card while scrolling.
type tooltipState struct {
	card *scriptview.Card
}

// showTooltip replaces any visible tooltip with one over card.
func (model *Model) showTooltip(card *scriptview.Card) {
	model.tooltip = &tooltipState{card: card}
}

// tooltipOverlay renders the tooltip and computes its screen position.
// Returns false when no tooltip is shown or its card has scrolled out
// of the content area.
func (model *Model) tooltipOverlay(layout contentLayout) ([]string, int, int, bool) {
	if model.tooltip == nil {
		return nil, 0, 0, false
	}
	for _, box := range layout.boxes {
		if box.card != model.tooltip.card {
			continue
		}
		boxY := contentTop + box.top - model.scrollOffset
		if boxY < contentTop || boxY >= contentTop+model.contentHeight() {
			return nil, 0, 0, false
		}

		background := lipgloss.NewStyle().Background(model.theme.TooltipBackground)
		content := background.Foreground(model.theme.TooltipForeground).Bold(true).Render(tooltipText)
		innerWidth := ansi.StringWidth(tooltipText)
		line := tui.PadOverlayLine(content, innerWidth, innerWidth+2, background)

		x, y := tui.AnchorAbove(box.left, boxY, box.width, innerWidth+2, 1, model.width)
		return []string{line}, x, max(y, contentTop), true
	}
	return nil, 0, 0, false
}
