// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/scriptdesk/lib/scriptview"
)

// Screen layout: header row, search row, content, status bar. The
// scrollbar takes the rightmost column of the content area.
const (
	headerRow  = 0
	searchRow  = 1
	contentTop = 2

	// cardLeft is the column where card boxes start.
	cardLeft = 2

	resetGlyph = "↺"
)

func (model *Model) contentHeight() int { return max(model.height-contentTop-1, 0) }

func (model *Model) contentWidth() int { return max(model.width-1, 1) }

// contentLayout is the rendered card list before scrolling.
type contentLayout struct {
	lines []string
	// boxes holds one entry per visible card, in the order of
	// Document.VisibleCards.
	boxes []cardBox
}

// cardBox locates a rendered card within contentLayout.lines.
type cardBox struct {
	card   *scriptview.Card
	top    int
	height int
	left   int
	width  int

	// Reset control position, relative to the content area. resetRow
	// is -1 for cards without manual-edit spans.
	resetRow   int
	resetStart int
	resetEnd   int
}

// contains reports whether the content position (x, line) is inside
// the box.
func (box cardBox) contains(x, line int) bool {
	return line >= box.top && line < box.top+box.height &&
		x >= box.left && x < box.left+box.width
}

// onReset reports whether (x, line) hits the box's reset control.
func (box cardBox) onReset(x, line int) bool {
	return box.resetRow >= 0 && line == box.resetRow &&
		x >= box.resetStart && x < box.resetEnd
}

// buildContent renders every visible section, header and card.
func (model *Model) buildContent() contentLayout {
	var layout contentLayout
	width := model.contentWidth()
	boxWidth := max(width-cardLeft*2, 8)

	sectionStyle := lipgloss.NewStyle().Foreground(model.theme.SectionForeground).Bold(true)
	headerStyle := lipgloss.NewStyle().Foreground(model.theme.HeaderForeground).Bold(true)
	noteStyle := lipgloss.NewStyle().Foreground(model.theme.NoteForeground).Italic(true)
	margin := strings.Repeat(" ", cardLeft)

	cardIndex := 0
	for _, section := range model.document.Sections {
		if !section.Visible {
			continue
		}
		layout.lines = append(layout.lines, sectionStyle.Render("▌ "+section.Title), "")
		for _, header := range section.Headers {
			if header.Hidden {
				continue
			}
			line := headerStyle.Render(header.Title)
			if header.Note != "" {
				line += "  " + noteStyle.Render(header.Note)
			}
			layout.lines = append(layout.lines, margin+ansi.Truncate(line, width-cardLeft, "…"))

			for _, card := range header.Cards {
				rendered := model.renderCard(card, boxWidth, cardIndex == model.selected)
				box := cardBox{
					card:     card,
					top:      len(layout.lines),
					height:   len(rendered),
					left:     cardLeft,
					width:    boxWidth,
					resetRow: -1,
				}
				if card.HasManualEdits() {
					// Border row, then the title row holding the control
					// flush against the right padding.
					box.resetRow = box.top + 1
					box.resetEnd = cardLeft + boxWidth - 2
					box.resetStart = box.resetEnd - ansi.StringWidth(resetGlyph)
				}
				for _, row := range rendered {
					layout.lines = append(layout.lines, margin+row)
				}
				layout.boxes = append(layout.boxes, box)
				cardIndex++
			}
			layout.lines = append(layout.lines, "")
		}
	}

	if len(layout.boxes) == 0 {
		layout.lines = append(layout.lines, model.emptyStateLine())
	}
	return layout
}

func (model *Model) emptyStateLine() string {
	style := lipgloss.NewStyle().Foreground(model.theme.FaintText).Italic(true)
	if term := scriptview.NormalizeTerm(model.searchInput.Value()); term != "" {
		return "  " + style.Render("No headers match \""+term+"\"")
	}
	return "  " + style.Render("Nothing to show")
}

// renderCard draws one card as a rounded box of boxWidth columns and
// returns its rows.
func (model *Model) renderCard(card *scriptview.Card, boxWidth int, selected bool) []string {
	innerWidth := max(boxWidth-4, 1)

	border := model.theme.BorderColor
	if selected {
		border = model.theme.FocusedBorder
	}
	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(border).
		Padding(0, 1).
		Width(boxWidth - 2)

	var parts []string
	if card.Title != "" || card.HasManualEdits() {
		parts = append(parts, model.renderCardTitle(card, innerWidth, selected))
	}
	body := lipgloss.NewStyle().Width(innerWidth).Render(model.renderSegments(card))
	parts = append(parts, body)

	return strings.Split(style.Render(strings.Join(parts, "\n")), "\n")
}

func (model *Model) renderCardTitle(card *scriptview.Card, innerWidth int, selected bool) string {
	titleStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText).Bold(true)
	if selected {
		titleStyle = titleStyle.Foreground(model.theme.SelectedForeground)
	}
	if !card.HasManualEdits() {
		return ansi.Truncate(titleStyle.Render(card.Title), innerWidth, "…")
	}

	glyphWidth := ansi.StringWidth(resetGlyph)
	titleWidth := max(innerWidth-glyphWidth-1, 0)
	title := ansi.Truncate(titleStyle.Render(card.Title), titleWidth, "…")
	padding := max(innerWidth-glyphWidth-ansi.StringWidth(title), 0)
	glyph := lipgloss.NewStyle().Foreground(model.theme.FaintText).Render(resetGlyph)
	return title + strings.Repeat(" ", padding) + glyph
}

// renderSegments styles a card's text: placeholders show the form
// value or fallback label, manual-edit spans are underlined in their
// lifecycle color, and the span being edited is replaced by the inline
// input.
func (model *Model) renderSegments(card *scriptview.Card) string {
	textStyle := lipgloss.NewStyle().Foreground(model.theme.NormalText)
	var builder strings.Builder
	for _, segment := range card.Segments {
		switch segment.Kind {
		case scriptview.SegmentText:
			builder.WriteString(styleLines(textStyle, segment.Text))
		case scriptview.SegmentPlaceholder:
			filled := model.form.Value(segment.Field) != ""
			style := lipgloss.NewStyle().Foreground(model.theme.PlaceholderColor(filled)).Bold(filled)
			builder.WriteString(style.Render(segment.Text))
		case scriptview.SegmentManualEdit:
			span := segment.Span
			if span.Editing && model.focusRegion == FocusSpanEdit {
				builder.WriteString(model.spanInput.View())
				continue
			}
			style := lipgloss.NewStyle().
				Foreground(model.theme.SpanColor(span.Editing, !span.Unedited())).
				Underline(true)
			builder.WriteString(style.Render(span.Current()))
		}
	}
	return builder.String()
}

// styleLines applies style to each line of text separately so that
// embedded newlines survive rendering.
func styleLines(style lipgloss.Style, text string) string {
	lines := strings.Split(text, "\n")
	for index, line := range lines {
		if line != "" {
			lines[index] = style.Render(line)
		}
	}
	return strings.Join(lines, "\n")
}

// scrollToSelected adjusts the scroll offset so the selected card is
// fully on screen, or its top is when it is taller than the viewport.
func (model *Model) scrollToSelected() {
	layout := model.buildContent()
	if model.selected < 0 || model.selected >= len(layout.boxes) {
		return
	}
	box := layout.boxes[model.selected]
	height := model.contentHeight()
	if height <= 0 {
		return
	}
	if box.top+box.height > model.scrollOffset+height {
		model.scrollOffset = box.top + box.height - height
	}
	if box.top < model.scrollOffset {
		model.scrollOffset = box.top
	}
	model.clampScrollTo(len(layout.lines))
}

// scrollBy moves the viewport by delta lines unless the open sidebar
// locks scrolling.
func (model *Model) scrollBy(delta int) {
	if model.sidebar.ScrollLocked() {
		return
	}
	model.scrollOffset += delta
	model.clampScroll()
}

func (model *Model) clampScroll() {
	model.clampSelection()
	model.clampScrollTo(len(model.buildContent().lines))
}

func (model *Model) clampScrollTo(totalLines int) {
	maxOffset := max(totalLines-model.contentHeight(), 0)
	model.scrollOffset = min(max(model.scrollOffset, 0), maxOffset)
}

func (model *Model) clampSelection() {
	count := len(model.document.VisibleCards())
	model.selected = min(max(model.selected, 0), max(count-1, 0))
}
