// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderScrollbar produces a single-column scrollbar of the given height
// for content of totalLines, of which visibleLines are on screen
// starting at scrollOffset.
//
// When the content fits, the thumb spans the full height. A locked
// scrollbar (content scrolling suspended, e.g. while the sidebar is
// open) draws the thumb in the border color instead of the focus color.
func RenderScrollbar(theme Theme, height, totalLines, visibleLines, scrollOffset int, locked bool) string {
	if height <= 0 {
		return ""
	}

	thumbColor := theme.FocusedBorder
	if locked {
		thumbColor = theme.BorderColor
	}
	trackStyle := lipgloss.NewStyle().Foreground(theme.BorderColor)
	thumbStyle := lipgloss.NewStyle().Foreground(thumbColor)

	lines := make([]string, height)

	if totalLines <= visibleLines || totalLines <= 0 {
		for index := range lines {
			lines[index] = thumbStyle.Render("┃")
		}
		return strings.Join(lines, "\n")
	}

	thumbOffset, thumbSize := ScrollbarThumb(height, totalLines, visibleLines, scrollOffset)
	for index := range lines {
		if index >= thumbOffset && index < thumbOffset+thumbSize {
			lines[index] = thumbStyle.Render("┃")
		} else {
			lines[index] = trackStyle.Render("│")
		}
	}

	return strings.Join(lines, "\n")
}

// ScrollbarThumb computes the thumb position and size for a track of
// height rows. The thumb is at least one row and stays inside the
// track.
func ScrollbarThumb(height, totalLines, visibleLines, scrollOffset int) (offset, size int) {
	if totalLines <= visibleLines || totalLines <= 0 {
		return 0, height
	}

	size = height * visibleLines / totalLines
	if size < 1 {
		size = 1
	}

	scrollableRange := totalLines - visibleLines
	trackRange := height - size
	if scrollableRange > 0 && trackRange > 0 {
		offset = scrollOffset * trackRange / scrollableRange
	}
	if offset+size > height {
		offset = height - size
	}
	if offset < 0 {
		offset = 0
	}
	return offset, size
}
