// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptview

import "strings"

// Editing returns the span whose inline input is open, or nil.
func (document *Document) Editing() *Span { return document.editing }

// BeginEdit opens the inline input on span. Only unedited spans can be
// edited; an edited span must be reset first. At most one span edits at
// a time, so BeginEdit refuses while another span's input is open (the
// caller commits it first, as losing focus would).
//
// Returns true when span's input is open after the call.
func (document *Document) BeginEdit(span *Span) bool {
	if span == nil {
		return false
	}
	if span.Editing {
		return true
	}
	if document.editing != nil {
		return false
	}
	if !span.Unedited() {
		return false
	}
	span.Editing = true
	document.editing = span
	return true
}

// Commit closes span's inline input with the typed text. Blank input
// (after trimming) restores the default, leaving the span unedited;
// anything else becomes the span's text. Enter and focus loss both end
// here. Committing a span that is not editing does nothing.
func (document *Document) Commit(span *Span, input string) {
	if span == nil || !span.Editing {
		return
	}
	text := strings.TrimSpace(input)
	if text == "" {
		text = span.Default
	}
	span.Text = text
	span.Editing = false
	if document.editing == span {
		document.editing = nil
	}
}

// ResetCard restores every span in card to its default text, closing
// an open input inside the card.
func (document *Document) ResetCard(card *Card) {
	if card == nil {
		return
	}
	for _, span := range card.Spans {
		span.Text = span.Default
		if span.Editing {
			span.Editing = false
			if document.editing == span {
				document.editing = nil
			}
		}
	}
}

// ResetAllCards resets the manual edits of every card.
func (document *Document) ResetAllCards() {
	for _, card := range document.Cards() {
		document.ResetCard(card)
	}
}

// CheckAllEdited reports whether every span in card is edited. When one
// is not, it opens the input on the first unedited span and reports
// false, which is how a copy attempt walks the agent through each blank.
func (document *Document) CheckAllEdited(card *Card) bool {
	span := card.FindFirstUnedited()
	if span == nil {
		return true
	}
	document.BeginEdit(span)
	return false
}
