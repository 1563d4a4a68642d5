// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptview

import "testing"

func refundCard(document *Document) *Card {
	return document.Section("billing-section").Headers[0].Cards[0]
}

func TestCheckAllEditedOpensFirstUneditedSpan(t *testing.T) {
	document := newTestDocument(t)
	card := refundCard(document)

	// Fill the first and third spans; the second stays unedited.
	first, second, third := card.Spans[0], card.Spans[1], card.Spans[2]
	document.BeginEdit(first)
	document.Commit(first, "$20")
	document.BeginEdit(third)
	document.Commit(third, "late delivery")

	if document.CheckAllEdited(card) {
		t.Fatal("card with an unedited span reported fully edited")
	}
	if !second.Editing || document.Editing() != second {
		t.Error("CheckAllEdited should leave the unedited span in editing mode")
	}
	if first.Editing || third.Editing {
		t.Error("edited spans must not be reopened")
	}
}

func TestCheckAllEditedNoSideEffectWhenComplete(t *testing.T) {
	document := newTestDocument(t)
	card := refundCard(document)
	for index, text := range []string{"$20", "Visa 4242", "damaged"} {
		document.BeginEdit(card.Spans[index])
		document.Commit(card.Spans[index], text)
	}
	before := card.Text()

	if !document.CheckAllEdited(card) {
		t.Fatal("fully edited card reported incomplete")
	}
	if document.Editing() != nil {
		t.Error("CheckAllEdited opened an editor on a complete card")
	}
	if card.Text() != before {
		t.Errorf("text changed from %q to %q", before, card.Text())
	}
	if card.Text() != "Refund of $20 to Visa 4242 for damaged." {
		t.Errorf("text = %q", card.Text())
	}
}

func TestCheckAllEditedWithoutSpans(t *testing.T) {
	document := newTestDocument(t)
	card := document.Section("greeting-section").Headers[0].Cards[0]
	if !document.CheckAllEdited(card) {
		t.Error("card without spans is trivially fully edited")
	}
}

func TestBeginEditOnlyWhenUnedited(t *testing.T) {
	document := newTestDocument(t)
	span := refundCard(document).Spans[0]

	if !document.BeginEdit(span) {
		t.Fatal("BeginEdit on unedited span failed")
	}
	if span.Current() != "" {
		t.Errorf("editing span renders %q, want empty input", span.Current())
	}
	document.Commit(span, "  $5  ")
	if span.Text != "$5" || span.Unedited() {
		t.Errorf("commit should trim and mark edited, got %q", span.Text)
	}
	if document.BeginEdit(span) {
		t.Error("BeginEdit must refuse an edited span")
	}
}

func TestCommitBlankRestoresDefault(t *testing.T) {
	document := newTestDocument(t)
	span := refundCard(document).Spans[0]
	document.BeginEdit(span)
	document.Commit(span, "   ")

	if span.Text != "amount" || !span.Unedited() {
		t.Errorf("blank commit: text=%q unedited=%v", span.Text, span.Unedited())
	}
	if document.Editing() != nil {
		t.Error("commit should close the editor")
	}
}

func TestCommitTwiceIsHarmless(t *testing.T) {
	document := newTestDocument(t)
	span := refundCard(document).Spans[0]
	document.BeginEdit(span)
	document.Commit(span, "$1")
	// The blur that follows an Enter commit.
	document.Commit(span, "")
	if span.Text != "$1" {
		t.Errorf("second commit changed text to %q", span.Text)
	}
}

func TestOnlyOneSpanEditsAtATime(t *testing.T) {
	document := newTestDocument(t)
	card := refundCard(document)
	document.BeginEdit(card.Spans[0])
	if document.BeginEdit(card.Spans[1]) {
		t.Error("second span opened while another is editing")
	}
	if !document.BeginEdit(card.Spans[0]) {
		t.Error("re-opening the editing span should report open")
	}
}

func TestResetCard(t *testing.T) {
	document := newTestDocument(t)
	card := refundCard(document)
	document.BeginEdit(card.Spans[0])
	document.Commit(card.Spans[0], "$20")
	document.BeginEdit(card.Spans[1])

	document.ResetCard(card)

	for _, span := range card.Spans {
		if !span.Unedited() || span.Editing {
			t.Errorf("span %q not reset (text=%q editing=%v)", span.Default, span.Text, span.Editing)
		}
	}
	if document.Editing() != nil {
		t.Error("reset should close the open editor")
	}
	document.ResetCard(nil)
}

func TestResetAllCards(t *testing.T) {
	document := newTestDocument(t)
	card := refundCard(document)
	document.BeginEdit(card.Spans[2])
	document.Commit(card.Spans[2], "x")

	document.ResetAllCards()

	if card.FindFirstUnedited() != card.Spans[0] || !card.Spans[2].Unedited() {
		t.Error("ResetAllCards left edits behind")
	}
}

func TestEmptyDefaultSpan(t *testing.T) {
	span := &Span{}
	if !span.Unedited() {
		t.Error("span with empty default and empty text is unedited")
	}
}
