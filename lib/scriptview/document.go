// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package scriptview is the in-memory document the script assistant
// renders: navigation buttons, sections, header groups and script cards,
// with the placeholder elements and manual-edit spans inside each card.
//
// All of the assistant's state transitions live here as plain data
// operations (navigation, header search, the manual-edit lifecycle,
// sidebar and swipe handling) so they can be exercised without a
// terminal. The bubbletea model in scriptui is a thin layer that maps
// input events onto these operations and draws the result.
//
// Visibility is render state, not source data: it is recomputed by
// [Document.Navigate] and [Document.Search] on every relevant event.
package scriptview

import (
	"fmt"
	"strings"

	"github.com/bureau-foundation/scriptdesk/lib/formstate"
	"github.com/bureau-foundation/scriptdesk/lib/scriptdoc"
)

// Naming convention pairing navigation buttons with sections: the
// button "<id>-nav" shows the section "<id>-section".
const (
	navSuffix     = "-nav"
	sectionSuffix = "-section"
)

// NavID returns the navigation button ID for a library section ID.
func NavID(id string) string { return id + navSuffix }

// SectionIDForNav maps a navigation button ID to its section ID.
func SectionIDForNav(navID string) string {
	return strings.TrimSuffix(navID, navSuffix) + sectionSuffix
}

// NavButton is a section selector.
type NavButton struct {
	ID     string
	Label  string
	Active bool
}

// Section is a navigable region of the document.
type Section struct {
	// ID is the element ID ("<id>-section").
	ID    string
	Title string

	Active  bool
	Visible bool

	Headers []*Header
}

// Header is a searchable title owning a group of cards.
type Header struct {
	Title string
	Note  string

	// Hidden is a search-induced display override that hides the
	// header together with its cards.
	Hidden bool

	Cards []*Card
}

// TextContent is the full text searched for a header: the title and
// its note.
func (header *Header) TextContent() string {
	if header.Note == "" {
		return header.Title
	}
	return header.Title + " " + header.Note
}

// SegmentKind distinguishes the pieces of a rendered card.
type SegmentKind int

const (
	SegmentText SegmentKind = iota
	SegmentPlaceholder
	SegmentManualEdit
)

// Segment is one rendered piece of a card.
type Segment struct {
	Kind SegmentKind

	// Text is the literal text, or the current placeholder display
	// text. Unused for manual-edit segments (see Span).
	Text string

	Field formstate.Field
	Span  *Span
}

// Span is a manual-edit blank inside a card.
type Span struct {
	// Default is the text shown until the agent fills the blank.
	Default string
	// Text is the committed text.
	Text string
	// Editing is true while the inline input replaces the span.
	Editing bool

	card *Card
}

// Current is the span's rendered text. While editing, the span holds
// only an empty input.
func (span *Span) Current() string {
	if span.Editing {
		return ""
	}
	return span.Text
}

// Unedited reports whether the rendered text equals the default.
func (span *Span) Unedited() bool {
	return span.Current() == span.Default
}

// Card returns the card containing the span.
func (span *Span) Card() *Card { return span.card }

// Card is a copyable script.
type Card struct {
	Title    string
	Segments []Segment
	Spans    []*Span
}

// Text is the card's full rendered text: literal text, placeholder
// display text and span text in document order.
func (card *Card) Text() string {
	var builder strings.Builder
	for _, segment := range card.Segments {
		switch segment.Kind {
		case SegmentManualEdit:
			builder.WriteString(segment.Span.Current())
		default:
			builder.WriteString(segment.Text)
		}
	}
	return builder.String()
}

// HasManualEdits reports whether the card contains at least one span.
// Only such cards get a reset control.
func (card *Card) HasManualEdits() bool { return len(card.Spans) > 0 }

// FindFirstUnedited returns the first unedited span in document order,
// or nil when every span has been edited.
func (card *Card) FindFirstUnedited() *Span {
	for _, span := range card.Spans {
		if span.Unedited() {
			return span
		}
	}
	return nil
}

// Document is the complete assistant view state.
type Document struct {
	Title    string
	Nav      []*NavButton
	Sections []*Section

	editing *Span
}

// New builds a document from a library. The library's active section
// (or the first) starts active and visible; everything else is hidden.
// Placeholder segments start empty until a form state is bound.
func New(library *scriptdoc.Library) (*Document, error) {
	document := &Document{Title: library.Title}
	activeIndex := library.ActiveIndex()

	for sectionIndex, source := range library.Sections {
		document.Nav = append(document.Nav, &NavButton{
			ID:     NavID(source.ID),
			Label:  source.Title,
			Active: sectionIndex == activeIndex,
		})

		section := &Section{ID: source.ID + sectionSuffix, Title: source.Title}
		for _, sourceHeader := range source.Headers {
			header := &Header{Title: sourceHeader.Title, Note: sourceHeader.Note}
			for cardIndex, sourceCard := range sourceHeader.Cards {
				card, err := newCard(sourceCard)
				if err != nil {
					return nil, fmt.Errorf("section %q, header %q, card %d: %w",
						source.ID, sourceHeader.Title, cardIndex+1, err)
				}
				header.Cards = append(header.Cards, card)
			}
			section.Headers = append(section.Headers, header)
		}
		document.Sections = append(document.Sections, section)
	}

	if active := document.ActiveNav(); active != nil {
		if section := document.Section(SectionIDForNav(active.ID)); section != nil {
			section.Active = true
		}
	}
	document.Search("")
	return document, nil
}

func newCard(source scriptdoc.Card) (*Card, error) {
	tokens, err := scriptdoc.ParseBody(source.Body)
	if err != nil {
		return nil, err
	}
	card := &Card{Title: source.Title}
	for _, token := range tokens {
		switch token.Kind {
		case scriptdoc.TokenText:
			card.Segments = append(card.Segments, Segment{Kind: SegmentText, Text: token.Text})
		case scriptdoc.TokenPlaceholder:
			card.Segments = append(card.Segments, Segment{Kind: SegmentPlaceholder, Field: token.Field})
		case scriptdoc.TokenManualEdit:
			span := &Span{Default: token.Text, Text: token.Text, card: card}
			card.Spans = append(card.Spans, span)
			card.Segments = append(card.Segments, Segment{Kind: SegmentManualEdit, Span: span})
		}
	}
	return card, nil
}

// SetPlaceholder replaces the text of every placeholder element for
// field. Implements formstate.Sink.
func (document *Document) SetPlaceholder(field formstate.Field, text string) {
	for _, card := range document.Cards() {
		for index := range card.Segments {
			segment := &card.Segments[index]
			if segment.Kind == SegmentPlaceholder && segment.Field == field {
				segment.Text = text
			}
		}
	}
}

// Section looks up a section by element ID. Returns nil when absent.
func (document *Document) Section(id string) *Section {
	for _, section := range document.Sections {
		if section.ID == id {
			return section
		}
	}
	return nil
}

// ActiveNav returns the active navigation button, or nil.
func (document *Document) ActiveNav() *NavButton {
	for _, button := range document.Nav {
		if button.Active {
			return button
		}
	}
	return nil
}

// ActiveSection returns the section paired with the active navigation
// button, or nil.
func (document *Document) ActiveSection() *Section {
	button := document.ActiveNav()
	if button == nil {
		return nil
	}
	return document.Section(SectionIDForNav(button.ID))
}

// Cards returns every card in document order.
func (document *Document) Cards() []*Card {
	var cards []*Card
	for _, section := range document.Sections {
		for _, header := range section.Headers {
			cards = append(cards, header.Cards...)
		}
	}
	return cards
}

// VisibleCards returns the cards currently displayed: in visible
// sections, under headers without a hidden override.
func (document *Document) VisibleCards() []*Card {
	var cards []*Card
	for _, section := range document.Sections {
		if !section.Visible {
			continue
		}
		for _, header := range section.Headers {
			if header.Hidden {
				continue
			}
			cards = append(cards, header.Cards...)
		}
	}
	return cards
}
