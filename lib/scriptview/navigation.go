// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package scriptview

import "strings"

// Navigate activates the navigation button navID and shows its paired
// section. All other sections are hidden and every header override left
// by a previous search is cleared. When searchInput holds a non-blank
// term, the search is re-applied on top of the new selection.
//
// Navigating to the already active button re-applies the same state.
// Unknown button IDs are ignored; the return value reports whether the
// button exists.
func (document *Document) Navigate(navID, searchInput string) bool {
	var target *NavButton
	for _, button := range document.Nav {
		if button.ID == navID {
			target = button
		}
	}
	if target == nil {
		return false
	}

	for _, button := range document.Nav {
		button.Active = false
	}
	target.Active = true

	for _, section := range document.Sections {
		section.Active = false
		section.Visible = false
		section.clearOverrides()
	}

	if section := document.Section(SectionIDForNav(navID)); section != nil {
		section.Active = true
		section.Visible = true
	}

	if term := NormalizeTerm(searchInput); term != "" {
		document.Search(term)
	}
	return true
}

// NavigateIndex navigates to the button at index. Out-of-range indexes
// are ignored.
func (document *Document) NavigateIndex(index int, searchInput string) bool {
	if index < 0 || index >= len(document.Nav) {
		return false
	}
	return document.Navigate(document.Nav[index].ID, searchInput)
}

// NavigateRelative moves the selection by delta buttons, wrapping
// around at either end.
func (document *Document) NavigateRelative(delta int, searchInput string) bool {
	count := len(document.Nav)
	if count == 0 {
		return false
	}
	current := 0
	for index, button := range document.Nav {
		if button.Active {
			current = index
		}
	}
	next := ((current+delta)%count + count) % count
	return document.Navigate(document.Nav[next].ID, searchInput)
}

func (section *Section) clearOverrides() {
	for _, header := range section.Headers {
		header.Hidden = false
	}
}

// NormalizeTerm lower-cases and trims raw search input.
func NormalizeTerm(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}
